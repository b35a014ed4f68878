package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send <list-id>",
	Short: "Forward a list to the telegram recipients",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid list id %q", args[0])
		}
		client, _, err := newClient()
		if err != nil {
			return err
		}
		if err := client.SendList(context.Background(), id); err != nil {
			return err
		}
		fmt.Println("✓ List sent.")
		return nil
	},
}
