package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var shopsCmd = &cobra.Command{
	Use:   "shops",
	Short: "Show all shops",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		shops, err := client.Shops(context.Background())
		if err != nil {
			return err
		}
		if len(shops) == 0 {
			fmt.Println("No shops yet. Run 'prodlist shops add <name>' to create one.")
			return nil
		}
		for _, s := range shops {
			fmt.Printf("%4d  %s\n", s.ID, s.Name)
		}
		return nil
	},
}

var shopsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a shop",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		shop, err := client.CreateShop(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("✓ Created shop %q (id %d)\n", shop.Name, shop.ID)
		return nil
	},
}

var shopsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a shop",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid shop id %q", args[0])
		}
		client, _, err := newClient()
		if err != nil {
			return err
		}
		if err := client.DeleteShop(context.Background(), id); err != nil {
			return err
		}
		fmt.Printf("✓ Deleted shop %d\n", id)
		return nil
	},
}

func init() {
	shopsCmd.AddCommand(shopsAddCmd)
	shopsCmd.AddCommand(shopsRmCmd)
}
