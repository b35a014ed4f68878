package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/akorchak/prodlist/internal/basket"
)

var historyCmd = &cobra.Command{
	Use:   "history <product-id>",
	Short: "Show a product's price history, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}
		client, cfg, err := newClient()
		if err != nil {
			return err
		}
		products, err := client.Products(context.Background())
		if err != nil {
			return err
		}

		for _, p := range products {
			if p.ID != id {
				continue
			}
			fmt.Println(p.Name)
			history := basket.SortHistory(p.History)
			if len(history) == 0 {
				fmt.Println("  (no recorded price changes)")
				return nil
			}
			for _, entry := range history {
				fmt.Printf("  %s  %s\n", entry.CreatedAt.Format("2006-01-02 15:04"),
					basket.Format(entry.Price, cfg.Currency))
			}
			return nil
		}
		return fmt.Errorf("product %d not found", id)
	},
}
