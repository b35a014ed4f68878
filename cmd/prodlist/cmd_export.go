package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akorchak/prodlist/internal/basket"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the public catalog export",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		rows, err := client.CatalogExport(context.Background())
		if err != nil {
			return err
		}
		for _, row := range rows {
			shop := ""
			if row.Shop != nil {
				shop = *row.Shop
			}
			fmt.Printf("%-30s %-16s %-12s %s\n", row.Product, shop,
				basket.Format(row.Price, row.Currency),
				row.UpdatedAt.Format("2006-01-02"))
		}
		return nil
	},
}
