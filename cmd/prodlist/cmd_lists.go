package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/akorchak/prodlist/internal/basket"
)

var listsCmd = &cobra.Command{
	Use:   "lists",
	Short: "Show all shopping lists",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		lists, err := client.Lists(context.Background())
		if err != nil {
			return err
		}
		if len(lists) == 0 {
			fmt.Println("No lists yet. Run 'prodlist lists create <name>' to create one.")
			return nil
		}
		for _, l := range lists {
			fmt.Printf("%4d  %-30s %s\n", l.ID, l.Name, l.CreatedAt.Format("2006-01-02"))
		}
		return nil
	},
}

var listsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a shopping list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		list, err := client.CreateList(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("✓ Created list %q (id %d)\n", list.Name, list.ID)
		return nil
	},
}

var listsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a shopping list",
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
		if err := client.DeleteList(context.Background(), id); err != nil {
			return err
		}
		fmt.Printf("✓ Deleted list %d\n", id)
		return nil
	},
}

var listsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a list's items and total",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid list id %q", args[0])
		}
		client, cfg, err := newClient()
		if err != nil {
			return err
		}
		list, err := client.List(context.Background(), id)
		if err != nil {
			return err
		}

		fmt.Println(list.Name)
		if len(list.Items) == 0 {
			fmt.Println("  (list is empty)")
		}
		for _, item := range list.Items {
			check := " "
			if item.IsBought {
				check = "x"
			}
			if item.Product == nil {
				fmt.Printf("  [%s] (product removed)\n", check)
				continue
			}
			fmt.Printf("  [%s] %-28s ×%-3d %s\n", check, item.Product.Name, item.Quantity,
				basket.Format(basket.Subtotal(item), cfg.Currency))
		}
		fmt.Printf("Total: %s\n", basket.Format(basket.Total(list.Items), cfg.Currency))
		return nil
	},
}

func init() {
	listsCmd.AddCommand(listsCreateCmd)
	listsCmd.AddCommand(listsRmCmd)
	listsCmd.AddCommand(listsShowCmd)
}
