package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/akorchak/prodlist/internal/api"
	"github.com/akorchak/prodlist/internal/basket"
	"github.com/akorchak/prodlist/internal/catalog"
)

var productsCmd = &cobra.Command{
	Use:   "products [query]",
	Short: "Show the catalog, cheapest first, optionally filtered",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClient()
		if err != nil {
			return err
		}
		products, err := client.Products(context.Background())
		if err != nil {
			return err
		}

		query := ""
		if len(args) == 1 {
			query = args[0]
		}
		filtered := catalog.FilterAndSort(products, query)
		if len(filtered) == 0 {
			fmt.Println("No products match.")
			return nil
		}
		for _, p := range filtered {
			shop := ""
			if p.Shop != nil {
				shop = p.Shop.Name
			}
			fmt.Printf("%4d  %-30s %-16s %s\n", p.ID, p.Name, shop,
				basket.Format(p.Price, cfg.Currency))
		}
		return nil
	},
}

var productsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a product",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		shops, err := client.Shops(context.Background())
		if err != nil {
			return err
		}

		in, err := promptProduct(api.ProductInput{}, shops)
		if err != nil {
			return err
		}
		product, err := client.CreateProduct(context.Background(), in)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Created product %q (id %d)\n", product.Name, product.ID)
		return nil
	},
}

var productsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q", args[0])
		}
		client, _, err := newClient()
		if err != nil {
			return err
		}
		products, err := client.Products(context.Background())
		if err != nil {
			return err
		}
		var current *api.Product
		for i := range products {
			if products[i].ID == id {
				current = &products[i]
				break
			}
		}
		if current == nil {
			return fmt.Errorf("product %d not found", id)
		}
		shops, err := client.Shops(context.Background())
		if err != nil {
			return err
		}

		in, err := promptProduct(api.ProductInput{
			Name:     current.Name,
			ShopID:   current.ShopID,
			Price:    current.Price,
			Weight:   current.Weight,
			Calories: current.Calories,
			Quantity: current.Quantity,
		}, shops)
		if err != nil {
			return err
		}
		product, err := client.UpdateProduct(context.Background(), id, in)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Updated product %q\n", product.Name)
		return nil
	},
}

// promptProduct collects product fields interactively. Numeric fields are
// validated here so bad input never produces a request.
func promptProduct(initial api.ProductInput, shops []api.Shop) (api.ProductInput, error) {
	name := initial.Name
	price := ""
	if !initial.Price.IsZero() || initial.Name != "" {
		price = initial.Price.String()
	}
	weight := formatOptFloat(initial.Weight)
	calories := formatOptFloat(initial.Calories)
	quantity := ""
	if initial.Quantity != nil {
		quantity = strconv.Itoa(*initial.Quantity)
	}
	shopID := ""
	if initial.ShopID != nil {
		shopID = strconv.FormatInt(*initial.ShopID, 10)
	}

	shopOptions := []huh.Option[string]{huh.NewOption("— no shop —", "")}
	for _, s := range shops {
		shopOptions = append(shopOptions, huh.NewOption(s.Name, strconv.FormatInt(s.ID, 10)))
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&name),
			huh.NewInput().Title("Price").Value(&price).
				Validate(validateNonNegative),
			huh.NewSelect[string]().Title("Shop").Options(shopOptions...).Value(&shopID),
			huh.NewInput().Title("Weight, g (optional)").Value(&weight).
				Validate(validateOptionalNonNegative),
			huh.NewInput().Title("Calories (optional)").Value(&calories).
				Validate(validateOptionalNonNegative),
			huh.NewInput().Title("Units per pack (optional)").Value(&quantity).
				Validate(validateOptionalNonNegative),
		),
	).Run()
	if err != nil {
		return api.ProductInput{}, err
	}

	parsedPrice, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return api.ProductInput{}, &api.ValidationError{Field: "price", Reason: "must be a number"}
	}

	in := api.ProductInput{
		Name:     strings.TrimSpace(name),
		Price:    parsedPrice,
		Weight:   parseOptFloat(weight),
		Calories: parseOptFloat(calories),
		Quantity: parseOptInt(quantity),
	}
	if shopID != "" {
		id, err := strconv.ParseInt(shopID, 10, 64)
		if err == nil {
			in.ShopID = &id
		}
	}
	return in, in.Validate()
}

func validateNonNegative(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if v < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func validateOptionalNonNegative(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validateNonNegative(s)
}

func formatOptFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func parseOptFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseOptInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func init() {
	productsCmd.AddCommand(productsAddCmd)
	productsCmd.AddCommand(productsEditCmd)
}
