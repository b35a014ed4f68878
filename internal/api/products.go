package api

import (
	"context"
	"fmt"
	"net/http"
)

// Products fetches the full catalog, price history included.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.get(ctx, "/products", &products); err != nil {
		return nil, fmt.Errorf("fetching products: %w", err)
	}
	return products, nil
}

// CreateProduct validates the input locally and creates the product.
func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (*Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var product Product
	if err := c.post(ctx, "/products", in, &product); err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}
	return &product, nil
}

// UpdateProduct validates the input locally and replaces the product's
// fields. The server appends a price-history entry when the price changed.
func (c *Client) UpdateProduct(ctx context.Context, id int64, in ProductInput) (*Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var product Product
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), nil, in, &product); err != nil {
		return nil, fmt.Errorf("updating product %d: %w", id, err)
	}
	return &product, nil
}

// CatalogExport fetches the public catalog rows.
func (c *Client) CatalogExport(ctx context.Context) ([]CatalogRow, error) {
	var rows []CatalogRow
	if err := c.get(ctx, "/catalog", &rows); err != nil {
		return nil, fmt.Errorf("fetching catalog export: %w", err)
	}
	return rows, nil
}
