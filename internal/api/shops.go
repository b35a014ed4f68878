package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Shops fetches all shops.
func (c *Client) Shops(ctx context.Context) ([]Shop, error) {
	var shops []Shop
	if err := c.get(ctx, "/shops", &shops); err != nil {
		return nil, fmt.Errorf("fetching shops: %w", err)
	}
	return shops, nil
}

// CreateShop creates a shop with the given name.
func (c *Client) CreateShop(ctx context.Context, name string) (*Shop, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	var shop Shop
	if err := c.post(ctx, "/shops", map[string]string{"name": name}, &shop); err != nil {
		return nil, fmt.Errorf("creating shop: %w", err)
	}
	return &shop, nil
}

// DeleteShop removes a shop. Products referencing it are detached
// server-side, not deleted.
func (c *Client) DeleteShop(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/shops/%d", id), nil, nil, nil); err != nil {
		return fmt.Errorf("deleting shop %d: %w", id, err)
	}
	return nil
}
