package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Lists fetches all shopping lists without their items.
func (c *Client) Lists(ctx context.Context) ([]ShoppingList, error) {
	var lists []ShoppingList
	if err := c.get(ctx, "/lists", &lists); err != nil {
		return nil, fmt.Errorf("fetching lists: %w", err)
	}
	return lists, nil
}

// List fetches one list with its items. Items whose product was deleted come
// back with a nil Product.
func (c *Client) List(ctx context.Context, id int64) (*ShoppingList, error) {
	var list ShoppingList
	if err := c.get(ctx, fmt.Sprintf("/lists/%d", id), &list); err != nil {
		return nil, fmt.Errorf("fetching list %d: %w", id, err)
	}
	return &list, nil
}

// CreateList creates an empty named list.
func (c *Client) CreateList(ctx context.Context, name string) (*ShoppingList, error) {
	var list ShoppingList
	body := map[string]string{"name": name}
	if err := c.post(ctx, "/lists", body, &list); err != nil {
		return nil, fmt.Errorf("creating list: %w", err)
	}
	return &list, nil
}

// DeleteList removes a list and all its items.
func (c *Client) DeleteList(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/lists/%d", id), nil, nil, nil); err != nil {
		return fmt.Errorf("deleting list %d: %w", id, err)
	}
	return nil
}

// AddItem adds a product to a list. The server folds a duplicate
// (list, product) pair by incrementing the existing item's quantity.
func (c *Client) AddItem(ctx context.Context, listID, productID int64, quantity int) (*ListItem, error) {
	body := map[string]any{
		"shopping_list_id": listID,
		"product_id":       productID,
		"quantity":         quantity,
	}
	var item ListItem
	if err := c.post(ctx, "/lists/items", body, &item); err != nil {
		return nil, fmt.Errorf("adding item to list %d: %w", listID, err)
	}
	return &item, nil
}

// ToggleItem sets an item's bought flag.
func (c *Client) ToggleItem(ctx context.Context, itemID int64, bought bool) error {
	query := url.Values{"is_bought": {strconv.FormatBool(bought)}}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/lists/items/%d", itemID), query, nil, nil); err != nil {
		return fmt.Errorf("toggling item %d: %w", itemID, err)
	}
	return nil
}

// DeleteItem removes one item from its list.
func (c *Client) DeleteItem(ctx context.Context, itemID int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/lists/items/%d", itemID), nil, nil, nil); err != nil {
		return fmt.Errorf("deleting item %d: %w", itemID, err)
	}
	return nil
}
