package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Timestamp wraps time.Time to accept the server's naive ISO 8601 timestamps
// (no timezone offset) alongside RFC 3339.
type Timestamp struct {
	time.Time
}

// timestampLayouts lists accepted formats, most specific first.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(time.RFC3339Nano) + `"`), nil
}

// Shop is a store a product can belong to.
type Shop struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// PriceHistoryEntry records one price point of a product.
type PriceHistoryEntry struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt Timestamp       `json:"created_at"`
}

// Product is a catalog entry. Weight, Calories, Quantity, and the shop
// reference are optional; the server omits or nulls them when unset.
type Product struct {
	ID        int64               `json:"id"`
	Name      string              `json:"name"`
	Price     decimal.Decimal     `json:"price"`
	Weight    *float64            `json:"weight,omitempty"`
	Calories  *float64            `json:"calories,omitempty"`
	Quantity  *int                `json:"quantity,omitempty"`
	ShopID    *int64              `json:"shop_id,omitempty"`
	Shop      *Shop               `json:"shop,omitempty"`
	UpdatedAt Timestamp           `json:"updated_at"`
	History   []PriceHistoryEntry `json:"history,omitempty"`
}

// ListItem is one line of a shopping list. Product is nil for dangling items
// whose referenced product has been deleted; the server still returns the row.
type ListItem struct {
	ID             int64    `json:"id"`
	ShoppingListID int64    `json:"shopping_list_id"`
	ProductID      int64    `json:"product_id"`
	Quantity       int      `json:"quantity"`
	IsBought       bool     `json:"is_bought"`
	Product        *Product `json:"product"`
}

// ShoppingList is a named list. Items is only populated by the detail
// endpoint; the overview endpoint returns lists without items.
type ShoppingList struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	CreatedAt Timestamp  `json:"created_at"`
	Items     []ListItem `json:"items,omitempty"`
}

// TelegramConfig holds the relay bot token.
type TelegramConfig struct {
	BotToken string `json:"bot_token"`
}

// TelegramUser is a relay recipient.
type TelegramUser struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	ChatID string `json:"chat_id"`
}

// CatalogRow is one row of the public catalog export.
type CatalogRow struct {
	Product   string          `json:"product"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
	Shop      *string         `json:"shop,omitempty"`
	UpdatedAt Timestamp       `json:"updated_at"`
}

// ProductInput is the payload for creating or updating a product.
type ProductInput struct {
	Name     string          `json:"name"`
	ShopID   *int64          `json:"shop_id"`
	Price    decimal.Decimal `json:"price"`
	Weight   *float64        `json:"weight"`
	Calories *float64        `json:"calories"`
	Quantity *int            `json:"quantity"`
}

// Validate rejects inputs the server would refuse anyway, before any request
// is made. Only non-negativity is checked; everything else is the server's
// call.
func (in ProductInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if in.Price.IsNegative() {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if in.Weight != nil && *in.Weight < 0 {
		return &ValidationError{Field: "weight", Reason: "must not be negative"}
	}
	if in.Calories != nil && *in.Calories < 0 {
		return &ValidationError{Field: "calories", Reason: "must not be negative"}
	}
	if in.Quantity != nil && *in.Quantity < 0 {
		return &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	return nil
}
