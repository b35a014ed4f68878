package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// TelegramConfig fetches the relay bot configuration. Returns nil when the
// relay has not been configured yet (the server responds with a null body).
func (c *Client) TelegramConfig(ctx context.Context) (*TelegramConfig, error) {
	var cfg *TelegramConfig
	if err := c.get(ctx, "/telegram/config", &cfg); err != nil {
		return nil, fmt.Errorf("fetching telegram config: %w", err)
	}
	return cfg, nil
}

// SaveTelegramToken stores the relay bot token. The server verifies the token
// against the Telegram API before accepting it.
func (c *Client) SaveTelegramToken(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return &ValidationError{Field: "bot_token", Reason: "must not be empty"}
	}
	if err := c.post(ctx, "/telegram/config", TelegramConfig{BotToken: token}, nil); err != nil {
		return fmt.Errorf("saving telegram token: %w", err)
	}
	return nil
}

// TelegramUsers fetches all relay recipients.
func (c *Client) TelegramUsers(ctx context.Context) ([]TelegramUser, error) {
	var users []TelegramUser
	if err := c.get(ctx, "/telegram/users", &users); err != nil {
		return nil, fmt.Errorf("fetching telegram users: %w", err)
	}
	return users, nil
}

// AddTelegramUser registers a relay recipient.
func (c *Client) AddTelegramUser(ctx context.Context, name, chatID string) (*TelegramUser, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(chatID) == "" {
		return nil, &ValidationError{Field: "user", Reason: "name and chat id must not be empty"}
	}
	var user TelegramUser
	if err := c.post(ctx, "/telegram/users", TelegramUser{Name: name, ChatID: chatID}, &user); err != nil {
		return nil, fmt.Errorf("adding telegram user: %w", err)
	}
	return &user, nil
}

// DeleteTelegramUser removes a relay recipient.
func (c *Client) DeleteTelegramUser(ctx context.Context, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/telegram/users/%d", id), nil, nil, nil); err != nil {
		return fmt.Errorf("deleting telegram user %d: %w", id, err)
	}
	return nil
}

// SendList asks the server to forward a list to all relay recipients.
func (c *Client) SendList(ctx context.Context, listID int64) error {
	if err := c.post(ctx, fmt.Sprintf("/telegram/send/%d", listID), nil, nil); err != nil {
		return fmt.Errorf("sending list %d: %w", listID, err)
	}
	return nil
}
