package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var telegramCmd = &cobra.Command{
	Use:   "telegram",
	Short: "Manage the telegram relay",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var telegramSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set the relay bot token",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		var token string
		if current, err := client.TelegramConfig(context.Background()); err == nil && current != nil {
			token = current.BotToken
		}

		err = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Bot token").
					Description("The server verifies the token before saving it.").
					Value(&token),
			),
		).Run()
		if err != nil {
			return err
		}

		if err := client.SaveTelegramToken(context.Background(), token); err != nil {
			return err
		}
		fmt.Println("✓ Token verified and saved.")
		return nil
	},
}

var telegramUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Show relay recipients",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		users, err := client.TelegramUsers(context.Background())
		if err != nil {
			return err
		}
		if len(users) == 0 {
			fmt.Println("No recipients yet. Run 'prodlist telegram users add <name> <chat-id>'.")
			return nil
		}
		for _, u := range users {
			fmt.Printf("%4d  %-20s %s\n", u.ID, u.Name, u.ChatID)
		}
		return nil
	},
}

var telegramUsersAddCmd = &cobra.Command{
	Use:   "add <name> <chat-id>",
	Short: "Register a relay recipient",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}
		user, err := client.AddTelegramUser(context.Background(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("✓ Added recipient %q\n", user.Name)
		return nil
	},
}

var telegramUsersRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a relay recipient",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user id %q", args[0])
		}
		client, _, err := newClient()
		if err != nil {
			return err
		}
		if err := client.DeleteTelegramUser(context.Background(), id); err != nil {
			return err
		}
		fmt.Printf("✓ Removed recipient %d\n", id)
		return nil
	},
}

func init() {
	telegramUsersCmd.AddCommand(telegramUsersAddCmd)
	telegramUsersCmd.AddCommand(telegramUsersRmCmd)
	telegramCmd.AddCommand(telegramSetupCmd)
	telegramCmd.AddCommand(telegramUsersCmd)
}
