package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/akorchak/prodlist/cmd/prodlist/tui"
	"github.com/akorchak/prodlist/internal/api"
	"github.com/akorchak/prodlist/internal/config"
)

var version = "0.3.1"

var rootCmd = &cobra.Command{
	Use:   "prodlist",
	Short: "Terminal client for the household shopping catalog",
	Long:  "prodlist manages products, shops, and shopping lists against a self-hosted catalog server.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// TTY guard: fall back to the lists overview when stdin is not a
		// terminal (piping, CI, scripts, etc.)
		if !term.IsTerminal(os.Stdin.Fd()) {
			return listsCmd.RunE(cmd, args)
		}
		return runSession()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("prodlist %s\n", version)
	},
}

// runSession launches the interactive shopping session.
func runSession() error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}
	model := tui.NewModel(client, cfg.Currency)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// newClient loads the config and builds the API client.
func newClient() (*api.Client, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, err
	}
	return api.New(cfg.ServerURL), cfg, nil
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(listsCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(shopsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(telegramCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
