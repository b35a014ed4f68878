package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/akorchak/prodlist/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure the server connection",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		err = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Server URL").
					Value(&cfg.ServerURL),
				huh.NewInput().
					Title("Currency").
					Value(&cfg.Currency),
			),
		).Run()
		if err != nil {
			return err
		}

		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", config.Path())
		return nil
	},
}
