package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tair/stockwatch/internal/inventory/repository"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample items into an empty store",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			// seeding is done explicitly below so the result can be reported
			cfg.Storage.Seed = false

			store, err := openStorage(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := repository.SeedIfEmpty(ctx, store.Repo)
			if err != nil {
				return err
			}

			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("Store already has items, nothing seeded."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render(fmt.Sprintf("Seeded %d sample items.", n)))
			return nil
		},
	}
}
