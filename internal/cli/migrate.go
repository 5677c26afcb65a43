package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/table-reservations/internal/config"
	"github.com/BruksfildServices01/table-reservations/internal/db"
	"github.com/BruksfildServices01/table-reservations/internal/timezone"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create tables (postgres) or indexes (mongo) for the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			loc, err := timezone.Load(cfg.Timezone)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			_, closeFn, err := db.OpenStore(ctx, cfg, loc, true)
			if err != nil {
				return err
			}
			defer closeFn(ctx)

			fmt.Fprintf(cmd.OutOrStdout(), "migrated %s store\n", cfg.StoreDriver)
			return nil
		},
	}
}
