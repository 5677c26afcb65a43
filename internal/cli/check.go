package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/table-reservations/internal/config"
	"github.com/BruksfildServices01/table-reservations/internal/db"
	domain "github.com/BruksfildServices01/table-reservations/internal/domain/reservation"
	"github.com/BruksfildServices01/table-reservations/internal/httperr"
	"github.com/BruksfildServices01/table-reservations/internal/timezone"
	ucReservation "github.com/BruksfildServices01/table-reservations/internal/usecase/reservation"
)

func newCheckCmd() *cobra.Command {
	var date, clock string

	c := &cobra.Command{
		Use:   "check",
		Short: "Report the remaining capacity of one date and time",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			loc, err := timezone.Load(cfg.Timezone)
			if err != nil {
				return err
			}

			day, err := domain.ParseDate(date, loc)
			if err != nil {
				return err
			}
			if _, _, err := domain.ParseTimeOfDay(clock); err != nil {
				return err
			}

			ctx := cmd.Context()
			store, closeFn, err := db.OpenStore(ctx, cfg, loc, false)
			if err != nil {
				return err
			}
			defer closeFn(ctx)

			uc := ucReservation.NewCheckAvailability(store, ucReservation.Deps{Location: loc})
			a, err := uc.Execute(ctx, day, clock)
			if err != nil && !httperr.IsBusiness(err, domain.CodeSlotFull) {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s: available=%t current=%d max=%d remaining=%d\n",
				day.Format(domain.DateLayout), clock,
				a.Available, a.CurrentCount, a.MaxReservations, a.RemainingSlots)
			return nil
		},
	}

	c.Flags().StringVar(&date, "date", "", "reservation date (YYYY-MM-DD)")
	c.Flags().StringVar(&clock, "time", "", "reservation time, e.g. \"7:30 PM\"")
	_ = c.MarkFlagRequired("date")
	_ = c.MarkFlagRequired("time")
	return c
}
