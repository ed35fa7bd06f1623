package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/buildcost/buildcost-go/integration/api/auth"
	"github.com/buildcost/buildcost-go/integration/api/estimates"
	"github.com/buildcost/buildcost-go/integration/api/subscriptions"
	"github.com/buildcost/buildcost-go/pkg/async"
)

func newDashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the account overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			ctx := cmd.Context()

			// The three widgets are independent; fetch them in parallel.
			dashF := async.Go(ctx, func(ctx context.Context) (auth.Dashboard, error) {
				return a.auth.Dashboard(ctx)
			})
			statsF := async.Go(ctx, func(ctx context.Context) (estimates.Statistics, error) {
				return a.estimates.Statistics(ctx)
			})
			usageF := async.Go(ctx, func(ctx context.Context) (subscriptions.Usage, error) {
				return a.subs.Usage(ctx)
			})

			dash, err := dashF.Await()
			if err != nil {
				return err
			}

			name := dash.User.Str("first_name")
			if name == "" {
				name = dash.User.Str("email")
			}
			fmt.Fprintln(a.out, styleTitle.Render("Welcome back, "+name))

			if stats, err := statsF.Await(); err == nil {
				printField(a.out, "Estimates", stats.TotalEstimates)
				printField(a.out, "Total value", formatMoney(stats.TotalValue))
				printField(a.out, "Average cost", formatMoney(stats.AverageCost))
			} else {
				fmt.Fprintln(a.out, styleMuted.Render("estimate statistics unavailable"))
			}

			if usage, err := usageF.Await(); err == nil {
				printField(a.out, "Quota", fmt.Sprintf("%d of %s used",
					usage.EstimatesUsed, formatLimit(usage.EstimatesLimit)))
			} else {
				fmt.Fprintln(a.out, styleMuted.Render("usage unavailable"))
			}
			return nil
		},
	}
}
