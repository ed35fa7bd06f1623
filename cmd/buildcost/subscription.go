package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newSubscriptionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscription",
		Aliases: []string{"sub"},
		Short:   "Inspect the account subscription",
	}
	cmd.AddCommand(
		newSubscriptionPlansCmd(a),
		newSubscriptionCurrentCmd(a),
		newSubscriptionUsageCmd(a),
	)
	return cmd
}

func newSubscriptionPlansCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "List available subscription plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := a.subs.Plans(cmd.Context())
			if err != nil {
				return err
			}

			t := newTable("ID", "NAME", "PRICE", "ESTIMATES", "FEATURES")
			for _, p := range plans {
				t.Row(
					strconv.FormatInt(p.ID, 10),
					p.Name,
					formatMoney(p.Price),
					formatLimit(p.EstimatesLimit),
					strings.Join(p.Features, ", "),
				)
			}
			fmt.Fprintln(a.out, t)
			return nil
		},
	}
}

func newSubscriptionCurrentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the active subscription",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}

			sub, err := a.subs.Current(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, styleTitle.Render(sub.Plan.Name))
			printField(a.out, "Status", sub.Status)
			printField(a.out, "Price", formatMoney(sub.Plan.Price))
			printField(a.out, "Started", sub.StartedAt.Format("2006-01-02"))
			if !sub.ExpiresAt.IsZero() {
				printField(a.out, "Expires", sub.ExpiresAt.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func newSubscriptionUsageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Show quota consumption for the current period",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}

			usage, err := a.subs.Usage(cmd.Context())
			if err != nil {
				return err
			}

			printField(a.out, "Estimates used", usage.EstimatesUsed)
			printField(a.out, "Estimates limit", formatLimit(usage.EstimatesLimit))
			printField(a.out, "Period", fmt.Sprintf("%d days", usage.PeriodDays))
			return nil
		},
	}
}

func formatLimit(limit *int) string {
	if limit == nil {
		return "unlimited"
	}
	return strconv.Itoa(*limit)
}
