package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/buildcost/buildcost-go/integration/api/projects"
)

func newCatalogCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse project types, locations and price data",
	}
	cmd.AddCommand(
		newCatalogTypesCmd(a),
		newCatalogLocationsCmd(a),
		newCatalogBreakdownCmd(a),
	)
	return cmd
}

func newCatalogTypesCmd(a *app) *cobra.Command {
	var query projects.CatalogQuery

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List project types with base costs",
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := a.projects.Types(cmd.Context(), query)
			if err != nil {
				return err
			}

			t := newTable("ID", "NAME", "CATEGORY", "BASE COST / SQM")
			for _, pt := range types {
				t.Row(
					strconv.FormatInt(pt.ID, 10),
					pt.Name,
					pt.Category,
					formatMoney(pt.BaseCostPerSqm),
				)
			}
			fmt.Fprintln(a.out, t)
			return nil
		},
	}

	cmd.Flags().StringVar(&query.Search, "search", "", "filter by name")
	cmd.Flags().StringVar(&query.Category, "category", "", "filter by category")
	return cmd
}

func newCatalogLocationsCmd(a *app) *cobra.Command {
	var query projects.CatalogQuery

	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List locations with cost multipliers",
		RunE: func(cmd *cobra.Command, args []string) error {
			locations, err := a.projects.Locations(cmd.Context(), query)
			if err != nil {
				return err
			}

			t := newTable("ID", "NAME", "REGION", "MULTIPLIER")
			for _, l := range locations {
				t.Row(
					strconv.FormatInt(l.ID, 10),
					l.Name,
					l.Region,
					fmt.Sprintf("%.2f", l.CostMultiplier),
				)
			}
			fmt.Fprintln(a.out, t)
			return nil
		},
	}

	cmd.Flags().StringVar(&query.Search, "search", "", "filter by name")
	return cmd
}

func newCatalogBreakdownCmd(a *app) *cobra.Command {
	var projectType, location int64

	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Show the cost breakdown for a type and location",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.projects.Breakdown(cmd.Context(), projectType, location)
			if err != nil {
				return err
			}

			categories := make([]string, 0, len(b.Categories))
			for name := range b.Categories {
				categories = append(categories, name)
			}
			sort.Strings(categories)

			t := newTable("CATEGORY", "SHARE")
			for _, name := range categories {
				t.Row(name, fmt.Sprintf("%.0f%%", b.Categories[name]))
			}
			fmt.Fprintln(a.out, t)
			return nil
		},
	}

	cmd.Flags().Int64Var(&projectType, "type", 0, "project type ID")
	cmd.Flags().Int64Var(&location, "location", 0, "location ID")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("location")
	return cmd
}
