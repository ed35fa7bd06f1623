package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/buildcost/buildcost-go/integration/api/estimates"
)

func newEstimateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "estimate",
		Aliases: []string{"est"},
		Short:   "Manage cost estimates",
	}
	cmd.AddCommand(
		newEstimateListCmd(a),
		newEstimateGetCmd(a),
		newEstimateCreateCmd(a),
		newEstimateCalculateCmd(a),
		newEstimateUploadCmd(a),
		newEstimateDeleteCmd(a),
		newEstimateDuplicateCmd(a),
		newEstimateShareCmd(a),
	)
	return cmd
}

func newEstimateListCmd(a *app) *cobra.Command {
	var opts estimates.ListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List estimates",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}

			page, err := a.estimates.List(cmd.Context(), opts)
			if err != nil {
				return err
			}

			t := newTable("ID", "PROJECT", "TYPE", "STATUS", "TOTAL")
			for _, e := range page.Results {
				t.Row(
					strconv.FormatInt(e.ID, 10),
					e.ProjectName,
					e.ProjectTypeName,
					e.Status,
					formatMoney(e.TotalEstimatedCost),
				)
			}
			fmt.Fprintln(a.out, t)
			fmt.Fprintln(a.out, styleMuted.Render(fmt.Sprintf("%d estimate(s) total", page.Count)))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Status, "status", "", "filter by status")
	cmd.Flags().StringVar(&opts.Search, "search", "", "filter by project name")
	cmd.Flags().IntVar(&opts.Page, "page", 0, "result page")
	return cmd
}

func newEstimateGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one estimate with its line items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			e, err := a.estimates.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			printEstimate(a, e)
			return nil
		},
	}
}

func newEstimateCreateCmd(a *app) *cobra.Command {
	var req estimates.CreateRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an estimate from manual inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}

			e, err := a.estimates.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, styleSuccess.Render("✓"), "Estimate created")
			printEstimate(a, e)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.ProjectName, "name", "", "project name")
	cmd.Flags().StringVar(&req.ProjectDescription, "description", "", "project description")
	cmd.Flags().Int64Var(&req.ProjectType, "type", 0, "project type ID")
	cmd.Flags().Int64Var(&req.Location, "location", 0, "location ID")
	cmd.Flags().Float64Var(&req.TotalArea, "area", 0, "total area in square meters")
	cmd.Flags().Float64Var(&req.ContingencyPercentage, "contingency", 0, "contingency percentage")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("location")
	cmd.MarkFlagRequired("area")
	return cmd
}

func newEstimateCalculateCmd(a *app) *cobra.Command {
	var req estimates.CalculationRequest

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Price a project without saving it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}

			calc, err := a.estimates.Calculate(cmd.Context(), req)
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, styleTitle.Render(fmt.Sprintf("%s · %s", calc.ProjectType.Name, calc.Location.Name)))
			printField(a.out, "Area", fmt.Sprintf("%.1f sqm", calc.Calculations.TotalArea))
			printField(a.out, "Cost per sqm", formatMoney(calc.Calculations.AdjustedCostPerSqm))
			printField(a.out, "Base cost", formatMoney(calc.Calculations.BaseTotalCost))
			printField(a.out, "Contingency", formatMoney(calc.Calculations.ContingencyAmount))
			printField(a.out, "Total", formatMoney(calc.Calculations.FinalTotalCost))

			t := newTable("CATEGORY", "AMOUNT")
			t.Row("Materials", formatMoney(calc.Breakdown.Materials))
			t.Row("Labor", formatMoney(calc.Breakdown.Labor))
			t.Row("Equipment", formatMoney(calc.Breakdown.Equipment))
			t.Row("Contingency", formatMoney(calc.Breakdown.Contingency))
			if calc.Breakdown.CustomItems > 0 {
				t.Row("Custom items", formatMoney(calc.Breakdown.CustomItems))
			}
			fmt.Fprintln(a.out, t)
			return nil
		},
	}

	cmd.Flags().Int64Var(&req.ProjectTypeID, "type", 0, "project type ID")
	cmd.Flags().Int64Var(&req.LocationID, "location", 0, "location ID")
	cmd.Flags().Float64Var(&req.TotalArea, "area", 0, "total area in square meters")
	cmd.Flags().Float64Var(&req.ContingencyPercentage, "contingency", 0, "contingency percentage")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("location")
	cmd.MarkFlagRequired("area")
	return cmd
}

func newEstimateUploadCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "upload FILE",
		Short: "Create an estimate from an uploaded document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			e, err := a.estimates.Upload(cmd.Context(), filepath.Base(args[0]), f)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, styleSuccess.Render("✓"), "Document uploaded")
			printEstimate(a, e)
			return nil
		},
	}
}

func newEstimateDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an estimate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := a.estimates.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(a.out, styleSuccess.Render("✓"), "Estimate deleted")
			return nil
		},
	}
}

func newEstimateDuplicateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate ID",
		Short: "Copy an estimate into a new draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			e, err := a.estimates.Duplicate(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, styleSuccess.Render("✓"), fmt.Sprintf("Duplicated as estimate %d", e.ID))
			return nil
		},
	}
}

func newEstimateShareCmd(a *app) *cobra.Command {
	var req estimates.ShareRequest

	cmd := &cobra.Command{
		Use:   "share ID",
		Short: "Share an estimate by email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			link, err := a.estimates.Share(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, styleSuccess.Render("✓"), "Estimate shared")
			printField(a.out, "URL", link.ShareURL)
			printField(a.out, "Expires", link.ExpiresAt.Format("2006-01-02"))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Email, "email", "", "recipient email")
	cmd.Flags().StringVar(&req.Name, "name", "", "recipient name")
	cmd.Flags().IntVar(&req.ExpiresDays, "expires-days", 0, "days the link stays valid")
	cmd.MarkFlagRequired("email")
	return cmd
}

func printEstimate(a *app, e estimates.Estimate) {
	fmt.Fprintln(a.out, styleTitle.Render(fmt.Sprintf("#%d %s", e.ID, e.ProjectName)))
	printField(a.out, "Type", e.ProjectTypeName)
	printField(a.out, "Location", e.LocationName)
	printField(a.out, "Status", e.Status)
	printField(a.out, "Area", fmt.Sprintf("%.1f sqm", e.TotalArea))
	printField(a.out, "Cost per sqm", formatMoney(e.AdjustedCostPerSqm))
	printField(a.out, "Contingency", formatMoney(e.ContingencyAmount))
	printField(a.out, "Total", formatMoney(e.TotalEstimatedCost))

	if len(e.Items) > 0 {
		t := newTable("CATEGORY", "ITEM", "QTY", "UNIT PRICE", "TOTAL")
		for _, it := range e.Items {
			t.Row(it.Category, it.Name,
				fmt.Sprintf("%.1f %s", it.Quantity, it.Unit),
				formatMoney(it.UnitPrice), formatMoney(it.TotalPrice))
		}
		fmt.Fprintln(a.out, t)
	}
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleMuted).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleKey.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...)
}

func formatMoney(v float64) string {
	return fmt.Sprintf("Ksh%.2f", v)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID %q", s)
	}
	return id, nil
}
