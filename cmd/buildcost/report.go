package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/buildcost/buildcost-go/integration/api/reports"
)

func newReportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate and download estimate reports",
	}
	cmd.AddCommand(
		newReportListCmd(a),
		newReportGenerateCmd(a),
		newReportDownloadCmd(a),
		newReportTemplatesCmd(a),
	)
	return cmd
}

func newReportListCmd(a *app) *cobra.Command {
	var page int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List generated reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}

			result, err := a.reports.List(cmd.Context(), page)
			if err != nil {
				return err
			}

			t := newTable("ID", "TITLE", "TEMPLATE", "FORMAT", "STATUS", "CREATED")
			for _, r := range result.Results {
				t.Row(
					strconv.FormatInt(r.ID, 10),
					r.Title,
					r.Template,
					r.Format,
					r.Status,
					r.CreatedAt.Format("2006-01-02 15:04"),
				)
			}
			fmt.Fprintln(a.out, t)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "result page")
	return cmd
}

func newReportGenerateCmd(a *app) *cobra.Command {
	var req reports.GenerateRequest

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render a report for an estimate",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}

			r, err := a.reports.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, styleSuccess.Render("✓"), fmt.Sprintf("Report %d generated (%s)", r.ID, r.Status))
			return nil
		},
	}

	cmd.Flags().Int64Var(&req.EstimateID, "estimate", 0, "estimate ID")
	cmd.Flags().StringVar(&req.Template, "template", "", "report template")
	cmd.Flags().StringVar(&req.Format, "format", "", "output format (pdf, xlsx)")
	cmd.MarkFlagRequired("estimate")
	return cmd
}

func newReportDownloadCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "download ID",
		Short: "Download a rendered report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			raw, err := a.reports.Download(cmd.Context(), id)
			if err != nil {
				return err
			}

			if output == "" {
				output = fmt.Sprintf("report-%d.pdf", id)
			}
			if err := os.WriteFile(output, raw, 0o644); err != nil {
				return err
			}
			fmt.Fprintln(a.out, styleSuccess.Render("✓"), fmt.Sprintf("Saved %s (%d bytes)", output, len(raw)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "destination file")
	return cmd
}

func newReportTemplatesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available report templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}

			templates, err := a.reports.Templates(cmd.Context())
			if err != nil {
				return err
			}

			t := newTable("ID", "NAME", "DESCRIPTION")
			for _, tpl := range templates {
				t.Row(strconv.FormatInt(tpl.ID, 10), tpl.Name, tpl.Description)
			}
			fmt.Fprintln(a.out, t)
			return nil
		},
	}
}
