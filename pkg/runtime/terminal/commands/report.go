package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/de-tools/hiring-pulse/pkg/runtime/terminal/export"
	"github.com/de-tools/hiring-pulse/pkg/services/config"
	"github.com/de-tools/hiring-pulse/pkg/services/report"
	"github.com/spf13/cobra"
)

// ServiceProvider resolves the report service once flags are parsed
type ServiceProvider func() (report.Service, error)

type ReportCmd struct {
	source   string
	format   string
	output   string
	timeout  time.Duration
	provider ServiceProvider
}

func NewReportCmd(provider ServiceProvider) *cobra.Command {
	rc := &ReportCmd{provider: provider}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build the weekly job-postings summary",
		Args:  cobra.NoArgs,
		RunE:  rc.run,
	}

	cmd.Flags().StringVar(&rc.source, "source", config.DefaultSource, "Source profile to report on")
	cmd.Flags().StringVar(&rc.format, "format", export.FormatMarkdown, "Output format: markdown, json or xlsx")
	cmd.Flags().StringVarP(&rc.output, "output", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().DurationVar(&rc.timeout, "timeout", 60*time.Second, "Overall deadline for fetching and building")

	return cmd
}

func (rc *ReportCmd) run(cmd *cobra.Command, _ []string) error {
	var w io.Writer = cmd.OutOrStdout()
	if rc.output != "" {
		f, err := os.Create(rc.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	reporter, err := export.NewReporter(rc.format, w)
	if err != nil {
		return err
	}

	svc, err := rc.provider()
	if err != nil {
		return fmt.Errorf("failed to configure report: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), rc.timeout)
	defer cancel()

	src, err := svc.GetSource(ctx, rc.source)
	if err != nil {
		return err
	}
	summary, err := svc.Summarize(ctx, rc.source)
	if err != nil {
		return fmt.Errorf("failed to build summary: %w", err)
	}
	return reporter.Handle(src, summary)
}
