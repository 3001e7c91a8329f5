// Package domain holds the report-to-prompt workflow.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"gooze.dev/pkg/survivors/internal/adapter"
	"gooze.dev/pkg/survivors/internal/controller"
	m "gooze.dev/pkg/survivors/internal/model"
)

// GenerateArgs contains the arguments for writing prompt files.
type GenerateArgs struct {
	// Report is an explicit report path. When empty the report is located
	// using Locate.
	Report      m.Path
	Locate      LocatorConfig
	Output      m.Path
	StripPrefix string
}

// ListArgs contains the arguments for previewing survivors.
type ListArgs struct {
	Report      m.Path
	Locate      LocatorConfig
	StripPrefix string
	Format      controller.ListFormat
}

// Workflow runs the commands exposed by the CLI.
type Workflow interface {
	Generate(ctx context.Context, args GenerateArgs) error
	List(ctx context.Context, args ListArgs) error
}

type workflow struct {
	fs adapter.ReportFSAdapter
	ReportProcessor
	controller.UI
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(fsAdapter adapter.ReportFSAdapter, processor ReportProcessor, ui controller.UI) Workflow {
	return &workflow{
		fs:              fsAdapter,
		ReportProcessor: processor,
		UI:              ui,
	}
}

// Generate locates the report, writes the prompt files and prints a summary.
func (w *workflow) Generate(ctx context.Context, args GenerateArgs) error {
	reportPath, err := w.resolveReport(ctx, args.Report, args.Locate)
	if err != nil {
		return err
	}

	groups, err := w.Process(ctx, reportPath, args.Output, args.StripPrefix)
	if err != nil {
		return fmt.Errorf("process %s: %w", reportPath, err)
	}

	if err := w.DisplaySummary(ctx, groups, args.Output); err != nil {
		slog.Error("Failed to display summary", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// List shows the survived mutants grouped by mutator without writing files.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	reportPath, err := w.resolveReport(ctx, args.Report, args.Locate)
	if err != nil {
		return err
	}

	groups, err := w.Collect(ctx, reportPath, args.StripPrefix)
	if err != nil {
		return fmt.Errorf("process %s: %w", reportPath, err)
	}

	if err := w.DisplaySurvivors(ctx, groups, args.Format); err != nil {
		slog.Error("Failed to display survivors", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func (w *workflow) resolveReport(ctx context.Context, explicit m.Path, cfg LocatorConfig) (m.Path, error) {
	if explicit != "" {
		slog.Info("Using report from flag", "path", explicit)
		return explicit, nil
	}

	return NewReportLocator(w.fs, cfg).Locate(ctx)
}
