package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sort"
	"strings"

	"gooze.dev/pkg/survivors/internal/adapter"
	m "gooze.dev/pkg/survivors/internal/model"
)

// ErrReportNotFound is returned when no candidate location holds a report.
var ErrReportNotFound = errors.New("no mutation report JSON found. Run Stryker with the JSON reporter enabled")

// Default report locations, relative to the working directory.
const (
	DefaultOutputRoot     m.Path = "StrykerOutput"
	DefaultRelativeReport m.Path = "coverage/stryker.json"
	DefaultReportPath     m.Path = "coverage/stryker.json"
	// DefaultFallbackReport currently matches DefaultReportPath. It is still
	// checked as its own step.
	DefaultFallbackReport m.Path = "coverage/stryker.json"
)

// LocatorConfig holds the candidate locations searched by a ReportLocator.
type LocatorConfig struct {
	// OutputRoot holds timestamp-named run directories.
	OutputRoot m.Path
	// RelativeReport is the report path inside each run directory.
	RelativeReport m.Path
	DefaultReport  m.Path
	FallbackReport m.Path
}

// DefaultLocatorConfig returns the locations Stryker writes to by default.
func DefaultLocatorConfig() LocatorConfig {
	return LocatorConfig{
		OutputRoot:     DefaultOutputRoot,
		RelativeReport: DefaultRelativeReport,
		DefaultReport:  DefaultReportPath,
		FallbackReport: DefaultFallbackReport,
	}
}

// ReportLocator finds the most relevant mutation report on disk.
type ReportLocator interface {
	Locate(ctx context.Context) (m.Path, error)
}

type reportLocator struct {
	fs  adapter.ReportFSAdapter
	cfg LocatorConfig
}

// NewReportLocator creates a ReportLocator searching the locations in cfg.
func NewReportLocator(fsAdapter adapter.ReportFSAdapter, cfg LocatorConfig) ReportLocator {
	return &reportLocator{fs: fsAdapter, cfg: cfg}
}

// Locate returns the first existing report: the newest run directory under
// the output root first, then the default path, then the fallback path.
func (l *reportLocator) Locate(ctx context.Context) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if report, ok := l.latestRunReport(ctx); ok {
		return report, nil
	}

	if l.cfg.DefaultReport != "" && l.isReport(ctx, l.cfg.DefaultReport) {
		slog.Info("Using default report", "path", l.cfg.DefaultReport)
		return l.cfg.DefaultReport, nil
	}

	if l.cfg.FallbackReport != "" && l.isReport(ctx, l.cfg.FallbackReport) {
		slog.Info("Using fallback report", "path", l.cfg.FallbackReport)
		return l.cfg.FallbackReport, nil
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	slog.Error("No mutation report found",
		"outputRoot", l.cfg.OutputRoot,
		"default", l.cfg.DefaultReport,
		"fallback", l.cfg.FallbackReport,
	)

	return "", fmt.Errorf("locate report: %w", ErrReportNotFound)
}

func (l *reportLocator) latestRunReport(ctx context.Context) (m.Path, bool) {
	if l.cfg.OutputRoot == "" {
		return "", false
	}

	entries, err := l.fs.ReadDir(ctx, l.cfg.OutputRoot)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Cannot list report output root", "path", l.cfg.OutputRoot, "error", err)
		}

		return "", false
	}

	names := runDirNames(entries)
	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	for _, name := range names {
		candidate := l.fs.JoinPath(ctx, string(l.cfg.OutputRoot), name, string(l.cfg.RelativeReport))
		if l.isReport(ctx, candidate) {
			slog.Info("Using report from latest run", "path", candidate, "run", name)
			return candidate, true
		}
	}

	return "", false
}

// runDirNames keeps entries that may be directories. Hidden entries are
// skipped.
func runDirNames(entries []os.DirEntry) []string {
	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		if !entry.IsDir() && entry.Type()&fs.ModeSymlink == 0 {
			continue
		}

		names = append(names, entry.Name())
	}

	return names
}

func (l *reportLocator) isReport(ctx context.Context, path m.Path) bool {
	info, err := l.fs.FileInfo(ctx, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("Report candidate missing", "path", path)
		} else {
			slog.Warn("Cannot stat report candidate", "path", path, "error", err)
		}

		return false
	}

	return !info.IsDir()
}
