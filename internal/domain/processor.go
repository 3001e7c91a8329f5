package domain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"gooze.dev/pkg/survivors/internal/adapter"
	m "gooze.dev/pkg/survivors/internal/model"
)

// PromptSeparator joins the prompts inside one output file.
const PromptSeparator = "\n---\n"

const promptFilePerm = 0o644

// ReportProcessor turns a mutation report into prompt files grouped by mutator.
type ReportProcessor interface {
	// Collect parses the report and groups prompts for survived mutants
	// without writing anything.
	Collect(ctx context.Context, reportPath m.Path, basePathPrefix string) (*m.PromptGroups, error)
	// Process collects prompts and writes one file per mutator into
	// outputDir. It returns the number of mutator groups written.
	Process(ctx context.Context, reportPath, outputDir m.Path, basePathPrefix string) (int, error)
}

type reportProcessor struct {
	fs    adapter.ReportFSAdapter
	store adapter.ReportStore
}

// NewReportProcessor creates a ReportProcessor.
func NewReportProcessor(fsAdapter adapter.ReportFSAdapter, store adapter.ReportStore) ReportProcessor {
	return &reportProcessor{fs: fsAdapter, store: store}
}

func (p *reportProcessor) Collect(ctx context.Context, reportPath m.Path, basePathPrefix string) (*m.PromptGroups, error) {
	report, err := p.store.LoadReport(ctx, reportPath)
	if err != nil {
		return nil, err
	}

	return GroupSurvivors(report, basePathPrefix), nil
}

func (p *reportProcessor) Process(ctx context.Context, reportPath, outputDir m.Path, basePathPrefix string) (int, error) {
	groups, err := p.Collect(ctx, reportPath, basePathPrefix)
	if err != nil {
		return 0, err
	}

	if err := p.fs.MkdirAll(ctx, outputDir); err != nil {
		slog.Error("Failed to create output directory", "path", outputDir, "error", err)
		return 0, fmt.Errorf("create output directory %s: %w", outputDir, err)
	}

	written := make(map[string]string, groups.Len())

	for _, group := range groups.Groups() {
		name := MutatorFileName(group.Mutator)
		if previous, ok := written[name]; ok {
			slog.Warn("Mutators share a prompt file, later group overwrites earlier",
				"file", name, "previous", previous, "mutator", group.Mutator)
		}

		target := p.fs.JoinPath(ctx, string(outputDir), name)
		content := strings.Join(group.Texts(), PromptSeparator)

		if err := p.fs.WriteFile(ctx, target, []byte(content), promptFilePerm); err != nil {
			slog.Error("Failed to write prompt file", "path", target, "error", err)
			return 0, fmt.Errorf("write prompts for %s: %w", group.Mutator, err)
		}

		written[name] = group.Mutator

		slog.Debug("Wrote prompt file", "path", target, "mutator", group.Mutator, "prompts", len(group.Prompts))
	}

	slog.Info("Generated prompts", "report", reportPath, "output", outputDir,
		"mutators", groups.Len(), "prompts", groups.Total())

	return groups.Len(), nil
}

// GroupSurvivors builds prompts for every survived mutant in report, in
// document order, grouped by mutator name.
func GroupSurvivors(report *m.Report, basePathPrefix string) *m.PromptGroups {
	groups := m.NewPromptGroups()
	if report == nil {
		return groups
	}

	for _, file := range report.Files {
		localPath := strings.TrimPrefix(file.Path, basePathPrefix)
		source := file.Entry.SourceText()

		for _, mutant := range file.Entry.Mutants {
			if !mutant.IsSurvived() {
				continue
			}

			line, _ := mutant.StartLine()
			mutator, _ := mutant.Mutator()
			original := ExtractSourceLine(source, line)

			groups.Add(NewPrompt(localPath, line, mutator, original, mutant.MutatedCode()))
		}
	}

	return groups
}

// StripPrefixForDir returns the prefix removed from report file paths when
// the working directory is dir.
func StripPrefixForDir(dir string, separator string) string {
	if dir == "" || strings.HasSuffix(dir, separator) {
		return dir
	}

	return dir + separator
}
