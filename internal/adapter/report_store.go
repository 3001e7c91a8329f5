package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	m "gooze.dev/pkg/survivors/internal/model"
)

// ReportStore loads mutation reports and validates them.
type ReportStore interface {
	LoadReport(ctx context.Context, path m.Path) (*m.Report, error)
}

// MalformedReportError reports a mutation report that exists but cannot be
// used: invalid JSON, no `files` object, or a mutant lacking required fields.
type MalformedReportError struct {
	Path   m.Path
	Reason string
	Err    error
}

func (e *MalformedReportError) Error() string {
	msg := fmt.Sprintf("malformed mutation report %s: %s", e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *MalformedReportError) Unwrap() error {
	return e.Err
}

type reportStore struct {
	fs ReportFSAdapter
}

// NewReportStore returns a ReportStore reading through fs.
func NewReportStore(fs ReportFSAdapter) ReportStore {
	return &reportStore{fs: fs}
}

// LoadReport reads the report at path and validates it.
func (s *reportStore) LoadReport(ctx context.Context, path m.Path) (*m.Report, error) {
	data, err := s.fs.ReadFile(ctx, path)
	if err != nil {
		slog.Error("Failed to read report", "path", path, "error", err)
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}

	report, err := ParseReport(path, data)
	if err != nil {
		slog.Error("Failed to parse report", "path", path, "error", err)
		return nil, err
	}

	slog.Debug("Loaded report", "path", path, "files", len(report.Files))

	return report, nil
}

// ParseReport decodes and validates report data. Every failure is a
// *MalformedReportError.
func ParseReport(path m.Path, data []byte) (*m.Report, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, &MalformedReportError{Path: path, Reason: "invalid JSON", Err: err}
	}

	rawFiles, ok := envelope["files"]
	if !ok {
		return nil, &MalformedReportError{Path: path, Reason: `missing "files" key`}
	}

	if isJSONNull(rawFiles) {
		return nil, &MalformedReportError{Path: path, Reason: `"files" is null`}
	}

	var files m.Files
	if err := json.Unmarshal(rawFiles, &files); err != nil {
		return nil, &MalformedReportError{Path: path, Reason: `invalid "files" object`, Err: err}
	}

	report := &m.Report{Files: files}
	if err := validateReport(report); err != nil {
		return nil, &MalformedReportError{Path: path, Reason: "invalid mutant", Err: err}
	}

	return report, nil
}

// validateReport checks the fields the processor treats as mandatory. Only
// survived mutants need a location and a mutator name.
func validateReport(report *m.Report) error {
	for _, file := range report.Files {
		for i, mutant := range file.Entry.Mutants {
			if mutant.Status == "" {
				return fmt.Errorf("%s: mutant %d has no status", file.Path, i)
			}

			if !mutant.IsSurvived() {
				continue
			}

			if _, ok := mutant.StartLine(); !ok {
				return fmt.Errorf("%s: mutant %d has no location.start.line", file.Path, i)
			}

			if _, ok := mutant.Mutator(); !ok {
				return fmt.Errorf("%s: mutant %d has no mutatorName", file.Path, i)
			}
		}
	}

	return nil
}

// isJSONNull reports whether raw is the literal null.
func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
