// Package adapter contains the file system and report parsing adapters used by
// the domain layer.
package adapter

import (
	"context"
	"os"
	"path/filepath"

	m "gooze.dev/pkg/survivors/internal/model"
)

// ReportFSAdapter abstracts the file system operations needed to find a
// report, read it and write prompt files. It hides direct `os` access so the
// domain logic can be tested without touching the disk.
type ReportFSAdapter interface {
	// FileInfo returns metadata for a path so the domain can check existence
	// or distinguish between files and directories.
	FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error)

	// ReadDir lists the immediate entries of a directory.
	ReadDir(ctx context.Context, path m.Path) ([]os.DirEntry, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(ctx context.Context, path m.Path) error

	// WriteFile writes content to a file with the given permissions,
	// replacing any previous content.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// JoinPath joins path elements into a single path.
	JoinPath(ctx context.Context, elem ...string) m.Path
}

// LocalReportFSAdapter is the os-backed ReportFSAdapter.
type LocalReportFSAdapter struct{}

// NewLocalReportFSAdapter constructs a LocalReportFSAdapter.
func NewLocalReportFSAdapter() *LocalReportFSAdapter {
	return &LocalReportFSAdapter{}
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalReportFSAdapter) FileInfo(ctx context.Context, path m.Path) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Stat(string(path))
}

// ReadDir returns the directory entries sorted by file name.
func (a *LocalReportFSAdapter) ReadDir(ctx context.Context, path m.Path) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.ReadDir(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalReportFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - the report path is chosen by the operator
	return os.ReadFile(string(path))
}

// MkdirAll creates path with all parents.
func (a *LocalReportFSAdapter) MkdirAll(ctx context.Context, path m.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.MkdirAll(string(path), 0o750)
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalReportFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}

// JoinPath joins path elements into a single path.
func (a *LocalReportFSAdapter) JoinPath(_ context.Context, elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
