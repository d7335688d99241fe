// Package output writes generated icons into a project and keeps the
// directory's barrel file in sync.
//
// Every mutation goes through a [Writer]. In dry-run mode writes, barrel
// updates and removals are logged as "[dry-run] ..." lines instead of being
// performed; directories are still created so later existence checks see
// the same tree. Barrel updates are serialized, so concurrent workers may
// share one Writer.
package output

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/relaxicons/relaxicons/pkg/errors"
)

// Options configures a Writer.
type Options struct {
	DryRun bool
	Root   string // paths in log lines are shown relative to Root
	Logger *log.Logger
}

// Writer performs filesystem changes for the pipeline.
type Writer struct {
	dryRun bool
	root   string
	logger *log.Logger

	barrelMu sync.Mutex
}

// NewWriter creates a Writer.
func NewWriter(opts Options) *Writer {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Writer{dryRun: opts.DryRun, root: opts.Root, logger: logger}
}

// DryRun reports whether mutations are only logged.
func (w *Writer) DryRun() bool {
	return w.dryRun
}

// EnsureDir creates dir and its parents. It runs in dry-run mode too.
func (w *Writer) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", w.rel(dir))
	}
	return nil
}

// Exists reports whether path exists.
func (w *Writer) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// WriteFile writes content to path. An existing file fails with
// DESTINATION_EXISTS unless overwrite is set.
func (w *Writer) WriteFile(path, content string, overwrite bool) error {
	if !overwrite && w.Exists(path) {
		return errors.New(errors.ErrCodeDestinationExists,
			"%s already exists. Use --force to overwrite.", filepath.Base(path))
	}
	if w.dryRun {
		w.logger.Infof("[dry-run] write %s", w.rel(path))
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", w.rel(path))
	}
	w.logger.Debug("wrote file", "path", w.rel(path), "bytes", len(content))
	return nil
}

// Remove deletes path. A missing file is logged and reported as false.
func (w *Writer) Remove(path string) (bool, error) {
	if !w.Exists(path) {
		w.logger.Warnf("%s not found; skipping", w.rel(path))
		return false, nil
	}
	if w.dryRun {
		w.logger.Infof("[dry-run] remove %s", w.rel(path))
		return true, nil
	}
	if err := os.Remove(path); err != nil {
		return false, errors.Wrap(errors.ErrCodeInternal, err, "remove %s", w.rel(path))
	}
	return true, nil
}

// UpdateBarrel merges line into the barrel at path and rewrites it when the
// content changed.
func (w *Writer) UpdateBarrel(path, line string) (bool, error) {
	return w.editBarrel(path, "append export to", func(lines []string) []string {
		return MergeSortedExports(lines, line)
	})
}

// PruneBarrel removes the export lines for component from the barrel at
// path. A missing barrel is not an error.
func (w *Writer) PruneBarrel(path, component string) (bool, error) {
	if !w.Exists(path) {
		return false, nil
	}
	return w.editBarrel(path, "remove export from", func(lines []string) []string {
		return MergeSortedExports(RemoveExports(lines, component), "")
	})
}

func (w *Writer) editBarrel(path, action string, edit func([]string) []string) (bool, error) {
	w.barrelMu.Lock()
	defer w.barrelMu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return false, errors.Wrap(errors.ErrCodeInternal, err, "read %s", w.rel(path))
	}

	before := string(data)
	after := joinLines(edit(splitLines(before)))
	if after == before {
		return false, nil
	}
	if w.dryRun {
		w.logger.Infof("[dry-run] %s %s", action, w.rel(path))
		return true, nil
	}
	if err := os.WriteFile(path, []byte(after), 0644); err != nil {
		return false, errors.Wrap(errors.ErrCodeInternal, err, "write %s", w.rel(path))
	}
	return true, nil
}

func (w *Writer) rel(path string) string {
	if w.root == "" {
		return path
	}
	if r, err := filepath.Rel(w.root, path); err == nil {
		return r
	}
	return path
}
