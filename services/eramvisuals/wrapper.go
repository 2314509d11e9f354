package eramvisuals

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type StatusType int

const (
	Ready StatusType = iota
	Initialized
	Succeeded
	Failed
)

func (t StatusType) String() string {
	switch t {
	case Ready:
		return "ready"
	case Initialized:
		return "initialized"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Status of a Wrapper. Info holds the error message when Failed.
type Status struct {
	Type StatusType
	Info string
}

func (s Status) String() string {
	if s.Info == "" {
		return s.Type.String()
	}
	return s.Type.String() + ": " + s.Info
}

// OutputBaseName is the base name of the chart files, without extension.
const OutputBaseName = "eram_visuals"

// backupSuffix is appended to a chart file while a run is in flight.
const backupSuffix = ".old"

// Output is the pair of chart files of an output directory.
type Output struct {
	PNG string
	PDF string
}

func NewOutput(dir string) Output {
	base := filepath.Join(dir, OutputBaseName)
	return Output{PNG: base + ".png", PDF: base + ".pdf"}
}

func (o Output) files() []string {
	return []string{o.PNG, o.PDF}
}

// ChartRunner renders the chart of csvFile into outputDir.
type ChartRunner interface {
	Run(ctx context.Context, csvFile, outputDir string) error
}

// Wrapper runs a ChartRunner so that the chart files of its output directory are either
// both replaced by the new ones, or both left as they were before the run.
type Wrapper struct {
	runner    ChartRunner
	outputDir string
	output    Output
	status    Status
}

func NewWrapper(runner ChartRunner, outputDir string) *Wrapper {
	return &Wrapper{runner: runner, outputDir: outputDir, output: NewOutput(outputDir)}
}

func (w *Wrapper) Status() Status {
	return w.status
}

func (w *Wrapper) Output() Output {
	return w.output
}

// Initialize creates the output directory and moves the current chart files to their backups,
// discarding stale backups. If a move fails, the files already moved are put back.
func (w *Wrapper) Initialize() error {
	w.status = Status{Type: Initialized}
	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	var moved []string
	for _, file := range w.output.files() {
		backup := file + backupSuffix
		if err := removeIfExists(backup); err != nil {
			restore(moved)
			return errors.Wrap(err, "removing stale backup")
		}
		if !isFile(file) {
			continue
		}
		if err := os.Rename(file, backup); err != nil {
			restore(moved)
			return errors.Wrap(err, "backing up chart")
		}
		moved = append(moved, file)
	}
	return nil
}

// restore puts back the backups of files, ignoring errors.
func restore(files []string) {
	for _, file := range files {
		_ = os.Rename(file+backupSuffix, file)
	}
}

// Finalize commits the run when runErr is nil (backups are removed), and rolls it back otherwise:
// new chart files are removed and the backups are put back.
func (w *Wrapper) Finalize(runErr error) error {
	if runErr == nil {
		w.status = Status{Type: Succeeded}
	} else {
		w.status = Status{Type: Failed, Info: runErr.Error()}
	}

	var firstErr error
	for _, file := range w.output.files() {
		if err := finalizeFile(file, runErr != nil); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func finalizeFile(file string, rollback bool) error {
	backup := file + backupSuffix
	if !rollback {
		return errors.Wrap(removeIfExists(backup), "removing backup")
	}
	if err := removeIfExists(file); err != nil {
		return errors.Wrap(err, "removing new chart")
	}
	if !isFile(backup) {
		return nil
	}
	return errors.Wrap(os.Rename(backup, file), "restoring backup")
}

// Execute runs the ChartRunner between Initialize and Finalize. A run that does not produce
// both chart files fails. The returned error is the one the status reports, if any.
func (w *Wrapper) Execute(ctx context.Context, csvFile string) error {
	w.status = Status{Type: Ready}
	if err := w.Initialize(); err != nil {
		// nothing to roll back: Initialize restored what it moved
		w.status = Status{Type: Failed, Info: err.Error()}
		return err
	}
	err := w.runner.Run(ctx, csvFile, w.outputDir)
	if err == nil {
		for _, file := range w.output.files() {
			if !isFile(file) {
				err = errors.Errorf("chart script did not produce %s", filepath.Base(file))
				break
			}
		}
	}
	if ferr := w.Finalize(err); ferr != nil {
		if err == nil {
			// backups could not be removed: the new charts are in place
			return errors.Wrap(ferr, "finalizing chart")
		}
		return errors.Wrapf(err, "rollback failed (%v)", ferr)
	}
	return err
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
