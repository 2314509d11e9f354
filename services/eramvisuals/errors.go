package eramvisuals

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrMissingInterpreter is returned when the main interpreter is not configured or does not exist.
	// The fallback interpreter is tried instead.
	ErrMissingInterpreter = errors.New("missing interpreter")
	// ErrScriptNotFound is returned, before any attempt, when the chart script is missing.
	ErrScriptNotFound = errors.New("chart script not found")
)

// ProcessError is returned when an interpreter process fails.
type ProcessError struct {
	Command  string
	ExitCode int // -1 when the process did not exit by itself
	Stderr   string
	TimedOut bool
	Timeout  time.Duration
	Err      error
}

func (e *ProcessError) Error() string {
	var msg string
	switch {
	case e.TimedOut:
		msg = fmt.Sprintf("execution timed out after %s", e.Timeout)
	case e.ExitCode >= 0:
		msg = fmt.Sprintf("execution failed with code %d", e.ExitCode)
	default:
		msg = fmt.Sprintf("execution failed: %v", e.Err)
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ". Error log: " + stderr
	}
	return msg
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}
