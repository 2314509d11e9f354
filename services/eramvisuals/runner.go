// Package eramvisuals renders the evolution summary radial chart by running the ERAM visuals R script.
package eramvisuals

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"os/exec"
	"time"

	"github.com/pkg/errors"
)

const (
	DefaultFallbackInterpreter = "Rscript"
	DefaultTimeout             = 5 * time.Minute

	// processWaitDelay bounds the wait for the process output once it was killed.
	processWaitDelay = 2 * time.Second
)

// TryHardRunner runs the main call of a ScriptArguments, and its fallback call if the main one fails.
type TryHardRunner struct {
	Timeout time.Duration // per attempt
	Log     *log.Logger
}

func (r TryHardRunner) logger() *log.Logger {
	if r.Log == nil {
		return log.New(io.Discard, "", 0)
	}
	return r.Log
}

func (r TryHardRunner) timeout() time.Duration {
	if r.Timeout <= 0 {
		return DefaultTimeout
	}
	return r.Timeout
}

// Run fails with ErrScriptNotFound if the script is missing,
// otherwise with the error of the fallback call when both calls fail.
func (r TryHardRunner) Run(ctx context.Context, args ScriptArguments) error {
	if info, err := os.Stat(args.Script); err != nil || info.IsDir() {
		return errors.Wrap(ErrScriptNotFound, args.Script)
	}

	err := r.runMain(ctx, args)
	if err == nil {
		return nil
	}
	r.logger().Printf("fallback run triggered due to: %v", err)
	if err = r.runCall(ctx, args.FallbackCall()); err != nil {
		r.logger().Printf("fallback run failed: %v", err)
		return err
	}
	return nil
}

func (r TryHardRunner) runMain(ctx context.Context, args ScriptArguments) error {
	if args.MainInterpreter == "" {
		return errors.Wrap(ErrMissingInterpreter, "no main interpreter configured")
	}
	if info, err := os.Stat(args.MainInterpreter); err != nil || info.IsDir() {
		return errors.Wrapf(ErrMissingInterpreter, "no interpreter found at %s", args.MainInterpreter)
	}
	return r.runCall(ctx, args.MainCall())
}

func (r TryHardRunner) runCall(ctx context.Context, call []string) error {
	logger := r.logger()
	timeout := r.timeout()
	cmdLine := CommandLine(call)
	logger.Printf("running command: %s", cmdLine)

	execCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	sh, flag := shell()
	cmd := exec.CommandContext(execCtx, sh, flag, cmdLine)
	cmd.WaitDelay = processWaitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	started := time.Now()
	err := cmd.Run()
	if stdout.Len() > 0 {
		logger.Printf("output: %s", stdout.String())
	}
	if err == nil {
		logger.Printf("command succeeded in %s", time.Since(started).Round(time.Millisecond))
		return nil
	}

	perr := &ProcessError{Command: cmdLine, ExitCode: -1, Stderr: stderr.String(), Timeout: timeout, Err: err}
	var exitErr *exec.ExitError
	switch {
	case errors.Is(execCtx.Err(), context.DeadlineExceeded):
		perr.TimedOut = true
	case errors.As(err, &exitErr):
		perr.ExitCode = exitErr.ExitCode()
	}
	logger.Printf("command failed: %v", perr)
	return perr
}
