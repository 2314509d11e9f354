package eramvisuals

import (
	"context"
	"os"
	"time"

	"github.com/epic-app/epic/core"
)

// Options configure a Runner. Zero values fall back to the defaults.
type Options struct {
	ScriptPath          string
	Interpreter         string // main interpreter path (RSCRIPT)
	FallbackInterpreter string
	Timeout             time.Duration
}

func OptionsFromConfig(conf core.ReportConfig) Options {
	return Options{
		ScriptPath:          conf.ScriptPath,
		Interpreter:         conf.RScript,
		FallbackInterpreter: conf.FallbackInterpreter,
		Timeout:             conf.Timeout,
	}
}

// Runner runs the chart script over a CSV file, writing the chart into an output directory.
type Runner struct {
	opts   Options
	logger core.Logger
}

func NewRunner(opts Options, logger core.Logger) *Runner {
	if opts.FallbackInterpreter == "" {
		opts.FallbackInterpreter = DefaultFallbackInterpreter
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Runner{opts: opts, logger: logger}
}

// Run logs into LogFileName in outputDir, replacing the log of the previous run.
func (r *Runner) Run(ctx context.Context, csvFile, outputDir string) error {
	rl, err := openRunLog(outputDir)
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	if _, err = os.Stat(csvFile); err != nil {
		rl.Printf("missing csv input: %v", err)
	}

	runner := TryHardRunner{Timeout: r.opts.Timeout, Log: rl.Logger}
	err = runner.Run(ctx, ScriptArguments{
		MainInterpreter:     r.opts.Interpreter,
		FallbackInterpreter: r.opts.FallbackInterpreter,
		Script:              r.opts.ScriptPath,
		CSVFile:             csvFile,
		OutputDir:           outputDir,
	})
	if err != nil {
		r.logger.Warn("chart script run failed", err, map[string]interface{}{"run": rl.ID, "dir": outputDir})
		return err
	}
	r.logger.Info("chart script run succeeded", map[string]interface{}{"run": rl.ID, "dir": outputDir})
	return nil
}
