package eramvisuals

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/epic-app/epic/tests"
)

// markInterpreter is a fake interpreter body appending its name to the "calls" file of the output dir ($3).
func markInterpreter(name string) string {
	return `echo ` + name + ` >> "$3/calls"`
}

// chartInterpreter is a fake interpreter body writing both chart files into the output dir ($3).
const chartInterpreter = `printf 'png %s' "$$" > "$3/eram_visuals.png"
printf 'pdf %s' "$$" > "$3/eram_visuals.pdf"`

func readCalls(t *testing.T, dir string) []string {
	data, err := os.ReadFile(filepath.Join(dir, "calls"))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatal(err)
	}
	return strings.Fields(string(data))
}

// fallbackOnPath puts an executable named Rscript, with the given body, first on PATH.
func fallbackOnPath(t *testing.T, body string) {
	binDir := t.TempDir()
	testutil.WriteScript(t, binDir, "Rscript", body)
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestTryHardRunner_Run(t *testing.T) {
	bin := t.TempDir()
	script := filepath.Join(bin, "eram_visuals_script.R")
	if err := os.WriteFile(script, []byte("# radial plot\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	okMain := testutil.WriteScript(t, bin, "main-ok", markInterpreter("main"))
	failMain := testutil.WriteScript(t, bin, "main-fail", markInterpreter("main")+"\necho 'main broke' >&2\nexit 3")
	okFallback := testutil.WriteScript(t, bin, "fallback-ok", markInterpreter("fallback"))
	failFallback := testutil.WriteScript(t, bin, "fallback-fail", markInterpreter("fallback")+"\necho 'fallback broke' >&2\nexit 2")

	tests := []struct {
		name      string
		args      ScriptArguments
		wantCalls []string
		wantErr   error
		wantCode  int
		wantInErr string
	}{
		{
			name:      "main succeeds",
			args:      ScriptArguments{MainInterpreter: okMain, FallbackInterpreter: okFallback, Script: script},
			wantCalls: []string{"main"},
		},
		{
			name:      "no main interpreter",
			args:      ScriptArguments{FallbackInterpreter: okFallback, Script: script},
			wantCalls: []string{"fallback"},
		},
		{
			name:      "main interpreter does not exist",
			args:      ScriptArguments{MainInterpreter: filepath.Join(bin, "nope"), FallbackInterpreter: okFallback, Script: script},
			wantCalls: []string{"fallback"},
		},
		{
			name:      "main fails",
			args:      ScriptArguments{MainInterpreter: failMain, FallbackInterpreter: okFallback, Script: script},
			wantCalls: []string{"main", "fallback"},
		},
		{
			name:      "both fail",
			args:      ScriptArguments{MainInterpreter: failMain, FallbackInterpreter: failFallback, Script: script},
			wantCalls: []string{"main", "fallback"},
			wantCode:  2,
			wantInErr: "fallback broke",
		},
		{
			name:      "script not found",
			args:      ScriptArguments{MainInterpreter: okMain, FallbackInterpreter: okFallback, Script: filepath.Join(bin, "missing.R")},
			wantErr:   ErrScriptNotFound,
			wantCalls: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := t.TempDir()
			tt.args.CSVFile = filepath.Join(out, "evolution_summary.csv")
			tt.args.OutputDir = out

			err := TryHardRunner{Timeout: 10 * time.Second}.Run(context.Background(), tt.args)
			assert.Equal(t, tt.wantCalls, readCalls(t, out))

			switch {
			case tt.wantErr != nil:
				assert.Equal(t, tt.wantErr, errors.Cause(err))
			case tt.wantCode != 0:
				var perr *ProcessError
				if assert.True(t, errors.As(err, &perr), "want a *ProcessError, got %v", err) {
					assert.Equal(t, tt.wantCode, perr.ExitCode)
					assert.Contains(t, perr.Stderr, tt.wantInErr)
					assert.Contains(t, perr.Error(), tt.wantInErr)
				}
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestTryHardRunner_Run_fallbackThroughPath(t *testing.T) {
	bin := t.TempDir()
	script := filepath.Join(bin, "eram_visuals_script.R")
	if err := os.WriteFile(script, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	fallbackOnPath(t, markInterpreter("Rscript"))

	out := t.TempDir()
	err := TryHardRunner{}.Run(context.Background(), ScriptArguments{
		FallbackInterpreter: DefaultFallbackInterpreter,
		Script:              script,
		CSVFile:             filepath.Join(out, "evolution_summary.csv"),
		OutputDir:           out,
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"Rscript"}, readCalls(t, out))
}

func TestTryHardRunner_Run_timeout(t *testing.T) {
	bin := t.TempDir()
	script := filepath.Join(bin, "eram_visuals_script.R")
	if err := os.WriteFile(script, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	slow := testutil.WriteScript(t, bin, "slow", "sleep 30")

	out := t.TempDir()
	started := time.Now()
	err := TryHardRunner{Timeout: 200 * time.Millisecond}.Run(context.Background(), ScriptArguments{
		MainInterpreter:     slow,
		FallbackInterpreter: slow,
		Script:              script,
		OutputDir:           out,
	})

	var perr *ProcessError
	if assert.True(t, errors.As(err, &perr), "want a *ProcessError, got %v", err) {
		assert.True(t, perr.TimedOut)
		assert.Contains(t, perr.Error(), "timed out")
	}
	assert.Less(t, int64(time.Since(started)), int64(20*time.Second))
}
