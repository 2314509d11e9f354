package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/epic-app/epic/core"
)

// Logger logs through the test's log.
type Logger struct {
	T testing.TB
}

var _ core.Logger = Logger{}

func (l Logger) Debug(msg string, args ...interface{}) { l.T.Log(append([]interface{}{"DEBUG", msg}, args...)...) }
func (l Logger) Info(msg string, args ...interface{})  { l.T.Log(append([]interface{}{"INFO", msg}, args...)...) }
func (l Logger) Warn(msg string, args ...interface{})  { l.T.Log(append([]interface{}{"WARN", msg}, args...)...) }
func (l Logger) Error(msg string, args ...interface{}) { l.T.Log(append([]interface{}{"ERROR", msg}, args...)...) }
func (l Logger) Fatal(msg string, args ...interface{}) {
	l.T.Fatal(append([]interface{}{"FATAL", msg}, args...)...)
}

// WriteScript writes an executable shell script named name in dir and returns its path.
func WriteScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("WriteScript() failed: %v", err)
	}
	return path
}
