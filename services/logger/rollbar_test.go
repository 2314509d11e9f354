package logsvc

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/epic-app/epic/core"
	"github.com/epic-app/epic/core/survey"
)

func TestRollbarLogger_print(t *testing.T) {
	var buf bytes.Buffer
	l := NewRollbarLogger(log.New(&buf, "", 0), &core.Config{Debug: true, Env: "TEST"})

	l.Warn("chart script run failed", errors.New("exit status 1"), map[string]interface{}{"dir": "/tmp"}, survey.User{ID: 1, Username: "u1"})

	want := []string{
		"WARN chart script run failed",
		"exit status 1",
		"map[dir:/tmp]",
		"{ID:1 Username:u1 OrganizationID:0}",
	}
	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(got) != len(want) {
		t.Fatalf("Warn() printed %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRollbarLogger_prepare(t *testing.T) {
	l := NewRollbarLogger(log.New(&bytes.Buffer{}, "", 0), &core.Config{Debug: true})
	err := errors.New("boom")

	args := l.prepare("msg", []interface{}{err, survey.User{ID: 2}, survey.User{ID: 3}})
	if len(args) != 2 || args[0] != "msg" || args[1] != err {
		t.Errorf("prepare() = %v, want [msg boom]", args)
	}
}
