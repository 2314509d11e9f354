package core

import (
	"path/filepath"
	"testing"
	"time"
)

func TestNewConfig_report(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("RSCRIPT", "/opt/R/bin/Rscript")
	t.Setenv("TEST_REPORT_TIMEOUT", "30s")

	conf := NewConfig()
	if conf.Env != "TEST" || !conf.TestMode {
		t.Errorf("NewConfig() env = %q, testMode = %v", conf.Env, conf.TestMode)
	}
	if conf.Report.RScript != "/opt/R/bin/Rscript" {
		t.Errorf("Report.RScript = %q, want the RSCRIPT variable", conf.Report.RScript)
	}
	if conf.Report.Timeout != 30*time.Second {
		t.Errorf("Report.Timeout = %v, want 30s", conf.Report.Timeout)
	}
	if conf.Report.FallbackInterpreter != "Rscript" {
		t.Errorf("Report.FallbackInterpreter = %q", conf.Report.FallbackInterpreter)
	}
	if want := filepath.Join(conf.WorkDir, "assets", "eram_visuals", "eram_visuals_script.R"); conf.Report.ScriptPath != want {
		t.Errorf("Report.ScriptPath = %q, want %q", conf.Report.ScriptPath, want)
	}
}

func TestNewConfig_noRSCRIPT(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("RSCRIPT", "")

	conf := NewConfig()
	if conf.Env != "DEV" {
		t.Errorf("NewConfig() env = %q, want DEV", conf.Env)
	}
	if conf.Report.RScript != "" {
		t.Errorf("Report.RScript = %q, want empty", conf.Report.RScript)
	}
	if conf.Report.Timeout != 5*time.Minute {
		t.Errorf("Report.Timeout = %v, want 5m", conf.Report.Timeout)
	}
}
