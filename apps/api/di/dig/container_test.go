package dig_container

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	echoapi "github.com/epic-app/epic/apps/api/echo"
	"github.com/epic-app/epic/core"
	"github.com/epic-app/epic/core/report"
)

func TestNew(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("TEST_DATABASE_ENGINE", "sqlite3")
	t.Setenv("TEST_DATABASE_NAME", filepath.Join(t.TempDir(), "epic.db"))
	t.Setenv("TEST_DEBUG", "false")

	c := New()
	err := c.Invoke(func(conf *core.Config, db *sqlx.DB, charts report.ChartService, server *echoapi.Server) {
		defer db.Close()

		if conf.Database.Engine != "sqlite3" || !conf.TestMode {
			t.Errorf("config = %+v", conf.Database)
		}
		if charts == nil {
			t.Error("no chart service")
		}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("GET / = %d, want %d", rec.Code, http.StatusOK)
		}
	})
	if err != nil {
		t.Fatalf("Invoke() failed: %v", err)
	}
}
