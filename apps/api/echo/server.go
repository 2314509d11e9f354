package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/epic-app/epic/core"
	"github.com/epic-app/epic/core/report"
	"github.com/epic-app/epic/core/summary"
	"github.com/epic-app/epic/core/survey"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool
		Debug          bool
		TestMode       bool
		AppName        string
		OutputDir      string // summary report directory
	}

	Deps struct {
		Logger     core.Logger
		Validate   *validator.Validate
		Translator ut.Translator
		SurveyRepo survey.Repository
		SummarySvc *summary.Service
		Reports    *report.Generator
	}

	Server struct {
		opts     *Options
		app      *echo.Echo
		errors   chan error
		shutdown chan os.Signal
	}
)

// NewServer builds the API server from the application config.
func NewServer(conf *core.Config, logger core.Logger, validate *validator.Validate, translator ut.Translator,
	repo survey.Repository, summarySvc *summary.Service, reports *report.Generator) *Server {
	return New(
		&Options{
			Address:   conf.Server.Address,
			Debug:     conf.Debug,
			TestMode:  conf.TestMode,
			AppName:   conf.AppName,
			OutputDir: conf.Report.OutputDir,
		},
		&Deps{
			Logger:     logger,
			Validate:   validate,
			Translator: translator,
			SurveyRepo: repo,
			SummarySvc: summarySvc,
			Reports:    reports,
		},
	)
}

func New(opts *Options, deps *Deps) *Server {
	s := &Server{
		opts:     opts,
		app:      echo.New(),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup(deps)
	return s
}

func (s *Server) setup(deps *Deps) {
	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(s.opts.Debug || s.opts.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(deps.Logger, deps.Translator, s.signalShutdown)
	s.app.Debug = s.opts.Debug

	s.app.GET("/", s.home)

	v1 := s.app.Group("/v1")
	registerSurveyAPI(v1, deps.SurveyRepo)
	registerSummaryAPI(v1, deps, s.opts.OutputDir)
}

// Start listens until the server fails or is shut down. Failures are sent to Errors.
func (s *Server) Start() {
	if err := s.app.Start(s.opts.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *Server) Errors() <-chan error {
	return s.errors
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *Server) signalShutdown() {
	s.shutdown <- syscall.SIGTERM
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *Server) home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to "+s.opts.AppName+" API!")
}
