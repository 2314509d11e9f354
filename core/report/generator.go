package report

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/epic-app/epic/core"
	"github.com/epic-app/epic/core/summary"
)

type (
	// Chart holds the paths of a rendered chart.
	Chart struct {
		PNG string `json:"png"`
		PDF string `json:"pdf"`
	}

	// ChartService renders the chart of an exported CSV into outputDir.
	ChartService interface {
		Generate(ctx context.Context, csvFile, outputDir string) (Chart, error)
	}

	// Result describes a generated report. When the chart could not be rendered,
	// Valid is false, Error holds the reason and the previous chart files (if any) are left in place.
	Result struct {
		CSV   string `json:"csv"`
		PNG   string `json:"png"`
		PDF   string `json:"pdf"`
		Valid bool   `json:"valid"`
		Error string `json:"error,omitempty"`
	}

	// Generator produces reports. Generations targeting the same directory run one at a time.
	Generator struct {
		charts ChartService
		logger core.Logger

		mu    sync.Mutex
		locks map[string]*sync.Mutex
	}
)

func NewGenerator(charts ChartService, logger core.Logger) *Generator {
	return &Generator{
		charts: charts,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

func (g *Generator) lock(dir string) (func(), error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(err, "resolving output directory")
	}
	g.mu.Lock()
	l, ok := g.locks[abs]
	if !ok {
		l = new(sync.Mutex)
		g.locks[abs] = l
	}
	g.mu.Unlock()

	l.Lock()
	return l.Unlock, nil
}

// Generate exports the summaries as CSV into outputDir, then renders the chart.
// The returned error is only about the CSV export: chart failures are reported through Result.
func (g *Generator) Generate(ctx context.Context, summaries []summary.EvolutionSummary, outputDir string) (Result, error) {
	unlock, err := g.lock(outputDir)
	if err != nil {
		return Result{}, err
	}
	defer unlock()

	csvFile, err := ExportCSV(RowsFromSummaries(summaries), outputDir)
	if err != nil {
		return Result{}, errors.Wrap(err, "exporting summary")
	}

	res := Result{CSV: csvFile}
	chart, err := g.charts.Generate(ctx, csvFile, outputDir)
	res.PNG, res.PDF = chart.PNG, chart.PDF
	if err != nil {
		g.logger.Error("chart generation failed", err, map[string]interface{}{"dir": outputDir})
		res.Error = err.Error()
		return res, nil
	}
	res.Valid = true
	return res, nil
}
