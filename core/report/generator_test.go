package report

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/epic-app/epic/core/summary"
	"github.com/epic-app/epic/tests"
)

type fakeCharts struct {
	err      error
	delay    time.Duration
	inFlight int32
	overlaps int32
}

func (f *fakeCharts) Generate(ctx context.Context, csvFile, outputDir string) (Chart, error) {
	if atomic.AddInt32(&f.inFlight, 1) > 1 {
		atomic.AddInt32(&f.overlaps, 1)
	}
	defer atomic.AddInt32(&f.inFlight, -1)
	time.Sleep(f.delay)

	chart := Chart{PNG: filepath.Join(outputDir, "eram_visuals.png"), PDF: filepath.Join(outputDir, "eram_visuals.pdf")}
	if f.err != nil {
		return chart, f.err
	}
	return chart, nil
}

var summaries = []summary.EvolutionSummary{
	{ID: 1, Area: "Governance", Group: "G1", Program: "Program 1", Average: 2.13},
}

func TestGenerator_Generate(t *testing.T) {
	tests := []struct {
		name      string
		charts    *fakeCharts
		wantValid bool
		wantError string
	}{
		{name: "valid", charts: &fakeCharts{}, wantValid: true},
		{name: "chart failure", charts: &fakeCharts{err: errors.New("exit status 1")}, wantError: "exit status 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			gen := NewGenerator(tt.charts, testutil.Logger{T: t})

			res, err := gen.Generate(context.Background(), summaries, dir)
			if !assert.NoError(t, err) {
				return
			}
			assert.Equal(t, tt.wantValid, res.Valid)
			assert.Equal(t, tt.wantError, res.Error)
			assert.Equal(t, filepath.Join(dir, CSVFileName), res.CSV)
			assert.Equal(t, filepath.Join(dir, "eram_visuals.png"), res.PNG)
			assert.FileExists(t, res.CSV)
		})
	}
}

func TestGenerator_Generate_exportFailure(t *testing.T) {
	// a file where the output directory should be
	dir := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(dir, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	gen := NewGenerator(&fakeCharts{}, testutil.Logger{T: t})
	_, err := gen.Generate(context.Background(), summaries, dir)
	assert.Error(t, err)
}

func TestGenerator_Generate_sameDirectoryIsSerialized(t *testing.T) {
	dir := t.TempDir()
	charts := &fakeCharts{delay: 20 * time.Millisecond}
	gen := NewGenerator(charts, testutil.Logger{T: t})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			target := dir
			if i%2 == 1 {
				target = dir + string(filepath.Separator) + "." // same directory, other spelling
			}
			_, _ = gen.Generate(context.Background(), summaries, target)
		}(i)
	}
	wg.Wait()
	assert.Zero(t, atomic.LoadInt32(&charts.overlaps))
}
