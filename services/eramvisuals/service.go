package eramvisuals

import (
	"context"

	"github.com/epic-app/epic/core"
	"github.com/epic-app/epic/core/report"
)

// Service renders report charts with the ERAM visuals script.
type Service struct {
	runner ChartRunner
}

var _ report.ChartService = (*Service)(nil)

func NewService(conf *core.Config, logger core.Logger) *Service {
	return &Service{runner: NewRunner(OptionsFromConfig(conf.Report), logger)}
}

func (svc *Service) Generate(ctx context.Context, csvFile, outputDir string) (report.Chart, error) {
	w := NewWrapper(svc.runner, outputDir)
	err := w.Execute(ctx, csvFile)
	out := w.Output()
	return report.Chart{PNG: out.PNG, PDF: out.PDF}, err
}
