package echoapi

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/epic-app/epic/core"
	"github.com/epic-app/epic/core/report"
	"github.com/epic-app/epic/core/summary"
)

type summaryApi struct {
	svc       *summary.Service
	reports   *report.Generator
	validate  *validator.Validate
	outputDir string
}

func registerSummaryAPI(g *echo.Group, deps *Deps, outputDir string) {
	api := summaryApi{
		svc:       deps.SummarySvc,
		reports:   deps.Reports,
		validate:  deps.Validate,
		outputDir: outputDir,
	}

	sg := g.Group("/summary")
	sg.GET("/evolution", api.evolution)
	sg.POST("/evolution/graph", api.evolutionGraph)
	sg.GET("/organizations/:id/evolution", api.organizationEvolution)
	sg.GET("/linkages", api.linkages)
}

// Handlers

func (api *summaryApi) evolution(ctx echo.Context) error {
	var q SummaryQuery
	if err := q.Bind(ctx); err != nil {
		return err
	}
	if err := api.validate.Struct(q); err != nil {
		return err
	}
	summaries, err := api.svc.EvolutionSummary(ctx.Request().Context(), q.Organizations...)
	if err != nil {
		return errors.Wrap(err, "computing evolution summary")
	}
	if err = summary.SortEvolution(summaries, q.Orderings); err != nil {
		return err
	}
	if q.Format == "csv" {
		// rows are regrouped by area label, as in the exported file
		csv := report.FormatCSV(report.RowsFromSummaries(summaries))
		return ctx.Blob(http.StatusOK, "text/csv; charset=UTF-8", []byte(csv))
	}
	return ctx.JSON(http.StatusOK, summaries)
}

func (api *summaryApi) organizationEvolution(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	evo, err := api.svc.OrganizationEvolution(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "computing organization evolution")
	}
	return ctx.JSON(http.StatusOK, evo)
}

func (api *summaryApi) linkages(ctx echo.Context) error {
	var q SummaryQuery
	if err := q.Bind(ctx); err != nil {
		return err
	}
	links, err := api.svc.LinkagesSummary(ctx.Request().Context(), q.Organizations...)
	if err != nil {
		return errors.Wrap(err, "computing linkages summary")
	}
	return ctx.JSON(http.StatusOK, links)
}

// evolutionGraph renders the evolution summary chart. It answers 422 with the Result when the chart could not be rendered.
func (api *summaryApi) evolutionGraph(ctx echo.Context) error {
	var data GraphRequest
	if ctx.Request().ContentLength != 0 {
		if err := ctx.Bind(&data); err != nil {
			return core.NewValidationError(errors.Wrap(err, "binding to GraphRequest"))
		}
	}
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	reqCtx := ctx.Request().Context()
	summaries, err := api.svc.EvolutionSummary(reqCtx, data.Organizations...)
	if err != nil {
		return errors.Wrap(err, "computing evolution summary")
	}
	res, err := api.reports.Generate(reqCtx, summaries, api.outputDir)
	if err != nil {
		return errors.Wrap(err, "generating report")
	}
	if !res.Valid {
		return ctx.JSON(http.StatusUnprocessableEntity, res)
	}
	return ctx.JSON(http.StatusOK, res)
}
