package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/epic-app/epic/core/survey"
)

type surveyApi struct {
	repo survey.Repository
}

func registerSurveyAPI(g *echo.Group, repo survey.Repository) {
	api := surveyApi{repo: repo}

	pg := g.Group("/programs")
	pg.GET("", api.queryPrograms)
	pg.GET("/:id/questions", api.queryQuestions)
}

func (api *surveyApi) queryPrograms(ctx echo.Context) error {
	progs, err := api.repo.QueryPrograms(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying programs")
	}
	if progs == nil {
		progs = []survey.ProgramDetail{}
	}
	return ctx.JSON(http.StatusOK, progs)
}

func (api *surveyApi) queryQuestions(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHttpNotFound
	}
	qs, err := api.repo.QueryProgramQuestions(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "querying questions")
	}
	if qs == nil {
		qs = []survey.Question{}
	}
	return ctx.JSON(http.StatusOK, qs)
}
