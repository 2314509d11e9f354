package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/epic-app/epic/core"
)

const (
	formatParam       = "format"
	orderingParam     = "ordering"
	organizationParam = "organization"
)

// SummaryQuery holds the query params of the summary listings:
// ?organization=1,2&organization=3&ordering=-average,program&format=csv
type SummaryQuery struct {
	Organizations []int             `query:"organization"`
	Orderings     []core.DBOrdering `query:"ordering"`
	Format        string            `query:"format" validate:"omitempty,outputformat"`
}

func (q *SummaryQuery) Bind(ctx echo.Context) error {
	data := ctx.QueryParams()
	if len(data) == 0 {
		return nil
	}

	ids, err := core.ParseIDs(organizationParam, data[organizationParam]...)
	if err != nil {
		return err
	}
	q.Organizations = ids

	if val := data[orderingParam]; len(val) > 0 {
		q.Orderings = core.ParseOrdering(val[0])
	}
	q.Format = core.CleanString(data.Get(formatParam), true)
	return nil
}

// GraphRequest is the body of the graph generation endpoint. No organization means all of them.
type GraphRequest struct {
	Organizations []int `json:"organization" validate:"max=1000,dive,min=1"`
}
