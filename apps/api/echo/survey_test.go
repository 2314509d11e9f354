package echoapi

import (
	"net/http"
	"testing"

	"github.com/epic-app/epic/core/survey"
	"github.com/epic-app/epic/tests"
)

func TestSurveyAPI(t *testing.T) {
	app := setup(t, fakeCharts{})

	detail := func(p survey.Program, group, area string) survey.ProgramDetail {
		return survey.ProgramDetail{Program: p, GroupName: group, AreaName: area}
	}
	qs := testutil.Questions

	runHTTPTests(t, app, []httpTest{
		{
			name:     "programs",
			method:   http.MethodGet,
			path:     "/v1/programs",
			wantCode: http.StatusOK,
			wantData: []survey.ProgramDetail{
				detail(testutil.Programs[0], "G1", "Governance"),
				detail(testutil.Programs[2], "G1", "Governance"),
				detail(testutil.Programs[1], "G2", "Health"),
			},
		},
		{
			name:     "questions",
			method:   http.MethodGet,
			path:     "/v1/programs/2/questions",
			wantCode: http.StatusOK,
			wantData: []survey.Question{qs[2], qs[4], qs[5]},
		},
		{
			name:     "no questions",
			method:   http.MethodGet,
			path:     "/v1/programs/3/questions",
			wantCode: http.StatusOK,
			wantData: []survey.Question{},
		},
		{name: "bad id", method: http.MethodGet, path: "/v1/programs/lol/questions", wantCode: http.StatusNotFound},
	})
}
