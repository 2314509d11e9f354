package summary

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/epic-app/epic/core/survey"
)

type fakeSource struct {
	users   map[int][]survey.User           // by organization
	answers map[int][]survey.EvolutionChoice // by user
	err     error
}

func (src fakeSource) QueryOrganizationUsers(ctx context.Context, organizationID int) ([]survey.User, error) {
	return src.users[organizationID], nil
}

func (src fakeSource) QueryEvolutionAnswers(ctx context.Context, userID, programID int) ([]survey.EvolutionChoice, error) {
	if src.err != nil {
		return nil, src.err
	}
	return src.answers[userID], nil
}

func TestEvolutionAverage(t *testing.T) {
	orgA := survey.Organization{ID: 1, Name: "A"}
	orgB := survey.Organization{ID: 2, Name: "B"}
	prog := survey.Program{ID: 1, Name: "P1"}

	tests := []struct {
		name    string
		src     fakeSource
		orgs    []survey.Organization
		want    float64
		wantErr bool
	}{
		{
			name: "no organization",
			src:  fakeSource{},
			want: NoData,
		},
		{
			name: "no answer",
			src: fakeSource{
				users: map[int][]survey.User{1: {{ID: 1}, {ID: 2}}},
			},
			orgs: []survey.Organization{orgA},
			want: NoData,
		},
		{
			name: "single user",
			src: fakeSource{
				users:   map[int][]survey.User{1: {{ID: 1}}},
				answers: map[int][]survey.EvolutionChoice{1: {survey.Engaged, survey.Capable}},
			},
			orgs: []survey.Organization{orgA},
			want: 2.5,
		},
		{
			name: "users without answers are left out",
			src: fakeSource{
				users:   map[int][]survey.User{1: {{ID: 1}, {ID: 2}}},
				answers: map[int][]survey.EvolutionChoice{1: {survey.Engaged, survey.Capable}},
			},
			orgs: []survey.Organization{orgA},
			want: 2.5,
		},
		{
			name: "organizations without answers are left out",
			src: fakeSource{
				users:   map[int][]survey.User{1: {{ID: 1}}, 2: {{ID: 2}}},
				answers: map[int][]survey.EvolutionChoice{1: {survey.Effective}},
			},
			orgs: []survey.Organization{orgA, orgB},
			want: 4,
		},
		{
			name: "unknown choices are ignored",
			src: fakeSource{
				users:   map[int][]survey.User{1: {{ID: 1}}},
				answers: map[int][]survey.EvolutionChoice{1: {"", "BOGUS", survey.Nascent}},
			},
			orgs: []survey.Organization{orgA},
			want: 1,
		},
		{
			name: "mean of means, rounded half away from zero",
			src: fakeSource{
				users: map[int][]survey.User{1: {{ID: 1}, {ID: 2}}, 2: {{ID: 3}}},
				answers: map[int][]survey.EvolutionChoice{
					1: {survey.Engaged, survey.Capable}, // 2.5
					2: {survey.Effective},               // 4
					3: {survey.Nascent},                 // 1
				},
			},
			orgs: []survey.Organization{orgA, orgB},
			want: 2.13, // mean(3.25, 1) = 2.125
		},
		{
			name: "source error",
			src: fakeSource{
				users: map[int][]survey.User{1: {{ID: 1}}},
				err:   errors.New("boom"),
			},
			orgs:    []survey.Organization{orgA},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvolutionAverage(context.Background(), tt.src, prog, tt.orgs)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			if assert.NoError(t, err) {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		v    float64
		want float64
	}{
		{v: 0, want: 0},
		{v: 2.125, want: 2.13},
		{v: 2.124, want: 2.12},
		{v: 3.3333333, want: 3.33},
		{v: 1.005, want: 1.0}, // 1.005 is 1.00499999... as a float64
		{v: 4, want: 4},
	}
	for _, tt := range tests {
		if got := Round(tt.v); got != tt.want {
			t.Errorf("Round(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
