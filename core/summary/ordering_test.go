package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/epic-app/epic/core"
)

func TestSortEvolution(t *testing.T) {
	p1 := EvolutionSummary{ID: 1, Area: "Governance", Group: "G1", Program: "Program 1", Average: 2.13}
	p2 := EvolutionSummary{ID: 2, Area: "Health", Group: "G2", Program: "Program 2", Average: 3}
	p3 := EvolutionSummary{ID: 3, Area: "Governance", Group: "G1", Program: "Program 3", Average: NoData}

	tests := []struct {
		name     string
		ordering string
		want     []EvolutionSummary
		wantErr  bool
	}{
		{name: "none", want: []EvolutionSummary{p1, p3, p2}},
		{name: "average", ordering: "average", want: []EvolutionSummary{p3, p1, p2}},
		{name: "average desc", ordering: "-average", want: []EvolutionSummary{p2, p1, p3}},
		{name: "area desc then id desc", ordering: "-area, -id", want: []EvolutionSummary{p2, p3, p1}},
		{name: "stable", ordering: "group", want: []EvolutionSummary{p1, p3, p2}},
		{name: "unknown field", ordering: "lol", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summaries := []EvolutionSummary{p1, p3, p2}
			err := SortEvolution(summaries, core.ParseOrdering(tt.ordering))
			if tt.wantErr {
				assert.IsType(t, &core.ValidationError{}, err)
				return
			}
			if assert.NoError(t, err) {
				assert.Equal(t, tt.want, summaries)
			}
		})
	}
}
