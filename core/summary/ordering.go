package summary

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/epic-app/epic/core"
)

// OrderingFields are the EvolutionSummary fields SortEvolution accepts.
var OrderingFields = []string{"id", "area", "group", "program", "average"}

func compareEvolution(a, b EvolutionSummary, field string) int {
	switch field {
	case "id":
		return a.ID - b.ID
	case "area":
		return strings.Compare(a.Area, b.Area)
	case "group":
		return strings.Compare(a.Group, b.Group)
	case "program":
		return strings.Compare(a.Program, b.Program)
	case "average":
		switch {
		case a.Average < b.Average:
			return -1
		case a.Average > b.Average:
			return 1
		}
	}
	return 0
}

// SortEvolution sorts summaries in place. Summaries equal on every ordering keep their order.
func SortEvolution(summaries []EvolutionSummary, ords []core.DBOrdering) error {
	for _, ord := range ords {
		if !isOrderingField(ord.Field) {
			return core.NewValidationError(
				errors.Errorf("cannot order by %q", ord.Field),
				core.FieldError{Field: "ordering", Error: "must be a list of: " + strings.Join(OrderingFields, ", ")},
			)
		}
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		for _, ord := range ords {
			c := compareEvolution(summaries[i], summaries[j], ord.Field)
			if c == 0 {
				continue
			}
			if ord.Ascending {
				return c < 0
			}
			return c > 0
		}
		return false
	})
	return nil
}

func isOrderingField(field string) bool {
	for _, f := range OrderingFields {
		if f == field {
			return true
		}
	}
	return false
}
