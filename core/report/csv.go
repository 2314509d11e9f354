// Package report turns evolution summaries into the files of a summary report:
// a CSV export and the chart rendered from it.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/epic-app/epic/core/summary"
)

const (
	// CSVHeader is the first line of every exported CSV.
	CSVHeader = "group, sub, individual, value"
	// CSVFileName is the name of the exported CSV within the output directory.
	CSVFileName = "evolution_summary.csv"
)

// AggregateRow is one line of the exported CSV.
type AggregateRow struct {
	AreaLabel   string
	GroupName   string
	ProgramName string
	Value       string
}

// NewAggregateRow builds a row from an area name (only its first character is kept),
// a group name, a program name and an average.
// The average may be any number, a string using a decimal comma ("4,2"), or nil for no data.
// Commas in text fields are replaced with a space, so "Just, a, value" becomes "Just  a  value".
func NewAggregateRow(area, group, program string, average interface{}) AggregateRow {
	return AggregateRow{
		AreaLabel:   cleanField(firstRune(area)),
		GroupName:   cleanField(group),
		ProgramName: cleanField(program),
		Value:       formatValue(average),
	}
}

func RowsFromSummaries(summaries []summary.EvolutionSummary) []AggregateRow {
	rows := make([]AggregateRow, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, NewAggregateRow(s.Area, s.Group, s.Program, s.Average))
	}
	return rows
}

func (r AggregateRow) String() string {
	return r.AreaLabel + ", " + r.GroupName + ", " + r.ProgramName + ", " + r.Value
}

// FormatCSV renders the header and the rows grouped by area label, keeping the given order within a group.
// Lines are joined with "\n", without a trailing newline.
func FormatCSV(rows []AggregateRow) string {
	sorted := make([]AggregateRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].AreaLabel < sorted[j].AreaLabel })

	var sb strings.Builder
	sb.WriteString(CSVHeader)
	for _, row := range sorted {
		sb.WriteByte('\n')
		sb.WriteString(row.String())
	}
	return sb.String()
}

// ExportCSV writes FormatCSV(rows) to CSVFileName in dir, creating dir if needed, and returns the file path.
func ExportCSV(rows []AggregateRow, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "creating export directory")
	}
	path := filepath.Join(dir, CSVFileName)
	if err := os.WriteFile(path, []byte(FormatCSV(rows)), 0o644); err != nil {
		return "", errors.Wrap(err, "writing csv")
	}
	return path, nil
}

func firstRune(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}

func cleanField(s string) string {
	return strings.ReplaceAll(s, ",", " ")
}

func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return strconv.Itoa(summary.NoData)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case string:
		return strings.ReplaceAll(val, ",", ".")
	default:
		return strings.ReplaceAll(fmt.Sprint(val), ",", ".")
	}
}
