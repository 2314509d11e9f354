package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/epic-app/epic/core"
	"github.com/epic-app/epic/core/report"
)

func (cli *commandLine) summary(ctx context.Context, orgs, format string) error {
	ids, err := core.ParseIDs("organization", orgs)
	if err != nil {
		return err
	}
	summaries, err := cli.summarySvc.EvolutionSummary(ctx, ids...)
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		_, err = fmt.Fprintln(cli.out, report.FormatCSV(report.RowsFromSummaries(summaries)))
		return err
	case "json":
		enc := json.NewEncoder(cli.out)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	default:
		return core.NewValidationError(
			fmt.Errorf("unknown format %q", format),
			core.FieldError{Field: "format", Error: "must be one of: json, csv"},
		)
	}
}
