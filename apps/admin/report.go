package main

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/epic-app/epic/core"
)

var errReportInvalid = errors.New("chart generation failed")

func (cli *commandLine) report(ctx context.Context, orgs, outDir string) error {
	ids, err := core.ParseIDs("organization", orgs)
	if err != nil {
		return err
	}
	summaries, err := cli.summarySvc.EvolutionSummary(ctx, ids...)
	if err != nil {
		return err
	}
	res, err := cli.reports.Generate(ctx, summaries, outDir)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cli.out)
	enc.SetIndent("", "  ")
	if err = enc.Encode(res); err != nil {
		return err
	}
	if !res.Valid {
		return errReportInvalid
	}
	return nil
}
