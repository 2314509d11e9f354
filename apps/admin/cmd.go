package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/jmoiron/sqlx"

	"github.com/epic-app/epic/core"
	"github.com/epic-app/epic/core/report"
	"github.com/epic-app/epic/core/summary"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	conf       *core.Config
	db         *sqlx.DB
	summarySvc *summary.Service
	reports    *report.Generator
	out        io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS] - run a goose migration command (up, down, status, ...)")
	fmt.Fprintln(cli.out, "  summary [-organization IDS] [-format json|csv] - print the evolution summary")
	fmt.Fprintln(cli.out, "  report [-organization IDS] [-out DIR] - generate the evolution summary report (csv + chart)")
}

func (cli *commandLine) run(ctx context.Context, args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	summaryCmd := flag.NewFlagSet("summary", flag.ContinueOnError)
	summaryCmd.SetOutput(cli.out)
	summaryOrgs := summaryCmd.String("organization", "", "Comma separated organization IDs. All organizations when empty.")
	summaryFormat := summaryCmd.String("format", "json", "Output format: json or csv.")

	reportCmd := flag.NewFlagSet("report", flag.ContinueOnError)
	reportCmd.SetOutput(cli.out)
	reportOrgs := reportCmd.String("organization", "", "Comma separated organization IDs. All organizations when empty.")
	reportOut := reportCmd.String("out", cli.conf.Report.OutputDir, "Output directory.")

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(ctx, args[2:])
	case "summary":
		if err := summaryCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.summary(ctx, *summaryOrgs, *summaryFormat)
	case "report":
		if err := reportCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *reportOut == "" {
			reportCmd.Usage()
			return errHelp
		}
		return cli.report(ctx, *reportOrgs, *reportOut)
	default:
		cli.printUsage()
		return errHelp
	}
}
