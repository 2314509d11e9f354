package main

import (
	"context"

	"github.com/epic-app/epic/storage/database"
)

var (
	defaultGooseRunFunc = database.RunMigrations
	gooseRunFunc        = defaultGooseRunFunc // mockable
)

func (cli *commandLine) migrate(ctx context.Context, args []string) error {
	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	return gooseRunFunc(ctx, cli.db, args[0], arguments...)
}
