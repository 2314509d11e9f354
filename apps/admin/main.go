package main

import (
	"context"
	"log"
	"os"

	"github.com/epic-app/epic/core"
	"github.com/epic-app/epic/core/report"
	"github.com/epic-app/epic/core/summary"
	"github.com/epic-app/epic/services/eramvisuals"
	"github.com/epic-app/epic/services/logger"
	"github.com/epic-app/epic/storage/database"
	"github.com/epic-app/epic/storage/database/sqlx"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	conf := core.NewConfig()
	appLogger := logsvc.NewRollbarLogger(logger, conf)

	// set up DB
	errAndDie(database.CreateIfNotExist(conf))
	db, err := database.Open(conf)
	errAndDie(err)

	// start CLI
	cli := commandLine{
		conf:       conf,
		db:         db,
		summarySvc: summary.NewService(sqlxrepos.NewSurveyRepository(db), appLogger),
		reports:    report.NewGenerator(eramvisuals.NewService(conf, appLogger), appLogger),
		out:        os.Stdout,
	}
	err = cli.run(context.Background(), os.Args)
	_ = db.Close()
	if err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
