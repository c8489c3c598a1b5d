package main

import (
	"log"
	"os"

	"github.com/trezcool/examprep/core"
	"github.com/trezcool/examprep/core/datefmt"
	"github.com/trezcool/examprep/core/studyplan"
	"github.com/trezcool/examprep/services/backend"
	logsvc "github.com/trezcool/examprep/services/logger"
)

func main() {
	std := log.New(os.Stderr, "CLI : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	if err != nil {
		std.Fatal(err)
	}
	logger := logsvc.NewRollbarLogger(std, conf)
	defer logger.Close()

	locale, ok := datefmt.Locale(conf.Display.Locale)
	if !ok {
		logger.Fatal("unsupported display.locale: " + conf.Display.Locale)
	}
	dates := datefmt.New(datefmt.WithLocation(conf.Display.Location), datefmt.WithLocale(locale))
	datefmt.SetDefault(dates)
	validate, _ := core.NewValidator()

	// start CLI
	cli := commandLine{
		out:     os.Stdout,
		dates:   dates,
		planSvc: studyplan.NewService(backend.NewClient(conf), validate, dates),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("command failed", err)
		}
		logger.Close()
		os.Exit(1)
	}
}
