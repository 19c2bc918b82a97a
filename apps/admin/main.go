package main

import (
	"log"
	"os"

	"github.com/jaykayhn/jindo/core"
	"github.com/jaykayhn/jindo/core/progress"
	"github.com/jaykayhn/jindo/core/report"
	"github.com/jaykayhn/jindo/core/student"
	emailsvc "github.com/jaykayhn/jindo/services/email"
	logsvc "github.com/jaykayhn/jindo/services/logger"
	openaisummary "github.com/jaykayhn/jindo/services/summary/openai"
	notiondb "github.com/jaykayhn/jindo/storage/notion"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	errAndDie(err)

	appLogger := logsvc.NewRollbarLogger(logger, conf)
	appLogger.Enable(!conf.Debug)

	// set up DB
	db, err := notiondb.Open(conf)
	errAndDie(err)

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, appLogger)
	}
	var summarizer core.Summarizer
	if conf.OpenAI.APIKey != "" {
		summarizer = openaisummary.NewService(conf)
	}

	stuSvc := student.NewService(notiondb.NewStudentRepository(db))
	progSvc := progress.NewService(notiondb.NewProgressRepository(db))
	repSvc := report.NewService(
		conf,
		appLogger,
		notiondb.NewReportRepository(db),
		stuSvc,
		progSvc,
		summarizer,
		mailSvc,
		nil,
	)

	// start CLI
	cli := commandLine{
		conf:   conf,
		repSvc: repSvc,
	}
	if err := cli.run(os.Args); err != nil {
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
