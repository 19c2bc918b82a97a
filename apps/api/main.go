package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/jaykayhn/jindo/apps/api/echo"
	"github.com/jaykayhn/jindo/core"
	"github.com/jaykayhn/jindo/core/book"
	"github.com/jaykayhn/jindo/core/progress"
	"github.com/jaykayhn/jindo/core/report"
	"github.com/jaykayhn/jindo/core/student"
	emailsvc "github.com/jaykayhn/jindo/services/email"
	logsvc "github.com/jaykayhn/jindo/services/logger"
	openaisummary "github.com/jaykayhn/jindo/services/summary/openai"
	notiondb "github.com/jaykayhn/jindo/storage/notion"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf, err := core.NewConfig()
	if err != nil {
		log.Fatalf("loading configuration: %v", err)
	}

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up DB
	db, err := notiondb.Open(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	var summarizer core.Summarizer
	if conf.OpenAI.APIKey != "" {
		summarizer = openaisummary.NewService(conf)
	} else {
		logger.Warn("no text-generation API key configured; report summaries disabled")
	}

	stuSvc := student.NewService(notiondb.NewStudentRepository(db))
	progSvc := progress.NewService(notiondb.NewProgressRepository(db))
	bookSvc := book.NewService(notiondb.NewBookRepository(db))
	repSvc := report.NewService(
		conf,
		logger,
		notiondb.NewReportRepository(db),
		stuSvc,
		progSvc,
		summarizer,
		mailSvc,
		report.NewRenderer(loadReportTemplate(conf, logger)),
	)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:        conf,
			Logger:      logger,
			Validate:    validate,
			Translator:  translator,
			StudentSvc:  stuSvc,
			ProgressSvc: progSvc,
			BookSvc:     bookSvc,
			ReportSvc:   repSvc,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

// loadReportTemplate reads the on-disk report template; the renderer falls
// back to its built-in copy when the file is missing.
func loadReportTemplate(conf *core.Config, logger core.Logger) string {
	path := filepath.Join(conf.WorkDir, "assets", "templates", "report", "monthly.html")
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn(fmt.Sprintf("loading report template: %v; using built-in template", err))
		return ""
	}
	return string(data)
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
