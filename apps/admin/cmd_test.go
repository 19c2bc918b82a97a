package main

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jaykayhn/jindo/core"
	"github.com/jaykayhn/jindo/core/progress"
	"github.com/jaykayhn/jindo/core/report"
	"github.com/jaykayhn/jindo/core/student"
	emailsvc "github.com/jaykayhn/jindo/services/email"
	dummysummary "github.com/jaykayhn/jindo/services/summary/dummy"
	dummydb "github.com/jaykayhn/jindo/storage/dummy"
)

type testLogger struct{}

func (testLogger) Debug(msg string, args ...interface{}) {}
func (testLogger) Info(msg string, args ...interface{})  {}
func (testLogger) Warn(msg string, args ...interface{})  {}
func (testLogger) Error(msg string, args ...interface{}) {}
func (testLogger) Fatal(msg string, args ...interface{}) {}

func setup(t *testing.T) (*commandLine, *dummydb.DB) {
	t.Helper()

	conf := &core.Config{Env: "TEST", TestMode: true, AppName: "Jindo"}

	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("dummydb.Open(): %v", err)
	}

	stuSvc := student.NewService(dummydb.NewStudentRepository(db))
	progSvc := progress.NewService(dummydb.NewProgressRepository(db))
	repSvc := report.NewService(
		conf,
		testLogger{},
		dummydb.NewReportRepository(db),
		stuSvc,
		progSvc,
		dummysummary.NewService(),
		emailsvc.NewConsoleServiceMock(conf),
		nil,
	)

	return &commandLine{conf: conf, repSvc: repSvc}, db
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
}

func Test_commandLine_run(t *testing.T) {
	cli, db := setup(t)

	db.AddStudent(student.Student{StudentID: "jd01", Name: "Jindo Kid"}, "woof")
	db.AddEntry(progress.Entry{
		StudentID:  "jd01",
		Date:       time.Date(2026, time.May, 12, 0, 0, 0, 0, time.UTC),
		Completion: progress.Scored(80),
		Vocab:      progress.Scored(90),
		Reading:    progress.ReadingPass,
		Books:      []string{"Frog and Toad"},
	})

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "genreport: no args", args: []string{"genreport"}, wantErr: errHelp},
		{name: "genreport: missing month", args: []string{"genreport", "-student", "Jindo Kid"}, wantErr: errHelp},
		{name: "genreport: bad month", args: []string{"genreport", "-student", "Jindo Kid", "-month", "lol"},
			wantErrStr: `parsing month "lol"`},
		{name: "genreport: unknown student", args: []string{"genreport", "-student", "Nobody", "-month", "2026-05"},
			wantErr: student.ErrNotFound},
		{name: "genreport: no entries", args: []string{"genreport", "-student", "Jindo Kid", "-month", "2026-04"},
			wantErr: report.ErrNoData},
		{name: "genreport", args: []string{"genreport", "-student", "Jindo Kid", "-month", "2026-05"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
				}
			case tt.wantErrStr != "":
				if err == nil || !strings.Contains(err.Error(), tt.wantErrStr) {
					t.Errorf("cli.run() error = %v, wantErrStr %s", err, tt.wantErrStr)
				}
			case err != nil:
				t.Errorf("cli.run() unexpected error = %v", err)
			}
		})
	}
}

func Test_commandLine_teacherToken(t *testing.T) {
	cli, _ := setup(t)

	origReadPwd := readPasswordFunc
	defer func() { readPasswordFunc = origReadPwd }()

	readPasswordFunc = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	if err := cli.run([]string{"admin", "teachertoken"}); err != nil {
		t.Errorf("cli.run() unexpected error = %v", err)
	}

	readPasswordFunc = func(fd int) ([]byte, error) { return nil, nil }
	if err := cli.run([]string{"admin", "teachertoken"}); err != errHelp {
		t.Errorf("cli.run() error = %v, wantErr %v", err, errHelp)
	}
}
