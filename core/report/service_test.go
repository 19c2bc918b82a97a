package report_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaykayhn/jindo/core"
	"github.com/jaykayhn/jindo/core/progress"
	"github.com/jaykayhn/jindo/core/report"
	"github.com/jaykayhn/jindo/core/student"
	emailsvc "github.com/jaykayhn/jindo/services/email"
	dummysummary "github.com/jaykayhn/jindo/services/summary/dummy"
	dummydb "github.com/jaykayhn/jindo/storage/dummy"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Warn(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Fatal(msg string, args ...interface{}) {}

func newTestService(t *testing.T, summarizer core.Summarizer) (*report.Service, *dummydb.DB) {
	t.Helper()

	conf := &core.Config{Env: "TEST", TestMode: true, AppName: "Jindo"}
	conf.Teacher.Email = "teacher@academy.test"

	db, err := dummydb.Open()
	require.NoError(t, err)

	svc := report.NewService(
		conf,
		nopLogger{},
		dummydb.NewReportRepository(db),
		student.NewService(dummydb.NewStudentRepository(db)),
		progress.NewService(dummydb.NewProgressRepository(db)),
		summarizer,
		emailsvc.NewConsoleServiceMock(conf),
		nil,
	)
	return svc, db
}

func seedMonth(db *dummydb.DB) (student.Student, core.Month) {
	stu := student.Student{ID: "pg-1", StudentID: "jd01", Name: "Jindo Kid"}
	db.AddStudent(stu, "pw")
	db.AddEntry(progress.Entry{
		StudentID:  "jd01",
		Date:       time.Date(2026, time.May, 4, 0, 0, 0, 0, time.UTC),
		Completion: progress.Scored(80),
		Vocab:      progress.Scored(70),
		Reading:    progress.ReadingPass,
		Books:      []string{"Frog and Toad"},
		Comment:    "read a full chapter without help today",
	})
	db.AddEntry(progress.Entry{
		StudentID:  "jd01",
		Date:       time.Date(2026, time.May, 6, 0, 0, 0, 0, time.UTC),
		Completion: progress.Scored(100),
		Vocab:      progress.NotApplicable(),
		Reading:    progress.ReadingFail,
		Books:      []string{"Frog and Toad", "Owl at Home"},
	})
	return stu, core.Month{Year: 2026, Mon: time.May}
}

func TestService_Generate(t *testing.T) {
	summarizer := dummysummary.NewService()
	summarizer.Summary = "A strong month."
	svc, db := newTestService(t, summarizer)
	_, month := seedMonth(db)
	emailsvc.ClearSentMessages()
	ctx := context.Background()

	rep, err := svc.Generate(ctx, "Jindo Kid", month)
	require.NoError(t, err)

	assert.Equal(t, "jd01", rep.StudentID)
	assert.Equal(t, 2, rep.AttendanceDays)
	assert.Equal(t, 90, rep.CompletionRateAvg)
	assert.Equal(t, 70, rep.VocabScoreAvg)
	assert.Equal(t, 50, rep.ReadingPassRate)
	assert.Equal(t, []string{"Frog and Toad", "Owl at Home"}, rep.BookTitles)
	assert.Equal(t, 2, rep.TotalBooks)
	assert.Equal(t, "A strong month.", rep.AISummary)
	assert.NotEmpty(t, rep.ID)
	assert.NotEmpty(t, rep.URL)

	// the summary prompt carries the metrics and the substantive comments
	assert.Contains(t, summarizer.LastPrompt, "Jindo Kid")
	assert.Contains(t, summarizer.LastPrompt, "Frog and Toad")
	assert.Contains(t, summarizer.LastPrompt, "read a full chapter without help today")

	// the teacher got notified with the rendered document attached
	require.Len(t, emailsvc.SentMessages, 1)
	msg := emailsvc.SentMessages[0]
	assert.Equal(t, "teacher@academy.test", msg.To[0].Address)
	require.Len(t, msg.Attachments, 1)

	// regenerating keeps the same report identity
	again, err := svc.Generate(ctx, "Jindo Kid", month)
	require.NoError(t, err)
	assert.Equal(t, rep.ID, again.ID)
	assert.Equal(t, rep.URL, again.URL)
}

func TestService_Generate_errors(t *testing.T) {
	svc, db := newTestService(t, dummysummary.NewService())
	_, month := seedMonth(db)
	ctx := context.Background()

	_, err := svc.Generate(ctx, "Nobody", month)
	assert.ErrorIs(t, err, student.ErrNotFound)

	_, err = svc.Generate(ctx, "Jindo Kid", core.Month{Year: 2026, Mon: time.January})
	assert.ErrorIs(t, err, report.ErrNoData)
}

func TestService_Generate_summaryFallback(t *testing.T) {
	summarizer := dummysummary.NewService()
	summarizer.Err = errors.New("text service down")
	svc, db := newTestService(t, summarizer)
	_, month := seedMonth(db)

	rep, err := svc.Generate(context.Background(), "Jindo Kid", month)
	require.NoError(t, err, "summarizer failure must not abort generation")
	assert.Equal(t, report.SummaryUnavailable, rep.AISummary)
}

func TestService_Generate_noSummarizer(t *testing.T) {
	svc, db := newTestService(t, nil)
	_, month := seedMonth(db)

	rep, err := svc.Generate(context.Background(), "Jindo Kid", month)
	require.NoError(t, err)
	assert.Equal(t, report.SummaryUnavailable, rep.AISummary)
}

func TestService_RenderHTML(t *testing.T) {
	summarizer := dummysummary.NewService()
	summarizer.Summary = "A strong month."
	svc, db := newTestService(t, summarizer)
	_, month := seedMonth(db)
	ctx := context.Background()

	// before any generation the summary falls back
	html, err := svc.RenderHTML(ctx, "jd01", month)
	require.NoError(t, err)
	assert.Contains(t, html, "Jindo Kid")
	assert.Contains(t, html, report.SummaryUnavailable)

	// after generation the stored summary is reused without re-summarizing
	_, err = svc.Generate(ctx, "Jindo Kid", month)
	require.NoError(t, err)
	summarizer.LastPrompt = ""

	html, err = svc.RenderHTML(ctx, "jd01", month)
	require.NoError(t, err)
	assert.Contains(t, html, "A strong month.")
	assert.Empty(t, summarizer.LastPrompt, "rendering must not call the summarizer")
	assert.False(t, strings.Contains(html, "{{"), "unsubstituted tokens in output")

	_, err = svc.RenderHTML(ctx, "jd01", core.Month{Year: 2026, Mon: time.January})
	assert.ErrorIs(t, err, report.ErrNoData)
}

func TestService_URLFor(t *testing.T) {
	svc, db := newTestService(t, dummysummary.NewService())
	_, month := seedMonth(db)
	ctx := context.Background()

	_, err := svc.URLFor(ctx, "Jindo Kid", month)
	assert.ErrorIs(t, err, report.ErrNotFound)

	rep, err := svc.Generate(ctx, "Jindo Kid", month)
	require.NoError(t, err)

	url, err := svc.URLFor(ctx, "Jindo Kid", month)
	require.NoError(t, err)
	assert.Equal(t, rep.URL, url)
}
