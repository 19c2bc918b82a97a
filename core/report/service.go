package report

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/pkg/errors"

	"github.com/jaykayhn/jindo/core"
	"github.com/jaykayhn/jindo/core/progress"
	"github.com/jaykayhn/jindo/core/student"
)

var (
	// errors
	ErrNotFound = errors.New("report not found")
	ErrNoData   = errors.New("no progress entries for this month")
)

// SummaryUnavailable is the fallback summary when no summarizer is configured
// or the text service fails. Report generation never fails because of it.
const SummaryUnavailable = "summary unavailable"

type (
	Repository interface {
		GetByStudentMonth(ctx context.Context, studentID string, month core.Month) (MonthlyReport, error)
		// Upsert patches the stored report for the (student, month) key if one
		// exists, creates it otherwise, and returns it with ID and URL set.
		Upsert(ctx context.Context, rep MonthlyReport) (MonthlyReport, error)
	}

	// StudentDirectory is the slice of the student store this service needs.
	StudentDirectory interface {
		GetByStudentID(ctx context.Context, studentID string) (student.Student, error)
		GetByName(ctx context.Context, name string) (student.Student, error)
	}

	// EntrySource yields one student's progress entries for a month.
	EntrySource interface {
		QueryMonth(ctx context.Context, studentID string, month core.Month) ([]progress.Entry, error)
	}

	Service struct {
		conf       *core.Config
		log        core.Logger
		repo       Repository
		students   StudentDirectory
		entries    EntrySource
		summarizer core.Summarizer
		mailSvc    core.EmailService
		renderer   *Renderer
	}
)

func NewService(
	conf *core.Config,
	log core.Logger,
	repo Repository,
	students StudentDirectory,
	entries EntrySource,
	summarizer core.Summarizer,
	mailSvc core.EmailService,
	renderer *Renderer,
) *Service {
	if renderer == nil {
		renderer = NewRenderer("")
	}
	return &Service{
		conf:       conf,
		log:        log,
		repo:       repo,
		students:   students,
		entries:    entries,
		summarizer: summarizer,
		mailSvc:    mailSvc,
		renderer:   renderer,
	}
}

// Generate recomputes the student's report for the month from its progress
// entries, upserts it in the store and notifies the teacher. The metrics are a
// pure function of the entries; only the AI summary varies between runs.
func (svc *Service) Generate(ctx context.Context, studentName string, month core.Month) (MonthlyReport, error) {
	stu, err := svc.students.GetByName(ctx, studentName)
	if err != nil {
		return MonthlyReport{}, errors.Wrap(err, "finding student by name")
	}

	rep, st, err := svc.compute(ctx, stu, month)
	if err != nil {
		return MonthlyReport{}, err
	}
	rep.AISummary = svc.summarize(ctx, stu.Name, month, st)

	stored, err := svc.repo.Upsert(ctx, rep)
	if err != nil {
		return MonthlyReport{}, errors.Wrap(err, "upserting report")
	}

	svc.notify(stored)
	return stored, nil
}

// RenderHTML recomputes the month's metrics and renders the report document.
// The stored report's AI summary is reused when one exists; rendering never
// triggers a new summarization.
func (svc *Service) RenderHTML(ctx context.Context, studentID string, month core.Month) (string, error) {
	stu, err := svc.students.GetByStudentID(ctx, studentID)
	if err != nil {
		return "", errors.Wrap(err, "finding student by id")
	}

	rep, _, err := svc.compute(ctx, stu, month)
	if err != nil {
		return "", err
	}

	rep.AISummary = SummaryUnavailable
	if stored, err := svc.repo.GetByStudentMonth(ctx, stu.StudentID, month); err == nil && stored.AISummary != "" {
		rep.AISummary = stored.AISummary
	}

	return svc.renderer.Render(rep), nil
}

// URLFor returns the stored report URL for the (student, month) key.
func (svc *Service) URLFor(ctx context.Context, studentName string, month core.Month) (string, error) {
	stu, err := svc.students.GetByName(ctx, studentName)
	if err != nil {
		return "", errors.Wrap(err, "finding student by name")
	}
	rep, err := svc.repo.GetByStudentMonth(ctx, stu.StudentID, month)
	if err != nil {
		return "", err
	}
	return rep.URL, nil
}

func (svc *Service) compute(ctx context.Context, stu student.Student, month core.Month) (MonthlyReport, Stats, error) {
	entries, err := svc.entries.QueryMonth(ctx, stu.StudentID, month)
	if err != nil {
		return MonthlyReport{}, Stats{}, errors.Wrap(err, "querying progress entries")
	}
	if len(entries) == 0 {
		return MonthlyReport{}, Stats{}, ErrNoData
	}

	st := Aggregate(entries)
	rep := MonthlyReport{
		StudentID:   stu.StudentID,
		StudentName: stu.Name,
		Month:       month,

		AttendanceDays:    st.AttendanceDays,
		CompletionRateAvg: st.CompletionRateAvg,
		VocabScoreAvg:     st.VocabScoreAvg,
		GrammarScoreAvg:   st.GrammarScoreAvg,
		ReadingPassRate:   st.ReadingPassRate,
		BookTitles:        st.BookTitles,
		TotalBooks:        st.TotalBooks,

		GeneratedAt: time.Now().UTC(),
	}
	return rep, st, nil
}

func (svc *Service) summarize(ctx context.Context, studentName string, month core.Month, st Stats) string {
	if svc.summarizer == nil {
		return SummaryUnavailable
	}
	summary, err := svc.summarizer.Summarize(ctx, buildPrompt(studentName, month, st))
	if err != nil {
		svc.log.Warn(fmt.Sprintf("summarizing report: %v", err), err)
		return SummaryUnavailable
	}
	if summary == "" {
		return SummaryUnavailable
	}
	return summary
}

// notify mails the regenerated report to the configured teacher address.
// Best-effort: the mail service sends asynchronously and logs its own failures.
func (svc *Service) notify(rep MonthlyReport) {
	if svc.mailSvc == nil || svc.conf.Teacher.Email == "" {
		return
	}
	msg := &core.EmailMessage{
		To:      []mail.Address{{Address: svc.conf.Teacher.Email}},
		Subject: fmt.Sprintf("Monthly report ready: %s (%s)", rep.StudentName, rep.Month),
		TextContent: fmt.Sprintf(
			"The monthly report for %s (%s) has been generated.\n\n%s\n",
			rep.StudentName, rep.Month, rep.URL,
		),
	}
	msg.Attach(fmt.Sprintf("%s-%s.html", rep.StudentID, rep.Month), []byte(svc.renderer.Render(rep)), "text/html")
	svc.mailSvc.SendMessages(msg)
}
