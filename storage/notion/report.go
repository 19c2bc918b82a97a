package notiondb

import (
	"context"
	"strings"

	"github.com/jomei/notionapi"
	"github.com/pkg/errors"

	"github.com/jaykayhn/jindo/core"
	"github.com/jaykayhn/jindo/core/report"
)

type reportRepository struct {
	db *DB
}

var _ report.Repository = (*reportRepository)(nil) // interface compliance check

func NewReportRepository(db *DB) report.Repository {
	return &reportRepository{db: db}
}

func (repo *reportRepository) GetByStudentMonth(ctx context.Context, studentID string, month core.Month) (report.MonthlyReport, error) {
	page, ok, err := repo.find(ctx, studentID, month)
	if err != nil {
		return report.MonthlyReport{}, err
	}
	if !ok {
		return report.MonthlyReport{}, report.ErrNotFound
	}
	rep := pageToReport(page)
	if rep.Month.IsZero() {
		// malformed month cell; the filter already pinned the key
		rep.Month = month
	}
	return rep, nil
}

// Upsert patches the stored row for the (student, month) key if one exists,
// creates it otherwise.
func (repo *reportRepository) Upsert(ctx context.Context, rep report.MonthlyReport) (report.MonthlyReport, error) {
	props := reportProps(rep)

	existing, ok, err := repo.find(ctx, rep.StudentID, rep.Month)
	if err != nil {
		return report.MonthlyReport{}, err
	}

	var page *notionapi.Page
	if ok {
		page, err = repo.db.updatePage(ctx, string(existing.ID), props)
	} else {
		page, err = repo.db.createPage(ctx, repo.db.conf.Notion.ReportsDB, props)
	}
	if err != nil {
		return report.MonthlyReport{}, errors.Wrap(err, "storing report")
	}

	rep.ID = string(page.ID)
	rep.URL = page.URL
	return rep, nil
}

func (repo *reportRepository) find(ctx context.Context, studentID string, month core.Month) (notionapi.Page, bool, error) {
	filter := notionapi.AndCompoundFilter{
		notionapi.PropertyFilter{
			Property: propStudentID,
			RichText: &notionapi.TextFilterCondition{Equals: studentID},
		},
		notionapi.PropertyFilter{
			Property: propMonth,
			RichText: &notionapi.TextFilterCondition{Equals: month.String()},
		},
	}
	return repo.db.queryFirst(ctx, repo.db.conf.Notion.ReportsDB, filter)
}

func reportProps(rep report.MonthlyReport) notionapi.Properties {
	return notionapi.Properties{
		propName:        titleProp(rep.StudentName + " " + rep.Month.String()),
		propStudentID:   richTextProp(rep.StudentID),
		propStudentName: richTextProp(rep.StudentName),
		propMonth:       richTextProp(rep.Month.String()),
		propAttendance:  numberProp(float64(rep.AttendanceDays)),
		propCompAvg:     numberProp(float64(rep.CompletionRateAvg)),
		propVocabAvg:    numberProp(float64(rep.VocabScoreAvg)),
		propGrammarAvg:  numberProp(float64(rep.GrammarScoreAvg)),
		propPassRate:    numberProp(float64(rep.ReadingPassRate)),
		propTotalBooks:  numberProp(float64(rep.TotalBooks)),
		propBookList:    richTextProp(strings.Join(rep.BookTitles, ", ")),
		propSummary:     richTextProp(rep.AISummary),
		propGeneratedAt: dateProp(rep.GeneratedAt),
	}
}
