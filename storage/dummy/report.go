package dummydb

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jaykayhn/jindo/core"
	"github.com/jaykayhn/jindo/core/report"
)

type reportRepository struct {
	db *reportTable
}

var _ report.Repository = (*reportRepository)(nil) // interface compliance check

func NewReportRepository(db *DB) report.Repository {
	return &reportRepository{db: db.reports}
}

func (repo *reportRepository) GetByStudentMonth(ctx context.Context, studentID string, month core.Month) (report.MonthlyReport, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if rep, ok := repo.db.rows[reportKey(studentID, month)]; ok {
		return *rep, nil
	}
	return report.MonthlyReport{}, report.ErrNotFound
}

func (repo *reportRepository) Upsert(ctx context.Context, rep report.MonthlyReport) (report.MonthlyReport, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	key := reportKey(rep.StudentID, rep.Month)
	if existing, ok := repo.db.rows[key]; ok {
		rep.ID = existing.ID
		rep.URL = existing.URL
	} else {
		rep.ID = uuid.NewString()
		rep.URL = fmt.Sprintf("https://notion.example.com/reports/%s-%s", rep.StudentID, rep.Month)
	}
	repo.db.rows[key] = &rep
	return rep, nil
}

func reportKey(studentID string, month core.Month) string {
	return studentID + "|" + month.String()
}
