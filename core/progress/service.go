package progress

import (
	"context"
	"errors"
	"time"

	"github.com/jaykayhn/jindo/core"
)

var errMissingStudent = errors.New("progress entry has no student id")

type (
	Repository interface {
		// CreateEntry appends one new record; existing same-day records are
		// never updated in place.
		CreateEntry(ctx context.Context, entry NewEntry) error
		// QueryMonth returns the student's entries within the month,
		// ordered by date ascending.
		QueryMonth(ctx context.Context, studentID string, month core.Month) ([]Entry, error)
		// Query returns flattened entries across students, newest first.
		Query(ctx context.Context, filter Filter) ([]Entry, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Save appends one progress record stamped with the current date.
func (svc *Service) Save(ctx context.Context, entry NewEntry) error {
	entry.StudentID = core.CleanString(entry.StudentID)
	if entry.StudentID == "" {
		return core.NewValidationError(errMissingStudent,
			core.FieldError{Field: "studentId", Error: "this field is required"})
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now().UTC()
	}
	return svc.repo.CreateEntry(ctx, entry)
}

func (svc *Service) QueryMonth(ctx context.Context, studentID string, month core.Month) ([]Entry, error) {
	return svc.repo.QueryMonth(ctx, core.CleanString(studentID), month)
}

func (svc *Service) Query(ctx context.Context, filter Filter) ([]Entry, error) {
	filter.StudentID = core.CleanString(filter.StudentID)
	return svc.repo.Query(ctx, filter)
}
