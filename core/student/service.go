package student

import (
	"context"
	"errors"

	"github.com/jaykayhn/jindo/core"
)

var (
	// errors
	ErrNotFound   = errors.New("student not found")
	ErrAuthFailed = errors.New("invalid student id or password")
)

type (
	Repository interface {
		GetByStudentID(ctx context.Context, studentID string) (Student, error)
		GetByName(ctx context.Context, name string) (Student, error)
		// GetByCredentials matches studentID and password exactly against the
		// external store. Passwords live there as plain text maintained by the
		// academy staff; the store's integration token is the real secret.
		GetByCredentials(ctx context.Context, studentID, password string) (Student, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Authenticate verifies the (studentId, password) pair by exact match on both
// fields. A wrong password and an unknown student are indistinguishable to the
// caller.
func (svc *Service) Authenticate(ctx context.Context, studentID, password string) (Student, error) {
	studentID = core.CleanString(studentID)
	if studentID == "" || password == "" {
		return Student{}, ErrAuthFailed
	}
	stu, err := svc.repo.GetByCredentials(ctx, studentID, password)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Student{}, ErrAuthFailed
		}
		return Student{}, err
	}
	return stu, nil
}

func (svc *Service) GetByStudentID(ctx context.Context, studentID string) (Student, error) {
	return svc.repo.GetByStudentID(ctx, core.CleanString(studentID))
}

func (svc *Service) GetByName(ctx context.Context, name string) (Student, error) {
	return svc.repo.GetByName(ctx, core.CleanString(name))
}
