package notiondb

import (
	"context"

	"github.com/jomei/notionapi"

	"github.com/jaykayhn/jindo/core/student"
)

type studentRepository struct {
	db *DB
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) GetByStudentID(ctx context.Context, studentID string) (student.Student, error) {
	filter := notionapi.PropertyFilter{
		Property: propStudentID,
		RichText: &notionapi.TextFilterCondition{Equals: studentID},
	}
	return repo.getOne(ctx, filter)
}

func (repo *studentRepository) GetByName(ctx context.Context, name string) (student.Student, error) {
	filter := notionapi.PropertyFilter{
		Property: propName,
		Title:    &notionapi.TextFilterCondition{Equals: name},
	}
	return repo.getOne(ctx, filter)
}

func (repo *studentRepository) GetByCredentials(ctx context.Context, studentID, password string) (student.Student, error) {
	filter := notionapi.AndCompoundFilter{
		notionapi.PropertyFilter{
			Property: propStudentID,
			RichText: &notionapi.TextFilterCondition{Equals: studentID},
		},
		notionapi.PropertyFilter{
			Property: propPassword,
			RichText: &notionapi.TextFilterCondition{Equals: password},
		},
	}
	return repo.getOne(ctx, filter)
}

func (repo *studentRepository) getOne(ctx context.Context, filter notionapi.Filter) (student.Student, error) {
	page, ok, err := repo.db.queryFirst(ctx, repo.db.conf.Notion.StudentsDB, filter)
	if err != nil {
		return student.Student{}, err
	}
	if !ok {
		return student.Student{}, student.ErrNotFound
	}
	return pageToStudent(page), nil
}
