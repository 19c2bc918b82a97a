package dummydb

import (
	"context"

	"github.com/jaykayhn/jindo/core/student"
)

type studentRepository struct {
	db *studentTable
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db.students}
}

// AddStudent seeds one student with its plain-text password, the way the
// external store holds them.
func (db *DB) AddStudent(stu student.Student, password string) {
	db.students.Lock()
	defer db.students.Unlock()
	db.students.rows = append(db.students.rows, stu)
	db.students.passwords[stu.StudentID] = password
}

func (repo *studentRepository) GetByStudentID(ctx context.Context, studentID string) (student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, stu := range repo.db.rows {
		if stu.StudentID == studentID {
			return stu, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) GetByName(ctx context.Context, name string) (student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, stu := range repo.db.rows {
		if stu.Name == name {
			return stu, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}

func (repo *studentRepository) GetByCredentials(ctx context.Context, studentID, password string) (student.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, stu := range repo.db.rows {
		if stu.StudentID == studentID && repo.db.passwords[studentID] == password {
			return stu, nil
		}
	}
	return student.Student{}, student.ErrNotFound
}
