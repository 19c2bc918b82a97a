package dummydb

import (
	"sync"

	"github.com/jaykayhn/jindo/core/book"
	"github.com/jaykayhn/jindo/core/progress"
	"github.com/jaykayhn/jindo/core/report"
	"github.com/jaykayhn/jindo/core/student"
)

type (
	DB struct {
		students *studentTable
		progress *progressTable
		books    *bookTable
		reports  *reportTable
	}

	studentTable struct {
		sync.RWMutex
		rows      []student.Student
		passwords map[string]string // studentID -> password
	}

	progressTable struct {
		sync.RWMutex
		rows []progress.Entry
	}

	bookTable struct {
		sync.RWMutex
		books     []book.Book
		sayuBooks []book.SayuBook
	}

	reportTable struct {
		sync.RWMutex
		rows map[string]*report.MonthlyReport // studentID|month
	}
)

func Open() (*DB, error) {
	db := &DB{
		students: &studentTable{passwords: make(map[string]string)},
		progress: &progressTable{},
		books:    &bookTable{},
		reports:  &reportTable{rows: make(map[string]*report.MonthlyReport)},
	}
	return db, nil
}
