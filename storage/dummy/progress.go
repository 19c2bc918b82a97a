package dummydb

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jaykayhn/jindo/core"
	"github.com/jaykayhn/jindo/core/progress"
)

type progressRepository struct {
	db *progressTable
}

var _ progress.Repository = (*progressRepository)(nil) // interface compliance check

func NewProgressRepository(db *DB) progress.Repository {
	return &progressRepository{db: db.progress}
}

// AddEntry seeds one already-normalized entry.
func (db *DB) AddEntry(entry progress.Entry) {
	db.progress.Lock()
	defer db.progress.Unlock()
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	db.progress.rows = append(db.progress.rows, entry)
}

// CreateEntry normalizes the submission the way the real store plus parser
// would: percent strings parsed, the "not applicable" sentinel kept distinct,
// book refs flattened to titles.
func (repo *progressRepository) CreateEntry(ctx context.Context, entry progress.NewEntry) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	row := progress.Entry{
		ID:          uuid.NewString(),
		StudentID:   entry.StudentID,
		StudentName: entry.StudentName,
		Date:        entry.Date,
		Completion:  parsePercent(entry.Fields["completionRate"]),
		Vocab:       parseScore(entry.Fields["vocabScore"]),
		Grammar:     parseScore(entry.Fields["grammarScore"]),
		Reading:     progress.ParseReadingResult(entry.Fields["readingResult"]),
		Comment:     core.CleanString(entry.Fields["teacherComment"]),
	}
	for _, ref := range entry.BookRefs() {
		if title := core.CleanString(ref.Title); title != "" {
			row.Books = append(row.Books, title)
		}
	}
	repo.db.rows = append(repo.db.rows, row)
	return nil
}

func (repo *progressRepository) QueryMonth(ctx context.Context, studentID string, month core.Month) ([]progress.Entry, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var entries []progress.Entry
	for _, row := range repo.db.rows {
		if row.StudentID == studentID && month.Contains(row.Date) {
			entries = append(entries, row)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date.Before(entries[j].Date) })
	return entries, nil
}

func (repo *progressRepository) Query(ctx context.Context, filter progress.Filter) ([]progress.Entry, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var entries []progress.Entry
	for _, row := range repo.db.rows {
		if filter.StudentID != "" && row.StudentID != filter.StudentID {
			continue
		}
		entries = append(entries, row)
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date.After(entries[j].Date) })
	return entries, nil
}

func parsePercent(s string) progress.Score {
	s = core.CleanString(strings.TrimSuffix(core.CleanString(s), "%"))
	if s == "" {
		return progress.Scored(0)
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return progress.Scored(0)
	}
	return progress.Scored(n)
}

func parseScore(s string) progress.Score {
	s = core.CleanString(s)
	if s == "" {
		return progress.NoScore()
	}
	if strings.EqualFold(s, progress.NASentinel) {
		return progress.NotApplicable()
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return progress.NoScore()
	}
	return progress.Scored(n)
}
