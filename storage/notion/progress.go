package notiondb

import (
	"context"

	"github.com/jomei/notionapi"

	"github.com/jaykayhn/jindo/core"
	"github.com/jaykayhn/jindo/core/progress"
)

type progressRepository struct {
	db *DB
}

var _ progress.Repository = (*progressRepository)(nil) // interface compliance check

func NewProgressRepository(db *DB) progress.Repository {
	return &progressRepository{db: db}
}

func (repo *progressRepository) CreateEntry(ctx context.Context, entry progress.NewEntry) error {
	props := notionapi.Properties{
		propRecord:      titleProp(entry.StudentID + " " + entry.Date.Format("2006-01-02")),
		propStudentID:   richTextProp(entry.StudentID),
		propStudentName: richTextProp(entry.StudentName),
		propDate:        dateProp(entry.Date),
	}

	// The reading result is a select column; everything else the form sends
	// lands as-is on the record, and the store's own formulas derive the
	// computed columns from the raw fields.
	if r := progress.ParseReadingResult(entry.Fields["readingResult"]); r != progress.ReadingUnset {
		props[propReading] = selectProp(string(r))
	}
	for field, value := range entry.Fields {
		if _, taken := props[field]; taken || field == "" || field == "readingResult" {
			continue
		}
		props[field] = richTextProp(value)
	}

	if refs := entry.BookRefs(); len(refs) > 0 {
		ids := make([]string, 0, len(refs))
		for _, ref := range refs {
			if ref.ID != "" {
				ids = append(ids, ref.ID)
			}
		}
		if len(ids) > 0 {
			props[propBooksRel] = relationProp(ids)
		}
	}

	_, err := repo.db.createPage(ctx, repo.db.conf.Notion.ProgressDB, props)
	return err
}

func (repo *progressRepository) QueryMonth(ctx context.Context, studentID string, month core.Month) ([]progress.Entry, error) {
	first, last := month.Range()
	firstDay, lastDay := notionapi.Date(first), notionapi.Date(last)

	req := &notionapi.DatabaseQueryRequest{
		Filter: notionapi.AndCompoundFilter{
			notionapi.PropertyFilter{
				Property: propStudentID,
				RichText: &notionapi.TextFilterCondition{Equals: studentID},
			},
			notionapi.PropertyFilter{
				Property: propDate,
				Date:     &notionapi.DateFilterCondition{OnOrAfter: &firstDay},
			},
			notionapi.PropertyFilter{
				Property: propDate,
				Date:     &notionapi.DateFilterCondition{OnOrBefore: &lastDay},
			},
		},
		Sorts: []notionapi.SortObject{
			{Property: propDate, Direction: notionapi.SortOrderASC},
		},
		PageSize: 100,
	}

	pages, err := repo.db.queryAll(ctx, repo.db.conf.Notion.ProgressDB, req)
	if err != nil {
		return nil, err
	}
	return pagesToEntries(pages), nil
}

func (repo *progressRepository) Query(ctx context.Context, filter progress.Filter) ([]progress.Entry, error) {
	req := &notionapi.DatabaseQueryRequest{
		Sorts: []notionapi.SortObject{
			{Property: propDate, Direction: notionapi.SortOrderDESC},
		},
		PageSize: 100,
	}
	if filter.StudentID != "" {
		req.Filter = notionapi.PropertyFilter{
			Property: propStudentID,
			RichText: &notionapi.TextFilterCondition{Equals: filter.StudentID},
		}
	}

	pages, err := repo.db.queryAll(ctx, repo.db.conf.Notion.ProgressDB, req)
	if err != nil {
		return nil, err
	}
	return pagesToEntries(pages), nil
}

func pagesToEntries(pages []notionapi.Page) []progress.Entry {
	entries := make([]progress.Entry, 0, len(pages))
	for _, page := range pages {
		entries = append(entries, pageToEntry(page))
	}
	return entries
}
