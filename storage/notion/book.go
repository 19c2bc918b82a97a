package notiondb

import (
	"context"

	"github.com/jomei/notionapi"

	"github.com/jaykayhn/jindo/core/book"
)

type bookRepository struct {
	db *DB
}

var _ book.Repository = (*bookRepository)(nil) // interface compliance check

func NewBookRepository(db *DB) book.Repository {
	return &bookRepository{db: db}
}

func (repo *bookRepository) SearchBooks(ctx context.Context, query string, limit int) ([]book.Book, error) {
	pages, err := repo.search(ctx, repo.db.conf.Notion.BooksDB, query, limit)
	if err != nil {
		return nil, err
	}
	books := make([]book.Book, 0, len(pages))
	for _, page := range pages {
		books = append(books, pageToBook(page))
	}
	return books, nil
}

func (repo *bookRepository) SearchSayuBooks(ctx context.Context, query string, limit int) ([]book.SayuBook, error) {
	pages, err := repo.search(ctx, repo.db.conf.Notion.SayuBooksDB, query, limit)
	if err != nil {
		return nil, err
	}
	books := make([]book.SayuBook, 0, len(pages))
	for _, page := range pages {
		books = append(books, pageToSayuBook(page))
	}
	return books, nil
}

// search is a single-shot capped query: no pagination past the limit.
func (repo *bookRepository) search(ctx context.Context, dbID, query string, limit int) ([]notionapi.Page, error) {
	resp, err := repo.db.client.Database.Query(ctx, notionapi.DatabaseID(dbID), &notionapi.DatabaseQueryRequest{
		Filter: notionapi.PropertyFilter{
			Property: propName,
			Title:    &notionapi.TextFilterCondition{Contains: query},
		},
		PageSize: limit,
	})
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}
