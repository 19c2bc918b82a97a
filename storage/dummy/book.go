package dummydb

import (
	"context"
	"strings"

	"github.com/jaykayhn/jindo/core/book"
)

type bookRepository struct {
	db *bookTable
}

var _ book.Repository = (*bookRepository)(nil) // interface compliance check

func NewBookRepository(db *DB) book.Repository {
	return &bookRepository{db: db.books}
}

func (db *DB) AddBook(b book.Book) {
	db.books.Lock()
	defer db.books.Unlock()
	db.books.books = append(db.books.books, b)
}

func (db *DB) AddSayuBook(b book.SayuBook) {
	db.books.Lock()
	defer db.books.Unlock()
	db.books.sayuBooks = append(db.books.sayuBooks, b)
}

func (repo *bookRepository) SearchBooks(ctx context.Context, query string, limit int) ([]book.Book, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var matches []book.Book
	for _, b := range repo.db.books {
		if len(matches) == limit {
			break
		}
		if containsFold(b.Title, query) {
			matches = append(matches, b)
		}
	}
	return matches, nil
}

func (repo *bookRepository) SearchSayuBooks(ctx context.Context, query string, limit int) ([]book.SayuBook, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	var matches []book.SayuBook
	for _, b := range repo.db.sayuBooks {
		if len(matches) == limit {
			break
		}
		if containsFold(b.Title, query) {
			matches = append(matches, b)
		}
	}
	return matches, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
