package book

import (
	"context"

	"github.com/jaykayhn/jindo/core"
)

// SearchLimit caps every catalog search; there is no pagination.
const SearchLimit = 20

type (
	Repository interface {
		// SearchBooks does a case-insensitive "contains" match on book titles.
		SearchBooks(ctx context.Context, query string, limit int) ([]Book, error)
		SearchSayuBooks(ctx context.Context, query string, limit int) ([]SayuBook, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SearchBooks returns up to SearchLimit matching books; zero matches is an
// empty list, never an error.
func (svc *Service) SearchBooks(ctx context.Context, query string) ([]Book, error) {
	books, err := svc.repo.SearchBooks(ctx, core.CleanString(query), SearchLimit)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []Book{}
	}
	return books, nil
}

func (svc *Service) SearchSayuBooks(ctx context.Context, query string) ([]SayuBook, error) {
	books, err := svc.repo.SearchSayuBooks(ctx, core.CleanString(query), SearchLimit)
	if err != nil {
		return nil, err
	}
	if books == nil {
		books = []SayuBook{}
	}
	return books, nil
}
