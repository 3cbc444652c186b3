package rating

import (
	"context"
	"errors"
)

// ErrBookNotFound is returned when a rating references an ISBN the
// catalog does not know.
var ErrBookNotFound = errors.New("book not found")

// BookRating is the derived average-rating view of a book. Books with no
// ratings have no average and never appear.
type BookRating struct {
	ISBN          string  `json:"isbn"`
	Title         string  `json:"title"`
	AverageRating float64 `json:"averageRating"`
}

type Repository interface {
	ListByMinimumRating(ctx context.Context, threshold int) ([]BookRating, error)
	CreateOrUpdateRating(ctx context.Context, userID int64, isbn string, star int) error
	GetBookRating(ctx context.Context, isbn string) (average float64, count int, err error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListByMinimumRating returns every book whose mean star rating is at
// least the threshold.
func (s *Service) ListByMinimumRating(ctx context.Context, threshold int) ([]BookRating, error) {
	return s.repo.ListByMinimumRating(ctx, threshold)
}

// CreateOrUpdate records one user's star rating for a book, replacing
// any previous rating by the same user.
func (s *Service) CreateOrUpdate(ctx context.Context, userID int64, isbn string, star int) error {
	return s.repo.CreateOrUpdateRating(ctx, userID, isbn, star)
}

// GetBookRating returns the mean rating and rating count for one book.
func (s *Service) GetBookRating(ctx context.Context, isbn string) (float64, int, error) {
	return s.repo.GetBookRating(ctx, isbn)
}
