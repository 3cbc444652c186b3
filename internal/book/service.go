package book

import (
	"context"

	"github.com/shopspring/decimal"
)

// topSellersLimit caps the top-sellers listing.
const topSellersLimit = 10

var oneHundred = decimal.NewFromInt(100)

// Service provides catalog business logic on top of a Repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every book as a list-view summary.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return summaries(books), nil
}

// ListByGenre returns summaries of books whose genre matches exactly.
// An unknown genre yields an empty slice, not an error.
func (s *Service) ListByGenre(ctx context.Context, genre string) ([]Summary, error) {
	books, err := s.repo.ListByGenre(ctx, genre)
	if err != nil {
		return nil, err
	}
	return summaries(books), nil
}

// ListByPublisher returns the full book rows of one publisher.
func (s *Service) ListByPublisher(ctx context.Context, publisherID int64) ([]Book, error) {
	return s.repo.ListByPublisher(ctx, publisherID)
}

// TopSellers returns the 10 books with the highest copies-sold count,
// descending. Ties order by ascending ISBN.
func (s *Service) TopSellers(ctx context.Context) ([]Summary, error) {
	books, err := s.repo.TopSellers(ctx, topSellersLimit)
	if err != nil {
		return nil, err
	}
	return summaries(books), nil
}

// GetByISBN returns the book with the given ISBN or ErrNotFound.
func (s *Service) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	return s.repo.GetByISBN(ctx, isbn)
}

// Add persists a book keyed by its ISBN with upsert semantics: a second
// add with the same ISBN replaces the stored fields.
func (s *Service) Add(ctx context.Context, b *Book) error {
	return s.repo.Upsert(ctx, b)
}

// ApplyPublisherDiscount reprices every book of one publisher to
// price * (1 - percentage/100), rounded half-up to 2 fraction digits,
// and persists the whole batch in a single transaction. Percentages
// outside [0, 100] are rejected so a price can never go negative.
func (s *Service) ApplyPublisherDiscount(ctx context.Context, percentage decimal.Decimal, publisherID int64) error {
	if percentage.IsNegative() || percentage.GreaterThan(oneHundred) {
		return ErrInvalidPercentage
	}

	books, err := s.repo.ListByPublisher(ctx, publisherID)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		return nil
	}

	factor := oneHundred.Sub(percentage).Div(oneHundred)
	for i := range books {
		books[i].Price = books[i].Price.Mul(factor).Round(2)
	}

	return s.repo.UpdatePrices(ctx, books)
}

func summaries(books []Book) []Summary {
	out := make([]Summary, 0, len(books))
	for _, b := range books {
		out = append(out, b.Summary())
	}
	return out
}
