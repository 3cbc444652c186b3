package cart

import (
	"context"
	"errors"

	"bookstore/internal/book"

	"github.com/shopspring/decimal"
)

// Catalog is the slice of the book catalog the cart needs: enough to
// verify an ISBN exists and snapshot its title and price.
type Catalog interface {
	GetByISBN(ctx context.Context, isbn string) (book.Book, error)
}

type Service struct {
	repo    Repository
	catalog Catalog
}

func NewService(repo Repository, catalog Catalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// AddBook puts one copy of the book in the user's cart. A first add
// creates the line with quantity 1 and snapshots the book's title and
// price; every further add increments the quantity.
func (s *Service) AddBook(ctx context.Context, userID int64, isbn string) error {
	b, err := s.catalog.GetByISBN(ctx, isbn)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			return ErrBookNotFound
		}
		return err
	}

	return s.repo.Add(ctx, Item{
		UserID:   userID,
		ISBN:     isbn,
		Title:    b.Title,
		Price:    b.Price,
		Quantity: 1,
	})
}

// RemoveBook takes one copy of the book out of the user's cart,
// dropping the line when its quantity reaches zero. Removing a book
// that is not in the cart succeeds without effect.
func (s *Service) RemoveBook(ctx context.Context, userID int64, isbn string) error {
	return s.repo.Decrement(ctx, userID, isbn)
}

// ListItems returns the user's cart lines.
func (s *Service) ListItems(ctx context.Context, userID int64) ([]Item, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ComputeSubtotal sums price*quantity and quantity over the user's cart.
// An empty cart yields a zero subtotal, not an error.
func (s *Service) ComputeSubtotal(ctx context.Context, userID int64) (Subtotal, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return Subtotal{}, err
	}

	subtotal := decimal.Zero
	totalItems := 0
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		totalItems += item.Quantity
	}

	return Subtotal{Subtotal: subtotal, TotalItems: totalItems}, nil
}
