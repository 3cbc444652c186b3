package book

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices serialize as bare JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrNotFound is returned when no book matches the requested ISBN.
var ErrNotFound = errors.New("book not found")

// ErrInvalidPercentage is returned when a discount percentage falls
// outside [0, 100].
var ErrInvalidPercentage = errors.New("discount percentage must be between 0 and 100")

// Book is a catalog entry keyed by its ISBN. The ISBN is immutable once
// the book exists; writes with a known ISBN replace the other fields.
type Book struct {
	ISBN          string          `json:"isbn"`
	Title         string          `json:"title"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Genre         string          `json:"genre,omitempty"`
	YearPublished int             `json:"yearPublished,omitempty"`
	CopiesSold    int             `json:"copiesSold"`
	PublisherID   *int64          `json:"publisherId,omitempty"`
	AuthorID      *int64          `json:"authorId,omitempty"`
}

// Summary is the list-view shape of a book.
type Summary struct {
	ISBN  string          `json:"isbn"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Genre string          `json:"genre"`
}

func (b Book) Summary() Summary {
	return Summary{
		ISBN:  b.ISBN,
		Title: b.Title,
		Price: b.Price,
		Genre: b.Genre,
	}
}

// Repository defines the contract for book data storage.
type Repository interface {
	List(ctx context.Context) ([]Book, error)
	ListByGenre(ctx context.Context, genre string) ([]Book, error)
	ListByPublisher(ctx context.Context, publisherID int64) ([]Book, error)
	TopSellers(ctx context.Context, limit int) ([]Book, error)
	GetByISBN(ctx context.Context, isbn string) (Book, error)
	Upsert(ctx context.Context, b *Book) error
	UpdatePrices(ctx context.Context, books []Book) error
}
