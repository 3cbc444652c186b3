package cart

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// ErrBookNotFound is returned when an add targets an ISBN the catalog
// does not know.
var ErrBookNotFound = errors.New("book not found")

// Item is one (user, book) cart line. Title and price are snapshots
// captured when the book was first added; later catalog changes do not
// refresh them.
type Item struct {
	UserID   int64           `json:"-"`
	ISBN     string          `json:"isbn"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Subtotal aggregates one user's cart.
type Subtotal struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	TotalItems int             `json:"totalItems"`
}

// Repository defines the contract for cart line storage.
type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]Item, error)
	// Add inserts the line with quantity 1 or, if it already exists,
	// increments its quantity by one.
	Add(ctx context.Context, item Item) error
	// Decrement lowers the line's quantity by one, deleting the line when
	// the quantity would reach zero. A missing line is a no-op.
	Decrement(ctx context.Context, userID int64, isbn string) error
}
