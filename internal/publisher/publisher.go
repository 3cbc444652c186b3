package publisher

import "context"

// Publisher owns zero or more catalog books.
type Publisher struct {
	PublisherID int64  `json:"publisherId"`
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
}

// Repository defines the contract for publisher data storage.
type Repository interface {
	List(ctx context.Context) ([]Publisher, error)
	Create(ctx context.Context, p *Publisher) error
}
