package publisher

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Publisher, error) {
	return s.repo.List(ctx)
}

// Create inserts a publisher and fills in its generated id.
func (s *Service) Create(ctx context.Context, p *Publisher) error {
	return s.repo.Create(ctx, p)
}
