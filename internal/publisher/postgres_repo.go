package publisher

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) List(ctx context.Context) ([]Publisher, error) {
	const query = `SELECT publisher_id, name, address FROM publishers ORDER BY publisher_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var publishers []Publisher
	for rows.Next() {
		var p Publisher
		if err := rows.Scan(&p.PublisherID, &p.Name, &p.Address); err != nil {
			return nil, err
		}
		publishers = append(publishers, p)
	}
	return publishers, rows.Err()
}

func (r *PostgresRepo) Create(ctx context.Context, p *Publisher) error {
	const query = `
		INSERT INTO publishers (name, address)
		VALUES ($1, $2)
		RETURNING publisher_id`

	if err := r.db.QueryRow(ctx, query, p.Name, p.Address).Scan(&p.PublisherID); err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return nil
}
