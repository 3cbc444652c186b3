package rating

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const foreignKeyViolation = "23503"

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) ListByMinimumRating(ctx context.Context, threshold int) ([]BookRating, error) {
	const query = `
		SELECT b.isbn, b.title, AVG(r.star)::float8 AS average_rating
		FROM ratings r
		JOIN books b ON b.isbn = r.isbn
		GROUP BY b.isbn, b.title
		HAVING AVG(r.star) >= $1
		ORDER BY b.isbn`

	rows, err := r.db.Query(ctx, query, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BookRating
	for rows.Next() {
		var br BookRating
		if err := rows.Scan(&br.ISBN, &br.Title, &br.AverageRating); err != nil {
			return nil, err
		}
		out = append(out, br)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) CreateOrUpdateRating(ctx context.Context, userID int64, isbn string, star int) error {
	const query = `
		INSERT INTO ratings (user_id, isbn, star)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, isbn) DO UPDATE SET
			star = EXCLUDED.star,
			updated_at = now()`

	_, err := r.db.Exec(ctx, query, userID, isbn, star)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return ErrBookNotFound
		}
		return fmt.Errorf("upsert rating: %w", err)
	}
	return nil
}

func (r *PostgresRepo) GetBookRating(ctx context.Context, isbn string) (float64, int, error) {
	const query = `
		SELECT COALESCE(AVG(star), 0)::float8, COUNT(*)
		FROM ratings
		WHERE isbn = $1`

	var average float64
	var count int
	if err := r.db.QueryRow(ctx, query, isbn).Scan(&average, &count); err != nil {
		return 0, 0, err
	}
	return average, count, nil
}
