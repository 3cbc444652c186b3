package book

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookColumns = `isbn, title, description, price, genre, year_published, copies_sold, publisher_id, author_id`

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books ORDER BY isbn`, bookColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *PostgresRepo) ListByGenre(ctx context.Context, genre string) ([]Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books WHERE genre = $1 ORDER BY isbn`, bookColumns)
	rows, err := r.db.Query(ctx, query, genre)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *PostgresRepo) ListByPublisher(ctx context.Context, publisherID int64) ([]Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books WHERE publisher_id = $1 ORDER BY isbn`, bookColumns)
	rows, err := r.db.Query(ctx, query, publisherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *PostgresRepo) TopSellers(ctx context.Context, limit int) ([]Book, error) {
	// Ties on copies_sold break by ascending ISBN so the ordering is stable.
	query := fmt.Sprintf(`SELECT %s FROM books ORDER BY copies_sold DESC, isbn ASC LIMIT $1`, bookColumns)
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBooks(rows)
}

func (r *PostgresRepo) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM books WHERE isbn = $1`, bookColumns)
	var b Book
	err := r.db.QueryRow(ctx, query, isbn).Scan(
		&b.ISBN, &b.Title, &b.Description, &b.Price, &b.Genre,
		&b.YearPublished, &b.CopiesSold, &b.PublisherID, &b.AuthorID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Upsert(ctx context.Context, b *Book) error {
	const query = `
		INSERT INTO books (isbn, title, description, price, genre, year_published, copies_sold, publisher_id, author_id, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		ON CONFLICT (isbn) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			genre = EXCLUDED.genre,
			year_published = EXCLUDED.year_published,
			copies_sold = EXCLUDED.copies_sold,
			publisher_id = EXCLUDED.publisher_id,
			author_id = EXCLUDED.author_id,
			updated_at = now()`

	_, err := r.db.Exec(ctx, query, b.ISBN, b.Title, b.Description, b.Price, b.Genre,
		b.YearPublished, b.CopiesSold, b.PublisherID, b.AuthorID)
	if err != nil {
		return fmt.Errorf("upsert book: %w", err)
	}
	return nil
}

// UpdatePrices writes the batch of repriced books atomically.
func (r *PostgresRepo) UpdatePrices(ctx context.Context, books []Book) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, b := range books {
		_, err := tx.Exec(ctx,
			`UPDATE books SET price = $2, updated_at = now() WHERE isbn = $1`,
			b.ISBN, b.Price,
		)
		if err != nil {
			return fmt.Errorf("update price for %s: %w", b.ISBN, err)
		}
	}

	return tx.Commit(ctx)
}

func scanBooks(rows pgx.Rows) ([]Book, error) {
	var books []Book
	for rows.Next() {
		var b Book
		if err := rows.Scan(
			&b.ISBN, &b.Title, &b.Description, &b.Price, &b.Genre,
			&b.YearPublished, &b.CopiesSold, &b.PublisherID, &b.AuthorID,
		); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}
