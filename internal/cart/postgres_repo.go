package cart

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

func (r *PostgresRepo) ListByUser(ctx context.Context, userID int64) ([]Item, error) {
	const query = `
		SELECT user_id, isbn, title, price, quantity
		FROM shopping_cart_items
		WHERE user_id = $1
		ORDER BY isbn`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.UserID, &it.ISBN, &it.Title, &it.Price, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PostgresRepo) Add(ctx context.Context, item Item) error {
	// The conflict branch only bumps the quantity so the title/price
	// snapshot from the first add stays put.
	const query = `
		INSERT INTO shopping_cart_items (user_id, isbn, title, price, quantity)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, isbn) DO UPDATE SET
			quantity = shopping_cart_items.quantity + 1,
			updated_at = now()`

	_, err := r.db.Exec(ctx, query, item.UserID, item.ISBN, item.Title, item.Price, item.Quantity)
	if err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	return nil
}

func (r *PostgresRepo) Decrement(ctx context.Context, userID int64, isbn string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE shopping_cart_items
		SET quantity = quantity - 1, updated_at = now()
		WHERE user_id = $1 AND isbn = $2 AND quantity > 1`,
		userID, isbn,
	)
	if err != nil {
		return fmt.Errorf("decrement cart item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		// Quantity was 1 (delete the line) or the line never existed (no-op).
		_, err = tx.Exec(ctx, `
			DELETE FROM shopping_cart_items
			WHERE user_id = $1 AND isbn = $2`,
			userID, isbn,
		)
		if err != nil {
			return fmt.Errorf("delete cart item: %w", err)
		}
	}

	return tx.Commit(ctx)
}
