package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fintrack-be/internal/models"
)

// NewTransaction holds one transaction to insert. CategorySlug is the
// normalized form of the category reference the client supplied; it is
// resolved to a category ID inside the write transaction.
type NewTransaction struct {
	CategorySlug    string
	Description     *string
	Amount          decimal.Decimal
	TransactionDate time.Time
}

// TransactionRepository defines the interface for transaction database operations
type TransactionRepository interface {
	CreateBatch(ctx context.Context, userID uuid.UUID, transactions []NewTransaction) error
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.TransactionWithCategory, error)
}

type transactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// CreateBatch inserts the transactions inside a single database
// transaction. Each item's category is resolved by (user, slug) within the
// same unit of work before the row is inserted, so a transaction can never
// be persisted against a missing or cross-owner category. The first
// failure rolls back the entire batch.
func (r *transactionRepository) CreateBatch(ctx context.Context, userID uuid.UUID, transactions []NewTransaction) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	lookup := `SELECT id FROM categories WHERE slug = $1 AND user_id = $2`
	insert := `
		INSERT INTO transactions (user_id, category_id, description, amount, transaction_date)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, t := range transactions {
		var categoryID uuid.UUID
		err := tx.QueryRowContext(ctx, lookup, t.CategorySlug, userID).Scan(&categoryID)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %q", ErrCategoryNotFound, t.CategorySlug)
		}
		if err != nil {
			return fmt.Errorf("failed to resolve category %q: %w", t.CategorySlug, err)
		}

		if _, err := tx.ExecContext(ctx, insert, userID, categoryID, t.Description, t.Amount, t.TransactionDate); err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transactions: %w", err)
	}

	return nil
}

// GetByUserID returns the user's transactions joined with category data
func (r *transactionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*models.TransactionWithCategory, error) {
	query := `
		SELECT
			t.id,
			t.amount,
			t.description,
			t.transaction_date,
			c.id,
			c.name,
			c.type,
			c.is_savings,
			c.created_at
		FROM transactions t
		INNER JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1
		ORDER BY t.transaction_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*models.TransactionWithCategory
	for rows.Next() {
		var t models.TransactionWithCategory
		err := rows.Scan(
			&t.ID,
			&t.Amount,
			&t.Description,
			&t.TransactionDate,
			&t.CategoryID,
			&t.CategoryName,
			&t.CategoryType,
			&t.IsSavings,
			&t.CategoryCreated,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, nil
}
