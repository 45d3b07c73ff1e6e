package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"fintrack-be/internal/entities"
)

// NewCategory holds one category to insert. The slug is computed by the
// caller from the name before the batch reaches the repository.
type NewCategory struct {
	Name      string
	Slug      string
	Type      entities.CategoryType
	IsSavings bool
}

// CategoryRepository defines the interface for category database operations
type CategoryRepository interface {
	CreateBatch(ctx context.Context, userID uuid.UUID, categories []NewCategory) ([]*entities.Category, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Category, error)
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entities.Category, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// CreateBatch inserts the categories inside a single database transaction.
// The batch is all-or-nothing: the first failing insert rolls back every
// prior insert. A slug collision (within the batch or with an existing
// category of the same user) surfaces as ErrDuplicate.
func (r *categoryRepository) CreateBatch(ctx context.Context, userID uuid.UUID, categories []NewCategory) ([]*entities.Category, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO categories (user_id, name, slug, type, is_savings)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, name, slug, type, is_savings, created_at
	`

	created := make([]*entities.Category, 0, len(categories))
	for _, c := range categories {
		var cat entities.Category
		err := tx.QueryRowContext(ctx, query, userID, c.Name, c.Slug, c.Type, c.IsSavings).Scan(
			&cat.ID,
			&cat.UserID,
			&cat.Name,
			&cat.Slug,
			&cat.Type,
			&cat.IsSavings,
			&cat.CreatedAt,
		)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
				return nil, fmt.Errorf("%w: category %q", ErrDuplicate, c.Name)
			}
			return nil, fmt.Errorf("failed to create category %q: %w", c.Name, err)
		}
		created = append(created, &cat)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit categories: %w", err)
	}

	return created, nil
}

// GetByUserID returns all categories owned by the user
func (r *categoryRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]*entities.Category, error) {
	query := `
		SELECT id, user_id, name, slug, type, is_savings, created_at
		FROM categories
		WHERE user_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*entities.Category
	for rows.Next() {
		var cat entities.Category
		if err := rows.Scan(&cat.ID, &cat.UserID, &cat.Name, &cat.Slug, &cat.Type, &cat.IsSavings, &cat.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// FindByID finds one category scoped to its owner. A category owned by a
// different user is reported as ErrNotFound, never as forbidden.
func (r *categoryRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entities.Category, error) {
	query := `
		SELECT id, user_id, name, slug, type, is_savings, created_at
		FROM categories
		WHERE id = $1 AND user_id = $2
	`

	var cat entities.Category
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&cat.ID,
		&cat.UserID,
		&cat.Name,
		&cat.Slug,
		&cat.Type,
		&cat.IsSavings,
		&cat.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return &cat, nil
}

// Delete removes one category scoped to its owner
func (r *categoryRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
