package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack-be/internal/entities"
)

// TestRepositoryIntegration exercises the batch-write rollback semantics
// against a real Postgres. Set TEST_DATABASE_URL to run it.
func TestRepositoryIntegration(t *testing.T) {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("set TEST_DATABASE_URL to run repository integration tests")
	}

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Ping())

	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, "../../migrations"))

	ctx := context.Background()
	users := NewUserRepository(db)
	categories := NewCategoryRepository(db)
	transactions := NewTransactionRepository(db)

	suffix := time.Now().UnixNano()
	owner, err := users.Create(ctx, fmt.Sprintf("it_owner_%d", suffix), fmt.Sprintf("it_owner_%d@example.com", suffix), "$argon2id$v=19$m=19456,t=2,p=1$c2FsdHNhbHRzYWx0c2FsdA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
	require.NoError(t, err)
	defer users.Delete(ctx, owner.ID)

	other, err := users.Create(ctx, fmt.Sprintf("it_other_%d", suffix), fmt.Sprintf("it_other_%d@example.com", suffix), owner.PasswordHash)
	require.NoError(t, err)
	defer users.Delete(ctx, other.ID)

	t.Run("duplicate user creates no row", func(t *testing.T) {
		_, err := users.Create(ctx, owner.Username, fmt.Sprintf("fresh_%d@example.com", suffix), owner.PasswordHash)
		assert.ErrorIs(t, err, ErrDuplicate)

		_, err = users.Create(ctx, fmt.Sprintf("fresh_%d", suffix), owner.Email, owner.PasswordHash)
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("duplicate category batch persists nothing", func(t *testing.T) {
		_, err := categories.CreateBatch(ctx, owner.ID, []NewCategory{
			{Name: "Food", Slug: "food", Type: entities.CategoryExpense},
			{Name: "Food", Slug: "food", Type: entities.CategoryExpense},
		})
		assert.ErrorIs(t, err, ErrDuplicate)

		listed, err := categories.GetByUserID(ctx, owner.ID)
		require.NoError(t, err)
		assert.Empty(t, listed, "failed batch must roll back every insert")
	})

	t.Run("transaction batch aborts on unknown category", func(t *testing.T) {
		created, err := categories.CreateBatch(ctx, owner.ID, []NewCategory{
			{Name: "Food", Slug: "food", Type: entities.CategoryExpense},
		})
		require.NoError(t, err)
		require.Len(t, created, 1)

		err = transactions.CreateBatch(ctx, owner.ID, []NewTransaction{
			{CategorySlug: "food", Amount: decimal.RequireFromString("12.50"), TransactionDate: time.Now()},
			{CategorySlug: "nonexistent", Amount: decimal.RequireFromString("5"), TransactionDate: time.Now()},
		})
		assert.ErrorIs(t, err, ErrCategoryNotFound)

		listed, err := transactions.GetByUserID(ctx, owner.ID)
		require.NoError(t, err)
		assert.Empty(t, listed, "failed batch must roll back even the resolvable items")
	})

	t.Run("transaction batch commits when every item resolves", func(t *testing.T) {
		desc := "lunch"
		err := transactions.CreateBatch(ctx, owner.ID, []NewTransaction{
			{CategorySlug: "food", Description: &desc, Amount: decimal.RequireFromString("12.50"), TransactionDate: time.Now()},
			{CategorySlug: "food", Amount: decimal.RequireFromString("3.25"), TransactionDate: time.Now()},
		})
		require.NoError(t, err)

		listed, err := transactions.GetByUserID(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, "Food", listed[0].CategoryName)
	})

	t.Run("cross-owner category lookup fails inside the batch", func(t *testing.T) {
		// "food" belongs to owner, not to other; the write must not
		// attach other's transaction to it.
		err := transactions.CreateBatch(ctx, other.ID, []NewTransaction{
			{CategorySlug: "food", Amount: decimal.RequireFromString("1"), TransactionDate: time.Now()},
		})
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})

	t.Run("cross-owner category delete is not found", func(t *testing.T) {
		listed, err := categories.GetByUserID(ctx, owner.ID)
		require.NoError(t, err)
		require.NotEmpty(t, listed)

		err = categories.Delete(ctx, listed[0].ID, other.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		remaining, err := categories.GetByUserID(ctx, owner.ID)
		require.NoError(t, err)
		assert.Len(t, remaining, len(listed))
	})

	t.Run("category find scoped to owner", func(t *testing.T) {
		listed, err := categories.GetByUserID(ctx, owner.ID)
		require.NoError(t, err)
		require.NotEmpty(t, listed)

		found, err := categories.FindByID(ctx, listed[0].ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, "food", found.Slug)

		_, err = categories.FindByID(ctx, listed[0].ID, other.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = categories.FindByID(ctx, uuid.New(), owner.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
