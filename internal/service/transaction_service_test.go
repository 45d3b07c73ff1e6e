package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack-be/internal/models"
	"fintrack-be/internal/repository"
)

// fakeTransactionRepo resolves category slugs against a fixed set and
// mimics the repository's all-or-nothing batch semantics.
type fakeTransactionRepo struct {
	knownSlugs map[string]bool
	persisted  [][]repository.NewTransaction
}

func newFakeTransactionRepo(slugs ...string) *fakeTransactionRepo {
	known := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		known[s] = true
	}
	return &fakeTransactionRepo{knownSlugs: known}
}

func (f *fakeTransactionRepo) CreateBatch(_ context.Context, _ uuid.UUID, batch []repository.NewTransaction) error {
	for _, t := range batch {
		if !f.knownSlugs[t.CategorySlug] {
			return repository.ErrCategoryNotFound
		}
	}
	f.persisted = append(f.persisted, batch)
	return nil
}

func (f *fakeTransactionRepo) GetByUserID(_ context.Context, _ uuid.UUID) ([]*models.TransactionWithCategory, error) {
	return nil, nil
}

func TestTransactionCreateBatchNormalizesCategory(t *testing.T) {
	repo := newFakeTransactionRepo("eating-out")
	svc := NewTransactionService(repo)

	err := svc.CreateBatch(context.Background(), uuid.New(), []models.CreateTransactionRequest{
		{Category: "Eating Out", Amount: decimal.RequireFromString("12.50"), TransactionDate: time.Now()},
	})
	require.NoError(t, err)

	require.Len(t, repo.persisted, 1)
	assert.Equal(t, "eating-out", repo.persisted[0][0].CategorySlug)
}

func TestTransactionCreateBatchUnknownCategoryFailsWhole(t *testing.T) {
	repo := newFakeTransactionRepo("food")
	svc := NewTransactionService(repo)

	err := svc.CreateBatch(context.Background(), uuid.New(), []models.CreateTransactionRequest{
		{Category: "Food", Amount: decimal.RequireFromString("12.50"), TransactionDate: time.Now()},
		{Category: "Nonexistent", Amount: decimal.RequireFromString("5"), TransactionDate: time.Now()},
	})
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)
	assert.Empty(t, repo.persisted, "a failed batch must persist nothing, even the resolvable items")
}
