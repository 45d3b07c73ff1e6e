package service

import (
	"context"

	"github.com/google/uuid"

	"fintrack-be/internal/models"
	"fintrack-be/internal/repository"
	"fintrack-be/internal/slug"
)

// TransactionService defines the interface for transaction business logic
type TransactionService interface {
	CreateBatch(ctx context.Context, userID uuid.UUID, reqs []models.CreateTransactionRequest) error
	List(ctx context.Context, userID uuid.UUID) ([]*models.TransactionWithCategory, error)
}

type transactionService struct {
	repo repository.TransactionRepository
}

// NewTransactionService creates a new transaction service
func NewTransactionService(repo repository.TransactionRepository) TransactionService {
	return &transactionService{repo: repo}
}

// CreateBatch normalizes each category reference with the same slug
// routine used at category creation, then writes the whole batch
// atomically. An unresolvable category fails the entire batch.
func (s *transactionService) CreateBatch(ctx context.Context, userID uuid.UUID, reqs []models.CreateTransactionRequest) error {
	rows := make([]repository.NewTransaction, 0, len(reqs))
	for _, req := range reqs {
		rows = append(rows, repository.NewTransaction{
			CategorySlug:    slug.Make(req.Category),
			Description:     req.Description,
			Amount:          req.Amount,
			TransactionDate: req.TransactionDate,
		})
	}

	return s.repo.CreateBatch(ctx, userID, rows)
}

// List returns the user's transactions joined with category data
func (s *transactionService) List(ctx context.Context, userID uuid.UUID) ([]*models.TransactionWithCategory, error) {
	return s.repo.GetByUserID(ctx, userID)
}
