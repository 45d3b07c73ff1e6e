package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest represents one transaction in a batch-create
// request. The category is referenced by its human-readable name and
// resolved to a category ID during the write.
type CreateTransactionRequest struct {
	Category        string          `json:"category" binding:"required"`
	Description     *string         `json:"description,omitempty"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	TransactionDate time.Time       `json:"transaction_date" binding:"required"`
}
