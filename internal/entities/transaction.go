package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a single logged transaction bound to a category
// owned by the same user. Amounts are exact decimals (NUMERIC in Postgres).
type Transaction struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"-"`
	CategoryID      uuid.UUID       `json:"category_id"`
	Description     *string         `json:"description,omitempty"` // Pointer allows nil (no description)
	Amount          decimal.Decimal `json:"amount"`
	TransactionDate time.Time       `json:"transaction_date"`
	CreatedAt       time.Time       `json:"created_at"`
}
