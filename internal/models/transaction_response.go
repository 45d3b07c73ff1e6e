package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fintrack-be/internal/entities"
)

// TransactionWithCategory represents a transaction joined with the data of
// the category it was logged against.
type TransactionWithCategory struct {
	ID              uuid.UUID             `json:"id"`
	Amount          decimal.Decimal       `json:"amount"`
	Description     *string               `json:"description,omitempty"`
	TransactionDate time.Time             `json:"transaction_date"`
	CategoryID      uuid.UUID             `json:"category_id"`
	CategoryName    string                `json:"category_name"`
	CategoryType    entities.CategoryType `json:"category_type"`
	IsSavings       bool                  `json:"is_savings"`
	CategoryCreated time.Time             `json:"category_created_at"`
}
