package entities

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType distinguishes spending categories from income categories.
// Stored as the Postgres enum category_type ('expense', 'income').
type CategoryType string

const (
	CategoryExpense CategoryType = "expense"
	CategoryIncome  CategoryType = "income"
)

// Category represents a spending or income category owned by a single user.
// The slug is derived from the name at creation time and is unique per owner.
type Category struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"-"`
	Name      string       `json:"name"`
	Slug      string       `json:"slug"`
	Type      CategoryType `json:"type"`
	IsSavings bool         `json:"is_savings"`
	CreatedAt time.Time    `json:"created_at"`
}
