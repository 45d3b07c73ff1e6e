package models

// CreateCategoryRequest represents one category in a batch-create request.
// The slug is derived server-side from the name; clients never supply it.
type CreateCategoryRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Type      string `json:"type" binding:"required,oneof=expense income"`
	IsSavings bool   `json:"is_savings"`
}
