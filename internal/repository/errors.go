package repository

import "errors"

// ErrNotFound indicates the requested record does not exist or is not
// owned by the requesting user. The two cases are deliberately not
// distinguishable, so callers cannot probe for other users' records.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate indicates a uniqueness constraint violation.
var ErrDuplicate = errors.New("record already exists")

// ErrCategoryNotFound indicates a transaction referenced a category that
// does not exist for the owning user.
var ErrCategoryNotFound = errors.New("category not found")

// uniqueViolation is the Postgres error code for unique_violation.
const uniqueViolation = "23505"
