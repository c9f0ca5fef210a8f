package storage

import (
	"context"
	"errors"

	"github.com/hongminglow/shopfront/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures user persistence operations needed by handlers.
// Emails are stored lowercase; callers normalize before lookups.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ItemQuery selects a page of the catalog. Search, when non-empty, matches
// title or description as a case-insensitive substring.
type ItemQuery struct {
	Page   int
	Limit  int
	Search string
}

// Offset returns the number of records to skip for the query's page.
func (q ItemQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// ItemStore captures catalog persistence operations needed by handlers.
// ListItems returns the page window ordered by creation time descending,
// plus the total count of matching records.
type ItemStore interface {
	CreateItem(ctx context.Context, item models.Item) (models.Item, error)
	GetItem(ctx context.Context, id string) (models.Item, error)
	ListItems(ctx context.Context, q ItemQuery) ([]models.Item, int, error)
}
