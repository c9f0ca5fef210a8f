package handlers

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hongminglow/shopfront/internal/models"
	"github.com/hongminglow/shopfront/internal/storage"
)

// fakeUserStore implements storage.UserStore in memory.
type fakeUserStore struct {
	users map[string]models.User // keyed by email
	seq   int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]models.User{}}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	if _, exists := f.users[user.Email]; exists {
		return models.User{}, storage.ErrAlreadyExists
	}
	f.seq++
	user.ID = fmt.Sprintf("user-%d", f.seq)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.users[user.Email] = user
	return user, nil
}

func (f *fakeUserStore) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return user, nil
}

// fakeItemStore implements storage.ItemStore in memory with the same
// semantics as the Postgres store: substring search on title or description,
// newest first, offset pagination.
type fakeItemStore struct {
	items []models.Item
	seq   int
}

func (f *fakeItemStore) CreateItem(_ context.Context, item models.Item) (models.Item, error) {
	f.seq++
	item.ID = fmt.Sprintf("item-%d", f.seq)
	item.CreatedAt = time.Now().Add(time.Duration(f.seq) * time.Second)
	item.UpdatedAt = item.CreatedAt
	if item.Tags == nil {
		item.Tags = []string{}
	}
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeItemStore) GetItem(_ context.Context, id string) (models.Item, error) {
	for _, item := range f.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.Item{}, storage.ErrNotFound
}

func (f *fakeItemStore) ListItems(_ context.Context, q storage.ItemQuery) ([]models.Item, int, error) {
	var matched []models.Item
	needle := strings.ToLower(q.Search)
	for _, item := range f.items {
		if needle == "" ||
			strings.Contains(strings.ToLower(item.Title), needle) ||
			strings.Contains(strings.ToLower(item.Description), needle) {
			matched = append(matched, item)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	start := q.Offset()
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}
	page := append([]models.Item{}, matched[start:end]...)
	return page, total, nil
}
