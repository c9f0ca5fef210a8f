package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/hongminglow/shopfront/internal/models"
	"github.com/hongminglow/shopfront/internal/storage"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"
)

// CreateItem inserts a new catalog item.
func (s *Store) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	const query = `
		INSERT INTO items (id, title, description, price, image_url, tags)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, title, description, price, image_url, tags, created_at, updated_at;
	`
	if item.Tags == nil {
		item.Tags = []string{}
	}
	row := s.pool.QueryRow(ctx, query, uuid.NewString(), item.Title, item.Description, item.Price, item.ImageURL, item.Tags)
	return scanItem(row)
}

// GetItem fetches an item by id.
func (s *Store) GetItem(ctx context.Context, id string) (models.Item, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.Item{}, storage.ErrNotFound
	}
	const query = `
		SELECT id, title, description, price, image_url, tags, created_at, updated_at
		FROM items
		WHERE id = $1;
	`
	row := s.pool.QueryRow(ctx, query, id)
	return scanItem(row)
}

// ListItems returns one page ordered by creation time descending plus the
// total count of matching rows. The page query and the count run
// concurrently; both must finish before the result is assembled.
func (s *Store) ListItems(ctx context.Context, q storage.ItemQuery) ([]models.Item, int, error) {
	where := ""
	args := []any{}
	if q.Search != "" {
		where = "WHERE title ILIKE $1 OR description ILIKE $1"
		args = append(args, "%"+escapeLike(q.Search)+"%")
	}

	var (
		items []models.Item
		total int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		query := `
			SELECT id, title, description, price, image_url, tags, created_at, updated_at
			FROM items ` + where + `
			ORDER BY created_at DESC
			OFFSET $` + strconv.Itoa(len(args)+1) + ` LIMIT $` + strconv.Itoa(len(args)+2) + `;`
		pageArgs := append(append([]any{}, args...), q.Offset(), q.Limit)
		rows, err := s.pool.Query(gctx, query, pageArgs...)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			item, err := scanItem(rows)
			if err != nil {
				return err
			}
			items = append(items, item)
		}
		return rows.Err()
	})
	g.Go(func() error {
		query := `SELECT COUNT(*) FROM items ` + where + `;`
		return s.pool.QueryRow(gctx, query, args...).Scan(&total)
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	if items == nil {
		items = []models.Item{}
	}
	return items, total, nil
}

func scanItem(row pgx.Row) (models.Item, error) {
	var item models.Item
	err := row.Scan(&item.ID, &item.Title, &item.Description, &item.Price, &item.ImageURL, &item.Tags, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Item{}, storage.ErrNotFound
		}
		return models.Item{}, err
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}
	return item, nil
}

// escapeLike neutralizes LIKE metacharacters so a search term is always a
// literal substring match.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
