package api

import (
	"encoding/json"

	"github.com/hongminglow/shopfront/internal/client/models"
)

// itemRecord accepts both the backend item shape and the older template
// shape. The duck-typing lives here and nowhere else.
type itemRecord struct {
	ID          string   `json:"id"`
	OID         string   `json:"_id"`
	Title       string   `json:"title"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	ImageURL    string   `json:"imageUrl"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

// parseCatalogPayload resolves the three historical listing shapes — a bare
// array, {items: [...]}, and {data: [...]} — and normalizes every record.
func parseCatalogPayload(raw json.RawMessage) (CatalogPage, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(raw, &records); err == nil {
		items, err := normalizeRecords(records)
		if err != nil {
			return CatalogPage{}, err
		}
		return CatalogPage{Page: 1, Limit: len(items), TotalPages: 1, Total: len(items), Items: items}, nil
	}

	var payload struct {
		Page       int               `json:"page"`
		Limit      int               `json:"limit"`
		TotalPages int               `json:"totalPages"`
		Total      int               `json:"total"`
		Items      []json.RawMessage `json:"items"`
		Data       []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return CatalogPage{}, err
	}

	records = payload.Items
	if records == nil {
		records = payload.Data
	}
	items, err := normalizeRecords(records)
	if err != nil {
		return CatalogPage{}, err
	}
	return CatalogPage{
		Page:       payload.Page,
		Limit:      payload.Limit,
		TotalPages: payload.TotalPages,
		Total:      payload.Total,
		Items:      items,
	}, nil
}

func normalizeRecords(records []json.RawMessage) ([]models.CatalogItem, error) {
	items := make([]models.CatalogItem, 0, len(records))
	for _, raw := range records {
		item, err := normalizeRecord(raw)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// normalizeRecord maps one backend record into the canonical CatalogItem.
// Category is the first tag when present.
func normalizeRecord(raw json.RawMessage) (models.CatalogItem, error) {
	var rec itemRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return models.CatalogItem{}, err
	}

	id := rec.OID
	if id == "" {
		id = rec.ID
	}
	title := rec.Title
	if title == "" {
		title = rec.Name
	}
	image := rec.Image
	if image == "" {
		image = rec.ImageURL
	}
	category := rec.Category
	if len(rec.Tags) > 0 {
		category = rec.Tags[0]
	}

	return models.CatalogItem{
		ID:          id,
		Title:       title,
		Price:       rec.Price,
		Description: rec.Description,
		Image:       image,
		Category:    category,
		Raw:         raw,
	}, nil
}
