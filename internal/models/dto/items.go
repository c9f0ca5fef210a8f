package dto

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/hongminglow/shopfront/internal/models"
)

// CreateItemRequest carries a new catalog entry. Price and Tags use tolerant
// decoders because clients historically sent numeric strings and
// comma-separated tag lists.
type CreateItemRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       Price   `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Tags        TagList `json:"tags"`
}

// ItemPage is the paginated listing response.
type ItemPage struct {
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"totalPages"`
	Total      int           `json:"total"`
	Items      []models.Item `json:"items"`
}

// Price accepts a JSON number or a numeric string. Set reports whether the
// field was present and non-null, so handlers can distinguish "missing" from
// zero.
type Price struct {
	Value float64
	Set   bool
}

func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var quoted string
		if err := json.Unmarshal(data, &quoted); err != nil {
			return err
		}
		s = strings.TrimSpace(quoted)
		if s == "" {
			return nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	p.Value = v
	p.Set = true
	return nil
}

// Valid reports whether the price is a usable non-negative number.
func (p Price) Valid() bool {
	return p.Set && !math.IsNaN(p.Value) && !math.IsInf(p.Value, 0) && p.Value >= 0
}

// TagList accepts either an array of strings or a single comma-separated
// string, normalizing to trimmed non-empty entries in order.
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var joined string
		if err := json.Unmarshal(data, &joined); err != nil {
			return err
		}
		*t = splitTags(joined)
		return nil
	}
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = trimTags(raw)
	return nil
}

func splitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return trimTags(strings.Split(s, ","))
}

func trimTags(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, tag := range raw {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
