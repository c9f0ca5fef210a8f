package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/hongminglow/shopfront/internal/apperr"
	"github.com/hongminglow/shopfront/internal/auth"
	"github.com/hongminglow/shopfront/internal/http/respond"
	"github.com/hongminglow/shopfront/internal/middleware"
	"github.com/hongminglow/shopfront/internal/models"
	"github.com/hongminglow/shopfront/internal/models/dto"
	"github.com/hongminglow/shopfront/internal/storage"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ItemsHandler owns catalog listing, lookup, and authenticated creation.
type ItemsHandler struct {
	store  storage.ItemStore
	tokens *auth.TokenManager
}

// NewItemsHandler constructs the handler.
func NewItemsHandler(store storage.ItemStore, tokens *auth.TokenManager) *ItemsHandler {
	return &ItemsHandler{store: store, tokens: tokens}
}

// Register attaches item routes to the mux. Creation sits behind the
// session guard; listing and lookup are public.
func (h *ItemsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/items", h.handleList)
	mux.HandleFunc("GET /api/items/{id}", h.handleGet)
	mux.Handle("POST /api/items", middleware.RequireAuth(h.tokens, http.HandlerFunc(h.handleCreate)))
}

func (h *ItemsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	query := storage.ItemQuery{
		Page:   atLeast(queryInt(r, "page", defaultPage), 1),
		Limit:  atLeast(queryInt(r, "limit", defaultLimit), 1),
		Search: strings.TrimSpace(r.URL.Query().Get("q")),
	}

	items, total, err := h.store.ListItems(r.Context(), query)
	if err != nil {
		respond.Err(w, apperr.Internal("failed to list items", err))
		return
	}

	respond.JSON(w, http.StatusOK, dto.ItemPage{
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(query.Limit))),
		Total:      total,
		Items:      items,
	})
}

func (h *ItemsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	item, err := h.store.GetItem(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Err(w, apperr.NotFound("Item not found"))
			return
		}
		respond.Err(w, apperr.Internal("failed to fetch item", err))
		return
	}
	respond.JSON(w, http.StatusOK, item)
}

func (h *ItemsHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.IdentityFrom(r.Context()); !ok {
		respond.Err(w, apperr.Auth("Authorization token missing"))
		return
	}

	var req dto.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Err(w, apperr.Validation("invalid JSON payload"))
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" || !req.Price.Set {
		respond.Err(w, apperr.Validation("title and price are required"))
		return
	}
	if !req.Price.Valid() {
		respond.Err(w, apperr.Validation("price must be a non-negative number"))
		return
	}

	item := models.Item{
		Title:       title,
		Description: req.Description,
		Price:       req.Price.Value,
		ImageURL:    req.ImageURL,
		Tags:        req.Tags,
	}
	created, err := h.store.CreateItem(r.Context(), item)
	if err != nil {
		respond.Err(w, apperr.Internal("failed to create item", err))
		return
	}

	respond.JSON(w, http.StatusCreated, created)
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func atLeast(n, floor int) int {
	if n < floor {
		return floor
	}
	return n
}
