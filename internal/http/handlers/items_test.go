package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hongminglow/shopfront/internal/auth"
	"github.com/hongminglow/shopfront/internal/models"
	"github.com/hongminglow/shopfront/internal/models/dto"
	"github.com/stretchr/testify/require"
)

func newItemsServer(t *testing.T) (*httptest.Server, *fakeItemStore, *auth.TokenManager) {
	t.Helper()
	store := &fakeItemStore{}
	tokens := auth.NewTokenManager("test-secret", "shopfront", 168*time.Hour)
	mux := http.NewServeMux()
	NewItemsHandler(store, tokens).Register(mux)
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts, store, tokens
}

func seedItems(t *testing.T, store *fakeItemStore, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		_, err := store.CreateItem(context.Background(), models.Item{
			Title: fmt.Sprintf("Item %d", i),
			Price: float64(i),
		})
		require.NoError(t, err)
	}
}

func getPage(t *testing.T, url string) dto.ItemPage {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page dto.ItemPage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	return page
}

func TestListItemsPagination(t *testing.T) {
	ts, store, _ := newItemsServer(t)
	seedItems(t, store, 25)

	page := getPage(t, ts.URL+"/api/items?page=1&limit=10")
	require.Equal(t, 1, page.Page)
	require.Equal(t, 10, page.Limit)
	require.Equal(t, 25, page.Total)
	require.Equal(t, 3, page.TotalPages) // ceil(25/10)
	require.Len(t, page.Items, 10)

	// newest first
	require.Equal(t, "Item 25", page.Items[0].Title)

	last := getPage(t, ts.URL+"/api/items?page=3&limit=10")
	require.Len(t, last.Items, 5)

	// page beyond the last one: empty items, same total, no error
	beyond := getPage(t, ts.URL+"/api/items?page=4&limit=10")
	require.Empty(t, beyond.Items)
	require.Equal(t, 25, beyond.Total)
}

func TestListItemsDefaultsAndFloors(t *testing.T) {
	ts, store, _ := newItemsServer(t)
	seedItems(t, store, 3)

	page := getPage(t, ts.URL+"/api/items")
	require.Equal(t, 1, page.Page)
	require.Equal(t, 10, page.Limit)

	floored := getPage(t, ts.URL+"/api/items?page=0&limit=-5")
	require.Equal(t, 1, floored.Page)
	require.Equal(t, 1, floored.Limit)
}

func TestListItemsSearch(t *testing.T) {
	ts, store, _ := newItemsServer(t)
	_, err := store.CreateItem(context.Background(), models.Item{
		Title:       "Classic Wristwatch",
		Description: "A timeless analog wristwatch.",
		Price:       79.99,
	})
	require.NoError(t, err)
	_, err = store.CreateItem(context.Background(), models.Item{
		Title:       "Ceramic Mug Set",
		Description: "Set of 2 ceramic mugs.",
		Price:       19.99,
	})
	require.NoError(t, err)

	for _, q := range []string{"watch", "WATCH", "wrist"} {
		page := getPage(t, ts.URL+"/api/items?q="+q)
		require.Equal(t, 1, page.Total, "query %q", q)
		require.Equal(t, "Classic Wristwatch", page.Items[0].Title)
	}

	// description matches too
	page := getPage(t, ts.URL+"/api/items?q=analog")
	require.Equal(t, 1, page.Total)
}

func TestGetItem(t *testing.T) {
	ts, store, _ := newItemsServer(t)
	created, err := store.CreateItem(context.Background(), models.Item{Title: "Yoga Mat Pro", Price: 29.99})
	require.NoError(t, err)

	resp, err := http.Get(ts.URL + "/api/items/" + created.ID)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var item models.Item
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))
	require.Equal(t, "Yoga Mat Pro", item.Title)

	missing, err := http.Get(ts.URL + "/api/items/no-such-id")
	require.NoError(t, err)
	defer missing.Body.Close()
	require.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func createItemRequest(t *testing.T, url, token string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, url+"/api/items", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestCreateItemRequiresAuth(t *testing.T) {
	ts, _, _ := newItemsServer(t)

	resp := createItemRequest(t, ts.URL, "", map[string]any{"title": "X", "price": 1})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateItem(t *testing.T) {
	ts, _, tokens := newItemsServer(t)
	token, err := tokens.Generate(models.User{ID: "user-1", Email: "ada@x.com", Role: models.RoleUser})
	require.NoError(t, err)

	t.Run("success with comma-separated tags", func(t *testing.T) {
		resp := createItemRequest(t, ts.URL, token, map[string]any{
			"title": "Classic Wristwatch",
			"price": 79.99,
			"tags":  "a, b,c",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var item models.Item
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))
		require.Equal(t, []string{"a", "b", "c"}, item.Tags)
	})

	t.Run("numeric string price is coerced", func(t *testing.T) {
		resp := createItemRequest(t, ts.URL, token, map[string]any{
			"title": "Strap", "price": "12.50",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var item models.Item
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&item))
		require.Equal(t, 12.5, item.Price)
	})

	t.Run("missing title", func(t *testing.T) {
		resp := createItemRequest(t, ts.URL, token, map[string]any{"price": 5})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "title and price are required", decodeBody(t, resp)["message"])
	})

	t.Run("missing price", func(t *testing.T) {
		resp := createItemRequest(t, ts.URL, token, map[string]any{"title": "X"})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "title and price are required", decodeBody(t, resp)["message"])
	})

	t.Run("null price", func(t *testing.T) {
		resp := createItemRequest(t, ts.URL, token, map[string]any{"title": "X", "price": nil})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("negative price", func(t *testing.T) {
		resp := createItemRequest(t, ts.URL, token, map[string]any{"title": "X", "price": -1})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
