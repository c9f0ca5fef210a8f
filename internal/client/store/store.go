// Package store holds all client-side session, catalog, and cart state in a
// single explicit object. It is constructed once at startup and injected into
// the presentation layer; its methods are the only write path.
package store

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/hongminglow/shopfront/internal/client/api"
	"github.com/hongminglow/shopfront/internal/client/localstore"
	"github.com/hongminglow/shopfront/internal/client/models"
)

// catalogFetchLimit caps the one-shot startup catalog fetch.
const catalogFetchLimit = 100

// Backend is the slice of the API adapter the store depends on.
type Backend interface {
	Register(ctx context.Context, name, email, password string) (*api.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	ListItems(ctx context.Context, page, limit int, query string) (api.CatalogPage, error)
}

// SignInData selects the auth flow: a name means register, an email alone
// means login, neither means "restore whatever account is persisted locally".
type SignInData struct {
	Name     string
	Email    string
	Password string
}

// SignInResult reports the outcome of SignIn. Degraded marks the permissive
// fallback taken when the backend answered without a token.
type SignInResult struct {
	Success  bool
	Degraded bool
	User     models.Account
	Token    string
}

// Store is the client session/cart state store.
type Store struct {
	backend Backend
	local   *localstore.Store

	mu             sync.Mutex
	account        models.Account
	signedIn       bool
	items          []models.CatalogItem
	searchValue    string
	searchCategory string
	cart           []models.CartEntry
	productDetail  models.CatalogItem
	detailOpen     bool
	checkoutOpen   bool
}

// New creates the store and restores a persisted account, if any, so the UI
// starts signed in when a previous session left one behind.
func New(backend Backend, local *localstore.Store) *Store {
	s := &Store{backend: backend, local: local}
	if account, ok := local.Account(); ok {
		s.account = account
		s.signedIn = true
	}
	return s
}

// SignIn runs the auth flow described by data. On a full {user, token}
// response both are persisted locally. On a partial response the user view
// (or an empty account) is still persisted; this compatibility fallback is
// deliberate and reported via Degraded rather than turned into an error.
// On backend failure no local state changes and the error is returned.
func (s *Store) SignIn(ctx context.Context, data SignInData) (SignInResult, error) {
	var (
		res *api.AuthResponse
		err error
	)
	switch {
	case data.Name != "":
		res, err = s.backend.Register(ctx, data.Name, data.Email, data.Password)
	case data.Email != "":
		res, err = s.backend.Login(ctx, data.Email, data.Password)
	default:
		return s.restoreLocal(), nil
	}
	if err != nil {
		return SignInResult{}, err
	}

	if res.Token != "" && res.User != nil {
		if err := s.local.SaveToken(res.Token); err != nil {
			log.Printf("persist token: %v", err)
		}
		if err := s.local.SaveAccount(*res.User); err != nil {
			log.Printf("persist account: %v", err)
		}
		s.setAccount(*res.User)
		return SignInResult{Success: true, User: *res.User, Token: res.Token}, nil
	}

	account := models.Account{}
	if res.User != nil {
		account = *res.User
	}
	if err := s.local.SaveAccount(account); err != nil {
		log.Printf("persist account: %v", err)
	}
	s.setAccount(account)
	return SignInResult{Success: true, Degraded: true, User: account}, nil
}

func (s *Store) restoreLocal() SignInResult {
	account, ok := s.local.Account()
	if !ok {
		return SignInResult{}
	}
	s.setAccount(account)
	return SignInResult{Success: true, User: account, Token: s.local.Token()}
}

func (s *Store) setAccount(account models.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = account
	s.signedIn = true
}

// SignOut clears the persisted token and account unconditionally. Idempotent.
func (s *Store) SignOut() {
	if err := s.local.Clear(); err != nil {
		log.Printf("clear local session: %v", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = models.Account{}
	s.signedIn = false
}

// Account returns the current account and whether the user is signed in.
func (s *Store) Account() (models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.account, s.signedIn
}

// LoadCatalog fetches up to catalogFetchLimit items and replaces the item
// list. A failed fetch leaves the list untouched.
func (s *Store) LoadCatalog(ctx context.Context) error {
	page, err := s.backend.ListItems(ctx, 1, catalogFetchLimit, "")
	if err != nil {
		log.Printf("failed to fetch items from backend: %v", err)
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = page.Items
	return nil
}

// Items returns the full (unfiltered) item list.
func (s *Store) Items() []models.CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CatalogItem(nil), s.items...)
}

// SetSearchValue updates the free-text filter.
func (s *Store) SetSearchValue(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchValue = value
}

// SetSearchCategory updates the category filter; empty means no filter.
func (s *Store) SetSearchCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchCategory = category
}

// UpdateCategoryPath derives the category filter from a navigation path by
// stripping the leading separator ("/electronics" -> "electronics").
func (s *Store) UpdateCategoryPath(path string) {
	s.SetSearchCategory(strings.TrimPrefix(path, "/"))
}

// FilteredItems is the derived view: case-insensitive substring match on
// title, AND on category when a category filter is set.
func (s *Store) FilteredItems() []models.CatalogItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	sv := strings.ToLower(s.searchValue)
	sc := strings.ToLower(s.searchCategory)

	out := make([]models.CatalogItem, 0, len(s.items))
	for _, item := range s.items {
		if !strings.Contains(strings.ToLower(item.Title), sv) {
			continue
		}
		if sc != "" && !strings.Contains(strings.ToLower(item.Category), sc) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// AddToCart adds the item unless an entry with the same ID already exists.
// Returns whether the cart changed.
func (s *Store) AddToCart(item models.CatalogItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, entry := range s.cart {
		if entry.Item.ID == item.ID {
			return false
		}
	}
	s.cart = append(s.cart, models.CartEntry{Item: item})
	return true
}

// Cart returns the cart entries in insertion order.
func (s *Store) Cart() []models.CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartEntry(nil), s.cart...)
}

// Counter returns the number of cart entries.
func (s *Store) Counter() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cart)
}

// ShowProduct opens the product-detail view for the given item.
func (s *Store) ShowProduct(item models.CatalogItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.productDetail = item
	s.detailOpen = true
}

// ProductDetail returns the detail item and whether the view is open.
func (s *Store) ProductDetail() (models.CatalogItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.productDetail, s.detailOpen
}

// CloseProductDetail hides the product-detail view.
func (s *Store) CloseProductDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detailOpen = false
}

// OpenCheckout shows the checkout side view.
func (s *Store) OpenCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkoutOpen = true
}

// CloseCheckout hides the checkout side view.
func (s *Store) CloseCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkoutOpen = false
}

// CheckoutOpen reports whether the checkout view is open.
func (s *Store) CheckoutOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkoutOpen
}
