// Package models holds the client-side view models: the locally persisted
// account, the normalized catalog item, and cart entries.
package models

import "encoding/json"

// Account mirrors the public user view returned by the backend. It is
// persisted locally so the storefront restores a signed-in state on start.
type Account struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Empty reports whether the account carries no identity at all.
func (a Account) Empty() bool {
	return a.ID == "" && a.Name == "" && a.Email == "" && a.Role == ""
}

// CatalogItem is the canonical client-side item shape. Backend records and
// template records are normalized into it at the API boundary; nothing
// downstream ever branches on which backend field was populated.
type CatalogItem struct {
	ID          string
	Title       string
	Price       float64
	Description string
	Image       string
	Category    string
	// Raw retains the original backend record for downstream use.
	Raw json.RawMessage
}

// CartEntry is a catalog item placed in the cart. At most one entry exists
// per distinct item ID.
type CartEntry struct {
	Item CatalogItem
}
