package cli

import (
	"context"
	"fmt"
)

// Add puts a listed item into the cart. Duplicate adds are no-ops.
func (a *App) Add(ctx context.Context, id string) error {
	if id == "" {
		printlnFn("Usage: add <id>")
		return nil
	}
	for _, item := range a.store.Items() {
		if item.ID == id {
			if a.store.AddToCart(item) {
				printlnFn("Added to cart:", item.Title)
			} else {
				printlnFn("Already in cart:", item.Title)
			}
			return nil
		}
	}
	printlnFn("No such item in the catalog:", id)
	return nil
}

// Cart renders the cart contents and total.
func (a *App) Cart(ctx context.Context) error {
	entries := a.store.Cart()
	if len(entries) == 0 {
		printlnFn("Cart is empty")
		return nil
	}
	var total float64
	for i, entry := range entries {
		printlnFn(fmt.Sprintf("%2d. %-30s $%.2f", i+1, entry.Item.Title, entry.Item.Price))
		total += entry.Item.Price
	}
	printlnFn(fmt.Sprintf("Total: $%.2f", total))
	return nil
}

// Checkout opens the checkout view. Payment is out of scope; this only
// mirrors the side-menu toggle.
func (a *App) Checkout(ctx context.Context) error {
	a.store.OpenCheckout()
	if err := a.Cart(ctx); err != nil {
		return err
	}
	a.store.CloseCheckout()
	return nil
}
