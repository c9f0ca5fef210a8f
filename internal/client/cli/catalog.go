package cli

import (
	"context"
	"fmt"
)

// List renders the filtered catalog view.
func (a *App) List(ctx context.Context) error {
	items := a.store.FilteredItems()
	if len(items) == 0 {
		printlnFn("No items to show")
		return nil
	}
	for i, item := range items {
		printlnFn(fmt.Sprintf("%2d. %-30s $%-8.2f [%s]  %s", i+1, item.Title, item.Price, item.Category, item.ID))
	}
	return nil
}

// Search sets the free-text filter and re-renders the list.
func (a *App) Search(ctx context.Context, text string) error {
	a.store.SetSearchValue(text)
	return a.List(ctx)
}

// Category sets the category filter from a navigation path and re-renders.
func (a *App) Category(ctx context.Context, path string) error {
	a.store.UpdateCategoryPath(path)
	return a.List(ctx)
}

// Show fetches a single item and opens the product-detail view.
func (a *App) Show(ctx context.Context, id string) error {
	if id == "" {
		printlnFn("Usage: show <id>")
		return nil
	}
	item, err := a.api.GetItem(ctx, id)
	if err != nil {
		printlnFn("Cannot show item:", errMessage(err))
		return err
	}
	a.store.ShowProduct(item)

	printlnFn("Title:      ", item.Title)
	printlnFn(fmt.Sprintf("Price:       $%.2f", item.Price))
	printlnFn("Category:   ", item.Category)
	printlnFn("Description:", item.Description)
	if item.Image != "" {
		printlnFn("Image:      ", item.Image)
	}
	return nil
}
