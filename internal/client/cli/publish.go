package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/hongminglow/shopfront/internal/client/api"
)

// Publish creates a catalog item through the authenticated endpoint.
func (a *App) Publish(ctx context.Context) error {
	if !a.isSignedIn() {
		printlnFn("Sign in before publishing items")
		return nil
	}

	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	priceText, err := GetSimpleText(a.reader, "Price", a.out)
	if err != nil {
		return err
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(priceText), 64)
	if err != nil {
		printlnFn("Price must be a number")
		return nil
	}
	description, err := GetSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}
	imageURL, err := GetSimpleText(a.reader, "Image URL (optional)", a.out)
	if err != nil {
		return err
	}
	tagsText, err := GetSimpleText(a.reader, "Tags, comma-separated (optional)", a.out)
	if err != nil {
		return err
	}

	var tags []string
	for _, tag := range strings.Split(tagsText, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}

	item, err := a.api.CreateItem(ctx, api.CreateItemInput{
		Title:       title,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
		Tags:        tags,
	})
	if err != nil {
		printlnFn("Publish failed:", errMessage(err))
		return err
	}

	printlnFn("Published:", item.Title, "("+item.ID+")")
	// refresh so the new item shows up in list
	return a.store.LoadCatalog(ctx)
}
