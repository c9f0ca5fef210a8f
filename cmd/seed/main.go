// Seeds the database with an admin account and a small sample catalog.
// Safe to run repeatedly: existing users and items are left alone.
package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/hongminglow/shopfront/internal/config"
	"github.com/hongminglow/shopfront/internal/models"
	"github.com/hongminglow/shopfront/internal/storage"
	"github.com/hongminglow/shopfront/internal/storage/postgres"
	"github.com/joho/godotenv"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "AdminPass123" // change after seeding
)

var sampleItems = []models.Item{
	{
		Title:       "Classic Wristwatch",
		Description: "A timeless analog wristwatch with leather strap and water resistance.",
		Price:       79.99,
		ImageURL:    "https://picsum.photos/seed/watch/600/400",
		Tags:        []string{"accessories", "watch"},
	},
	{
		Title:       "Wireless Earbuds",
		Description: "True wireless earbuds with noise reduction and 24h battery life.",
		Price:       49.99,
		ImageURL:    "https://picsum.photos/seed/earbuds/600/400",
		Tags:        []string{"electronics", "audio"},
	},
	{
		Title:       "Vintage Backpack",
		Description: "Durable canvas backpack with padded laptop compartment and multiple pockets.",
		Price:       59.5,
		ImageURL:    "https://picsum.photos/seed/backpack/600/400",
		Tags:        []string{"bags", "travel"},
	},
	{
		Title:       "Ceramic Mug Set",
		Description: "Set of 2 ceramic mugs, dishwasher safe and microwave friendly.",
		Price:       19.99,
		ImageURL:    "https://picsum.photos/seed/mug/600/400",
		Tags:        []string{"home", "kitchen"},
	},
	{
		Title:       "Yoga Mat Pro",
		Description: "Non-slip yoga mat with extra cushioning, ideal for all practice levels.",
		Price:       29.99,
		ImageURL:    "https://picsum.photos/seed/yogamat/600/400",
		Tags:        []string{"fitness", "wellness"},
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found; relying on existing environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	store, err := postgres.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	defer store.Close()

	if err := seedAdmin(ctx, store, cfg.BcryptCost); err != nil {
		log.Fatalf("seed admin: %v", err)
	}
	if err := seedItems(ctx, store); err != nil {
		log.Fatalf("seed items: %v", err)
	}

	log.Println("seeding complete")
}

func seedAdmin(ctx context.Context, store *postgres.Store, cost int) error {
	_, err := store.FindUserByEmail(ctx, adminEmail)
	if err == nil {
		log.Printf("admin user already exists: %s", adminEmail)
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), cost)
	if err != nil {
		return err
	}
	_, err = store.CreateUser(ctx, models.User{
		Name:         "Admin",
		Email:        adminEmail,
		Role:         models.RoleAdmin,
		PasswordHash: string(hash),
	})
	if err != nil && !errors.Is(err, storage.ErrAlreadyExists) {
		return err
	}
	log.Printf("created admin user: %s", adminEmail)
	return nil
}

func seedItems(ctx context.Context, store *postgres.Store) error {
	for _, item := range sampleItems {
		exists, err := itemExists(ctx, store, item.Title)
		if err != nil {
			return err
		}
		if exists {
			log.Printf("item already exists, skipping: %q", item.Title)
			continue
		}
		if _, err := store.CreateItem(ctx, item); err != nil {
			return err
		}
		log.Printf("inserted item: %q", item.Title)
	}
	return nil
}

func itemExists(ctx context.Context, store *postgres.Store, title string) (bool, error) {
	items, _, err := store.ListItems(ctx, storage.ItemQuery{Page: 1, Limit: 10, Search: title})
	if err != nil {
		return false, err
	}
	for _, item := range items {
		if item.Title == title {
			return true, nil
		}
	}
	return false, nil
}
