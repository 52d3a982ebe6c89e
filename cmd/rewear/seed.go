package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sukrititalwar/rewear/internal/db"
	"github.com/sukrititalwar/rewear/internal/model"
	"github.com/sukrititalwar/rewear/internal/store"
)

// cmdSeed fills the database with a handful of demo accounts and
// approved listings so the marketplace is browsable right away.
func cmdSeed(args []string, log *zap.SugaredLogger) {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	dbPath := fs.String("db", envOr("REWEAR_DB", "rewear.sqlite3"), "path to SQLite database file")
	fs.Parse(args)

	database, err := db.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s := store.New(database, log, store.Config{})
	if err := seed(context.Background(), s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Seed data created. Demo accounts use the password \"password\".")
}

func seed(ctx context.Context, s *store.Store) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []struct{ username, email string }{
		{"maya", "maya@example.com"},
		{"arjun", "arjun@example.com"},
		{"zoe", "zoe@example.com"},
	}

	ids := make(map[string]string, len(users))
	for _, u := range users {
		created, err := s.CreateUser(ctx, u.username, u.email, string(hash), model.RoleUser)
		if err != nil {
			return fmt.Errorf("creating user %s: %w", u.username, err)
		}
		ids[u.username] = created.ID
	}

	items := []model.Item{
		{
			Title:       "Vintage Denim Jacket",
			Description: "Classic 90s wash, barely worn",
			Category:    "Jackets",
			Size:        "M",
			Type:        model.ItemTypeSwap,
			Brand:       "Levi's",
			Condition:   "Good",
			IsWashed:    true,
			Tags:        []string{"blue", "denim", "vintage"},
			UserID:      ids["maya"],
			Location:    "Brooklyn",
		},
		{
			Title:       "Floral Summer Dress",
			Description: "Light cotton, perfect for warm days",
			Category:    "Dresses",
			Size:        "S",
			Type:        model.ItemTypeRent,
			Brand:       "Zara",
			Condition:   "Excellent",
			RentPrice:   8,
			IsWashed:    true,
			Tags:        []string{"floral", "summer", "casual"},
			UserID:      ids["arjun"],
			Location:    "Brooklyn",
		},
		{
			Title:       "Wool Winter Coat",
			Description: "Heavy charcoal wool, very warm",
			Category:    "Jackets",
			Size:        "L",
			Type:        model.ItemTypeRedeem,
			Brand:       "Uniqlo",
			Condition:   "Good",
			Points:      40,
			Tags:        []string{"gray", "wool", "winter"},
			UserID:      ids["zoe"],
			Location:    "Queens",
		},
		{
			Title:       "Running Sneakers",
			Description: "Lightly used trail runners",
			Category:    "Shoes",
			Size:        "Free Size",
			Type:        model.ItemTypeSwap,
			Brand:       "Nike",
			Condition:   "Fair",
			Tags:        []string{"black", "sporty"},
			UserID:      ids["maya"],
			Location:    "Queens",
		},
	}

	for _, item := range items {
		created, err := s.CreateItem(ctx, item)
		if err != nil {
			return fmt.Errorf("creating item %q: %w", item.Title, err)
		}
		// Seed listings skip the moderation queue.
		if _, err := s.UpdateItemStatus(ctx, created.ID, model.ItemStatusApproved); err != nil {
			return fmt.Errorf("approving item %q: %w", item.Title, err)
		}
	}

	return nil
}
