package main

import (
	"context"
	"log"
	"os"
	"time"

	"petshop/internal/database"
	"petshop/internal/domain"
	"petshop/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a development database: an admin, a couple of clients, the catalog
// (goods and services) and a cart to check out against.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "petshop.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	items := repository.NewItemRepository(db)
	carts := repository.NewCartRepository(db)

	seedUsers := []struct {
		fullName string
		email    string
		password string
		role     domain.UserRole
	}{
		{"Shop Admin", "admin@petshop.local", "admin123", domain.RoleAdmin},
		{"Ana Client", "ana@petshop.local", "client123", domain.RoleClient},
		{"Budi Client", "budi@petshop.local", "client123", domain.RoleClient},
	}

	userIDs := make(map[string]int64)
	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("bcrypt failed: %v", err)
		}
		u := &domain.User{
			FullName:     su.fullName,
			Email:        su.email,
			PasswordHash: string(hash),
			Role:         su.role,
			CreatedAt:    time.Now().UTC(),
		}
		if err := users.Create(ctx, u); err != nil {
			log.Printf("skipping user %s: %v", su.email, err)
			continue
		}
		userIDs[su.email] = u.ID
		log.Printf("seeded user %s (id=%d)", u.Email, u.ID)
	}

	seedItems := []domain.Item{
		{Name: "Dog Food", Category: domain.CategoryFood, Price: 50000, Stock: 10, Description: "Dry food, 1kg bag"},
		{Name: "Cat Food", Category: domain.CategoryFood, Price: 45000, Stock: 25, Description: "Dry food, 1kg bag"},
		{Name: "Pet Leash", Category: domain.CategoryAccessory, Price: 35000, Stock: 15},
		{Name: "Grooming Premium", Category: domain.CategoryService, Price: 85000, Description: "Full wash, trim and nails"},
		{Name: "Pet Hotel", Category: domain.CategoryService, Price: 120000, Description: "Per night"},
	}

	itemIDs := make(map[string]int64)
	for i := range seedItems {
		it := seedItems[i]
		it.CreatedAt = time.Now().UTC()
		if err := items.Create(ctx, &it); err != nil {
			log.Printf("skipping item %s: %v", it.Name, err)
			continue
		}
		itemIDs[it.Name] = it.ID
		log.Printf("seeded item %s (id=%d)", it.Name, it.ID)
	}

	if anaID, ok := userIDs["ana@petshop.local"]; ok {
		if foodID, ok := itemIDs["Dog Food"]; ok {
			if _, err := carts.AddLine(ctx, anaID, foodID, 2); err != nil {
				log.Printf("cart seed failed: %v", err)
			} else {
				log.Printf("seeded cart for user %d", anaID)
			}
		}
	}

	log.Println("seed complete")
}
