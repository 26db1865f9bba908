package main

import (
	"log"
	"os"
	"time"

	"petshop/internal/database"
	"petshop/internal/pkg/jwt"
	"petshop/internal/repository"
	"petshop/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dsn := getenv("DATABASE_URL", "petshop.db")
	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if os.Getenv("AUTO_MIGRATE") != "false" {
		if err := repository.AutoMigrate(db); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
	}

	jwtSecret := getenv("JWT_SECRET", "dev-secret-change-me")
	jwtService := jwt.New(jwtSecret, 24*time.Hour)

	r := server.BuildRouter(db, jwtService, time.Now().UnixNano())

	port := getenv("PORT", "8080")
	log.Printf("listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
