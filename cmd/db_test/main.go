package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"go-linkedin-scraper/internal/sink"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		godotenv.Load("../../.env") // Fallback
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set. Please check your .env file.")
	}

	fmt.Println("Attempting to connect to PostgreSQL...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// connects, pings and creates scraped_jobs if missing
	pg, err := sink.ConnectPostgres(ctx, dbURL)
	if err != nil {
		log.Fatalf("❌ Failed to prepare the database: %v\n(Check your connection string, password, and ensure you have internet access)", err)
	}
	defer pg.Close()

	fmt.Println("✅ Connected. Table scraped_jobs is ready for mirrored rows.")
}
