package main

import (
	"log"
	"log/slog"
	"os"

	"newshub/database"
	"newshub/database/seed"
	"newshub/internal/config"
)

func main() {
	log.Println("Starting database seed...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v\nMake sure PostgreSQL is running", err)
	}

	data := seed.DevData()
	if err := seed.Run(db, data); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Printf("✓ Seeded %d topics, %d users, %d articles, %d comments",
		len(data.Topics), len(data.Users), len(data.Articles), len(data.Comments))
}
