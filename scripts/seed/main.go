package main

import (
	"log"

	"github.com/dstasiak/med-reminder/internal/config"
	"github.com/dstasiak/med-reminder/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Println("Database seeded with sample profiles, medicines and schedules")
}
