// Command seed fills a development database with catalog fixtures and fake users.
package main

import (
	"context"
	"flag"
	"log"

	"holocron/internal/config"
	"holocron/internal/database"
	"holocron/internal/middleware"
	"holocron/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "Number of extra users to create")
	shouldClean := flag.Bool("clean", false, "Remove favorites, users and catalog rows before seeding")
	randSeed := flag.Int64("seed", 0, "Random seed for generated users (0 = random)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	middleware.ConfigureLogger(cfg.Env)
	if cfg.IsProduction() {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := database.ApplySchema(context.Background(), db); err != nil {
		log.Fatalf("Schema apply failed: %v", err)
	}

	opts := seed.Options{Users: *numUsers, Clean: *shouldClean, RandSeed: *randSeed}
	if err := seed.Run(context.Background(), db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("All seeded users have the password: %s", seed.DefaultPassword)
}
