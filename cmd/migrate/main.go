// Command migrate runs schema operations against the configured database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"holocron/internal/config"
	"holocron/internal/database"
	"holocron/internal/middleware"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func usage() error {
	return fmt.Errorf("usage: go run ./cmd/migrate <auto|status>")
}

func run() error {
	flag.Parse()
	if flag.NArg() < 1 {
		return usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	middleware.ConfigureLogger(cfg.Env)
	cfg.AutoMigrate = false

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = database.Close(db) }()

	ctx := context.Background()
	switch strings.ToLower(strings.TrimSpace(flag.Arg(0))) {
	case "auto":
		if err := database.ApplySchema(ctx, db); err != nil {
			return fmt.Errorf("auto schema apply failed: %w", err)
		}
		log.Println("automigrations applied")
	case "status":
		status, err := database.GetSchemaStatus(ctx, db)
		if err != nil {
			return fmt.Errorf("schema status failed: %w", err)
		}
		missing := 0
		for _, s := range status {
			state := "present"
			if !s.Exists {
				state = "missing"
				missing++
			}
			log.Printf("%-20s %s", s.Table, state)
		}
		log.Printf("env=%s tables=%d missing=%d", cfg.Env, len(status), missing)
	default:
		return usage()
	}

	return nil
}
