package main

import (
	"flag"
	"log"
	"os"

	migrate "github.com/rubenv/sql-migrate"

	"github.com/johnquangdev/candidate-screening/internal/infrastructure/database"
	"github.com/johnquangdev/candidate-screening/pkg/config"
)

// Usage: go run ./scripts/migrate [-max N] up|down|status
func main() {
	max := flag.Int("max", 0, "maximum number of migrations to apply (0 means all)")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Get the underlying SQL database connection from GORM
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database connection: %v", err)
	}

	switch command {
	case "up":
		log.Println("🔄 Applying embedded migrations...")
		n, err := database.Migrate(sqlDB, migrate.Up, *max)
		if err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
		log.Printf("✅ Successfully applied %d migration(s)!\n", n)

	case "down":
		limit := *max
		if limit == 0 {
			limit = 1
		}
		log.Printf("⏪ Rolling back %d migration(s)...", limit)
		n, err := database.Migrate(sqlDB, migrate.Down, limit)
		if err != nil {
			log.Fatalf("Failed to roll back migrations: %v", err)
		}
		log.Printf("✅ Rolled back %d migration(s)\n", n)

	case "status":
		known, err := database.MigrationSource().FindMigrations()
		if err != nil {
			log.Fatalf("Failed to read migrations: %v", err)
		}
		records, err := migrate.GetMigrationRecords(sqlDB, "postgres")
		if err != nil {
			log.Fatalf("Failed to read migration records: %v", err)
		}
		applied := make(map[string]string, len(records))
		for _, r := range records {
			applied[r.Id] = r.AppliedAt.Format("2006-01-02 15:04:05")
		}
		for _, m := range known {
			if at, ok := applied[m.Id]; ok {
				log.Printf("✅ %s (applied %s)", m.Id, at)
				continue
			}
			log.Printf("⏳ %s (pending)", m.Id)
		}

	default:
		log.Printf("unknown command %q, expected up, down or status", command)
		os.Exit(2)
	}
}
