package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"places-api/config"
	"places-api/pkg/database"

	"go.mongodb.org/mongo-driver/mongo"
)

const usage = `
Places API - Database CLI Tool

Usage:
  migrate [command]

Commands:
  indexes     Create the collection indexes (unique users.email, places.creator)
  status      Show database connection status and document counts
  seed        Insert the sample user and place (idempotent)
  truncate    Delete every user and place (DANGEROUS)

Examples:
  go run cmd/migrate/main.go indexes
  go run cmd/migrate/main.go seed
`

func main() {
	flag.Usage = func() {
		fmt.Print(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	command := flag.Arg(0)

	cfg := config.LoadConfig()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Database connection failed: %v", err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(cfg.MongoDB)

	switch command {
	case "indexes":
		log.Println("🚀 Creating indexes...")
		if err := database.EnsureIndexes(ctx, db); err != nil {
			log.Fatalf("❌ Index creation failed: %v", err)
		}
		log.Println("✅ Indexes created successfully!")
	case "status":
		showStatus(ctx, db)
	case "seed":
		runSeed(ctx, cfg, db)
	case "truncate":
		log.Println("⚠️  WARNING: This will DELETE all users and places!")
		if err := database.Truncate(ctx, db); err != nil {
			log.Fatalf("❌ Truncate failed: %v", err)
		}
		log.Println("✅ All collections truncated!")
	default:
		fmt.Printf("Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

func showStatus(ctx context.Context, db *mongo.Database) {
	log.Printf("✅ Database connection: OK (%s)", db.Name())

	counts, err := database.CollectionCounts(ctx, db)
	if err != nil {
		log.Fatalf("❌ Failed to count documents: %v", err)
	}
	for name, n := range counts {
		log.Printf("✅ Collection %-10s %d documents", name, n)
	}
}

func runSeed(ctx context.Context, cfg *config.Config, db *mongo.Database) {
	log.Println("🌱 Seeding database...")

	result, err := database.Seed(ctx, db, database.DefaultSeedConfig(cfg.PlaceholderImageURL))
	if err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("📊 Seed Summary:")
	log.Printf("   - User: %s (ID: %s, created: %t)", result.User.Email, result.User.ID.Hex(), result.UserCreated)
	log.Printf("   - Place: %s (ID: %s, created: %t)", result.Place.Title, result.Place.ID.Hex(), result.PlaceCreated)
	log.Println("✅ Seeding completed!")
}
