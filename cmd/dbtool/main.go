package main

import (
	"context"
	"log"
	"voltage-room-service/internal/adapters/csvsource"
	"voltage-room-service/internal/adapters/repositories"
	"voltage-room-service/internal/config"
	"voltage-room-service/internal/geo/rd"
	"voltage-room-service/internal/platform/db"
)

// dbtool initializes the Postgres schema and imports a directory of CSV exports.
func main() {
	config.Load()

	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	mode, err := rd.ParseMode(config.Get("RD_MODE", string(rd.ModeKadaster)))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	pg, err := db.Open(ctx, databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	log.Println("Initializing database schema...")
	if err := repositories.InitPostgresSchema(ctx, pg); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	dataDir := config.Get("DATA_DIR", "data/csv")
	log.Printf("Importing %s (rd_mode=%s)...", dataDir, mode)
	stats, err := repositories.Import(ctx, pg, repositories.Postgres, csvsource.NewDir(dataDir), mode.Converter())
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}
	log.Printf("Import complete rooms=%d samples=%d objects=%d unplaced=%d", stats.Rooms, stats.Samples, stats.Objects, stats.UnplacedObjects)
}
