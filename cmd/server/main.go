package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"
	"voltage-room-service/internal/adapters/csvsource"
	"voltage-room-service/internal/adapters/repositories"
	"voltage-room-service/internal/api"
	"voltage-room-service/internal/config"
	"voltage-room-service/internal/platform/db"
)

// main is the application composition root.
// It loads the CSV exports into SQLite, wires the repository behind ports and starts the HTTP server.
func main() {
	config.Load()

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	sqlDB, err := db.OpenSQLite(ctx, cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	if err := repositories.InitSchema(sqlDB); err != nil {
		log.Fatal(err)
	}

	// Re-import on every start so edited CSV exports show up after a restart.
	src := csvsource.NewDir(cfg.DataDir)
	stats, err := repositories.Import(ctx, sqlDB, repositories.SQLite, src, cfg.RDMode.Converter())
	if err != nil {
		log.Fatal(fmt.Errorf("load %s: %w", cfg.DataDir, err))
	}
	log.Printf(
		"Import complete rd_mode=%s rooms=%d samples=%d dropped_samples=%d orphaned_samples=%d objects=%d unplaced=%d outside_bbox=%d",
		cfg.RDMode, stats.Rooms, stats.Samples, stats.DroppedSamples, stats.OrphanedProfiles,
		stats.Objects, stats.UnplacedObjects, stats.OutsideBBox,
	)

	repo := repositories.NewSqliteRoomRepository(sqlDB)
	router := api.NewRouter(repo, cfg.RDMode)

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
