package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"voltage-room-service/internal/geo/rd"

	"github.com/joho/godotenv"
)

// Load reads a .env file when present. Variables already set in the environment win.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// Server holds the settings for cmd/server.
type Server struct {
	Port    string
	DBPath  string
	DataDir string
	// RD_MODE: kadaster (default) plots in the Netherlands; reference
	// reproduces the exact reference converter output.
	RDMode rd.Mode
}

func LoadServer() (Server, error) {
	mode, err := rd.ParseMode(Get("RD_MODE", string(rd.ModeKadaster)))
	if err != nil {
		return Server{}, fmt.Errorf("load config: RD_MODE: %w", err)
	}

	return Server{
		Port:    Get("PORT", "8080"),
		DBPath:  Get("DB_PATH", "data/app.db"),
		DataDir: Get("DATA_DIR", "data/csv"),
		RDMode:  mode,
	}, nil
}
