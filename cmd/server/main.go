package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/erazemk/evidenca/internal/api"
	"github.com/erazemk/evidenca/internal/config"
	"github.com/erazemk/evidenca/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Flags override the environment.
	addr := flag.String("addr", cfg.Addr, "listen address")
	dbPath := flag.String("db", cfg.DBPath, "path to SQLite database file")
	flag.Parse()

	setupLogger(cfg.LogLevel)

	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	if err := db.EnsureSchema(database); err != nil {
		log.Fatalf("Failed to create database schema: %v", err)
	}

	handler := api.LoggingMiddleware(api.NewRouter(database))

	slog.Info("server listening", "addr", *addr, "db", *dbPath)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// setupLogger installs a JSON slog handler at the configured level as the
// process default.
func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
