package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/united77/cricfees/internal/config"
	"github.com/united77/cricfees/internal/export"
	"github.com/united77/cricfees/internal/service"
	"github.com/united77/cricfees/internal/storage/sqlite"
	"github.com/united77/cricfees/internal/web"
	"github.com/united77/cricfees/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	roster := service.NewRosterService(store)
	matches := service.NewMatchService(store)
	renderer := export.New(cfg.Team.Name, cfg.Team.Currency)
	exports := service.NewExportService(store, renderer)

	server := web.NewServer(cfg, roster, matches, exports)

	// h2c allows HTTP/2 without TLS for local browser clients.
	handler := h2c.NewHandler(server.Handler(), &http2.Server{})
	httpServer := server.HTTPServer(handler)

	slog.Info("Server starting",
		"team", cfg.Team.Name,
		"address", httpServer.Addr,
		"url", fmt.Sprintf("http://localhost%s", httpServer.Addr),
	)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
