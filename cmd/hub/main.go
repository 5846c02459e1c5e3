package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/stash/internal/account"
	"github.com/MrJamesThe3rd/stash/internal/config"
	"github.com/MrJamesThe3rd/stash/internal/database"
	"github.com/MrJamesThe3rd/stash/internal/hub"
	hubStore "github.com/MrJamesThe3rd/stash/internal/hub/store"
	"github.com/MrJamesThe3rd/stash/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.Open(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	store := hubStore.New(db)
	if err := store.Init(ctx); err != nil {
		slog.Error("failed to apply schema", "error", err)
		os.Exit(1)
	}

	hubService := hub.NewService(store)

	// Make sure the admin credential exists so the directory can be managed.
	adminKey, err := account.ParseKey(cfg.Admin.Letter, cfg.Admin.Code)
	if err != nil {
		slog.Error("invalid admin credential", "error", err)
		os.Exit(1)
	}

	if err := hubService.AddRoute(ctx, account.Route{Key: adminKey, Label: cfg.Admin.Label, IsAdmin: true}); err != nil {
		slog.Error("failed to seed admin route", "error", err)
		os.Exit(1)
	}

	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.TTL)
	router := hub.NewRouter(hub.NewHandler(hubService, sessions))

	port := fmt.Sprintf(":%d", cfg.Hub.Port)
	slog.Info("starting hub", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
