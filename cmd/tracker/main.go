package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/stash/internal/account"
	"github.com/MrJamesThe3rd/stash/internal/bill"
	billStore "github.com/MrJamesThe3rd/stash/internal/bill/store"
	"github.com/MrJamesThe3rd/stash/internal/config"
	"github.com/MrJamesThe3rd/stash/internal/goal"
	goalStore "github.com/MrJamesThe3rd/stash/internal/goal/store"
	trackerHttp "github.com/MrJamesThe3rd/stash/internal/http"
	billsHandler "github.com/MrJamesThe3rd/stash/internal/http/bills"
	goalsHandler "github.com/MrJamesThe3rd/stash/internal/http/goals"
	sessionHandler "github.com/MrJamesThe3rd/stash/internal/http/session"
	spendingHandler "github.com/MrJamesThe3rd/stash/internal/http/spending"
	unallocatedHandler "github.com/MrJamesThe3rd/stash/internal/http/unallocated"
	"github.com/MrJamesThe3rd/stash/internal/persist"
	"github.com/MrJamesThe3rd/stash/internal/persist/sqlite"
	"github.com/MrJamesThe3rd/stash/internal/remote"
	"github.com/MrJamesThe3rd/stash/internal/session"
	"github.com/MrJamesThe3rd/stash/internal/spending"
	"github.com/MrJamesThe3rd/stash/internal/sync"
	"github.com/MrJamesThe3rd/stash/internal/unallocated"
)

// ledgers are every document the dual store manages for an account.
var ledgers = []string{"goals", "goalDeposits", "unallocated", "spending", "bills", "billPayments"}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	key, err := account.ParseKey(cfg.Account.Letter, cfg.Account.Code)
	if err != nil {
		slog.Error("invalid account credential", "error", err)
		os.Exit(1)
	}

	local, err := sqlite.Open(cfg.Tracker.SQLitePath)
	if err != nil {
		slog.Error("failed to open local store", "error", err)
		os.Exit(1)
	}
	defer local.Close()

	hubClient := remote.NewClient(cfg.Hub.BaseURL)
	dual := persist.NewDual(local, hubClient)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := dual.Hydrate(ctx, key, ledgers); err != nil {
		slog.Warn("hydration incomplete, continuing with local data", "error", err)
	}

	var (
		goalService        = goal.NewService(goalStore.New(dual))
		unallocatedService = unallocated.NewService(persist.NewCollection[unallocated.Deposit](dual, "unallocated"))
		spendingService    = spending.NewService(persist.NewCollection[spending.Entry](dual, "spending"))
		billService        = bill.NewService(billStore.New(dual))
	)

	engine := sync.NewEngine(hubClient, goalService, unallocatedService, spendingService, billService, key, sync.Schedule{
		Warmup:   cfg.Sync.Warmup,
		Interval: cfg.Sync.Interval,
	})

	go engine.Run(ctx)

	var (
		sessionH     = sessionHandler.NewHandler(hubClient)
		goalsH       = goalsHandler.NewHandler(goalService, unallocatedService, engine.NotifyChanged)
		spendingH    = spendingHandler.NewHandler(spendingService, engine.NotifyChanged)
		billsH       = billsHandler.NewHandler(billService, engine.NotifyChanged)
		unallocatedH = unallocatedHandler.NewHandler(unallocatedService, engine.NotifyChanged)
	)

	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.TTL)
	router := trackerHttp.New(sessions, sessionH, goalsH, spendingH, billsH, unallocatedH)

	port := fmt.Sprintf(":%d", cfg.Tracker.Port)
	slog.Info("starting tracker", "port", port, "account", key.String())

	server := &http.Server{Addr: port, Handler: router, ReadHeaderTimeout: cfg.Server.Timeout}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
