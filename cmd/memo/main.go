package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/memoapp/memo/internal/api"
	"github.com/memoapp/memo/internal/db"
	"github.com/memoapp/memo/internal/notify"
	"github.com/memoapp/memo/internal/scheduler"
	"github.com/memoapp/memo/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: memo <serve>")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		cmdServe(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\nUsage: memo <serve>\n", os.Args[1])
		os.Exit(1)
	}
}

func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	dbPath := fs.String("db", "memo.sqlite3", "path to SQLite database file")
	addr := fs.String("addr", "127.0.0.1:8080", "listen address")
	legacyPath := fs.String("legacy", "memo-legacy.json", "path to a legacy flat-store export, imported once if present")
	notifications := fs.Bool("notifications", true, "enable desktop notifications")
	fs.Parse(args)

	// Open database (created on first run).
	database, err := db.Open(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	// Run migrations (idempotent).
	if err := db.Migrate(database); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// One-time import from the legacy flat store. Failures must never
	// block startup; the import retries on the next run.
	if n, err := store.ImportLegacy(ctx, database, *legacyPath); err != nil {
		slog.Warn("legacy import failed, continuing", "error", err)
	} else if n > 0 {
		slog.Info("imported legacy records", "count", n)
	}

	// Notification scheduler. A nil notifier disables it entirely.
	var notifier notify.Notifier
	if *notifications {
		notifier = notify.NewDesktop()
	}
	sched := scheduler.New(database, notifier, slog.Default())
	go func() {
		if err := sched.Run(ctx); err != nil {
			slog.Error("scheduler stopped", "error", err)
		}
	}()

	handler := api.LoggingMiddleware(api.NewRouter(database))
	server := &http.Server{Addr: *addr, Handler: handler}
	go func() {
		<-ctx.Done()
		server.Close()
	}()

	fmt.Printf("Server listening on %s\n", *addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
