package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/ballotbox/cliparse"
	"github.com/danielhkuo/ballotbox/db"
	"github.com/danielhkuo/ballotbox/election"
	"github.com/danielhkuo/ballotbox/router"
)

func main() {
	var err error

	// Load .env if present; real env vars win
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the audit store
	driver := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	}
	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Rebuild the election from the persisted audit history. A corrupt
	// chain means the store was tampered with; refuse to start.
	events, err := db.LoadEvents(dbConn)
	if err != nil {
		slog.Error("audit load failed", "error", err)
		os.Exit(1)
	}
	machine, err := election.Restore(cfg.AuthorityID, events)
	if err != nil {
		if errors.Is(err, election.ErrCorruptAuditLog) {
			slog.Error("audit log failed verification, refusing to start", "error", err)
		} else {
			slog.Error("replay failed", "error", err)
		}
		os.Exit(1)
	}
	slog.Info("Election restored", "events", len(events))

	// Relay new audit events into the store in the background
	lastSeq, err := db.MaxSeq(dbConn)
	if err != nil {
		slog.Error("audit seq query failed", "error", err)
		os.Exit(1)
	}
	relayCtx, cancelRelay := context.WithCancel(context.Background())
	relay := db.NewRelay(dbConn, machine.Audit(), lastSeq, 2*time.Second)
	relayDone := make(chan struct{})
	go func() {
		relay.Run(relayCtx)
		close(relayDone)
	}()

	// Create router
	mux := router.NewRouter(machine, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}

	// Stop the relay; Run performs a final flush before returning
	cancelRelay()
	<-relayDone
}
