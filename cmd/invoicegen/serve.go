package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/urfave/cli/v2"

	"invoicegen/m/domain"
	"invoicegen/m/internal/api"
	"invoicegen/m/internal/builder"
	"invoicegen/m/internal/database"
	"invoicegen/m/internal/migrations"
	"invoicegen/m/internal/seed"
	"invoicegen/m/internal/store"
	"invoicegen/m/internal/suggest"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "port", Aliases: []string{"p"}, Usage: "listen port (overrides HTTP_PORT)"},
		},
		Action: serve,
	}
}

func serve(c *cli.Context) error {
	cfg := loadConfig(c.App.ErrWriter)
	slog.SetDefault(slog.New(slog.NewJSONHandler(c.App.Writer, &slog.HandlerOptions{Level: cfg.LogLevel})))
	if p := c.String("port"); p != "" {
		cfg.HTTPPort = p
	}

	db, docs, err := openStore(cfg.DatabaseDSN, cfg.NodeID)
	if err != nil {
		return err
	}
	defer db.Close()

	b := builder.New(cfg.Company)
	if cfg.SeedSamples {
		if _, err := seed.LoadSamples(c.Context, docs, b); err != nil {
			slog.Warn("unable to seed samples", "error", err)
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           api.New(docs, b, suggest.Rules{}).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("invoicegen server starting", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore connects to and migrates the database.
func openStore(dsn string, nodeID int64) (*sqlx.DB, *store.Store, error) {
	db, err := database.Connect(dsn)
	if err != nil {
		return nil, nil, err
	}
	if err := migrations.Run(db); err != nil {
		db.Close()
		return nil, nil, err
	}
	docs, err := store.New(db, nodeID)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, docs, nil
}

func saveDocument(c *cli.Context, dsn string, nodeID int64, doc domain.Document) (string, error) {
	db, docs, err := openStore(dsn, nodeID)
	if err != nil {
		return "", err
	}
	defer db.Close()

	saved, err := docs.Save(c.Context, doc)
	if err != nil {
		return "", err
	}
	return saved.ID.String(), nil
}
