package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	v1 "execboard/internal/api/v1"
	"execboard/internal/config"
	"execboard/internal/metrics"
	"execboard/internal/scoring"
	"execboard/internal/service"
	"execboard/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var seed bool
	var configPath string
	flag.BoolVar(&seed, "seed", false, "seed demo data")
	flag.StringVar(&configPath, "config", "", "path to a YAML config file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to connect db", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := runMigrations(cfg.DatabaseURL); err != nil {
		logger.Error("failed to migrate", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pgstore := store.New(pool)
	if seed {
		if err := pgstore.SeedDemo(context.Background()); err != nil {
			logger.Error("failed to seed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("seed data created")
	}

	svc := service.New(pgstore, scoring.Thresholds{
		Green:  cfg.GreenThreshold,
		Yellow: cfg.YellowThreshold,
	})

	m := metrics.New()
	handler := v1.NewHandler(svc, m)

	r := chi.NewRouter()
	r.Mount("/api/v1", handler.Routes())
	r.Handle("/metrics", m.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := pool.Ping(r.Context()); err != nil {
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	logger.Info("listening", slog.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func runMigrations(databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}
	migrationsPath, err := resolveMigrationsPath()
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+migrationsPath, "postgres", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func resolveMigrationsPath() (string, error) {
	baseDir, err := os.Getwd()
	if err != nil {
		executable, execErr := os.Executable()
		if execErr != nil {
			return "", err
		}
		baseDir = filepath.Dir(executable)
	}
	absPath, err := filepath.Abs(filepath.Join(baseDir, "migrations"))
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(absPath), nil
}
