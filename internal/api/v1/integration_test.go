package v1

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"execboard/internal/domain"
	"execboard/internal/scoring"
	"execboard/internal/service"
	"execboard/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestTrackingRollupIntegration(t *testing.T) {
	ctx := context.Background()
	container, err := tcpostgres.RunContainer(ctx,
		tcpostgres.WithDatabase("execboard"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	defer func() { _ = container.Terminate(ctx) }()

	dbURL, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("conn string: %v", err)
	}
	if err := runTestMigrations(dbURL); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("pool: %v", err)
	}
	defer pool.Close()

	repo := store.New(pool)
	deptID, err := repo.CreateDepartment(ctx, store.DepartmentInput{Name: "Sales"})
	if err != nil {
		t.Fatalf("create department: %v", err)
	}
	targetID, err := repo.CreateVictoryTarget(ctx, store.VictoryTargetInput{
		DepartmentID: deptID,
		Title:        "New ARR",
		TargetValue:  10,
	})
	if err != nil {
		t.Fatalf("create target: %v", err)
	}
	moveID, err := repo.CreatePowerMove(ctx, store.PowerMoveInput{
		DepartmentID:    deptID,
		Name:            "Demo calls",
		Cadence:         domain.CadenceWeekly,
		TargetPerCycle:  5,
		VictoryTargetID: &targetID,
	})
	if err != nil {
		t.Fatalf("create move: %v", err)
	}

	handler := NewHandler(service.New(repo, scoring.DefaultThresholds()), nil)
	server := httptest.NewServer(func() http.Handler {
		r := chi.NewRouter()
		r.Mount("/api/v1", handler.Routes())
		return r
	}())
	defer server.Close()

	at := "2024-06-05T10:00:00Z" // Wednesday; week bucket is 2024-06-03

	// Report full completion for the week.
	body := bytes.NewBufferString(`{"period":"this-week","actual":5}`)
	resp, err := http.Post(fmt.Sprintf("%s/api/v1/moves/%d/tracking?at=%s", server.URL, moveID, at), "application/json", body)
	if err != nil {
		t.Fatalf("post tracking: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}
	var record trackingRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record.PeriodStart != "2024-06-03" {
		t.Fatalf("expected bucket 2024-06-03 got %s", record.PeriodStart)
	}
	if record.Target != 5 || !record.IsCompleted {
		t.Fatalf("expected completed snapshot of 5, got %+v", record)
	}

	// Overwrite with a partial actual; last write wins.
	body = bytes.NewBufferString(`{"period":"this-week","actual":3}`)
	resp2, err := http.Post(fmt.Sprintf("%s/api/v1/moves/%d/tracking?at=%s", server.URL, moveID, at), "application/json", body)
	if err != nil {
		t.Fatalf("post tracking again: %v", err)
	}
	defer resp2.Body.Close()

	resp3, err := http.Get(fmt.Sprintf("%s/api/v1/tracking?period=this-week&move_ids=%d&at=%s", server.URL, moveID, at))
	if err != nil {
		t.Fatalf("get tracking: %v", err)
	}
	defer resp3.Body.Close()
	var tracking trackingResponse
	if err := json.NewDecoder(resp3.Body).Decode(&tracking); err != nil {
		t.Fatalf("decode tracking: %v", err)
	}
	if len(tracking.Items) != 1 {
		t.Fatalf("expected 1 record got %d", len(tracking.Items))
	}
	if tracking.Items[0].Actual != 3 || tracking.Items[0].IsCompleted {
		t.Fatalf("expected replaced record with actual 3, got %+v", tracking.Items[0])
	}

	// Department rollup: one target at 60 percent -> 0 green -> red.
	resp4, err := http.Get(fmt.Sprintf("%s/api/v1/departments/%d/score?period=this-week&at=%s", server.URL, deptID, at))
	if err != nil {
		t.Fatalf("get department score: %v", err)
	}
	defer resp4.Body.Close()
	var score departmentScoreResponse
	if err := json.NewDecoder(resp4.Body).Decode(&score); err != nil {
		t.Fatalf("decode score: %v", err)
	}
	if score.TotalTargets != 1 || score.GreenCount != 0 {
		t.Fatalf("expected 0 of 1 green, got %+v", score)
	}
	if score.Status != "red" {
		t.Fatalf("expected red got %s", score.Status)
	}
	if len(score.Targets) != 1 || score.Targets[0].Percentage != 60 {
		t.Fatalf("expected derived 60 percent target, got %+v", score.Targets)
	}

	// Correlation: 60 vs 0 manual progress -> attention list.
	resp5, err := http.Get(fmt.Sprintf("%s/api/v1/correlations?period=this-week&at=%s", server.URL, at))
	if err != nil {
		t.Fatalf("get correlations: %v", err)
	}
	defer resp5.Body.Close()
	var correlations correlationsResponse
	if err := json.NewDecoder(resp5.Body).Decode(&correlations); err != nil {
		t.Fatalf("decode correlations: %v", err)
	}
	if len(correlations.Items) != 1 {
		t.Fatalf("expected 1 correlation got %d", len(correlations.Items))
	}
	if len(correlations.SpecialAttention) != 1 {
		t.Fatalf("60 percent completion belongs on the attention list")
	}

	// Invalid granularity is rejected at the boundary.
	resp6, err := http.Get(server.URL + "/api/v1/tracking?period=this-year&move_ids=1")
	if err != nil {
		t.Fatalf("get invalid period: %v", err)
	}
	defer resp6.Body.Close()
	if resp6.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp6.StatusCode)
	}
}

func runTestMigrations(databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return err
	}
	driver, err := migratepostgres.WithInstance(db, &migratepostgres.Config{})
	if err != nil {
		return err
	}
	root, err := moduleRoot()
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+filepath.ToSlash(filepath.Join(root, "migrations")), "postgres", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

func moduleRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for dir := wd; dir != string(filepath.Separator); dir = filepath.Dir(dir) {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
	}
	return wd, nil
}
