package store

import (
	"execboard/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

type DepartmentInput struct {
	Name string
}

type PowerMoveInput struct {
	DepartmentID    int64
	Name            string
	Cadence         domain.Cadence
	TargetPerCycle  float64
	OwnerText       string
	VictoryTargetID *int64
}

type VictoryTargetInput struct {
	DepartmentID int64
	Title        string
	TargetValue  float64
	Achieved     float64
	Unit         string
	OwnerText    string
}

// TrackingInput is one full-period write. IsCompleted is not accepted from
// the caller; the store derives it from actual vs target at write time.
type TrackingInput struct {
	PowerMoveID int64
	PeriodStart string
	Target      float64
	Actual      float64
	CompletedBy *string
}
