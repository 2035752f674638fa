package service

import (
	"context"
	"time"

	"execboard/internal/domain"
	"execboard/internal/period"
	"execboard/internal/scoring"
	"execboard/internal/store"
)

type Store interface {
	ListDepartments(ctx context.Context) ([]domain.Department, error)
	GetDepartment(ctx context.Context, id int64) (domain.Department, error)
	GetPowerMove(ctx context.Context, id int64) (domain.PowerMove, error)
	ListPowerMovesByDepartment(ctx context.Context, departmentID int64) ([]domain.PowerMove, error)
	ListPowerMovesByTarget(ctx context.Context, victoryTargetID int64) ([]domain.PowerMove, error)
	ListLinkedPowerMoves(ctx context.Context) ([]domain.PowerMove, error)
	GetVictoryTarget(ctx context.Context, id int64) (domain.VictoryTarget, error)
	ListVictoryTargets(ctx context.Context) ([]domain.VictoryTarget, error)
	ListVictoryTargetsByDepartment(ctx context.Context, departmentID int64) ([]domain.VictoryTarget, error)
	UpdateAchieved(ctx context.Context, targetID int64, achieved float64) error
	UpsertTracking(ctx context.Context, input store.TrackingInput) (domain.TrackingRecord, error)
	ListTrackingByPeriod(ctx context.Context, periodStart string, powerMoveIDs []int64) ([]domain.TrackingRecord, error)
}

type Service struct {
	store      Store
	thresholds scoring.Thresholds
}

func New(store Store, thresholds scoring.Thresholds) *Service {
	return &Service{store: store, thresholds: thresholds}
}

func (s *Service) Thresholds() scoring.Thresholds {
	return s.thresholds
}

func (s *Service) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return s.store.ListDepartments(ctx)
}

// TrackInput is one progress report for a power move. Target overrides the
// move's per-cycle target for the snapshot; when nil, the move's current
// target is snapshotted instead.
type TrackInput struct {
	PowerMoveID int64
	Granularity domain.Granularity
	Reference   time.Time
	Target      *float64
	Actual      float64
	CompletedBy *string
}

// TrackProgress resolves the period bucket and upserts the record. The write
// is the only state mutation in the scoring core.
func (s *Service) TrackProgress(ctx context.Context, input TrackInput) (domain.TrackingRecord, error) {
	move, err := s.store.GetPowerMove(ctx, input.PowerMoveID)
	if err != nil {
		return domain.TrackingRecord{}, err
	}
	target := move.TargetPerCycle
	if input.Target != nil {
		target = *input.Target
	}
	return s.store.UpsertTracking(ctx, store.TrackingInput{
		PowerMoveID: move.ID,
		PeriodStart: period.Resolve(input.Granularity, input.Reference),
		Target:      target,
		Actual:      input.Actual,
		CompletedBy: input.CompletedBy,
	})
}

// UpdateTargetAchieved overwrites a victory target's manually-tracked
// achieved value and returns the updated target. The value only shows in
// rollups while the target has no linked moves reporting.
func (s *Service) UpdateTargetAchieved(ctx context.Context, targetID int64, achieved float64) (domain.VictoryTarget, error) {
	if _, err := s.store.GetVictoryTarget(ctx, targetID); err != nil {
		return domain.VictoryTarget{}, err
	}
	if err := s.store.UpdateAchieved(ctx, targetID, achieved); err != nil {
		return domain.VictoryTarget{}, err
	}
	return s.store.GetVictoryTarget(ctx, targetID)
}

// PeriodTracking returns the period's records for an id set; untracked ids
// are absent from the result.
func (s *Service) PeriodTracking(ctx context.Context, granularity domain.Granularity, reference time.Time, powerMoveIDs []int64) ([]domain.TrackingRecord, error) {
	return s.store.ListTrackingByPeriod(ctx, period.Resolve(granularity, reference), powerMoveIDs)
}
