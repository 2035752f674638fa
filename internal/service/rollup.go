package service

import (
	"context"
	"time"

	"execboard/internal/domain"
	"execboard/internal/period"
	"execboard/internal/scoring"
)

// Rollups are recomputed on every read from current store state. Nothing is
// cached here; invalidation rules belong to callers who own the write
// patterns.

// TargetProgress recomputes one victory target's progress for the period.
func (s *Service) TargetProgress(ctx context.Context, targetID int64, granularity domain.Granularity, reference time.Time) (domain.VictoryTargetProgress, error) {
	target, err := s.store.GetVictoryTarget(ctx, targetID)
	if err != nil {
		return domain.VictoryTargetProgress{}, err
	}
	periodStart := period.Resolve(granularity, reference)
	return s.targetProgress(ctx, target, periodStart)
}

// DepartmentScore rolls every victory target of the department up into the
// green-count score band.
func (s *Service) DepartmentScore(ctx context.Context, departmentID int64, granularity domain.Granularity, reference time.Time) (domain.DepartmentScore, error) {
	if _, err := s.store.GetDepartment(ctx, departmentID); err != nil {
		return domain.DepartmentScore{}, err
	}
	periodStart := period.Resolve(granularity, reference)
	return s.departmentScore(ctx, departmentID, periodStart)
}

// CompanyScore aggregates every department's score into the company band.
func (s *Service) CompanyScore(ctx context.Context, granularity domain.Granularity, reference time.Time) (domain.CompanyScore, error) {
	departments, err := s.store.ListDepartments(ctx)
	if err != nil {
		return domain.CompanyScore{}, err
	}
	periodStart := period.Resolve(granularity, reference)
	inputs := make([]scoring.DepartmentInput, 0, len(departments))
	for _, dept := range departments {
		score, err := s.departmentScore(ctx, dept.ID, periodStart)
		if err != nil {
			return domain.CompanyScore{}, err
		}
		inputs = append(inputs, scoring.DepartmentInput{
			Score:        score.Percentage,
			TargetsCount: score.TotalTargets,
		})
	}
	return scoring.CompanyScore(inputs, s.thresholds), nil
}

// Correlations pairs every linked power move with its victory target. The
// second list is the special-attention subset for the review queue.
func (s *Service) Correlations(ctx context.Context, granularity domain.Granularity, reference time.Time) ([]domain.CorrelationResult, []domain.CorrelationResult, error) {
	moves, err := s.store.ListLinkedPowerMoves(ctx)
	if err != nil {
		return nil, nil, err
	}
	targets, err := s.store.ListVictoryTargets(ctx)
	if err != nil {
		return nil, nil, err
	}
	targetsByID := make(map[int64]domain.VictoryTarget, len(targets))
	for _, target := range targets {
		targetsByID[target.ID] = target
	}

	periodStart := period.Resolve(granularity, reference)
	actuals, err := s.trackedActuals(ctx, periodStart, moves)
	if err != nil {
		return nil, nil, err
	}

	pairs := make([]scoring.LinkedPair, 0, len(moves))
	for _, move := range moves {
		pair := scoring.LinkedPair{Move: move, Actual: actuals[move.ID]}
		if move.VictoryTargetID != nil {
			if target, ok := targetsByID[*move.VictoryTargetID]; ok {
				pair.Target = &target
			}
		}
		pairs = append(pairs, pair)
	}
	results := scoring.Correlate(pairs)
	return results, scoring.SpecialAttention(results), nil
}

func (s *Service) departmentScore(ctx context.Context, departmentID int64, periodStart string) (domain.DepartmentScore, error) {
	targets, err := s.store.ListVictoryTargetsByDepartment(ctx, departmentID)
	if err != nil {
		return domain.DepartmentScore{}, err
	}
	progresses := make([]domain.VictoryTargetProgress, 0, len(targets))
	for _, target := range targets {
		progress, err := s.targetProgress(ctx, target, periodStart)
		if err != nil {
			return domain.DepartmentScore{}, err
		}
		progresses = append(progresses, progress)
	}
	return scoring.DepartmentScore(departmentID, progresses, s.thresholds), nil
}

// targetProgress builds the linked-move completion set for one target. Only
// moves with a tracking record for the period contribute; when none have
// reported, the target reads from its manually-tracked pair.
func (s *Service) targetProgress(ctx context.Context, target domain.VictoryTarget, periodStart string) (domain.VictoryTargetProgress, error) {
	moves, err := s.store.ListPowerMovesByTarget(ctx, target.ID)
	if err != nil {
		return domain.VictoryTargetProgress{}, err
	}
	if len(moves) == 0 {
		return scoring.TargetProgress(target, nil, s.thresholds), nil
	}

	moveIDs := make([]int64, 0, len(moves))
	cycleTargets := make(map[int64]float64, len(moves))
	for _, move := range moves {
		moveIDs = append(moveIDs, move.ID)
		cycleTargets[move.ID] = move.TargetPerCycle
	}
	records, err := s.store.ListTrackingByPeriod(ctx, periodStart, moveIDs)
	if err != nil {
		return domain.VictoryTargetProgress{}, err
	}
	completions := make([]scoring.MoveCompletion, 0, len(records))
	for _, record := range records {
		completions = append(completions, scoring.MoveCompletion{
			MoveID:         record.PowerMoveID,
			Actual:         record.Actual,
			TargetPerCycle: cycleTargets[record.PowerMoveID],
		})
	}
	return scoring.TargetProgress(target, completions, s.thresholds), nil
}

// trackedActuals maps move id to the period's tracked actual; moves without
// a record read as zero for the advisory correlation output.
func (s *Service) trackedActuals(ctx context.Context, periodStart string, moves []domain.PowerMove) (map[int64]float64, error) {
	if len(moves) == 0 {
		return map[int64]float64{}, nil
	}
	moveIDs := make([]int64, 0, len(moves))
	for _, move := range moves {
		moveIDs = append(moveIDs, move.ID)
	}
	records, err := s.store.ListTrackingByPeriod(ctx, periodStart, moveIDs)
	if err != nil {
		return nil, err
	}
	actuals := make(map[int64]float64, len(records))
	for _, record := range records {
		actuals[record.PowerMoveID] = record.Actual
	}
	return actuals, nil
}
