package store

import (
	"context"
	"time"

	"execboard/internal/domain"

	"github.com/jackc/pgx/v5"
)

// UpsertTracking writes the period record for one power move. The conflict
// target is the composite key, so concurrent writers for the same (move,
// period) resolve atomically in the database with last-write-wins semantics;
// there is no read-modify-write window. is_completed is recomputed here from
// the submitted pair, never trusted from the caller.
func (s *Store) UpsertTracking(ctx context.Context, input TrackingInput) (domain.TrackingRecord, error) {
	isCompleted := input.Actual >= input.Target
	row := s.DB.QueryRow(ctx, `
		INSERT INTO tracking_records (power_move_id, period_start, target, actual, is_completed, completed_by)
		VALUES ($1, $2::date, $3, $4, $5, $6)
		ON CONFLICT (power_move_id, period_start) DO UPDATE SET
			target=EXCLUDED.target,
			actual=EXCLUDED.actual,
			is_completed=EXCLUDED.is_completed,
			completed_by=EXCLUDED.completed_by,
			updated_at=NOW()
		RETURNING power_move_id, period_start, target, actual, is_completed, completed_by, created_at, updated_at`,
		input.PowerMoveID, input.PeriodStart, input.Target, input.Actual, isCompleted, input.CompletedBy)
	return scanTrackingRecord(row)
}

// GetTracking returns the record for one (move, period) key.
func (s *Store) GetTracking(ctx context.Context, powerMoveID int64, periodStart string) (domain.TrackingRecord, error) {
	row := s.DB.QueryRow(ctx, `
		SELECT power_move_id, period_start, target, actual, is_completed, completed_by, created_at, updated_at
		FROM tracking_records
		WHERE power_move_id=$1 AND period_start=$2::date`, powerMoveID, periodStart)
	return scanTrackingRecord(row)
}

// ListTrackingByPeriod returns at most one record per requested move id. Ids
// with no record for the period are absent from the result, not zeroed.
func (s *Store) ListTrackingByPeriod(ctx context.Context, periodStart string, powerMoveIDs []int64) ([]domain.TrackingRecord, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT power_move_id, period_start, target, actual, is_completed, completed_by, created_at, updated_at
		FROM tracking_records
		WHERE period_start=$1::date AND power_move_id = ANY($2)
		ORDER BY power_move_id`, periodStart, powerMoveIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.TrackingRecord, 0, len(powerMoveIDs))
	for rows.Next() {
		record, err := scanTrackingRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func scanTrackingRecord(row pgx.Row) (domain.TrackingRecord, error) {
	var record domain.TrackingRecord
	var periodStart time.Time
	if err := row.Scan(&record.PowerMoveID, &periodStart, &record.Target, &record.Actual,
		&record.IsCompleted, &record.CompletedBy, &record.CreatedAt, &record.UpdatedAt); err != nil {
		return domain.TrackingRecord{}, err
	}
	record.PeriodStart = periodStart.Format("2006-01-02")
	return record, nil
}
