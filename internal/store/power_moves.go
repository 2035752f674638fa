package store

import (
	"context"

	"execboard/internal/domain"

	"github.com/jackc/pgx/v5"
)

const powerMoveColumns = `id, department_id, name, cadence, target_per_cycle, owner_text, victory_target_id, created_at, updated_at`

func (s *Store) GetPowerMove(ctx context.Context, moveID int64) (domain.PowerMove, error) {
	row := s.DB.QueryRow(ctx, `
		SELECT `+powerMoveColumns+`
		FROM power_moves
		WHERE id=$1`, moveID)
	return scanPowerMove(row)
}

func (s *Store) ListPowerMovesByDepartment(ctx context.Context, departmentID int64) ([]domain.PowerMove, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT `+powerMoveColumns+`
		FROM power_moves
		WHERE department_id=$1
		ORDER BY name, id`, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPowerMoves(rows)
}

func (s *Store) ListPowerMovesByTarget(ctx context.Context, victoryTargetID int64) ([]domain.PowerMove, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT `+powerMoveColumns+`
		FROM power_moves
		WHERE victory_target_id=$1
		ORDER BY id`, victoryTargetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPowerMoves(rows)
}

// ListLinkedPowerMoves returns every move linked to a victory target, the
// input set for correlation analysis.
func (s *Store) ListLinkedPowerMoves(ctx context.Context) ([]domain.PowerMove, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT `+powerMoveColumns+`
		FROM power_moves
		WHERE victory_target_id IS NOT NULL
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectPowerMoves(rows)
}

func (s *Store) CreatePowerMove(ctx context.Context, input PowerMoveInput) (int64, error) {
	var id int64
	row := s.DB.QueryRow(ctx, `
		INSERT INTO power_moves (department_id, name, cadence, target_per_cycle, owner_text, victory_target_id)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id`,
		input.DepartmentID, input.Name, input.Cadence, input.TargetPerCycle, input.OwnerText, input.VictoryTargetID)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func scanPowerMove(row pgx.Row) (domain.PowerMove, error) {
	var move domain.PowerMove
	if err := row.Scan(&move.ID, &move.DepartmentID, &move.Name, &move.Cadence, &move.TargetPerCycle,
		&move.OwnerText, &move.VictoryTargetID, &move.CreatedAt, &move.UpdatedAt); err != nil {
		return domain.PowerMove{}, err
	}
	return move, nil
}

func collectPowerMoves(rows pgx.Rows) ([]domain.PowerMove, error) {
	moves := make([]domain.PowerMove, 0)
	for rows.Next() {
		move, err := scanPowerMove(rows)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}
	return moves, rows.Err()
}
