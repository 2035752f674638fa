package store

import (
	"context"

	"execboard/internal/domain"

	"github.com/jackc/pgx/v5"
)

const victoryTargetColumns = `id, department_id, title, target_value, achieved, unit, owner_text, created_at, updated_at`

func (s *Store) GetVictoryTarget(ctx context.Context, targetID int64) (domain.VictoryTarget, error) {
	row := s.DB.QueryRow(ctx, `
		SELECT `+victoryTargetColumns+`
		FROM victory_targets
		WHERE id=$1`, targetID)
	return scanVictoryTarget(row)
}

func (s *Store) ListVictoryTargets(ctx context.Context) ([]domain.VictoryTarget, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT `+victoryTargetColumns+`
		FROM victory_targets
		ORDER BY department_id, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectVictoryTargets(rows)
}

func (s *Store) ListVictoryTargetsByDepartment(ctx context.Context, departmentID int64) ([]domain.VictoryTarget, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT `+victoryTargetColumns+`
		FROM victory_targets
		WHERE department_id=$1
		ORDER BY id`, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectVictoryTargets(rows)
}

func (s *Store) CreateVictoryTarget(ctx context.Context, input VictoryTargetInput) (int64, error) {
	var id int64
	row := s.DB.QueryRow(ctx, `
		INSERT INTO victory_targets (department_id, title, target_value, achieved, unit, owner_text)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id`,
		input.DepartmentID, input.Title, input.TargetValue, input.Achieved, input.Unit, input.OwnerText)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateAchieved overwrites the manually-tracked achieved value.
func (s *Store) UpdateAchieved(ctx context.Context, targetID int64, achieved float64) error {
	_, err := s.DB.Exec(ctx, `
		UPDATE victory_targets SET achieved=$1, updated_at=NOW() WHERE id=$2`, achieved, targetID)
	return err
}

func scanVictoryTarget(row pgx.Row) (domain.VictoryTarget, error) {
	var target domain.VictoryTarget
	if err := row.Scan(&target.ID, &target.DepartmentID, &target.Title, &target.TargetValue, &target.Achieved,
		&target.Unit, &target.OwnerText, &target.CreatedAt, &target.UpdatedAt); err != nil {
		return domain.VictoryTarget{}, err
	}
	return target, nil
}

func collectVictoryTargets(rows pgx.Rows) ([]domain.VictoryTarget, error) {
	targets := make([]domain.VictoryTarget, 0)
	for rows.Next() {
		target, err := scanVictoryTarget(rows)
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	return targets, rows.Err()
}
