package store

import (
	"context"

	"execboard/internal/domain"
)

// SeedDemo loads a small demo org: three departments, one victory target
// each, and a mix of linked and unlinked power moves.
func (s *Store) SeedDemo(ctx context.Context) error {
	departments := []string{"Sales", "Marketing", "Operations"}
	deptIDs := make([]int64, 0, len(departments))
	for _, name := range departments {
		var id int64
		err := s.DB.QueryRow(ctx, `
			INSERT INTO departments (name) VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET name=EXCLUDED.name
			RETURNING id`, name).Scan(&id)
		if err != nil {
			return err
		}
		deptIDs = append(deptIDs, id)
	}

	for _, deptID := range deptIDs {
		targetID, err := s.CreateVictoryTarget(ctx, VictoryTargetInput{
			DepartmentID: deptID,
			Title:        "Quarterly revenue",
			TargetValue:  250000,
			Achieved:     0,
			Unit:         "USD",
			OwnerText:    "Department Lead",
		})
		if err != nil {
			return err
		}

		if _, err := s.CreatePowerMove(ctx, PowerMoveInput{
			DepartmentID:    deptID,
			Name:            "Outbound calls",
			Cadence:         domain.CadenceDaily,
			TargetPerCycle:  20,
			OwnerText:       "Account Executive",
			VictoryTargetID: &targetID,
		}); err != nil {
			return err
		}
		if _, err := s.CreatePowerMove(ctx, PowerMoveInput{
			DepartmentID:   deptID,
			Name:           "Weekly pipeline review",
			Cadence:        domain.CadenceWeekly,
			TargetPerCycle: 1,
			OwnerText:      "Department Lead",
		}); err != nil {
			return err
		}
	}
	return nil
}
