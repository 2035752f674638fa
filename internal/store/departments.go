package store

import (
	"context"

	"execboard/internal/domain"
)

func (s *Store) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM departments
		ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := make([]domain.Department, 0)
	for rows.Next() {
		var dept domain.Department
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.CreatedAt, &dept.UpdatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}
	return departments, rows.Err()
}

func (s *Store) GetDepartment(ctx context.Context, departmentID int64) (domain.Department, error) {
	var dept domain.Department
	row := s.DB.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM departments
		WHERE id=$1`, departmentID)
	if err := row.Scan(&dept.ID, &dept.Name, &dept.CreatedAt, &dept.UpdatedAt); err != nil {
		return domain.Department{}, err
	}
	return dept, nil
}

func (s *Store) CreateDepartment(ctx context.Context, input DepartmentInput) (int64, error) {
	var id int64
	row := s.DB.QueryRow(ctx, `
		INSERT INTO departments (name)
		VALUES ($1)
		RETURNING id`, input.Name)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
