package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/harbourkitchen/roster-manager/backend/internal/domain"
)

func (r *Repository) CreateEmployee(employee *domain.Employee) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO employees (name, role, email, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`
	args := []any{employee.Name, employee.Role, employee.Email, employee.Phone}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&employee.ID, &employee.CreatedAt, &employee.Version); err != nil {
		return err
	}

	if err := insertAvailability(ctx, tx, employee.ID, employee.Availability); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func insertAvailability(ctx context.Context, tx *sql.Tx, employeeID int64, available []string) error {
	query := `
		INSERT INTO employee_availability (employee_id, day_of_week, is_available)
		VALUES ($1, $2, $3)
	`
	for _, day := range domain.Weekdays {
		isAvailable := false
		for _, d := range available {
			if d == day {
				isAvailable = true
				break
			}
		}
		if _, err := tx.ExecContext(ctx, query, employeeID, day, isAvailable); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) GetAllEmployees() ([]*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			e.id,
			e.name,
			e.role,
			e.email,
			e.phone,
			e.created_at,
			e.version,
			ea.day_of_week,
			ea.is_available
		FROM employees e
		LEFT JOIN employee_availability ea ON e.id = ea.employee_id
		ORDER BY e.created_at DESC, e.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employeesMap := make(map[int64]*domain.Employee)
	order := make([]int64, 0)

	for rows.Next() {
		var row struct {
			ID        int64
			Name      string
			Role      string
			Email     sql.NullString
			Phone     sql.NullString
			CreatedAt time.Time
			Version   int32

			DayOfWeek   sql.NullString
			IsAvailable sql.NullBool
		}

		dst := []any{
			&row.ID,
			&row.Name,
			&row.Role,
			&row.Email,
			&row.Phone,
			&row.CreatedAt,
			&row.Version,
			&row.DayOfWeek,
			&row.IsAvailable,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		employee, exists := employeesMap[row.ID]
		if !exists {
			employee = &domain.Employee{
				ID:           row.ID,
				Name:         row.Name,
				Role:         row.Role,
				Email:        row.Email.String,
				Phone:        row.Phone.String,
				Availability: make([]string, 0),
				CreatedAt:    row.CreatedAt,
				Version:      row.Version,
			}
			employeesMap[row.ID] = employee
			order = append(order, row.ID)
		}

		// no availability rows yet for this employee
		if !row.DayOfWeek.Valid {
			continue
		}

		if row.IsAvailable.Valid && row.IsAvailable.Bool {
			employee.Availability = append(employee.Availability, row.DayOfWeek.String)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	employees := make([]*domain.Employee, 0, len(order))
	for _, id := range order {
		employees = append(employees, employeesMap[id])
	}

	return employees, nil
}

func (r *Repository) GetEmployeeByID(id int64) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT name, role, email, phone, created_at, version
		FROM employees WHERE id = $1
	`

	employee := &domain.Employee{
		ID:           id,
		Availability: make([]string, 0),
	}

	var email, phone sql.NullString
	dst := []any{&employee.Name, &employee.Role, &email, &phone, &employee.CreatedAt, &employee.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}
	employee.Email = email.String
	employee.Phone = phone.String

	query = `
		SELECT day_of_week FROM employee_availability
		WHERE employee_id = $1 AND is_available = true
	`
	rows, err := r.dbpool.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		employee.Availability = append(employee.Availability, day)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employee, nil
}

func (r *Repository) UpdateEmployee(employee *domain.Employee) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		UPDATE employees
		SET
			name = $1,
			role = $2,
			email = $3,
			phone = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING created_at, version
	`

	args := []any{employee.Name, employee.Role, employee.Email, employee.Phone, employee.ID, employee.Version}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&employee.CreatedAt, &employee.Version); err != nil {
		return err
	}

	query = `DELETE FROM employee_availability WHERE employee_id = $1`
	if _, err := tx.ExecContext(ctx, query, employee.ID); err != nil {
		return err
	}
	if err := insertAvailability(ctx, tx, employee.ID, employee.Availability); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteEmployee(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM employees WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
