package repository

import (
	"context"
	"time"

	"github.com/harbourkitchen/roster-manager/backend/internal/domain"
)

// GetRosterEntries returns entries ordered by (date, role, start time, id),
// the ordering the slot matcher depends on. from and to are inclusive
// YYYY-MM-DD bounds; either may be empty.
func (r *Repository) GetRosterEntries(from, to string) ([]*domain.RosterEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, employee_id, shift_date::text, shift_start::text, shift_end::text, COALESCE(role, ''), is_weekend, created_at, version
		FROM rosters
		WHERE ($1 = '' OR shift_date >= $1::date)
		  AND ($2 = '' OR shift_date <= $2::date)
		ORDER BY shift_date, role, shift_start, id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*domain.RosterEntry, 0)
	for rows.Next() {
		entry := &domain.RosterEntry{}
		dst := []any{&entry.ID, &entry.EmployeeID, &entry.ShiftDate, &entry.ShiftStart, &entry.ShiftEnd, &entry.Role, &entry.IsWeekend, &entry.CreatedAt, &entry.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *Repository) GetRosterEntryByID(id int64) (*domain.RosterEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT employee_id, shift_date::text, shift_start::text, shift_end::text, COALESCE(role, ''), is_weekend, created_at, version
		FROM rosters WHERE id = $1
	`

	entry := &domain.RosterEntry{
		ID: id,
	}

	dst := []any{&entry.EmployeeID, &entry.ShiftDate, &entry.ShiftStart, &entry.ShiftEnd, &entry.Role, &entry.IsWeekend, &entry.CreatedAt, &entry.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return entry, nil
}

func (r *Repository) CreateRosterEntry(entry *domain.RosterEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO rosters (employee_id, shift_date, shift_start, shift_end, role, is_weekend)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`

	args := []any{entry.EmployeeID, entry.ShiftDate, entry.ShiftStart, entry.ShiftEnd, entry.Role, entry.IsWeekend}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt, &entry.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateRosterEntry(entry *domain.RosterEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE rosters
		SET
			employee_id = $1,
			shift_date = $2,
			shift_start = $3,
			shift_end = $4,
			role = $5,
			is_weekend = $6,
			version = version + 1
		WHERE id = $7 AND version = $8
		RETURNING created_at, version
	`

	args := []any{entry.EmployeeID, entry.ShiftDate, entry.ShiftStart, entry.ShiftEnd, entry.Role, entry.IsWeekend, entry.ID, entry.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&entry.CreatedAt, &entry.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteRosterEntry(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM rosters WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

// ReplaceWeekRoster atomically swaps all entries for the given dates with the
// provided ones. The week editor saves whole weeks at a time; doing the delete
// and re-create in one transaction keeps a half-saved week from ever being
// visible.
func (r *Repository) ReplaceWeekRoster(dates []string, entries []*domain.RosterEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `DELETE FROM rosters WHERE shift_date = $1`
	for _, date := range dates {
		if _, err := tx.ExecContext(ctx, query, date); err != nil {
			return err
		}
	}

	query = `
		INSERT INTO rosters (employee_id, shift_date, shift_start, shift_end, role, is_weekend)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`
	for _, entry := range entries {
		args := []any{entry.EmployeeID, entry.ShiftDate, entry.ShiftStart, entry.ShiftEnd, entry.Role, entry.IsWeekend}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &entry.CreatedAt, &entry.Version); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}
