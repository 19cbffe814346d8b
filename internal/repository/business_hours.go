package repository

import (
	"context"
	"time"

	"github.com/harbourkitchen/roster-manager/backend/internal/domain"
)

func (r *Repository) GetAllBusinessHours() ([]*domain.BusinessHours, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, day_of_week, closing_time::text, version
		FROM business_hours
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hours := make([]*domain.BusinessHours, 0)
	for rows.Next() {
		bh := &domain.BusinessHours{}
		if err := rows.Scan(&bh.ID, &bh.DayOfWeek, &bh.ClosingTime, &bh.Version); err != nil {
			return nil, err
		}
		hours = append(hours, bh)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return hours, nil
}

// UpsertBusinessHours sets the closing time for a weekday, inserting the row
// if the day has never been configured.
func (r *Repository) UpsertBusinessHours(bh *domain.BusinessHours) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO business_hours (day_of_week, closing_time)
		VALUES ($1, $2)
		ON CONFLICT (day_of_week) DO UPDATE
		SET closing_time = EXCLUDED.closing_time, version = business_hours.version + 1
		RETURNING id, version
	`

	if err := r.dbpool.QueryRowContext(ctx, query, bh.DayOfWeek, bh.ClosingTime).Scan(&bh.ID, &bh.Version); err != nil {
		return err
	}

	return nil
}
