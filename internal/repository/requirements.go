package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/harbourkitchen/roster-manager/backend/internal/domain"
)

// Slot arrays are stored as jsonb columns; stored shapes may be legacy flat
// slots, so callers normalize through internal/slots before use.

func scanSlots(raw []byte) ([]domain.Slot, error) {
	if len(raw) == 0 {
		return make([]domain.Slot, 0), nil
	}
	slotArr := make([]domain.Slot, 0)
	if err := json.Unmarshal(raw, &slotArr); err != nil {
		return nil, err
	}
	return slotArr, nil
}

func (r *Repository) GetAllDayRequirements() ([]*domain.DayRequirement, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, day_of_week, required_chefs, required_kitchen_hands, chef_slots, kitchen_slots, COALESCE(notes, ''), version
		FROM business_requirements
		ORDER BY id DESC
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requirements := make([]*domain.DayRequirement, 0)
	for rows.Next() {
		requirement := &domain.DayRequirement{}
		var chefSlots, kitchenSlots []byte

		dst := []any{&requirement.ID, &requirement.DayOfWeek, &requirement.RequiredChefs, &requirement.RequiredKitchenHands, &chefSlots, &kitchenSlots, &requirement.Notes, &requirement.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if requirement.ChefSlots, err = scanSlots(chefSlots); err != nil {
			return nil, err
		}
		if requirement.KitchenSlots, err = scanSlots(kitchenSlots); err != nil {
			return nil, err
		}

		requirements = append(requirements, requirement)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requirements, nil
}

func (r *Repository) GetDayRequirementByID(id int64) (*domain.DayRequirement, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT day_of_week, required_chefs, required_kitchen_hands, chef_slots, kitchen_slots, COALESCE(notes, ''), version
		FROM business_requirements WHERE id = $1
	`

	requirement := &domain.DayRequirement{
		ID: id,
	}
	var chefSlots, kitchenSlots []byte

	dst := []any{&requirement.DayOfWeek, &requirement.RequiredChefs, &requirement.RequiredKitchenHands, &chefSlots, &kitchenSlots, &requirement.Notes, &requirement.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	var err error
	if requirement.ChefSlots, err = scanSlots(chefSlots); err != nil {
		return nil, err
	}
	if requirement.KitchenSlots, err = scanSlots(kitchenSlots); err != nil {
		return nil, err
	}

	return requirement, nil
}

func (r *Repository) CreateDayRequirement(requirement *domain.DayRequirement) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	chefSlots, err := json.Marshal(requirement.ChefSlots)
	if err != nil {
		return err
	}
	kitchenSlots, err := json.Marshal(requirement.KitchenSlots)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO business_requirements (day_of_week, required_chefs, required_kitchen_hands, chef_slots, kitchen_slots, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, version
	`

	args := []any{requirement.DayOfWeek, requirement.RequiredChefs, requirement.RequiredKitchenHands, chefSlots, kitchenSlots, requirement.Notes}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&requirement.ID, &requirement.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateDayRequirement(requirement *domain.DayRequirement) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	chefSlots, err := json.Marshal(requirement.ChefSlots)
	if err != nil {
		return err
	}
	kitchenSlots, err := json.Marshal(requirement.KitchenSlots)
	if err != nil {
		return err
	}

	query := `
		UPDATE business_requirements
		SET
			day_of_week = $1,
			required_chefs = $2,
			required_kitchen_hands = $3,
			chef_slots = $4,
			kitchen_slots = $5,
			notes = $6,
			version = version + 1
		WHERE id = $7 AND version = $8
		RETURNING version
	`

	args := []any{requirement.DayOfWeek, requirement.RequiredChefs, requirement.RequiredKitchenHands, chefSlots, kitchenSlots, requirement.Notes, requirement.ID, requirement.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&requirement.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteDayRequirement(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM business_requirements WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
