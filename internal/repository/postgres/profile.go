// Package postgres implements the service repository interfaces against
// PostgreSQL using plain database/sql.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/thansohoc/numerology-api/internal/domain"
	"github.com/thansohoc/numerology-api/internal/service/profile"
)

// ProfileRepo implements profile.Repository against PostgreSQL.
type ProfileRepo struct{ db *sql.DB }

// NewProfileRepo creates a Postgres-backed profile repository.
func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{db: db} }

func (r *ProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	p := &domain.Profile{}
	var interpretations []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, life_path_number, destiny_number, soul_urge_number,
		       personality_number, current_personal_year, current_personal_month,
		       COALESCE(interpretations, '{}'::jsonb), calculated_at, updated_at
		FROM numerology_profiles
		WHERE user_id = $1
	`, userID).Scan(
		&p.ID, &p.UserID, &p.LifePath, &p.Destiny, &p.SoulUrge,
		&p.Personality, &p.PersonalYear, &p.PersonalMonth,
		&interpretations, &p.CalculatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, profile.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if err := json.Unmarshal(interpretations, &p.Interpretations); err != nil {
		return nil, fmt.Errorf("decode interpretations: %w", err)
	}
	return p, nil
}

// Upsert inserts or replaces the user's profile. calculated_at is set on
// first insert and refreshed along with the numbers on every recalculation.
func (r *ProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	interpretations, err := json.Marshal(p.Interpretations)
	if err != nil {
		return fmt.Errorf("encode interpretations: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		INSERT INTO numerology_profiles
			(id, user_id, life_path_number, destiny_number, soul_urge_number,
			 personality_number, current_personal_year, current_personal_month,
			 interpretations, calculated_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			life_path_number = EXCLUDED.life_path_number,
			destiny_number = EXCLUDED.destiny_number,
			soul_urge_number = EXCLUDED.soul_urge_number,
			personality_number = EXCLUDED.personality_number,
			current_personal_year = EXCLUDED.current_personal_year,
			current_personal_month = EXCLUDED.current_personal_month,
			interpretations = EXCLUDED.interpretations,
			calculated_at = NOW(),
			updated_at = NOW()
		RETURNING id, calculated_at, updated_at
	`, p.ID, p.UserID, p.LifePath, p.Destiny, p.SoulUrge,
		p.Personality, p.PersonalYear, p.PersonalMonth, interpretations,
	).Scan(&p.ID, &p.CalculatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}
