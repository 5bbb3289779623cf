package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain/entity"
	"github.com/sairajmatkardevX/stockpilot-api/internal/domain/repository"
)

var _ repository.PreferenceRepository = (*PreferenceRepo)(nil)

// PreferenceRepo persiste el blob JSONB de preferencias de UI por usuario.
type PreferenceRepo struct {
	pool *pgxpool.Pool
}

// NewPreferenceRepository construye el adaptador de preferencias.
func NewPreferenceRepository(pool *pgxpool.Pool) *PreferenceRepo {
	return &PreferenceRepo{pool: pool}
}

// GetByUserID obtiene las preferencias de un usuario. (nil, nil) si nunca guardó.
func (r *PreferenceRepo) GetByUserID(userID int64) (*entity.UserPreference, error) {
	query := `SELECT user_id, data, updated_at FROM user_preferences WHERE user_id = $1`
	var p entity.UserPreference
	err := r.pool.QueryRow(context.Background(), query, userID).Scan(&p.UserID, &p.Data, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	return &p, nil
}

// Upsert inserta o reemplaza el blob completo del usuario.
func (r *PreferenceRepo) Upsert(pref *entity.UserPreference) error {
	query := `
		INSERT INTO user_preferences (user_id, data, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(context.Background(), query, pref.UserID, pref.Data, pref.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert preferences: %w", err)
	}
	return nil
}
