package repository

import (
	"context"
	"fmt"

	"github.com/shenikar/step_challenge_backend/internal/models"
	"github.com/shenikar/step_challenge_backend/internal/service"
	"github.com/shenikar/step_challenge_backend/pkg/postgres"
)

type WalkSessionRepository struct {
	db postgres.Querier
}

func NewWalkSessionRepository(db postgres.Querier) service.WalkSessionRepository {
	return &WalkSessionRepository{db: db}
}

// SaveWalkSession stores a finished session summary. Saving the same session
// twice overwrites the summary.
func (r *WalkSessionRepository) SaveWalkSession(ctx context.Context, session *models.WalkSession) error {
	query := `
		INSERT INTO walk_sessions (id, user_id, distance_km, point_count, started_at, ended_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			distance_km = EXCLUDED.distance_km,
			point_count = EXCLUDED.point_count,
			ended_at = EXCLUDED.ended_at;
	`
	_, err := r.db.Exec(ctx, query,
		session.ID,
		session.UserID,
		session.DistanceKm,
		session.PointCount,
		session.StartedAt,
		session.EndedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save walk session: %w", err)
	}
	return nil
}
