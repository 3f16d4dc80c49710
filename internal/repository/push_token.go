package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shenikar/step_challenge_backend/internal/models"
	"github.com/shenikar/step_challenge_backend/internal/service"
	"github.com/shenikar/step_challenge_backend/pkg/postgres"
)

type PushTokenRepository struct {
	db postgres.Querier
}

func NewPushTokenRepository(db postgres.Querier) service.PushTokenRepository {
	return &PushTokenRepository{db: db}
}

func (r *PushTokenRepository) TokensByUser(ctx context.Context, userID string) ([]models.PushTarget, error) {
	query := `
		SELECT user_id, token
		FROM user_push_tokens
		WHERE user_id = $1
		ORDER BY updated_at DESC;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query push tokens: %w", err)
	}
	return collectTargets(rows)
}

// TokensByNotificationType returns the tokens of every user who enabled the type
func (r *PushTokenRepository) TokensByNotificationType(ctx context.Context, notificationType string) ([]models.PushTarget, error) {
	query := `
		SELECT t.user_id, t.token
		FROM user_push_tokens t
		JOIN user_notification_preferences p ON p.user_id = t.user_id
		WHERE p.notification_type = $1 AND p.enabled = true
		ORDER BY t.user_id;
	`
	rows, err := r.db.Query(ctx, query, notificationType)
	if err != nil {
		return nil, fmt.Errorf("failed to query push tokens by notification type: %w", err)
	}
	return collectTargets(rows)
}

func (r *PushTokenRepository) DeleteToken(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM user_push_tokens WHERE token = $1;`, token)
	if err != nil {
		return fmt.Errorf("failed to delete push token: %w", err)
	}
	return nil
}

func collectTargets(rows pgx.Rows) ([]models.PushTarget, error) {
	defer rows.Close()

	var targets []models.PushTarget
	for rows.Next() {
		var t models.PushTarget
		if err := rows.Scan(&t.UserID, &t.Token); err != nil {
			return nil, fmt.Errorf("failed to scan push token row: %w", err)
		}
		targets = append(targets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration: %w", err)
	}
	return targets, nil
}
