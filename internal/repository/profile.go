package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shenikar/step_challenge_backend/internal/models"
	"github.com/shenikar/step_challenge_backend/internal/service"
	"github.com/shenikar/step_challenge_backend/pkg/postgres"
)

type ProfileRepository struct {
	db postgres.Querier
}

func NewProfileRepository(db postgres.Querier) service.ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	profile := &models.Profile{}
	query := `
		SELECT user_id, display_name, COALESCE(avatar_url, ''), daily_step_goal, created_at
		FROM profiles
		WHERE user_id = $1;
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.DisplayName,
		&profile.AvatarURL,
		&profile.DailyStepGoal,
		&profile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// ListDailySteps returns the recorded days of a user in [from, to], oldest first
func (r *ProfileRepository) ListDailySteps(ctx context.Context, userID string, from, to time.Time) ([]models.DailySteps, error) {
	query := `
		SELECT user_id, day, steps
		FROM daily_steps
		WHERE user_id = $1 AND day BETWEEN $2 AND $3
		ORDER BY day;
	`
	rows, err := r.db.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily steps: %w", err)
	}
	defer rows.Close()

	var days []models.DailySteps
	for rows.Next() {
		var d models.DailySteps
		if err := rows.Scan(&d.UserID, &d.Date, &d.Steps); err != nil {
			return nil, fmt.Errorf("failed to scan daily steps row: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration: %w", err)
	}
	return days, nil
}

// UpsertDailySteps sets the step count of a day, replacing any earlier value
func (r *ProfileRepository) UpsertDailySteps(ctx context.Context, steps *models.DailySteps) error {
	query := `
		INSERT INTO daily_steps (user_id, day, steps, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, day) DO UPDATE SET
			steps = EXCLUDED.steps,
			updated_at = NOW();
	`
	if _, err := r.db.Exec(ctx, query, steps.UserID, steps.Date, steps.Steps); err != nil {
		return fmt.Errorf("failed to upsert daily steps: %w", err)
	}
	return nil
}

// Leaderboard sums the steps of every user in [from, to], best first
func (r *ProfileRepository) Leaderboard(ctx context.Context, from, to time.Time, limit int) ([]models.LeaderboardEntry, error) {
	query := `
		SELECT d.user_id, COALESCE(p.display_name, ''), SUM(d.steps)::int AS total
		FROM daily_steps d
		LEFT JOIN profiles p ON p.user_id = d.user_id
		WHERE d.day BETWEEN $1 AND $2
		GROUP BY d.user_id, p.display_name
		ORDER BY total DESC, d.user_id
		LIMIT $3;
	`
	rows, err := r.db.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var board []models.LeaderboardEntry
	for rows.Next() {
		var e models.LeaderboardEntry
		if err := rows.Scan(&e.UserID, &e.DisplayName, &e.Steps); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		board = append(board, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration: %w", err)
	}
	return board, nil
}
