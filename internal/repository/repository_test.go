package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shenikar/step_challenge_backend/internal/models"
	"github.com/shenikar/step_challenge_backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestAccessCodeRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAccessCodeRepository(mock)
	id := uuid.New()
	createdAt := time.Now()

	mock.ExpectQuery(`INSERT INTO access_codes`).
		WithArgs("WALK-1", "ann@example.com", "Ann", "Spring Challenge", "p-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "is_used", "created_at"}).AddRow(id, false, createdAt))

	code := &models.AccessCode{
		Code:          "WALK-1",
		CustomerEmail: "ann@example.com",
		CustomerName:  "Ann",
		ProductName:   "Spring Challenge",
		PurchaseID:    "p-1",
	}
	err := repo.Create(context.Background(), code)

	require.NoError(t, err)
	assert.Equal(t, id, code.ID)
	assert.Equal(t, createdAt, code.CreatedAt)
}

func TestAccessCodeRepository_CreateDuplicate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAccessCodeRepository(mock)

	mock.ExpectQuery(`INSERT INTO access_codes`).
		WithArgs("WALK-1", "", "", "", "p-1").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "access_codes_code_key"})

	err := repo.Create(context.Background(), &models.AccessCode{Code: "WALK-1", PurchaseID: "p-1"})

	assert.ErrorIs(t, err, service.ErrAccessCodeExists)
}

func TestAccessCodeRepository_CreateFailure(t *testing.T) {
	mock := newMockPool(t)
	repo := NewAccessCodeRepository(mock)

	mock.ExpectQuery(`INSERT INTO access_codes`).
		WithArgs("X", "", "", "", "").
		WillReturnError(errors.New("connection refused"))

	err := repo.Create(context.Background(), &models.AccessCode{Code: "X"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrAccessCodeExists)
	assert.ErrorContains(t, err, "failed to create access code")
}

func TestPushTokenRepository_TokensByUser(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPushTokenRepository(mock)

	mock.ExpectQuery(`SELECT user_id, token\s+FROM user_push_tokens`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "token"}).
			AddRow("user-1", "phone").
			AddRow("user-1", "tablet"))

	targets, err := repo.TokensByUser(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, []models.PushTarget{
		{UserID: "user-1", Token: "phone"},
		{UserID: "user-1", Token: "tablet"},
	}, targets)
}

func TestPushTokenRepository_TokensByNotificationType(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPushTokenRepository(mock)

	mock.ExpectQuery(`JOIN user_notification_preferences`).
		WithArgs("daily_reminder").
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "token"}).AddRow("u1", "t1"))

	targets, err := repo.TokensByNotificationType(context.Background(), "daily_reminder")

	require.NoError(t, err)
	assert.Len(t, targets, 1)
}

func TestPushTokenRepository_DeleteToken(t *testing.T) {
	mock := newMockPool(t)
	repo := NewPushTokenRepository(mock)

	mock.ExpectExec(`DELETE FROM user_push_tokens`).
		WithArgs("stale").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.DeleteToken(context.Background(), "stale"))
}

func TestWalkSessionRepository_Save(t *testing.T) {
	mock := newMockPool(t)
	repo := NewWalkSessionRepository(mock)
	endedAt := time.Now()
	session := &models.WalkSession{
		ID:         uuid.New(),
		UserID:     "user-1",
		DistanceKm: 2.4,
		PointCount: 120,
		StartedAt:  endedAt.Add(-30 * time.Minute),
		EndedAt:    &endedAt,
	}

	mock.ExpectExec(`INSERT INTO walk_sessions`).
		WithArgs(session.ID, "user-1", 2.4, 120, session.StartedAt, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.SaveWalkSession(context.Background(), session))
}

func TestProfileRepository_GetProfile(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProfileRepository(mock)
	createdAt := time.Now()

	mock.ExpectQuery(`FROM profiles`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "display_name", "avatar_url", "daily_step_goal", "created_at"}).
			AddRow("user-1", "Ann", "", 8000, createdAt))

	profile, err := repo.GetProfile(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "Ann", profile.DisplayName)
	assert.Equal(t, 8000, profile.DailyStepGoal)
}

func TestProfileRepository_GetProfileNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProfileRepository(mock)

	mock.ExpectQuery(`FROM profiles`).WithArgs("ghost").WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetProfile(context.Background(), "ghost")

	assert.ErrorIs(t, err, service.ErrProfileNotFound)
}

func TestProfileRepository_DailySteps(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProfileRepository(mock)
	from := time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 6)

	mock.ExpectQuery(`FROM daily_steps`).
		WithArgs("user-1", from, to).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "day", "steps"}).
			AddRow("user-1", from, 5000).
			AddRow("user-1", to, 12000))

	days, err := repo.ListDailySteps(context.Background(), "user-1", from, to)

	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, 12000, days[1].Steps)

	mock.ExpectExec(`INSERT INTO daily_steps`).
		WithArgs("user-1", to, 13000).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.UpsertDailySteps(context.Background(), &models.DailySteps{UserID: "user-1", Date: to, Steps: 13000})
	assert.NoError(t, err)
}

func TestProfileRepository_Leaderboard(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProfileRepository(mock)
	from := time.Date(2026, 4, 13, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 6)

	mock.ExpectQuery(`SUM\(d.steps\)`).
		WithArgs(from, to, 20).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "display_name", "total"}).
			AddRow("u2", "Bob", 50000).
			AddRow("u1", "Ann", 42000))

	board, err := repo.Leaderboard(context.Background(), from, to, 20)

	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, "Bob", board[0].DisplayName)
	assert.Equal(t, 42000, board[1].Steps)
}
