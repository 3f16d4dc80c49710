package service

//go:generate mockgen -source=profile.go -destination=mocks/profile_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/step_challenge_backend/internal/cache"
	"github.com/shenikar/step_challenge_backend/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	weekDays       = 7
	streakLookback = 366 * 24 * time.Hour
)

// ProfileRepository reads profiles and step history
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	ListDailySteps(ctx context.Context, userID string, from, to time.Time) ([]models.DailySteps, error)
	UpsertDailySteps(ctx context.Context, steps *models.DailySteps) error
	Leaderboard(ctx context.Context, from, to time.Time, limit int) ([]models.LeaderboardEntry, error)
}

// ProfileService serves dashboard data, reading through the user-scoped cache
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	GetStreak(ctx context.Context, userID string) (*models.Streak, error)
	GetWeeklySteps(ctx context.Context, userID string) ([]models.DailySteps, error)
	GetLeaderboard(ctx context.Context, userID string) ([]models.LeaderboardEntry, error)
	RecordSteps(ctx context.Context, steps *models.DailySteps) error
	Logout(ctx context.Context, userID string)
}

type profileService struct {
	repo             ProfileRepository
	cache            *cache.Cache
	logger           *logrus.Logger
	leaderboardLimit int
	now              func() time.Time
}

func NewProfileService(repo ProfileRepository, c *cache.Cache, logger *logrus.Logger, leaderboardLimit int) ProfileService {
	if leaderboardLimit < 1 {
		leaderboardLimit = 20
	}
	return &profileService{
		repo:             repo,
		cache:            c,
		logger:           logger,
		leaderboardLimit: leaderboardLimit,
		now:              time.Now,
	}
}

func profileKey(userID string) string { return "profile:" + userID }
func streakKey(userID string) string  { return "streak:" + userID }
func stepsKey(userID string) string   { return "steps:" + userID }

// leaderboardKey names the weekly board shared by every user
func leaderboardKey(week time.Time) string { return "leaderboard:" + week.Format("2006-01-02") }

// leaderboardOwner owns shared board entries, so a user's logout keeps them
const leaderboardOwner = "*"

func (s *profileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	if p, ok := cache.Get[models.Profile](ctx, s.cache, profileKey(userID), userID); ok {
		return &p, nil
	}

	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, err
		}
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to load profile")
		return nil, fmt.Errorf("service: could not get profile: %w", err)
	}

	cache.Set(ctx, s.cache, profileKey(userID), *p, userID)
	return p, nil
}

// GetStreak counts consecutive days, ending today, on which the daily goal was
// reached. A day that has not reached the goal yet does not break the streak.
func (s *profileService) GetStreak(ctx context.Context, userID string) (*models.Streak, error) {
	if st, ok := cache.Get[models.Streak](ctx, s.cache, streakKey(userID), userID); ok {
		return &st, nil
	}

	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := dayOf(s.now())
	history, err := s.repo.ListDailySteps(ctx, userID, today.Add(-streakLookback), today)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to load step history")
		return nil, fmt.Errorf("service: could not get step history: %w", err)
	}

	streak := computeStreak(userID, history, profile.Goal(), today)
	cache.Set(ctx, s.cache, streakKey(userID), *streak, userID)
	return streak, nil
}

// GetWeeklySteps returns the last seven days, oldest first, with missing days as zero
func (s *profileService) GetWeeklySteps(ctx context.Context, userID string) ([]models.DailySteps, error) {
	if steps, ok := cache.Get[[]models.DailySteps](ctx, s.cache, stepsKey(userID), userID); ok {
		return steps, nil
	}

	today := dayOf(s.now())
	from := today.AddDate(0, 0, -(weekDays - 1))
	history, err := s.repo.ListDailySteps(ctx, userID, from, today)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to load weekly steps")
		return nil, fmt.Errorf("service: could not get weekly steps: %w", err)
	}

	byDay := make(map[time.Time]int, len(history))
	for _, d := range history {
		byDay[dayOf(d.Date)] += d.Steps
	}

	week := make([]models.DailySteps, 0, weekDays)
	for day := from; !day.After(today); day = day.AddDate(0, 0, 1) {
		week = append(week, models.DailySteps{UserID: userID, Date: day, Steps: byDay[day]})
	}

	cache.Set(ctx, s.cache, stepsKey(userID), week, userID)
	return week, nil
}

// GetLeaderboard returns the top walkers of the current week (Monday to Sunday, UTC)
func (s *profileService) GetLeaderboard(ctx context.Context, userID string) ([]models.LeaderboardEntry, error) {
	from := weekStart(s.now())
	if board, ok := cache.Get[[]models.LeaderboardEntry](ctx, s.cache, leaderboardKey(from), leaderboardOwner); ok {
		return board, nil
	}

	to := from.AddDate(0, 0, weekDays-1)
	board, err := s.repo.Leaderboard(ctx, from, to, s.leaderboardLimit)
	if err != nil {
		s.logger.WithError(err).WithField("user_id", userID).Error("Failed to load leaderboard")
		return nil, fmt.Errorf("service: could not get leaderboard: %w", err)
	}
	for i := range board {
		board[i].Rank = i + 1
	}

	cache.Set(ctx, s.cache, leaderboardKey(from), board, leaderboardOwner)
	return board, nil
}

// RecordSteps stores the step count of a day and drops the derived cache entries
func (s *profileService) RecordSteps(ctx context.Context, steps *models.DailySteps) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "profile",
		"method":  "RecordSteps",
		"user_id": steps.UserID,
	})

	if steps.Date.IsZero() {
		steps.Date = s.now()
	}
	steps.Date = dayOf(steps.Date)

	if err := s.repo.UpsertDailySteps(ctx, steps); err != nil {
		log.WithError(err).Error("Failed to store daily steps")
		return fmt.Errorf("service: could not record steps: %w", err)
	}

	s.cache.Delete(ctx, stepsKey(steps.UserID), streakKey(steps.UserID), leaderboardKey(weekStart(steps.Date)))
	log.WithField("steps", steps.Steps).Info("Daily steps recorded")
	return nil
}

// Logout removes every cache entry owned by the user
func (s *profileService) Logout(ctx context.Context, userID string) {
	s.cache.Clear(ctx, userID)
	s.logger.WithField("user_id", userID).Info("User cache cleared")
}

func computeStreak(userID string, history []models.DailySteps, goal int, today time.Time) *models.Streak {
	byDay := make(map[time.Time]int, len(history))
	for _, d := range history {
		byDay[dayOf(d.Date)] += d.Steps
	}

	streak := &models.Streak{UserID: userID, Goal: goal}

	day := today
	if byDay[day] < goal {
		day = day.AddDate(0, 0, -1)
	}
	for byDay[day] >= goal {
		if streak.LastGoalDate == nil {
			last := day
			streak.LastGoalDate = &last
		}
		streak.Current++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func weekStart(t time.Time) time.Time {
	day := dayOf(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
