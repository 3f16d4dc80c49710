package models

import "time"

// DefaultDailyStepGoal is used when a profile has no goal set
const DefaultDailyStepGoal = 10000

// Profile is the public part of a user profile
type Profile struct {
	UserID        string    `json:"user_id"`
	DisplayName   string    `json:"display_name"`
	AvatarURL     string    `json:"avatar_url,omitempty"`
	DailyStepGoal int       `json:"daily_step_goal"`
	CreatedAt     time.Time `json:"created_at"`
}

// Goal returns the daily step goal, falling back to the default
func (p *Profile) Goal() int {
	if p == nil || p.DailyStepGoal <= 0 {
		return DefaultDailyStepGoal
	}
	return p.DailyStepGoal
}

// DailySteps is the step count of a user for one calendar day
type DailySteps struct {
	UserID string    `json:"user_id"`
	Date   time.Time `json:"date"`
	Steps  int       `json:"steps"`
}

// Streak is the number of consecutive days the goal was reached
type Streak struct {
	UserID       string     `json:"user_id"`
	Current      int        `json:"current"`
	Goal         int        `json:"goal"`
	LastGoalDate *time.Time `json:"last_goal_date,omitempty"`
}

// LeaderboardEntry is one row of the weekly leaderboard
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Steps       int    `json:"steps"`
}
