package v1

import (
	"time"

	"github.com/google/uuid"
)

// RegisterAccessCodeRequest DTO sent by the store webhook
// @Description Purchased access code
type RegisterAccessCodeRequest struct {
	AccessCode    string `json:"access_code" validate:"required,max=64"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerName  string `json:"customer_name" validate:"max=255"`
	ProductName   string `json:"product_name" validate:"max=255"`
	PurchaseID    string `json:"purchase_id" validate:"required,max=255"`
}

// AccessCodeResponse DTO for a registered access code
// @Description Registered access code
type AccessCodeResponse struct {
	ID            uuid.UUID `json:"id"`
	AccessCode    string    `json:"access_code"`
	CustomerEmail string    `json:"customer_email"`
	ProductName   string    `json:"product_name"`
	PurchaseID    string    `json:"purchase_id"`
	IsUsed        bool      `json:"is_used"`
	CreatedAt     time.Time `json:"created_at"`
}

// SendNotificationRequest DTO for single and bulk sends.
// notification_type selects a bulk send; otherwise user_id or push_token is required.
// @Description Push notification request
type SendNotificationRequest struct {
	UserID           string         `json:"user_id,omitempty" validate:"required_without_all=PushToken NotificationType"`
	PushToken        string         `json:"push_token,omitempty"`
	NotificationType string         `json:"notification_type,omitempty" validate:"omitempty,max=64"`
	Title            string         `json:"title" validate:"required,max=255"`
	Body             string         `json:"body" validate:"required,max=4096"`
	Data             map[string]any `json:"data,omitempty"`
}

// SendNotificationResponse DTO with delivery counters
// @Description Delivery counters
type SendNotificationResponse struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// StartSessionRequest DTO for a new tracking session
// @Description Tracking session owner
type StartSessionRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// AddFixRequest DTO for a GPS fix. Coordinates are pointers so that 0 is a valid value.
// @Description GPS fix
type AddFixRequest struct {
	Latitude  *float64   `json:"latitude" validate:"required,latitude"`
	Longitude *float64   `json:"longitude" validate:"required,longitude"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// LocationResponse DTO for a GPS fix
// @Description GPS fix
type LocationResponse struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// SessionResponse DTO for a tracking session summary
// @Description Tracking session summary
type SessionResponse struct {
	ID         uuid.UUID         `json:"id"`
	UserID     string            `json:"user_id"`
	DistanceKm float64           `json:"distance_km"`
	PointCount int               `json:"point_count"`
	Current    *LocationResponse `json:"current,omitempty"`
	StartedAt  time.Time         `json:"started_at"`
	EndedAt    *time.Time        `json:"ended_at,omitempty"`
}

// SessionUpdateResponse DTO for the result of one GPS fix
// @Description Result of one GPS fix
type SessionUpdateResponse struct {
	SessionID  uuid.UUID        `json:"session_id"`
	Point      LocationResponse `json:"point"`
	Accepted   bool             `json:"accepted"`
	DeltaKm    float64          `json:"delta_km"`
	DistanceKm float64          `json:"distance_km"`
}

// ProfileResponse DTO for a user profile
// @Description User profile
type ProfileResponse struct {
	UserID        string    `json:"user_id"`
	DisplayName   string    `json:"display_name"`
	AvatarURL     string    `json:"avatar_url,omitempty"`
	DailyStepGoal int       `json:"daily_step_goal"`
	CreatedAt     time.Time `json:"created_at"`
}

// StreakResponse DTO for the goal streak
// @Description Goal streak
type StreakResponse struct {
	UserID       string  `json:"user_id"`
	Current      int     `json:"current"`
	Goal         int     `json:"goal"`
	LastGoalDate *string `json:"last_goal_date,omitempty"`
}

// DailyStepsResponse DTO for the steps of one day
// @Description Steps of one day
type DailyStepsResponse struct {
	Date  string `json:"date"`
	Steps int    `json:"steps"`
}

// RecordStepsRequest DTO for a daily step count. Date defaults to today (UTC).
// @Description Daily step count
type RecordStepsRequest struct {
	Date  string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Steps *int   `json:"steps" validate:"required,gte=0"`
}

// LeaderboardEntryResponse DTO for one leaderboard row
// @Description Leaderboard row
type LeaderboardEntryResponse struct {
	Rank        int    `json:"rank"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Steps       int    `json:"steps"`
}
