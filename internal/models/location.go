package models

import (
	"time"

	"github.com/google/uuid"
)

// LocationPoint is a single GPS fix
type LocationPoint struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// WalkSession is a GPS tracking session of one user
type WalkSession struct {
	ID         uuid.UUID      `json:"id"`
	UserID     string         `json:"user_id"`
	DistanceKm float64        `json:"distance_km"`
	PointCount int            `json:"point_count"`
	Current    *LocationPoint `json:"current,omitempty"`
	StartedAt  time.Time      `json:"started_at"`
	EndedAt    *time.Time     `json:"ended_at,omitempty"`
}

// SessionUpdate is published after every fix of a session
type SessionUpdate struct {
	SessionID  uuid.UUID     `json:"session_id"`
	Point      LocationPoint `json:"point"`
	Accepted   bool          `json:"accepted"`
	DeltaKm    float64       `json:"delta_km"`
	DistanceKm float64       `json:"distance_km"`
}
