package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shenikar/step_challenge_backend/internal/cache"
	"github.com/shenikar/step_challenge_backend/internal/models"
	"github.com/shenikar/step_challenge_backend/internal/tracking"
	"github.com/sirupsen/logrus"
)

// walkSummary is the state a device would show after each fix
type walkSummary struct {
	UserID     string                `json:"user_id"`
	DistanceKm float64               `json:"distance_km"`
	Accepted   int                   `json:"accepted"`
	Rejected   int                   `json:"rejected"`
	Invalid    int                   `json:"invalid"`
	Current    *models.LocationPoint `json:"current,omitempty"`
}

func summaryKey(userID string) string { return "walk:" + userID }

// replay feeds every JSON line of r into acc and keeps the running summary in c.
// Blank lines are skipped; malformed lines and invalid coordinates are counted and skipped.
func replay(ctx context.Context, r io.Reader, acc *tracking.Accumulator, c *cache.Cache, userID string, log *logrus.Logger) (*walkSummary, error) {
	summary := &walkSummary{UserID: userID}
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var p models.LocationPoint
		if err := json.Unmarshal([]byte(text), &p); err != nil {
			log.WithError(err).WithField("line", line).Warn("Skipping malformed fix")
			summary.Invalid++
			continue
		}

		update, err := acc.Add(p)
		if err != nil {
			if errors.Is(err, tracking.ErrInvalidCoordinates) {
				log.WithField("line", line).Warn("Skipping fix with invalid coordinates")
				summary.Invalid++
				continue
			}
			return nil, err
		}

		if update.Accepted {
			summary.Accepted++
		} else {
			summary.Rejected++
		}
		summary.DistanceKm = update.DistanceKm
		if current, ok := acc.Current(); ok {
			summary.Current = &current
		}
		cache.Set(ctx, c, summaryKey(userID), *summary, userID)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read fixes: %w", err)
	}

	cache.Set(ctx, c, summaryKey(userID), *summary, userID)
	return summary, nil
}
