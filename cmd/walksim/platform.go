package main

import (
	"context"
	"fmt"

	"github.com/shenikar/step_challenge_backend/internal/permission"
)

// simSensor answers the activity recognition prompt with a fixed choice
type simSensor struct {
	grant bool
}

func (s simSensor) Start(context.Context) error {
	if !s.grant {
		return permission.ErrDenied
	}
	return nil
}

// simLocation answers the location prompt with a fixed choice.
// "hang" never answers, which exercises the request timeout.
type simLocation struct {
	mode string
}

func (l simLocation) Request(ctx context.Context) (permission.Status, error) {
	switch l.mode {
	case "grant":
		return permission.StatusGranted, nil
	case "deny":
		return permission.StatusDenied, nil
	case "hang":
		<-ctx.Done()
		return permission.StatusUnknown, ctx.Err()
	}
	return permission.StatusUnknown, fmt.Errorf("unknown location mode %q", l.mode)
}
