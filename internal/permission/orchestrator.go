// Package permission sequences the device permission prompts needed for
// step counting and GPS tracking.
package permission

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/step_challenge_backend/internal/pubsub"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultDelay separates the activity prompt from the location prompt.
	// Some platforms drop the second dialog while the first one is still
	// animating out; the value is empirical.
	DefaultDelay = 800 * time.Millisecond

	// DefaultRequestTimeout bounds how long the location prompt may stay unanswered
	DefaultRequestTimeout = 10 * time.Second

	stateTopic = "permission_state"
)

var (
	ErrDenied  = errors.New("permission denied")
	ErrTimeout = errors.New("permission request timed out")
)

type Status string

const (
	StatusUnknown Status = "unknown"
	StatusGranted Status = "granted"
	StatusDenied  Status = "denied"
)

// State is the last known OS permission status
type State struct {
	Activity Status `json:"activity"`
	Location Status `json:"location"`
}

// StepSensor starts the step counter. Starting it shows the activity
// recognition prompt; a denial is reported as ErrDenied.
type StepSensor interface {
	Start(ctx context.Context) error
}

// LocationPermissions shows the location prompt
type LocationPermissions interface {
	Request(ctx context.Context) (Status, error)
}

type Orchestrator struct {
	sensor   StepSensor
	location LocationPermissions
	logger   *logrus.Logger

	delay   time.Duration
	timeout time.Duration
	sleep   func(ctx context.Context, d time.Duration) error

	mu     sync.Mutex
	state  State
	events *pubsub.Broker[State]
}

type Option func(*Orchestrator)

func WithDelay(d time.Duration) Option {
	return func(o *Orchestrator) { o.delay = d }
}

func WithRequestTimeout(d time.Duration) Option {
	return func(o *Orchestrator) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithSleep replaces the delay implementation, mostly for tests.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(o *Orchestrator) { o.sleep = sleep }
}

func NewOrchestrator(sensor StepSensor, location LocationPermissions, logger *logrus.Logger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		sensor:   sensor,
		location: location,
		logger:   logger,
		delay:    DefaultDelay,
		timeout:  DefaultRequestTimeout,
		sleep:    sleepContext,
		state:    State{Activity: StatusUnknown, Location: StatusUnknown},
		events:   pubsub.NewBroker[State](8),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// RequestAll asks for activity recognition, then for location. It returns
// true only when both are granted. A denied activity prompt stops the flow
// before the location prompt is shown.
func (o *Orchestrator) RequestAll(ctx context.Context) (bool, error) {
	log := o.logger.WithField("method", "RequestAll")

	if err := o.sensor.Start(ctx); err != nil {
		if errors.Is(err, ErrDenied) {
			o.setActivity(StatusDenied)
			log.Info("Activity recognition denied, skipping location prompt")
			return false, nil
		}
		log.WithError(err).Error("Failed to start step sensor")
		return false, fmt.Errorf("permission: start step sensor: %w", err)
	}
	o.setActivity(StatusGranted)

	if err := o.sleep(ctx, o.delay); err != nil {
		return false, err
	}

	status, err := o.requestLocation(ctx)
	if err != nil {
		log.WithError(err).Warn("Location permission request failed")
		return false, err
	}
	o.setLocation(status)

	granted := status == StatusGranted
	log.WithField("granted", granted).Info("Permission flow completed")
	return granted, nil
}

func (o *Orchestrator) requestLocation(ctx context.Context) (Status, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	type result struct {
		status Status
		err    error
	}
	done := make(chan result, 1)
	go func() {
		status, err := o.location.Request(ctx)
		done <- result{status: status, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return StatusUnknown, ErrTimeout
			}
			return StatusUnknown, fmt.Errorf("permission: request location: %w", r.err)
		}
		return r.status, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return StatusUnknown, ErrTimeout
		}
		return StatusUnknown, ctx.Err()
	}
}

// State returns a snapshot of the last known permission status.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Subscribe streams state changes until cancel is called.
func (o *Orchestrator) Subscribe() (<-chan State, func()) {
	return o.events.Subscribe(stateTopic)
}

func (o *Orchestrator) setActivity(s Status) {
	o.mu.Lock()
	o.state.Activity = s
	snapshot := o.state
	o.mu.Unlock()
	o.events.Publish(stateTopic, snapshot)
}

func (o *Orchestrator) setLocation(s Status) {
	o.mu.Lock()
	o.state.Location = s
	snapshot := o.state
	o.mu.Unlock()
	o.events.Publish(stateTopic, snapshot)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
