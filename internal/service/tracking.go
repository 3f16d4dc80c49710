package service

//go:generate mockgen -source=tracking.go -destination=mocks/tracking_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/step_challenge_backend/internal/models"
	"github.com/shenikar/step_challenge_backend/internal/pubsub"
	"github.com/shenikar/step_challenge_backend/internal/tracking"
	"github.com/sirupsen/logrus"
)

// WalkSessionRepository persists finished tracking sessions
type WalkSessionRepository interface {
	SaveWalkSession(ctx context.Context, session *models.WalkSession) error
}

// TrackingService owns live GPS tracking sessions
type TrackingService interface {
	StartSession(ctx context.Context, userID string) (*models.WalkSession, error)
	AddFix(ctx context.Context, sessionID uuid.UUID, point models.LocationPoint) (*models.SessionUpdate, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*models.WalkSession, error)
	EndSession(ctx context.Context, sessionID uuid.UUID) (*models.WalkSession, error)
	Subscribe(sessionID uuid.UUID) (<-chan models.SessionUpdate, func(), error)
}

// liveSession is one active route. Fixes are applied one at a time.
type liveSession struct {
	mu    sync.Mutex
	info  models.WalkSession
	acc   *tracking.Accumulator
	ended bool
}

type trackingService struct {
	repo          WalkSessionRepository
	logger        *logrus.Logger
	minMovementKm float64
	updates       *pubsub.Broker[models.SessionUpdate]
	now           func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*liveSession
}

func NewTrackingService(repo WalkSessionRepository, logger *logrus.Logger, minMovementKm float64) TrackingService {
	return &trackingService{
		repo:          repo,
		logger:        logger,
		minMovementKm: minMovementKm,
		updates:       pubsub.NewBroker[models.SessionUpdate](64),
		now:           time.Now,
		sessions:      map[uuid.UUID]*liveSession{},
	}
}

func (s *trackingService) StartSession(_ context.Context, userID string) (*models.WalkSession, error) {
	live := &liveSession{
		info: models.WalkSession{
			ID:        uuid.New(),
			UserID:    userID,
			StartedAt: s.now().UTC(),
		},
		acc: tracking.NewAccumulator(s.minMovementKm),
	}

	s.mu.Lock()
	s.sessions[live.info.ID] = live
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"service":    "tracking",
		"method":     "StartSession",
		"user_id":    userID,
		"session_id": live.info.ID,
	}).Info("Tracking session started")

	info := live.info
	return &info, nil
}

// AddFix feeds one GPS fix into the session route and publishes the result
func (s *trackingService) AddFix(_ context.Context, sessionID uuid.UUID, point models.LocationPoint) (*models.SessionUpdate, error) {
	live, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	if point.Timestamp.IsZero() {
		point.Timestamp = s.now().UTC()
	}

	live.mu.Lock()
	if live.ended {
		live.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	res, err := live.acc.Add(point)
	live.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("service: could not add fix: %w", err)
	}

	update := models.SessionUpdate{
		SessionID:  sessionID,
		Point:      point,
		Accepted:   res.Accepted,
		DeltaKm:    res.DeltaKm,
		DistanceKm: res.DistanceKm,
	}
	s.updates.Publish(sessionID.String(), update)
	return &update, nil
}

func (s *trackingService) GetSession(_ context.Context, sessionID uuid.UUID) (*models.WalkSession, error) {
	live, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	live.mu.Lock()
	defer live.mu.Unlock()
	if live.ended {
		return nil, ErrSessionNotFound
	}
	return live.snapshot(), nil
}

// EndSession persists the session summary, then drops its route
func (s *trackingService) EndSession(ctx context.Context, sessionID uuid.UUID) (*models.WalkSession, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "tracking",
		"method":     "EndSession",
		"session_id": sessionID,
	})

	live, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	live.mu.Lock()
	defer live.mu.Unlock()
	if live.ended {
		return nil, ErrSessionNotFound
	}

	summary := live.snapshot()
	endedAt := s.now().UTC()
	summary.EndedAt = &endedAt

	if err := s.repo.SaveWalkSession(ctx, summary); err != nil {
		log.WithError(err).Error("Failed to save walk session")
		return nil, fmt.Errorf("service: could not save walk session: %w", err)
	}

	live.ended = true
	live.acc.Reset()

	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
	s.updates.Close(sessionID.String())

	log.WithFields(logrus.Fields{
		"distance_km": summary.DistanceKm,
		"points":      summary.PointCount,
	}).Info("Tracking session ended")
	return summary, nil
}

// Subscribe streams the updates of a live session until it ends or cancel is called
func (s *trackingService) Subscribe(sessionID uuid.UUID) (<-chan models.SessionUpdate, func(), error) {
	live, err := s.lookup(sessionID)
	if err != nil {
		return nil, nil, err
	}

	// EndSession closes the topic while holding live.mu
	live.mu.Lock()
	defer live.mu.Unlock()
	if live.ended {
		return nil, nil, ErrSessionNotFound
	}
	ch, cancel := s.updates.Subscribe(sessionID.String())
	return ch, cancel, nil
}

func (s *trackingService) lookup(sessionID uuid.UUID) (*liveSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	live, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return live, nil
}

// snapshot must be called with l.mu held
func (l *liveSession) snapshot() *models.WalkSession {
	info := l.info
	info.DistanceKm = l.acc.DistanceKm()
	info.PointCount = l.acc.Len()
	if current, ok := l.acc.Current(); ok {
		info.Current = &current
	}
	return &info
}
