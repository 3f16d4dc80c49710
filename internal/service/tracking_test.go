package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/step_challenge_backend/internal/models"
	"github.com/shenikar/step_challenge_backend/internal/service/mocks"
	"github.com/shenikar/step_challenge_backend/internal/tracking"
	"github.com/shenikar/step_challenge_backend/pkg/geo"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTrackingService(t *testing.T) (*trackingService, *mocks.MockWalkSessionRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockWalkSessionRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := NewTrackingService(repoMock, logger, tracking.DefaultMinMovementKm)
	return service.(*trackingService), repoMock
}

func fix(lat, lon float64) models.LocationPoint {
	return models.LocationPoint{Latitude: lat, Longitude: lon, Timestamp: time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)}
}

func TestTracking_AccumulatesDistance(t *testing.T) {
	service, _ := newTestTrackingService(t)
	ctx := context.Background()

	session, err := service.StartSession(ctx, "user-1")
	require.NoError(t, err)

	first, err := service.AddFix(ctx, session.ID, fix(0, 0))
	require.NoError(t, err)
	assert.True(t, first.Accepted)
	assert.Zero(t, first.DistanceKm)

	// about 1.1 m, below the jitter threshold
	jitter, err := service.AddFix(ctx, session.ID, fix(0, 0.00001))
	require.NoError(t, err)
	assert.False(t, jitter.Accepted)
	assert.Zero(t, jitter.DistanceKm)

	step, err := service.AddFix(ctx, session.ID, fix(0, 0.0001))
	require.NoError(t, err)
	assert.True(t, step.Accepted)
	assert.InDelta(t, geo.HaversineKm(0, 0, 0, 0.0001), step.DistanceKm, 1e-9)
	assert.InDelta(t, 0.0111, step.DistanceKm, 0.0005)

	got, err := service.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, step.DistanceKm, got.DistanceKm)
	require.NotNil(t, got.Current)
	assert.Equal(t, 0.0001, got.Current.Longitude)
}

func TestTracking_InvalidFix(t *testing.T) {
	service, _ := newTestTrackingService(t)
	ctx := context.Background()
	session, _ := service.StartSession(ctx, "user-1")

	_, err := service.AddFix(ctx, session.ID, fix(91, 0))

	require.Error(t, err)
	assert.ErrorIs(t, err, tracking.ErrInvalidCoordinates)
}

func TestTracking_UnknownSession(t *testing.T) {
	service, _ := newTestTrackingService(t)
	ctx := context.Background()

	_, err := service.AddFix(ctx, uuid.New(), fix(0, 0))
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = service.GetSession(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, _, err = service.Subscribe(uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestTracking_EndSession(t *testing.T) {
	service, repoMock := newTestTrackingService(t)
	ctx := context.Background()
	session, _ := service.StartSession(ctx, "user-1")
	_, _ = service.AddFix(ctx, session.ID, fix(0, 0))
	_, _ = service.AddFix(ctx, session.ID, fix(0, 0.001))

	updates, cancel, err := service.Subscribe(session.ID)
	require.NoError(t, err)
	defer cancel()

	repoMock.EXPECT().
		SaveWalkSession(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.WalkSession) error {
			assert.Equal(t, session.ID, s.ID)
			assert.Equal(t, "user-1", s.UserID)
			assert.Equal(t, 2, s.PointCount)
			assert.NotNil(t, s.EndedAt)
			return nil
		}).Times(1)

	summary, err := service.EndSession(ctx, session.ID)

	require.NoError(t, err)
	assert.InDelta(t, 0.111, summary.DistanceKm, 0.001)

	_, open := <-updates
	assert.False(t, open, "subscription must be closed when the session ends")

	_, err = service.GetSession(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestTracking_EndSessionSaveFailureKeepsSession(t *testing.T) {
	service, repoMock := newTestTrackingService(t)
	ctx := context.Background()
	session, _ := service.StartSession(ctx, "user-1")
	_, _ = service.AddFix(ctx, session.ID, fix(10, 10))

	repoMock.EXPECT().SaveWalkSession(ctx, gomock.Any()).Return(errors.New("db down")).Times(1)

	_, err := service.EndSession(ctx, session.ID)

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not save walk session")

	got, err := service.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.PointCount)
}

func TestTracking_SubscribeReceivesUpdates(t *testing.T) {
	service, _ := newTestTrackingService(t)
	ctx := context.Background()
	session, _ := service.StartSession(ctx, "user-1")

	updates, cancel, err := service.Subscribe(session.ID)
	require.NoError(t, err)
	defer cancel()

	_, err = service.AddFix(ctx, session.ID, fix(55.75, 37.61))
	require.NoError(t, err)

	select {
	case u := <-updates:
		assert.Equal(t, session.ID, u.SessionID)
		assert.True(t, u.Accepted)
		assert.Equal(t, 55.75, u.Point.Latitude)
	case <-time.After(time.Second):
		t.Fatal("update was not delivered")
	}
}

func TestTracking_SubscribeAfterEndIsRejected(t *testing.T) {
	service, repoMock := newTestTrackingService(t)
	ctx := context.Background()
	session, _ := service.StartSession(ctx, "user-1")

	// keep a handle as a concurrent subscriber would after its lookup
	live, err := service.lookup(session.ID)
	require.NoError(t, err)

	repoMock.EXPECT().SaveWalkSession(ctx, gomock.Any()).Return(nil).Times(1)
	_, err = service.EndSession(ctx, session.ID)
	require.NoError(t, err)

	service.mu.Lock()
	service.sessions[session.ID] = live
	service.mu.Unlock()

	updates, cancel, err := service.Subscribe(session.ID)

	require.ErrorIs(t, err, ErrSessionNotFound)
	assert.Nil(t, updates)
	assert.Nil(t, cancel)
}

func TestTracking_SubscribeRacingEndAlwaysCloses(t *testing.T) {
	for i := 0; i < 50; i++ {
		service, repoMock := newTestTrackingService(t)
		ctx := context.Background()
		session, _ := service.StartSession(ctx, "user-1")
		repoMock.EXPECT().SaveWalkSession(ctx, gomock.Any()).Return(nil).Times(1)

		subscribed := make(chan (<-chan models.SessionUpdate), 1)
		go func() {
			updates, _, err := service.Subscribe(session.ID)
			if err != nil {
				subscribed <- nil
				return
			}
			subscribed <- updates
		}()

		_, err := service.EndSession(ctx, session.ID)
		require.NoError(t, err)

		updates := <-subscribed
		if updates == nil {
			continue
		}
		select {
		case _, open := <-updates:
			assert.False(t, open)
		case <-time.After(time.Second):
			t.Fatal("subscription outlived its session")
		}
	}
}
