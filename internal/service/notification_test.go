package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shenikar/step_challenge_backend/internal/fcm"
	"github.com/shenikar/step_challenge_backend/internal/models"
	"github.com/shenikar/step_challenge_backend/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNotificationService(t *testing.T) (NotificationService, *mocks.MockPushTokenRepository, *mocks.MockPushSender) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockPushTokenRepository(ctrl)
	senderMock := mocks.NewMockPushSender(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewNotificationService(repoMock, senderMock, logger, 4), repoMock, senderMock
}

func TestSend_ToUserTokens(t *testing.T) {
	service, repoMock, senderMock := newTestNotificationService(t)
	ctx := context.Background()
	n := models.Notification{
		UserID: "user-1",
		Title:  "Goal reached",
		Body:   "10 000 steps today",
		Data:   map[string]string{"screen": "streak"},
	}

	repoMock.EXPECT().
		TokensByUser(ctx, "user-1").
		Return([]models.PushTarget{
			{UserID: "user-1", Token: "phone"},
			{UserID: "user-1", Token: "tablet"},
			{UserID: "user-1", Token: "phone"},
		}, nil).Times(1)
	senderMock.EXPECT().AccessToken(ctx).Return("access-token", nil).Times(1)
	senderMock.EXPECT().
		Send(gomock.Any(), "access-token", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, msg fcm.Message) error {
			assert.Equal(t, "Goal reached", msg.Title)
			assert.Equal(t, "streak", msg.Data["screen"])
			return nil
		}).Times(2)

	result, err := service.Send(ctx, n)

	require.NoError(t, err)
	assert.Equal(t, &models.SendResult{Sent: 2}, result)
}

func TestSend_ExplicitPushToken(t *testing.T) {
	service, repoMock, senderMock := newTestNotificationService(t)
	ctx := context.Background()

	repoMock.EXPECT().TokensByUser(gomock.Any(), gomock.Any()).Times(0)
	senderMock.EXPECT().AccessToken(ctx).Return("access-token", nil).Times(1)
	senderMock.EXPECT().
		Send(gomock.Any(), "access-token", fcm.Message{Token: "device-token", Title: "Hi", Body: "there"}).
		Return(nil).Times(1)

	result, err := service.Send(ctx, models.Notification{PushToken: "device-token", Title: "Hi", Body: "there"})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}

func TestSend_NoTokens(t *testing.T) {
	service, repoMock, senderMock := newTestNotificationService(t)
	ctx := context.Background()

	repoMock.EXPECT().TokensByUser(ctx, "user-2").Return(nil, nil).Times(1)
	senderMock.EXPECT().AccessToken(gomock.Any()).Times(0)

	result, err := service.Send(ctx, models.Notification{UserID: "user-2", Title: "t", Body: "b"})

	require.ErrorIs(t, err, ErrNoRecipients)
	assert.Nil(t, result)
}

func TestSend_RepositoryError(t *testing.T) {
	service, repoMock, _ := newTestNotificationService(t)
	ctx := context.Background()

	repoMock.EXPECT().TokensByUser(ctx, "user-3").Return(nil, errors.New("db down")).Times(1)

	_, err := service.Send(ctx, models.Notification{UserID: "user-3"})

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not load push tokens")
}

func TestSend_AccessTokenError(t *testing.T) {
	service, _, senderMock := newTestNotificationService(t)
	ctx := context.Background()

	senderMock.EXPECT().AccessToken(ctx).Return("", errors.New("invalid_grant")).Times(1)
	senderMock.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := service.Send(ctx, models.Notification{PushToken: "t"})

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not get push access token")
}

func TestSend_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockPushTokenRepository(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	service := NewNotificationService(repoMock, nil, logger, 1)

	_, err := service.Send(context.Background(), models.Notification{PushToken: "t"})

	require.ErrorIs(t, err, ErrPushNotConfigured)
}

func TestBroadcast_CountsFailuresAndRemovesUnregistered(t *testing.T) {
	service, repoMock, senderMock := newTestNotificationService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		TokensByNotificationType(ctx, "daily_reminder").
		Return([]models.PushTarget{
			{UserID: "u1", Token: "ok"},
			{UserID: "u2", Token: "gone"},
			{UserID: "u3", Token: "broken"},
			{UserID: "u4", Token: ""},
		}, nil).Times(1)
	senderMock.EXPECT().AccessToken(ctx).Return("access-token", nil).Times(1)
	senderMock.EXPECT().
		Send(gomock.Any(), "access-token", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, msg fcm.Message) error {
			switch msg.Token {
			case "gone":
				return fcm.ErrUnregistered
			case "broken":
				return errors.New("fcm: send failed with status 500")
			}
			return nil
		}).Times(3)
	repoMock.EXPECT().DeleteToken(gomock.Any(), "gone").Return(nil).Times(1)

	result, err := service.Broadcast(ctx, "daily_reminder", models.Notification{Title: "Walk", Body: "Time for a walk"})

	require.NoError(t, err)
	assert.Equal(t, &models.SendResult{Sent: 1, Failed: 2, Removed: 1}, result)
}

func TestBroadcast_NoSubscribers(t *testing.T) {
	service, repoMock, senderMock := newTestNotificationService(t)
	ctx := context.Background()

	repoMock.EXPECT().TokensByNotificationType(ctx, "weekly_summary").Return(nil, nil).Times(1)
	senderMock.EXPECT().AccessToken(gomock.Any()).Times(0)

	result, err := service.Broadcast(ctx, "weekly_summary", models.Notification{Title: "t", Body: "b"})

	require.NoError(t, err)
	assert.Equal(t, &models.SendResult{}, result)
}
