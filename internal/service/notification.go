package service

//go:generate mockgen -source=notification.go -destination=mocks/notification_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shenikar/step_challenge_backend/internal/fcm"
	"github.com/shenikar/step_challenge_backend/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// PushTokenRepository reads and prunes registered device tokens
type PushTokenRepository interface {
	TokensByUser(ctx context.Context, userID string) ([]models.PushTarget, error)
	TokensByNotificationType(ctx context.Context, notificationType string) ([]models.PushTarget, error)
	DeleteToken(ctx context.Context, token string) error
}

// PushSender mints access tokens and delivers single messages
type PushSender interface {
	AccessToken(ctx context.Context) (string, error)
	Send(ctx context.Context, accessToken string, msg fcm.Message) error
}

// NotificationService sends push notifications to one user or to everyone
// who enabled a notification type
type NotificationService interface {
	Send(ctx context.Context, n models.Notification) (*models.SendResult, error)
	Broadcast(ctx context.Context, notificationType string, n models.Notification) (*models.SendResult, error)
}

type notificationService struct {
	repo        PushTokenRepository
	sender      PushSender
	logger      *logrus.Logger
	concurrency int
}

// NewNotificationService builds the service. sender may be nil when FCM
// credentials are not configured; every send then fails with ErrPushNotConfigured.
func NewNotificationService(repo PushTokenRepository, sender PushSender, logger *logrus.Logger, concurrency int) NotificationService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &notificationService{
		repo:        repo,
		sender:      sender,
		logger:      logger,
		concurrency: concurrency,
	}
}

// Send delivers n to its push token, or to every token of its user
func (s *notificationService) Send(ctx context.Context, n models.Notification) (*models.SendResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "notification",
		"method":  "Send",
		"user_id": n.UserID,
	})

	var targets []models.PushTarget
	if n.PushToken != "" {
		targets = []models.PushTarget{{UserID: n.UserID, Token: n.PushToken}}
	} else {
		var err error
		targets, err = s.repo.TokensByUser(ctx, n.UserID)
		if err != nil {
			log.WithError(err).Error("Failed to load push tokens")
			return nil, fmt.Errorf("service: could not load push tokens: %w", err)
		}
	}

	if len(targets) == 0 {
		log.Warn("No push tokens for user")
		return nil, ErrNoRecipients
	}

	return s.deliver(ctx, log, targets, n)
}

// Broadcast delivers n to every user who enabled notificationType
func (s *notificationService) Broadcast(ctx context.Context, notificationType string, n models.Notification) (*models.SendResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":           "notification",
		"method":            "Broadcast",
		"notification_type": notificationType,
	})

	targets, err := s.repo.TokensByNotificationType(ctx, notificationType)
	if err != nil {
		log.WithError(err).Error("Failed to load push tokens")
		return nil, fmt.Errorf("service: could not load push tokens: %w", err)
	}

	if len(targets) == 0 {
		log.Info("No subscribers for notification type")
		return &models.SendResult{}, nil
	}

	return s.deliver(ctx, log, targets, n)
}

// deliver sends one message per distinct token. A failed recipient is
// counted, never retried, and does not stop the others.
func (s *notificationService) deliver(ctx context.Context, log *logrus.Entry, targets []models.PushTarget, n models.Notification) (*models.SendResult, error) {
	if s.sender == nil {
		return nil, ErrPushNotConfigured
	}

	accessToken, err := s.sender.AccessToken(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to mint FCM access token")
		return nil, fmt.Errorf("service: could not get push access token: %w", err)
	}

	var (
		mu     sync.Mutex
		result models.SendResult
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, target := range uniqueTargets(targets) {
		target := target
		g.Go(func() error {
			err := s.sender.Send(gctx, accessToken, fcm.Message{
				Token: target.Token,
				Title: n.Title,
				Body:  n.Body,
				Data:  n.Data,
			})

			removed := false
			if errors.Is(err, fcm.ErrUnregistered) {
				if delErr := s.repo.DeleteToken(gctx, target.Token); delErr != nil {
					log.WithError(delErr).Warn("Failed to delete unregistered push token")
				} else {
					removed = true
				}
			} else if err != nil {
				log.WithError(err).WithField("recipient", target.UserID).Warn("Failed to send push notification")
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				if removed {
					result.Removed++
				}
				return nil
			}
			result.Sent++
			return nil
		})
	}
	_ = g.Wait()

	log.WithFields(logrus.Fields{
		"sent":    result.Sent,
		"failed":  result.Failed,
		"removed": result.Removed,
	}).Info("Push notifications processed")
	return &result, nil
}

func uniqueTargets(targets []models.PushTarget) []models.PushTarget {
	seen := make(map[string]struct{}, len(targets))
	out := make([]models.PushTarget, 0, len(targets))
	for _, t := range targets {
		if t.Token == "" {
			continue
		}
		if _, ok := seen[t.Token]; ok {
			continue
		}
		seen[t.Token] = struct{}{}
		out = append(out, t)
	}
	return out
}
