package service

//go:generate mockgen -source=access_code.go -destination=mocks/access_code_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shenikar/step_challenge_backend/internal/models"
	"github.com/sirupsen/logrus"
)

// AccessCodeRepository stores purchased access codes
type AccessCodeRepository interface {
	Create(ctx context.Context, code *models.AccessCode) error
}

// AccessCodeService registers access codes sent by the store webhook
type AccessCodeService interface {
	RegisterAccessCode(ctx context.Context, code *models.AccessCode) error
}

type accessCodeService struct {
	repo   AccessCodeRepository
	logger *logrus.Logger
}

func NewAccessCodeService(repo AccessCodeRepository, logger *logrus.Logger) AccessCodeService {
	return &accessCodeService{
		repo:   repo,
		logger: logger,
	}
}

// RegisterAccessCode normalizes and stores a new access code
func (s *accessCodeService) RegisterAccessCode(ctx context.Context, code *models.AccessCode) error {
	code.Code = strings.ToUpper(strings.TrimSpace(code.Code))
	code.CustomerEmail = strings.ToLower(strings.TrimSpace(code.CustomerEmail))
	code.CustomerName = strings.TrimSpace(code.CustomerName)

	log := s.logger.WithFields(logrus.Fields{
		"service":     "access_code",
		"method":      "RegisterAccessCode",
		"purchase_id": code.PurchaseID,
	})
	log.Info("Registering access code")

	if err := s.repo.Create(ctx, code); err != nil {
		if errors.Is(err, ErrAccessCodeExists) {
			log.Warn("Access code already registered")
			return err
		}
		log.WithError(err).Error("Failed to store access code")
		return fmt.Errorf("service: could not register access code: %w", err)
	}

	log.WithField("access_code_id", code.ID).Info("Access code registered")
	return nil
}
