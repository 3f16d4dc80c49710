package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/step_challenge_backend/internal/models"
	"github.com/shenikar/step_challenge_backend/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAccessCodeService(t *testing.T) (AccessCodeService, *mocks.MockAccessCodeRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAccessCodeRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewAccessCodeService(repoMock, logger), repoMock
}

func TestRegisterAccessCode_Success(t *testing.T) {
	service, repoMock := newTestAccessCodeService(t)
	ctx := context.Background()
	code := &models.AccessCode{
		Code:          "  walk-2024-abc ",
		CustomerEmail: " Ann@Example.COM",
		CustomerName:  " Ann Walker ",
		ProductName:   "Spring Challenge",
		PurchaseID:    "p-100",
	}

	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.AccessCode) error {
			assert.Equal(t, "WALK-2024-ABC", c.Code)
			assert.Equal(t, "ann@example.com", c.CustomerEmail)
			assert.Equal(t, "Ann Walker", c.CustomerName)
			c.ID = uuid.New()
			return nil
		}).Times(1)

	err := service.RegisterAccessCode(ctx, code)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, code.ID)
}

func TestRegisterAccessCode_Duplicate(t *testing.T) {
	service, repoMock := newTestAccessCodeService(t)
	ctx := context.Background()

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(ErrAccessCodeExists).Times(1)

	err := service.RegisterAccessCode(ctx, &models.AccessCode{Code: "DUP"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAccessCodeExists)
}

func TestRegisterAccessCode_RepositoryError(t *testing.T) {
	service, repoMock := newTestAccessCodeService(t)
	ctx := context.Background()

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("connection reset")).Times(1)

	err := service.RegisterAccessCode(ctx, &models.AccessCode{Code: "X"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAccessCodeExists)
	assert.ErrorContains(t, err, "could not register access code")
}
