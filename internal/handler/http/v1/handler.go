package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/step_challenge_backend/internal/config"
	"github.com/shenikar/step_challenge_backend/internal/service"
	"github.com/sirupsen/logrus"
)

// Services groups the business services served over HTTP
type Services struct {
	AccessCodes   service.AccessCodeService
	Notifications service.NotificationService
	Tracking      service.TrackingService
	Profiles      service.ProfileService
}

type Handler struct {
	accessCodes   service.AccessCodeService
	notifications service.NotificationService
	tracking      service.TrackingService
	profiles      service.ProfileService
	logger        *logrus.Logger
	validate      *validator.Validate
	cfg           *config.Config
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		accessCodes:   services.AccessCodes,
		notifications: services.Notifications,
		tracking:      services.Tracking,
		profiles:      services.Profiles,
		logger:        logger,
		validate:      validator.New(),
		cfg:           cfg,
	}
}

// bindAndValidate decodes the JSON body into input and validates it.
// On failure it writes a 400 response and returns false.
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
