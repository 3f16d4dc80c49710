package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/step_challenge_backend/internal/models"
	"github.com/shenikar/step_challenge_backend/internal/service"
)

// @Summary Register a purchased access code
// @Description Store webhook. When a webhook secret is configured the body must be signed with HMAC-SHA256 in the X-Webhook-Signature header.
// @Tags Functions
// @Accept json
// @Produce json
// @Param X-Webhook-Signature header string false "hex HMAC-SHA256 of the raw body"
// @Param code body RegisterAccessCodeRequest true "Access code"
// @Success 201 {object} AccessCodeResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Missing or invalid signature"
// @Failure 409 {object} map[string]string "Access code already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /functions/register-access-code [post]
func (h *Handler) registerAccessCode(c *gin.Context) {
	var input RegisterAccessCodeRequest
	log := h.logger.WithField("method", "registerAccessCode")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	model := DTOToAccessCodeModel(input)
	if err := h.accessCodes.RegisterAccessCode(c.Request.Context(), model); err != nil {
		if errors.Is(err, service.ErrAccessCodeExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "access code already registered"})
			return
		}
		log.WithError(err).Error("Failed to register access code in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, ModelToAccessCodeResponse(model))
}

// @Summary Send a push notification
// @Description Sends to one user (user_id), one device (push_token) or every user who enabled notification_type. Requires API key.
// @Tags Functions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param notification body SendNotificationRequest true "Notification"
// @Success 200 {object} SendNotificationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No push tokens for the user"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /functions/send-notification [post]
func (h *Handler) sendNotification(c *gin.Context) {
	var input SendNotificationRequest
	log := h.logger.WithField("method", "sendNotification")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	data, err := stringifyData(input.Data)
	if err != nil {
		log.WithError(err).Warn("Invalid notification data")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification data"})
		return
	}

	n := models.Notification{
		UserID:    input.UserID,
		PushToken: input.PushToken,
		Title:     input.Title,
		Body:      input.Body,
		Data:      data,
	}

	var result *models.SendResult
	if input.NotificationType != "" {
		result, err = h.notifications.Broadcast(c.Request.Context(), input.NotificationType, n)
	} else {
		result, err = h.notifications.Send(c.Request.Context(), n)
	}
	if err != nil {
		if errors.Is(err, service.ErrNoRecipients) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no push tokens found"})
			return
		}
		log.WithError(err).Error("Failed to send notification")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, SendNotificationResponse{Sent: result.Sent, Failed: result.Failed})
}

// stringifyData converts free-form JSON data into the string map FCM accepts.
// Strings are kept as is, everything else is JSON encoded.
func stringifyData(data map[string]any) (map[string]string, error) {
	if len(data) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(data))
	for k, v := range data {
		if s, ok := v.(string); ok {
			out[k] = s
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		out[k] = string(raw)
	}
	return out, nil
}
