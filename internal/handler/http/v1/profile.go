package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/step_challenge_backend/internal/models"
	"github.com/shenikar/step_challenge_backend/internal/service"
	"github.com/sirupsen/logrus"
)

const dateLayout = "2006-01-02"

// @Summary Get a user profile
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id}/profile [get]
func (h *Handler) getProfile(c *gin.Context) {
	userID := c.Param("id")
	log := h.logger.WithField("method", "getProfile").WithField("user_id", userID)

	profile, err := h.profiles.GetProfile(c.Request.Context(), userID)
	if err != nil {
		writeProfileError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToProfileResponse(profile))
}

// @Summary Get the current goal streak
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Success 200 {object} StreakResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Profile not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id}/streak [get]
func (h *Handler) getStreak(c *gin.Context) {
	userID := c.Param("id")
	log := h.logger.WithField("method", "getStreak").WithField("user_id", userID)

	streak, err := h.profiles.GetStreak(c.Request.Context(), userID)
	if err != nil {
		writeProfileError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToStreakResponse(streak))
}

// @Summary Get the steps of the last seven days
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Success 200 {array} DailyStepsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id}/steps [get]
func (h *Handler) getWeeklySteps(c *gin.Context) {
	userID := c.Param("id")
	log := h.logger.WithField("method", "getWeeklySteps").WithField("user_id", userID)

	steps, err := h.profiles.GetWeeklySteps(c.Request.Context(), userID)
	if err != nil {
		writeProfileError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToDailyStepsResponses(steps))
}

// @Summary Record the step count of a day
// @Tags Users
// @Accept json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Param steps body RecordStepsRequest true "Steps"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id}/steps [put]
func (h *Handler) recordSteps(c *gin.Context) {
	userID := c.Param("id")
	log := h.logger.WithField("method", "recordSteps").WithField("user_id", userID)

	var input RecordStepsRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	steps := &models.DailySteps{UserID: userID, Steps: *input.Steps}
	if input.Date != "" {
		// validated by the datetime tag
		steps.Date, _ = time.Parse(dateLayout, input.Date)
	}

	if err := h.profiles.RecordSteps(c.Request.Context(), steps); err != nil {
		writeProfileError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get the weekly leaderboard
// @Tags Users
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Success 200 {array} LeaderboardEntryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id}/leaderboard [get]
func (h *Handler) getLeaderboard(c *gin.Context) {
	userID := c.Param("id")
	log := h.logger.WithField("method", "getLeaderboard").WithField("user_id", userID)

	board, err := h.profiles.GetLeaderboard(c.Request.Context(), userID)
	if err != nil {
		writeProfileError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToLeaderboardResponses(board))
}

// @Summary Log a user out
// @Description Clears every cached entry owned by the user.
// @Tags Users
// @Security ApiKeyAuth
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /users/{id}/logout [post]
func (h *Handler) logout(c *gin.Context) {
	h.profiles.Logout(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

func writeProfileError(c *gin.Context, log *logrus.Entry, err error) {
	if errors.Is(err, service.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	log.WithError(err).Error("Profile service failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
