package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/step_challenge_backend/internal/service"
	"github.com/shenikar/step_challenge_backend/internal/tracking"
	"github.com/sirupsen/logrus"
)

// @Summary Start a GPS tracking session
// @Tags Sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param session body StartSessionRequest true "Session owner"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /sessions [post]
func (h *Handler) startSession(c *gin.Context) {
	var input StartSessionRequest
	log := h.logger.WithField("method", "startSession")

	if !h.bindAndValidate(c, log, &input) {
		return
	}

	session, err := h.tracking.StartSession(c.Request.Context(), input.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to start session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToSessionResponse(session))
}

// @Summary Add a GPS fix to a session
// @Description Fixes closer than the movement threshold to the last accepted point move the current position only.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param fix body AddFixRequest true "GPS fix"
// @Success 200 {object} SessionUpdateResponse
// @Failure 400 {object} map[string]string "Invalid session ID or coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/points [post]
func (h *Handler) addFix(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "addFix").WithField("id", id)

	var input AddFixRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	update, err := h.tracking.AddFix(c.Request.Context(), id, DTOToLocationPoint(input))
	if err != nil {
		h.writeSessionError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSessionUpdateResponse(update))
}

// @Summary Get a live session
// @Tags Sessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid session ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id} [get]
func (h *Handler) getSession(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getSession").WithField("id", id)

	session, err := h.tracking.GetSession(c.Request.Context(), id)
	if err != nil {
		h.writeSessionError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSessionResponse(session))
}

// @Summary End a session
// @Description Persists the session summary and closes its update streams.
// @Tags Sessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid session ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sessions/{id} [delete]
func (h *Handler) endSession(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "endSession").WithField("id", id)

	session, err := h.tracking.EndSession(c.Request.Context(), id)
	if err != nil {
		h.writeSessionError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSessionResponse(session))
}

// @Summary Stream session updates
// @Description Server-sent events, one "update" event per GPS fix, until the session ends.
// @Tags Sessions
// @Produce text/event-stream
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} SessionUpdateResponse
// @Failure 400 {object} map[string]string "Invalid session ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/stream [get]
func (h *Handler) streamSession(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "streamSession").WithField("id", id)

	updates, cancel, err := h.tracking.Subscribe(id)
	if err != nil {
		h.writeSessionError(c, log, err)
		return
	}
	defer cancel()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case update, open := <-updates:
			if !open {
				c.SSEvent("end", gin.H{"session_id": id})
				return false
			}
			c.SSEvent("update", ModelToSessionUpdateResponse(&update))
			return true
		}
	})
}

func parseSessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) writeSessionError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, tracking.ErrInvalidCoordinates):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
	default:
		log.WithError(err).Error("Tracking service failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
