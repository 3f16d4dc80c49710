package v1

import (
	"bytes"
	"crypto/subtle"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/step_challenge_backend/internal/config"
	"github.com/shenikar/step_challenge_backend/internal/webhook"
	"github.com/sirupsen/logrus"
)

const maxWebhookBodySize = 1 << 20

// APIKeyAuthMiddleware authenticates requests by the X-API-Key header or a Bearer token
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			authHeader := c.GetHeader("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		isValid := false
		for _, key := range cfg.APIKeys {
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
				isValid = true
				break
			}
		}

		if !isValid {
			log.WithField("path", c.FullPath()).Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

// WebhookSignatureMiddleware checks the HMAC-SHA256 signature of the raw body
// when a webhook secret is configured. The body is restored for the handler.
func WebhookSignatureMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.WebhookSecret == "" {
			c.Next()
			return
		}

		signature := c.GetHeader(webhook.SignatureHeader)
		if signature == "" {
			log.WithField("path", c.FullPath()).Warn("Webhook signature missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing signature"})
			return
		}

		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodySize+1))
		if err != nil {
			log.WithError(err).Warn("Failed to read webhook body")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if len(body) > maxWebhookBodySize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}

		if !webhook.Verify(body, cfg.WebhookSecret, signature) {
			log.WithField("path", c.FullPath()).Warn("Invalid webhook signature")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		c.Next()
	}
}
