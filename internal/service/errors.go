package service

import "errors"

var (
	ErrAccessCodeExists  = errors.New("access code already registered")
	ErrSessionNotFound   = errors.New("tracking session not found")
	ErrNoRecipients      = errors.New("no push tokens found for recipient")
	ErrPushNotConfigured = errors.New("push notifications are not configured")
	ErrProfileNotFound   = errors.New("profile not found")
)
