package models

// Notification is a push message addressed to a single user or token
type Notification struct {
	UserID    string
	PushToken string
	Title     string
	Body      string
	Data      map[string]string
}

// PushTarget is a registered device token of a user
type PushTarget struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
}

// SendResult summarises one send-notification request
type SendResult struct {
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Removed int `json:"removed"`
}
