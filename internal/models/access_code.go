package models

import (
	"time"

	"github.com/google/uuid"
)

// AccessCode is a purchased access code registered by the store webhook
type AccessCode struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"access_code"`
	CustomerEmail string    `json:"customer_email"`
	CustomerName  string    `json:"customer_name"`
	ProductName   string    `json:"product_name"`
	PurchaseID    string    `json:"purchase_id"`
	IsUsed        bool      `json:"is_used"`
	CreatedAt     time.Time `json:"created_at"`
}
