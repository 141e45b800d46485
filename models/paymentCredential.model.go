package models

import "gorm.io/gorm"

// Credential status values
const (
	CredentialStatusActive   = "active"
	CredentialStatusInactive = "inactive"
)

// PaymentCredential holds a Razorpay key set. At most one record is active
// at any time; activation runs inside a transaction that deactivates the rest.
type PaymentCredential struct {
	gorm.Model
	KeyID         string `json:"keyId" gorm:"not null"`
	KeySecret     string `json:"-" gorm:"not null"`
	WebhookSecret string `json:"-"`
	Status        string `json:"status" gorm:"default:'inactive';index"`
	IsDeleted     bool   `gorm:"default:false"`
}
