package models

import "gorm.io/gorm"

// Contact ticket status values
const (
	TicketStatusPending  = "pending"
	TicketStatusResolved = "resolved"
)

// ContactTicket is a public support enquiry submitted from the contact form
type ContactTicket struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null"`
	Email     string `json:"email" gorm:"not null"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject" gorm:"not null"`
	Message   string `json:"message" gorm:"type:text;not null"`
	Status    string `json:"status" gorm:"default:'pending';index"`
	IsDeleted bool   `gorm:"default:false"`
}
