package models

import "time"

type InquiryStatus string

const (
	InquiryNew    InquiryStatus = "new"
	InquiryRead   InquiryStatus = "read"
	InquiryClosed InquiryStatus = "closed"
)

// Inquiry is a visitor message. PropertyID is set for property inquiries and
// nil for plain contact-form submissions.
type Inquiry struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	Name       string        `gorm:"not null" json:"name"`
	Email      string        `gorm:"not null" json:"email"`
	Phone      string        `json:"phone"`
	Message    string        `gorm:"type:text;not null" json:"message"`
	PropertyID *uint         `gorm:"index" json:"propertyId,omitempty"`
	Status     InquiryStatus `gorm:"not null;default:new;index" json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}
