package models

import "time"

type NotificationType string

const (
	NotificationEmail NotificationType = "email"
	NotificationSMS   NotificationType = "sms"
)

type NotificationStatus string

const (
	NotificationSent   NotificationStatus = "sent"
	NotificationFailed NotificationStatus = "failed"
)

// Notification logs one dispatch attempt, successful or not.
type Notification struct {
	ID        uint               `json:"id" gorm:"primaryKey"`
	Reference string             `json:"reference" gorm:"uniqueIndex;not null"` // uuid assigned at dispatch
	Type      NotificationType   `json:"type" gorm:"not null"`
	Recipient string             `json:"recipient" gorm:"not null"` // email address or phone number
	Subject   string             `json:"subject"`
	Message   string             `json:"message" gorm:"not null"`
	Status    NotificationStatus `json:"status" gorm:"not null;default:'sent'"`
	CreatedAt time.Time          `json:"createdAt"`
}
