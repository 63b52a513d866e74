package models

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type Payment struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	OrderID       uint          `json:"orderId" gorm:"uniqueIndex;not null"`
	Amount        float64       `json:"amount" gorm:"not null"`
	Status        PaymentStatus `json:"status" gorm:"not null;default:'pending'"`
	PaymentMethod string        `json:"paymentMethod" gorm:"not null"`
	TransactionID string        `json:"transactionId"` // Stripe PaymentIntent id
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// Card stores a vaulted Stripe payment method. Only display metadata is kept
// locally; the card itself lives with Stripe.
type Card struct {
	ID                    uint      `json:"id" gorm:"primaryKey"`
	UserID                uint      `json:"userId" gorm:"not null;index"`
	StripePaymentMethodID string    `json:"-" gorm:"not null"`
	Last4                 string    `json:"last4" gorm:"not null"`
	Brand                 string    `json:"brand" gorm:"not null"`
	ExpiryMonth           string    `json:"expiryMonth" gorm:"not null"`
	ExpiryYear            string    `json:"expiryYear" gorm:"not null"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}
