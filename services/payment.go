package services

import (
	"errors"
	"fmt"

	"food-delivery-platform/apperrors"
	"food-delivery-platform/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
	"github.com/stripe/stripe-go/v83/paymentmethod"
	"github.com/stripe/stripe-go/v83/refund"
	"gorm.io/gorm"
)

// PaymentService charges orders against vaulted Stripe cards and keeps one
// payment record per order.
type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{db: db}
}

// AddCard vaults a Stripe payment method for the user, keeping only display
// metadata locally.
func (s *PaymentService) AddCard(userID uint, paymentMethodID string) (*models.Card, error) {
	if paymentMethodID == "" {
		return nil, apperrors.Validation("paymentMethodId is required")
	}

	pm, err := paymentmethod.Get(paymentMethodID, nil)
	if err != nil {
		return nil, apperrors.Validation("Invalid payment method: " + err.Error())
	}
	if pm.Card == nil {
		return nil, apperrors.Validation("Payment method is not a card")
	}

	card := &models.Card{
		UserID:                userID,
		StripePaymentMethodID: paymentMethodID,
		Last4:                 pm.Card.Last4,
		Brand:                 string(pm.Card.Brand),
		ExpiryMonth:           fmt.Sprintf("%02d", pm.Card.ExpMonth),
		ExpiryYear:            fmt.Sprintf("%d", pm.Card.ExpYear),
	}
	if err := s.db.Create(card).Error; err != nil {
		return nil, err
	}
	return card, nil
}

func (s *PaymentService) Cards(userID uint) ([]models.Card, error) {
	var cards []models.Card
	err := s.db.Where("user_id = ?", userID).Find(&cards).Error
	return cards, err
}

func (s *PaymentService) DeleteCard(userID, cardID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", cardID, userID).Delete(&models.Card{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Card not found or not authorized")
	}
	return nil
}

// Process confirms a PaymentIntent for the order using one of the user's
// stored cards. The resulting payment record is completed or failed depending
// on the intent's outcome.
func (s *PaymentService) Process(userID, orderID, cardID uint, amount float64) (*models.Payment, error) {
	if orderID == 0 || cardID == 0 || amount <= 0 {
		return nil, apperrors.Validation("Order ID, amount, and card ID are required")
	}

	var card models.Card
	err := s.db.Where("id = ? AND user_id = ?", cardID, userID).First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Card not found or not authorized")
	}
	if err != nil {
		return nil, err
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(int64(amount * 100)), // Stripe expects cents
		Currency:      stripe.String("usd"),
		PaymentMethod: stripe.String(card.StripePaymentMethodID),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.AddMetadata("order_id", fmt.Sprintf("%d", orderID))
	params.SetIdempotencyKey(uuid.NewString())

	intent, err := paymentintent.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			return nil, apperrors.Validation("Payment failed: Card error: " + stripeErr.Msg)
		}
		return nil, err
	}

	status := models.PaymentFailed
	if intent.Status == stripe.PaymentIntentStatusSucceeded {
		status = models.PaymentCompleted
	}

	method := "card"
	if len(intent.PaymentMethodTypes) > 0 {
		method = intent.PaymentMethodTypes[0]
	}

	payment := &models.Payment{
		OrderID:       orderID,
		Amount:        amount,
		Status:        status,
		PaymentMethod: method,
		TransactionID: intent.ID,
	}
	if err := s.db.Create(payment).Error; err != nil {
		return nil, err
	}
	return payment, nil
}

// Refund reverses a completed payment through Stripe and marks the record
// refunded.
func (s *PaymentService) Refund(orderID uint) (*models.Payment, error) {
	payment, err := s.Status(orderID)
	if err != nil {
		return nil, err
	}
	if payment.Status != models.PaymentCompleted {
		return nil, apperrors.InvalidTransition("Cannot refund a payment that is not completed")
	}
	if payment.TransactionID == "" {
		return nil, apperrors.Validation("No transaction ID found for this payment")
	}

	if _, err := refund.New(&stripe.RefundParams{
		PaymentIntent: stripe.String(payment.TransactionID),
	}); err != nil {
		return nil, err
	}

	if err := s.db.Model(payment).Update("status", models.PaymentRefunded).Error; err != nil {
		return nil, err
	}
	payment.Status = models.PaymentRefunded
	return payment, nil
}

// Status looks up the payment record for an order.
func (s *PaymentService) Status(orderID uint) (*models.Payment, error) {
	var payment models.Payment
	err := s.db.Where("order_id = ?", orderID).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("Payment not found")
	}
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
