package handlers

import (
	"net/http"
	"strconv"

	"food-delivery-platform/middleware"
	"food-delivery-platform/services"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	payments *services.PaymentService
}

func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type ProcessPaymentRequest struct {
	OrderID uint    `json:"orderId" binding:"required"`
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	CardID  uint    `json:"cardId" binding:"required"`
}

// Process charges an order against one of the customer's stored cards.
func (h *PaymentHandler) Process(c *gin.Context) {
	var req ProcessPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order ID, amount, and card ID are required"})
		return
	}

	payment, err := h.payments.Process(middleware.GetUserID(c), req.OrderID, req.CardID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment processed successfully", "payment": payment})
}

// Refund reverses the completed payment for an order.
func (h *PaymentHandler) Refund(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	payment, err := h.payments.Refund(uint(orderID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Refund processed successfully", "payment": payment})
}

// Status returns the payment record for an order.
func (h *PaymentHandler) Status(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("orderId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	payment, err := h.payments.Status(uint(orderID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment status retrieved", "payment": payment})
}

type AddCardRequest struct {
	PaymentMethodID string `json:"paymentMethodId" binding:"required"`
}

// AddCard vaults a Stripe payment method for the customer.
func (h *PaymentHandler) AddCard(c *gin.Context) {
	var req AddCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paymentMethodId is required"})
		return
	}

	card, err := h.payments.AddCard(middleware.GetUserID(c), req.PaymentMethodID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Card added successfully", "card": card})
}

// Cards lists the customer's stored cards.
func (h *PaymentHandler) Cards(c *gin.Context) {
	cards, err := h.payments.Cards(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// DeleteCard removes one stored card.
func (h *PaymentHandler) DeleteCard(c *gin.Context) {
	cardID, err := strconv.ParseUint(c.Param("cardId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card id"})
		return
	}

	if err := h.payments.DeleteCard(middleware.GetUserID(c), uint(cardID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Card deleted successfully"})
}
