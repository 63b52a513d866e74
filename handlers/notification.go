package handlers

import (
	"net/http"

	"food-delivery-platform/services"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notifications *services.NotificationService
}

func NewNotificationHandler(notifications *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

type EmailRequest struct {
	To      string `json:"to" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SendEmail dispatches an email notification and logs the attempt.
func (h *NotificationHandler) SendEmail(c *gin.Context) {
	var req EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipient, subject, and message are required"})
		return
	}

	notification, err := h.notifications.SendEmail(req.To, req.Subject, req.Message)
	if err != nil {
		if notification != nil {
			// Delivery failed but the attempt was logged.
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email notification", "notification": notification})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email notification sent successfully", "notification": notification})
}

type SMSRequest struct {
	To      string `json:"to" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SendSMS dispatches an SMS notification and logs the attempt.
func (h *NotificationHandler) SendSMS(c *gin.Context) {
	var req SMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipient and message are required"})
		return
	}

	notification, err := h.notifications.SendSMS(req.To, req.Message)
	if err != nil {
		if notification != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send SMS notification", "notification": notification})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "SMS notification sent successfully", "notification": notification})
}

// History lists dispatched notifications.
func (h *NotificationHandler) History(c *gin.Context) {
	notifications, err := h.notifications.History()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}
