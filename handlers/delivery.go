package handlers

import (
	"net/http"

	"food-delivery-platform/middleware"
	"food-delivery-platform/models"
	"food-delivery-platform/services"

	"github.com/gin-gonic/gin"
)

type DeliveryHandler struct {
	deliveries *services.DeliveryService
}

func NewDeliveryHandler(deliveries *services.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{deliveries: deliveries}
}

type AssignDriverRequest struct {
	OrderID            uint   `json:"orderId" binding:"required"`
	CustomerID         uint   `json:"customerId" binding:"required"`
	RestaurantLocation string `json:"restaurantLocation" binding:"required"`
	DeliveryLocation   string `json:"deliveryLocation" binding:"required"`
}

// Assign picks an available driver at the restaurant's location for the order.
func (h *DeliveryHandler) Assign(c *gin.Context) {
	var req AssignDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "orderId, customerId, restaurantLocation, and deliveryLocation are required"})
		return
	}

	delivery, err := h.deliveries.Assign(services.AssignInput{
		OrderID:            req.OrderID,
		CustomerID:         req.CustomerID,
		RestaurantLocation: req.RestaurantLocation,
		DeliveryLocation:   req.DeliveryLocation,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver assigned successfully", "delivery": delivery})
}

type RespondRequest struct {
	OrderID uint   `json:"orderId" binding:"required"`
	Action  string `json:"action" binding:"required"`
}

// Respond lets the assigned driver accept or decline; a decline triggers one
// automatic re-assignment attempt.
func (h *DeliveryHandler) Respond(c *gin.Context) {
	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	delivery, err := h.deliveries.Respond(req.OrderID, middleware.GetUserID(c), req.Action)
	if err != nil {
		respondError(c, err)
		return
	}

	if req.Action == "accept" {
		c.JSON(http.StatusOK, gin.H{"message": "Assignment accepted", "delivery": delivery})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Assignment declined, order reassigned if possible", "delivery": delivery})
}

type UpdateDeliveryStatusRequest struct {
	OrderID uint                  `json:"orderId" binding:"required"`
	Status  models.DeliveryStatus `json:"status" binding:"required"`
}

// UpdateStatus moves an accepted delivery through pickup to a terminal state.
func (h *DeliveryHandler) UpdateStatus(c *gin.Context) {
	var req UpdateDeliveryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "orderId and status are required"})
		return
	}

	delivery, err := h.deliveries.UpdateStatus(req.OrderID, middleware.GetUserID(c), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Delivery status updated successfully", "delivery": delivery})
}

// AssignedOrders lists deliveries awaiting the driver's response.
func (h *DeliveryHandler) AssignedOrders(c *gin.Context) {
	deliveries, err := h.deliveries.AssignedTo(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, deliveries)
}
