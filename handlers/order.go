package handlers

import (
	"net/http"
	"strconv"

	"food-delivery-platform/middleware"
	"food-delivery-platform/models"
	"food-delivery-platform/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orders *services.OrderService
}

func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func orderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("orderId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return 0, false
	}
	return uint(id), true
}

type CreateOrderRequest struct {
	DeliveryAddress string `json:"deliveryAddress" binding:"required"`
	FromAddress     string `json:"fromAddress" binding:"required"`
	PhoneNumber     string `json:"phoneNumber" binding:"required"`
}

// Create checks out the customer's cart into a new order.
func (h *OrderHandler) Create(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Delivery address, from address, and phone number are required"})
		return
	}

	order, err := h.orders.Create(customerID, services.CreateOrderInput{
		DeliveryAddress: req.DeliveryAddress,
		FromAddress:     req.FromAddress,
		PhoneNumber:     req.PhoneNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Order created successfully",
		"orderId":     order.ID,
		"order":       order,
		"totalAmount": order.TotalAmount,
	})
}

type UpdateOrderRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateStatus advances the order through the role-gated state machine.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.UpdateStatus(orderID, middleware.GetUserID(c), middleware.GetRole(c), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order updated successfully", "order": order, "totalAmount": order.TotalAmount})
}

// Get returns a single order (track order).
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := orderIDParam(c)
	if !ok {
		return
	}

	order, err := h.orders.Get(orderID, middleware.GetUserID(c), middleware.GetRole(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order, "totalAmount": order.TotalAmount})
}

// All returns every order, newest first (restaurant admin / delivery only).
func (h *OrderHandler) All(c *gin.Context) {
	orders, err := h.orders.All()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// History returns all of the customer's orders regardless of status.
func (h *OrderHandler) History(c *gin.Context) {
	orders, err := h.orders.History(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// Active returns the customer's in-flight orders.
func (h *OrderHandler) Active(c *gin.Context) {
	orders, err := h.orders.Active(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}
