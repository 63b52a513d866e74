package handlers

import (
	"net/http"
	"strconv"

	"food-delivery-platform/middleware"
	"food-delivery-platform/services"
	"food-delivery-platform/validation"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	carts *services.CartService
}

func NewCartHandler(carts *services.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type AddToCartRequest struct {
	RestaurantID uint    `json:"restaurantId" binding:"required"`
	ItemID       uint    `json:"itemId" binding:"required"`
	ItemName     string  `json:"itemName" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Quantity     int     `json:"quantity" binding:"required,min=1"`
}

// AddItem adds an item to the customer's cart, creating the cart on first use.
func (h *CartHandler) AddItem(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields (restaurantId, itemId, itemName, price, quantity)"})
		return
	}

	cart, total, err := h.carts.AddItem(customerID, validation.CartItemInput{
		RestaurantID: req.RestaurantID,
		ItemID:       req.ItemID,
		ItemName:     req.ItemName,
		Description:  req.Description,
		Price:        req.Price,
		Quantity:     req.Quantity,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item added to cart", "cart": cart, "totalAmount": total})
}

// Get returns the cart with its running total.
func (h *CartHandler) Get(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	cart, total, err := h.carts.Get(customerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cart, "totalAmount": total})
}

type UpdateCartRequest struct {
	ItemID   uint `json:"itemId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required"`
}

// UpdateItem changes the quantity of one cart line.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, total, err := h.carts.UpdateItem(customerID, req.ItemID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart updated successfully", "cart": cart, "totalAmount": total})
}

// RemoveItem deletes one cart line; removing the last line clears the cart.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	cart, total, err := h.carts.RemoveItem(customerID, uint(itemID))
	if err != nil {
		respondError(c, err)
		return
	}
	if cart == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared", "totalAmount": 0})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart", "cart": cart, "totalAmount": total})
}
