package handlers

import (
	"net/http"

	"food-delivery-platform/middleware"
	"food-delivery-platform/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RestaurantHandler is plain pass-through CRUD over restaurants and menus; no
// service layer sits underneath it.
type RestaurantHandler struct {
	db *gorm.DB
}

func NewRestaurantHandler(db *gorm.DB) *RestaurantHandler {
	return &RestaurantHandler{db: db}
}

type RestaurantRequest struct {
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Contact     string `json:"contact" binding:"required"`
	CuisineType string `json:"cuisineType" binding:"required"`
	Image       string `json:"image"`
}

// Create registers a restaurant for the logged-in admin.
func (h *RestaurantHandler) Create(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var req RestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant := models.Restaurant{
		OwnerID:     ownerID,
		Name:        req.Name,
		Address:     req.Address,
		Location:    req.Location,
		Contact:     req.Contact,
		CuisineType: req.CuisineType,
		Image:       req.Image,
		IsAvailable: true,
	}
	if err := h.db.Create(&restaurant).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant registered successfully", "restaurant": restaurant})
}

// Mine returns the admin's own restaurant.
func (h *RestaurantHandler) Mine(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	if err := h.db.Preload("MenuItems").Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for your account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// Update edits the admin's restaurant.
func (h *RestaurantHandler) Update(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	if err := h.db.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for your account"})
		return
	}

	var req struct {
		Name        string `json:"name"`
		Address     string `json:"address"`
		Location    string `json:"location"`
		Contact     string `json:"contact"`
		CuisineType string `json:"cuisineType"`
		Image       string `json:"image"`
		IsAvailable *bool  `json:"isAvailable"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.Location != "" {
		updates["location"] = req.Location
	}
	if req.Contact != "" {
		updates["contact"] = req.Contact
	}
	if req.CuisineType != "" {
		updates["cuisine_type"] = req.CuisineType
	}
	if req.Image != "" {
		updates["image"] = req.Image
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}
	if len(updates) > 0 {
		if err := h.db.Model(&restaurant).Updates(updates).Error; err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant": restaurant})
}

type MenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	Image       string  `json:"image"`
}

// AddMenuItem appends an item to the admin's restaurant menu.
func (h *RestaurantHandler) AddMenuItem(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var restaurant models.Restaurant
	if err := h.db.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for your account"})
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		Image:        req.Image,
		IsAvailable:  true,
	}
	if err := h.db.Create(&item).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "menuItem": item})
}

// UpdateMenuItem edits one menu item belonging to the admin's restaurant.
func (h *RestaurantHandler) UpdateMenuItem(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	itemID := c.Param("itemId")

	var restaurant models.Restaurant
	if err := h.db.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for your account"})
		return
	}

	var item models.MenuItem
	if err := h.db.Where("id = ? AND restaurant_id = ?", itemID, restaurant.ID).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Price       *float64 `json:"price"`
		Category    string   `json:"category"`
		Image       string   `json:"image"`
		IsAvailable *bool    `json:"isAvailable"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be a positive number"})
			return
		}
		updates["price"] = *req.Price
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.Image != "" {
		updates["image"] = req.Image
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}
	if len(updates) > 0 {
		if err := h.db.Model(&item).Updates(updates).Error; err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "menuItem": item})
}

// DeleteMenuItem removes one menu item from the admin's restaurant.
func (h *RestaurantHandler) DeleteMenuItem(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	itemID := c.Param("itemId")

	var restaurant models.Restaurant
	if err := h.db.Where("owner_id = ?", ownerID).First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No restaurant found for your account"})
		return
	}

	res := h.db.Where("id = ? AND restaurant_id = ?", itemID, restaurant.ID).Delete(&models.MenuItem{})
	if res.Error != nil {
		respondError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

// List returns all restaurants (public browse).
func (h *RestaurantHandler) List(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := h.db.Find(&restaurants).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

// Menu returns one restaurant with its menu (public browse).
func (h *RestaurantHandler) Menu(c *gin.Context) {
	var restaurant models.Restaurant
	if err := h.db.Preload("MenuItems").First(&restaurant, c.Param("restaurantId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant, "menu": restaurant.MenuItems})
}
