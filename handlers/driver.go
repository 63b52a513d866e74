package handlers

import (
	"net/http"

	"food-delivery-platform/middleware"
	"food-delivery-platform/services"

	"github.com/gin-gonic/gin"
)

type DriverHandler struct {
	drivers *services.DriverService
}

func NewDriverHandler(drivers *services.DriverService) *DriverHandler {
	return &DriverHandler{drivers: drivers}
}

type DriverRequest struct {
	MainLocation     string `json:"mainLocation"`
	VehicleRegNumber string `json:"vehicleRegNumber"`
	MobileNumber     string `json:"mobileNumber"`
	Photo            string `json:"photo"`
}

// Register creates the driver profile for the logged-in delivery user.
func (h *DriverHandler) Register(c *gin.Context) {
	var req DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driver, err := h.drivers.Register(middleware.GetUserID(c), services.RegisterInput{
		MainLocation:     req.MainLocation,
		VehicleRegNumber: req.VehicleRegNumber,
		MobileNumber:     req.MobileNumber,
		Photo:            req.Photo,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Driver registered successfully", "driver": driver})
}

// MyDetails returns the logged-in driver's profile.
func (h *DriverHandler) MyDetails(c *gin.Context) {
	driver, err := h.drivers.ByUser(middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

// Update applies partial edits to the driver profile.
func (h *DriverHandler) Update(c *gin.Context) {
	var req DriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	driver, err := h.drivers.Update(middleware.GetUserID(c), services.RegisterInput{
		MainLocation:     req.MainLocation,
		VehicleRegNumber: req.VehicleRegNumber,
		MobileNumber:     req.MobileNumber,
		Photo:            req.Photo,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver details updated", "driver": driver})
}

// Delete removes the driver profile.
func (h *DriverHandler) Delete(c *gin.Context) {
	if err := h.drivers.Delete(middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver deleted successfully"})
}

type AvailabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

// SetAvailability toggles the driver's availability flag.
func (h *DriverHandler) SetAvailability(c *gin.Context) {
	var req AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "isAvailable must be a boolean"})
		return
	}

	driver, err := h.drivers.SetAvailability(middleware.GetUserID(c), *req.IsAvailable)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability status updated", "driver": driver})
}
