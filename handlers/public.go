package handlers

import (
	"net/http"

	"food-delivery-platform/models"
	"food-delivery-platform/statemachine"

	"github.com/gin-gonic/gin"
)

// GetStateMachineInfo documents the order status machine for API consumers.
func GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"statuses": []models.OrderStatus{
			models.StatusPlaced,
			models.StatusAccepted,
			models.StatusPreparing,
			models.StatusReady,
			models.StatusOutForDelivery,
			models.StatusDelivered,
			models.StatusCanceled,
		},
		"transitions_by_role": statemachine.AllTargets(),
		"notes": []string{
			"Customers may only cancel, and only while the order is still 'placed'.",
			"Restaurant admins may set any of their four statuses in any order.",
			"Delivery personnel may only mark orders delivered.",
		},
	})
}
