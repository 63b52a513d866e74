package routes

import (
	"food-delivery-platform/handlers"
	"food-delivery-platform/middleware"
	"food-delivery-platform/models"
	"food-delivery-platform/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires all services and handlers onto the engine.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	auth := handlers.NewAuthHandler(db)
	carts := handlers.NewCartHandler(services.NewCartService(db))
	orders := handlers.NewOrderHandler(services.NewOrderService(db))
	drivers := handlers.NewDriverHandler(services.NewDriverService(db))
	deliveries := handlers.NewDeliveryHandler(services.NewDeliveryService(db))
	restaurants := handlers.NewRestaurantHandler(db)
	payments := handlers.NewPaymentHandler(services.NewPaymentService(db))
	notifications := handlers.NewNotificationHandler(
		services.NewNotificationService(db, services.NewSMTPSenderFromEnv(), services.LogSMSSender{}))

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", auth.Register)
		public.POST("/auth/login", middleware.LoginRateLimit(), auth.Login)

		public.GET("/restaurants", restaurants.List)
		public.GET("/restaurants/:restaurantId/menu", restaurants.Menu)

		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	authed := r.Group("/api")
	authed.Use(middleware.AuthRequired())
	{
		authed.GET("/profile", auth.GetProfile)

		// Track an order; customers only see their own, enforced in the service.
		authed.GET("/orders/:orderId", orders.Get)
		// Role-gated status transitions, enforced by the state machine.
		authed.PUT("/orders/:orderId", orders.UpdateStatus)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.POST("/cart", carts.AddItem)
		customer.GET("/cart", carts.Get)
		customer.PUT("/cart", carts.UpdateItem)
		customer.DELETE("/cart/:itemId", carts.RemoveItem)

		customer.POST("/orders", orders.Create)
		customer.GET("/orders/history", orders.History)
		customer.GET("/orders/active", orders.Active)

		customer.POST("/payments", payments.Process)
		customer.GET("/payments/:orderId", payments.Status)
		customer.POST("/payments/:orderId/refund", payments.Refund)
		customer.POST("/cards", payments.AddCard)
		customer.GET("/cards", payments.Cards)
		customer.DELETE("/cards/:cardId", payments.DeleteCard)
	}

	// ── Restaurant admin routes ────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleRestaurantAdmin))
	{
		admin.POST("/restaurant", restaurants.Create)
		admin.GET("/restaurant", restaurants.Mine)
		admin.PUT("/restaurant", restaurants.Update)
		admin.POST("/restaurant/menu", restaurants.AddMenuItem)
		admin.PUT("/restaurant/menu/:itemId", restaurants.UpdateMenuItem)
		admin.DELETE("/restaurant/menu/:itemId", restaurants.DeleteMenuItem)

		admin.POST("/delivery/assign", deliveries.Assign)
	}

	// ── Views shared by admins and delivery personnel ──────────────
	staff := r.Group("/api")
	staff.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleRestaurantAdmin, models.RoleDeliveryPersonnel))
	{
		staff.GET("/orders", orders.All)
	}

	// ── Delivery personnel routes ──────────────────────────────────
	driver := r.Group("/api")
	driver.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleDeliveryPersonnel))
	{
		driver.POST("/driver/register", drivers.Register)
		driver.GET("/driver/my-details", drivers.MyDetails)
		driver.PUT("/driver/my-details", drivers.Update)
		driver.DELETE("/driver/my-details", drivers.Delete)
		driver.PUT("/driver/availability", drivers.SetAvailability)

		driver.POST("/delivery/respond", deliveries.Respond)
		driver.POST("/delivery/update-status", deliveries.UpdateStatus)
		driver.GET("/delivery/assigned-orders", deliveries.AssignedOrders)
	}

	// ── Internal dispatch (any authenticated service/UI caller) ────
	notify := r.Group("/api/notifications")
	notify.Use(middleware.AuthRequired())
	{
		notify.POST("/email", notifications.SendEmail)
		notify.POST("/sms", notifications.SendSMS)
		notify.GET("", notifications.History)
	}
}
