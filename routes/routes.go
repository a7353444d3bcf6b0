package routes

import (
	"github.com/elsonbaty123/wagbty2/handlers"
	"github.com/elsonbaty123/wagbty2/middleware"
	"github.com/elsonbaty123/wagbty2/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Dish browsing (no auth needed)
		public.GET("/dishes", handlers.ListDishes)
		public.GET("/dishes/:id", handlers.GetDish)

		// Header navigation works for guests too
		public.GET("/navigation", middleware.AuthOptional(), handlers.GetNavigation)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.POST("/auth/password", handlers.ChangePassword)

		// Profile settings workflow
		auth.PUT("/settings/profile", handlers.UpdateProfile)
		auth.DELETE("/settings/avatar", handlers.RemoveAvatar)
		auth.POST("/settings/location", handlers.ResolveLocation)

		// Notifications
		auth.GET("/notifications", handlers.GetMyNotifications)
		auth.PUT("/notifications/:id/read", handlers.MarkNotificationRead)
		auth.PUT("/notifications/read-all", handlers.MarkAllNotificationsRead)

		// Community chat & chef stories
		auth.GET("/chat", handlers.GetChatMessages)
		auth.POST("/chat", handlers.PostChatMessage)
		auth.GET("/statuses", handlers.ListActiveStatuses)
		auth.POST("/statuses/:id/reactions", handlers.ReactToStatus)
		auth.POST("/statuses/:id/views", handlers.MarkStatusViewed)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api/customer")
	customer.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCustomer))
	{
		customer.POST("/orders", handlers.PlaceOrder)
		customer.GET("/orders", handlers.GetMyOrders)
		customer.GET("/orders/:id", handlers.GetOrderDetail)
		customer.PUT("/orders/:id/cancel", handlers.CancelOrder)
		customer.POST("/orders/:id/rating", handlers.RateOrder)
	}

	// ── Chef routes ────────────────────────────────────────────────
	chef := r.Group("/api/chef")
	chef.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleChef))
	{
		// Availability (busy → available notifies about queued orders)
		chef.PUT("/availability", handlers.SetAvailability)

		// Dish management
		chef.GET("/dishes", handlers.GetMyDishes)
		chef.POST("/dishes", handlers.AddDish)
		chef.PUT("/dishes/:dishId", handlers.UpdateDish)
		chef.DELETE("/dishes/:dishId", handlers.DeleteDish)

		// Coupons
		chef.GET("/coupons", handlers.GetMyCoupons)
		chef.POST("/coupons", handlers.CreateCoupon)
		chef.PUT("/coupons/:couponId/deactivate", handlers.DeactivateCoupon)

		// Order management
		chef.GET("/orders", handlers.GetChefOrders)
		chef.PUT("/orders/:id/status", handlers.UpdateOrderStatus)

		// Stories
		chef.POST("/status", handlers.PostStatus)
	}

	// ── Delivery routes ────────────────────────────────────────────
	delivery := r.Group("/api/delivery")
	delivery.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleDelivery))
	{
		delivery.GET("/orders/available", handlers.GetAvailableOrders)
		delivery.GET("/orders/my-deliveries", handlers.GetMyDeliveries)
		delivery.PUT("/orders/:id/pickup", handlers.PickupOrder)
		delivery.PUT("/orders/:id/deliver", handlers.DeliverOrder)
		delivery.PUT("/orders/:id/not-delivered", handlers.ReportNotDelivered)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/orders", handlers.AdminGetAllOrders)
		admin.PUT("/orders/:id/status", handlers.AdminForceOrderStatus)
		admin.GET("/users", handlers.AdminGetAllUsers)
		admin.PUT("/users/:id/account", handlers.AdminSetAccountStatus)
	}
}
