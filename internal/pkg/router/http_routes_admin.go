package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Puryll/Rent-a-car-A-L/app/controllers"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	// The dashboard ships without authentication; it is expected to sit
	// behind the operator's reverse proxy.
	adminGroup := app.Group("/admin")
	adminGroup.Get("/", controllers.HandleAdminDashboard)

	// Review management
	adminGroup.Get("/reviews", controllers.HandleAdminReviews)
	adminGroup.Post("/reviews/delete/:id", controllers.HandleAdminReviewDelete)

	// Recorded booking events
	adminGroup.Get("/bookings", controllers.HandleAdminBookings)
}
