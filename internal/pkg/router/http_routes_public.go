package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Puryll/Rent-a-car-A-L/app/controllers"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Landing page with review feed; the page view is recorded here
	app.Get("/", controllers.HandleHome)

	// Review submission form
	app.Post("/reviews", controllers.HandleReviewStore)

	// Booking call-to-action: record the intent, then hand over to the
	// contact page
	app.Post("/bookings", controllers.HandleBookingRecord)
}
