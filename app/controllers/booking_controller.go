package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Puryll/Rent-a-car-A-L/app/models"
	"github.com/Puryll/Rent-a-car-A-L/app/repository"
	"github.com/Puryll/Rent-a-car-A-L/internal/pkg/env"
)

// defaultContactURL is where booking clicks hand over to; the rental is
// arranged over the owner's contact page, not on this site.
const defaultContactURL = "https://www.facebook.com/almirp"

// HandleBookingRecord stores a booking-intent event and sends the visitor
// on to the contact page. Recording and hand-off are independent: a store
// failure is logged and must never hold up the redirect.
func HandleBookingRecord(c *fiber.Ctx) error {
	booking := models.CreateBooking(c.FormValue("car_type"), c.FormValue("price"))

	repos := repository.GetGlobalRepositories()
	if _, err := repos.Booking.Create(c.Context(), booking); err != nil {
		log.Printf("Error recording booking: %v", err)
	}

	return c.Redirect(env.GetEnv("CONTACT_URL", defaultContactURL))
}
