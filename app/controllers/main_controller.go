package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/Puryll/Rent-a-car-A-L/app/models"
	"github.com/Puryll/Rent-a-car-A-L/app/repository"
	"github.com/Puryll/Rent-a-car-A-L/internal/pkg/viewmodel"
)

// PublicFeedLimit caps the review feed on the landing page.
const PublicFeedLimit = 6

// Car is one bookable entry of the fleet section. CarType and Price are
// passed through to the booking form so the recording endpoint gets an
// explicit payload instead of scraping rendered text.
type Car struct {
	CarType     string
	Description string
	Price       string
	Seats       int
}

// Fleet returns the cars advertised on the landing page
func Fleet() []Car {
	return []Car{
		{CarType: "Economy", Description: "Compact and fuel efficient, perfect for the city", Price: "35 KM / day", Seats: 4},
		{CarType: "Sedan", Description: "Comfortable ride for families and business trips", Price: "55 KM / day", Seats: 5},
		{CarType: "SUV", Description: "Room for the whole crew and all the luggage", Price: "75 KM / day", Seats: 7},
		{CarType: "Luxury", Description: "Arrive in style, premium interior and extras", Price: "120 KM / day", Seats: 5},
	}
}

// HandleHome renders the landing page with the six newest reviews and
// records the page view on the side.
func HandleHome(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	recordPageView(c, repos.PageView)

	reviews, err := repos.Review.GetRecent(c.Context(), PublicFeedLimit)
	if err != nil {
		// the page is still worth rendering without the feed
		log.Printf("Error loading reviews: %v", err)
		reviews = nil
	}

	return c.Render("index", fiber.Map{
		"Title":      "A&L Car Rentals",
		"Cars":       Fleet(),
		"Reviews":    viewmodel.NewReviews(reviews),
		"HasReviews": len(reviews) > 0,
		"Flash":      flash.Get(c),
	}, "layouts/main")
}

// recordPageView seeds the analytics counter on the first ever visit.
// The existence check is collection-wide on purpose (see models.PageView);
// failures are logged and never surfaced to the visitor.
func recordPageView(c *fiber.Ctx, repo repository.PageViewRepository) {
	exists, err := repo.Exists(c.Context())
	if err != nil {
		log.Printf("Error recording page view: %v", err)
		return
	}
	if exists {
		return
	}

	if _, err := repo.Create(c.Context(), models.CreatePageView()); err != nil {
		log.Printf("Error recording page view: %v", err)
	}
}
