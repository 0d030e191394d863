package controllers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/Puryll/Rent-a-car-A-L/app/models"
	"github.com/Puryll/Rent-a-car-A-L/app/repository"
	"github.com/Puryll/Rent-a-car-A-L/internal/pkg/statistics"
	"github.com/Puryll/Rent-a-car-A-L/internal/pkg/viewmodel"
)

// ActivityFeedLimit caps the dashboard activity feed.
const ActivityFeedLimit = 10

// AdminController handles dashboard HTTP requests using repository pattern
type AdminController struct {
	repos *repository.Repositories
}

// NewAdminController creates a new admin controller with repository dependencies
func NewAdminController(repos *repository.Repositories) *AdminController {
	return &AdminController{
		repos: repos,
	}
}

// HandleDashboard renders the dashboard with aggregate statistics and the
// activity feed of the newest reviews.
func (ac *AdminController) HandleDashboard(c *fiber.Ctx) error {
	// A failed load still renders the page shell; the numbers stay at
	// zero and the client-side poll retries in 30 seconds.
	stats, err := statistics.GetDashboardStats(c.Context(), ac.repos)
	if err != nil {
		log.Printf("Error loading dashboard statistics: %v", err)
	}

	reviews, err := ac.repos.Review.GetAll(c.Context())
	if err != nil {
		log.Printf("Error loading reviews for activity feed: %v", err)
		reviews = nil
	}

	return c.Render("admin/dashboard", fiber.Map{
		"Title":    "Admin Dashboard",
		"Active":   "dashboard",
		"Stats":    stats,
		"Activity": viewmodel.ActivityFeed(reviews, ActivityFeedLimit),
		"Flash":    flash.Get(c),
	}, "layouts/admin")
}

// HandleReviews renders the review management page. Search and rating
// filters arrive as query parameters and are applied to the full in-memory
// list with models.FilterReviews.
func (ac *AdminController) HandleReviews(c *fiber.Ctx) error {
	term := c.Query("search")
	rating, _ := strconv.Atoi(c.Query("rating"))

	reviews, err := ac.repos.Review.GetAll(c.Context())
	if err != nil {
		return ac.handleError(c, "Failed to load reviews", err, "/admin")
	}

	filtered := models.FilterReviews(reviews, term, rating)

	return c.Render("admin/reviews", fiber.Map{
		"Title":        "Review Management",
		"Active":       "reviews",
		"Reviews":      viewmodel.NewReviews(filtered),
		"Search":       term,
		"RatingFilter": rating,
		"Flash":        flash.Get(c),
	}, "layouts/admin")
}

// HandleReviewDelete removes a single review and invalidates the cached
// statistics so the next dashboard load reflects the deletion.
func (ac *AdminController) HandleReviewDelete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Redirect("/admin/reviews")
	}

	if err := ac.repos.Review.Delete(c.Context(), id); err != nil {
		return ac.handleError(c, "Failed to delete review", err, "/admin/reviews")
	}

	statistics.ResetCache()

	fm := fiber.Map{
		"type":    "success",
		"message": "Review deleted",
	}

	return flash.WithSuccess(c, fm).Redirect("/admin/reviews")
}

// HandleBookings renders the recorded booking events, newest first
func (ac *AdminController) HandleBookings(c *fiber.Ctx) error {
	bookings, err := ac.repos.Booking.GetAll(c.Context())
	if err != nil {
		return ac.handleError(c, "Failed to load bookings", err, "/admin")
	}

	return c.Render("admin/bookings", fiber.Map{
		"Title":    "Bookings",
		"Active":   "bookings",
		"Bookings": viewmodel.NewBookings(bookings),
		"Flash":    flash.Get(c),
	}, "layouts/admin")
}

func (ac *AdminController) handleError(c *fiber.Ctx, message string, err error, redirectPath string) error {
	log.Printf("Admin Controller Error: %s - %v", message, err)

	fm := fiber.Map{
		"type":    "error",
		"message": message,
	}

	return flash.WithError(c, fm).Redirect(redirectPath)
}
