package apiv1

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Puryll/Rent-a-car-A-L/app/controllers"
	"github.com/Puryll/Rent-a-car-A-L/app/models"
	"github.com/Puryll/Rent-a-car-A-L/app/repository"
	"github.com/Puryll/Rent-a-car-A-L/internal/pkg/statistics"
	"github.com/Puryll/Rent-a-car-A-L/internal/pkg/viewmodel"
)

// APIServer implements the v1 endpoints consumed by the dashboard poll and
// documented in public/docs/v1/openapi.yml
type APIServer struct{}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	return &APIServer{}
}

// RegisterHandlers attaches the v1 routes to the given group
func RegisterHandlers(router fiber.Router, s *APIServer) {
	router.Get("/ping", s.GetPing)

	router.Get("/reviews", s.GetReviews)
	router.Post("/reviews", s.PostReview)
	router.Delete("/reviews/:id", s.DeleteReview)

	router.Get("/bookings", s.GetBookings)
	router.Post("/bookings", s.PostBooking)

	router.Get("/stats", s.GetStats)
	router.Get("/admin/dashboard", s.GetDashboard)
}

// Pong is the ping response body
type Pong struct {
	Ping string `json:"ping"`
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	response := Pong{
		Ping: "pong",
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetReviews returns reviews newest first. An optional limit query
// parameter caps the result the way the public feed does.
func (s *APIServer) GetReviews(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	limit, _ := strconv.Atoi(c.Query("limit"))

	var (
		reviews []models.Review
		err     error
	)
	if limit > 0 {
		reviews, err = repos.Review.GetRecent(c.Context(), limit)
	} else {
		reviews, err = repos.Review.GetAll(c.Context())
	}
	if err != nil {
		log.Printf("Error loading reviews: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "store_error",
			"message": "Failed to load reviews",
		})
	}

	return c.JSON(fiber.Map{"reviews": viewmodel.NewReviews(reviews)})
}

type reviewRequest struct {
	Name   string `json:"name"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// PostReview creates a review from a JSON body, enforcing the same
// validation as the landing page form.
func (s *APIServer) PostReview(c *fiber.Ctx) error {
	var req reviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid request body",
		})
	}

	review, err := models.CreateReview(req.Name, req.Text, req.Rating)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   "validation_error",
			"message": "Name, text and a rating between 1 and 5 are required",
		})
	}

	repos := repository.GetGlobalRepositories()
	id, err := repos.Review.Create(c.Context(), review)
	if err != nil {
		log.Printf("Error adding review: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "store_error",
			"message": "Failed to store review",
		})
	}

	statistics.ResetCache()

	review.ID = id

	return c.Status(fiber.StatusCreated).JSON(review)
}

// DeleteReview removes a single review by id
func (s *APIServer) DeleteReview(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "id missing",
		})
	}

	repos := repository.GetGlobalRepositories()
	if err := repos.Review.Delete(c.Context(), id); err != nil {
		log.Printf("Error deleting review %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "store_error",
			"message": "Failed to delete review",
		})
	}

	statistics.ResetCache()

	return c.SendStatus(fiber.StatusNoContent)
}

// GetBookings returns all recorded booking events, newest first
func (s *APIServer) GetBookings(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	bookings, err := repos.Booking.GetAll(c.Context())
	if err != nil {
		log.Printf("Error loading bookings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "store_error",
			"message": "Failed to load bookings",
		})
	}

	return c.JSON(fiber.Map{"bookings": viewmodel.NewBookings(bookings)})
}

type bookingRequest struct {
	CarType string `json:"car_type"`
	Price   string `json:"price"`
}

// PostBooking records a booking-intent event. Empty fields are accepted;
// the event is best effort by design.
func (s *APIServer) PostBooking(c *fiber.Ctx) error {
	var req bookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "bad_request",
			"message": "Invalid request body",
		})
	}

	booking := models.CreateBooking(req.CarType, req.Price)

	repos := repository.GetGlobalRepositories()
	if _, err := repos.Booking.Create(c.Context(), booking); err != nil {
		log.Printf("Error recording booking: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "store_error",
			"message": "Failed to record booking",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// GetStats returns the aggregate statistics
func (s *APIServer) GetStats(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	stats, err := statistics.GetDashboardStats(c.Context(), repos)
	if err != nil {
		log.Printf("Error loading statistics: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "store_error",
			"message": "Failed to load statistics",
		})
	}

	return c.JSON(stats)
}

// GetDashboard serves the 30-second dashboard poll: statistics plus the
// activity feed in one response. The client keeps its previous data when
// this fails.
func (s *APIServer) GetDashboard(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	stats, err := statistics.GetDashboardStats(c.Context(), repos)
	if err != nil {
		log.Printf("Error loading statistics: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "store_error",
			"message": "Failed to load statistics",
		})
	}

	reviews, err := repos.Review.GetAll(c.Context())
	if err != nil {
		log.Printf("Error loading reviews: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "store_error",
			"message": "Failed to load reviews",
		})
	}

	return c.JSON(fiber.Map{
		"stats":    stats,
		"activity": viewmodel.ActivityFeed(reviews, controllers.ActivityFeedLimit),
	})
}
