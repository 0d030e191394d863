package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Puryll/Rent-a-car-A-L/app/repository"
)

// Global admin controller instance
var adminController *AdminController

// InitializeAdminController initializes the global admin controller with repositories
func InitializeAdminController() {
	repos := repository.GetGlobalRepositories()
	adminController = NewAdminController(repos)
}

// GetAdminController returns the global admin controller instance
func GetAdminController() *AdminController {
	if adminController == nil {
		InitializeAdminController()
	}
	return adminController
}

// Adapter functions to maintain compatibility with the router

// HandleAdminDashboard - Adapter for the dashboard
func HandleAdminDashboard(c *fiber.Ctx) error {
	return GetAdminController().HandleDashboard(c)
}

// HandleAdminReviews - Adapter for review management
func HandleAdminReviews(c *fiber.Ctx) error {
	return GetAdminController().HandleReviews(c)
}

// HandleAdminReviewDelete - Adapter for review deletion
func HandleAdminReviewDelete(c *fiber.Ctx) error {
	return GetAdminController().HandleReviewDelete(c)
}

// HandleAdminBookings - Adapter for the booking list
func HandleAdminBookings(c *fiber.Ctx) error {
	return GetAdminController().HandleBookings(c)
}

// ResetAdminController clears the cached controller, used by tests that
// swap the repository factory.
func ResetAdminController() {
	adminController = nil
}
