package controllers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/Puryll/Rent-a-car-A-L/app/models"
	"github.com/Puryll/Rent-a-car-A-L/app/repository"
	"github.com/Puryll/Rent-a-car-A-L/internal/pkg/statistics"
)

// reviewsAnchor brings the visitor back to the review section after the
// redirect, where the flash message is rendered.
const reviewsAnchor = "/#comments"

// HandleReviewStore accepts a review submission from the landing page form.
// Missing fields never reach the store; a store failure is surfaced as a
// generic flash message and the submission is not retried.
func HandleReviewStore(c *fiber.Ctx) error {
	fm := fiber.Map{
		"type": "error",
	}

	rating, err := strconv.Atoi(c.FormValue("rating"))
	if err != nil {
		fm["message"] = "Please fill in all fields"

		return flash.WithError(c, fm).Redirect(reviewsAnchor)
	}

	review, err := models.CreateReview(c.FormValue("name"), c.FormValue("text"), rating)
	if err != nil {
		fm["message"] = "Please fill in all fields"

		return flash.WithError(c, fm).Redirect(reviewsAnchor)
	}

	repos := repository.GetGlobalRepositories()
	if _, err := repos.Review.Create(c.Context(), review); err != nil {
		log.Printf("Error adding review: %v", err)
		fm["message"] = "Error posting review. Please try again."

		return flash.WithError(c, fm).Redirect(reviewsAnchor)
	}

	statistics.ResetCache()

	fm = fiber.Map{
		"type":    "success",
		"message": "Review posted successfully! Thank you!",
	}

	return flash.WithSuccess(c, fm).Redirect(reviewsAnchor)
}
