package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/Puryll/Rent-a-car-A-L/app/models"
)

// Collection names in the document store.
const (
	CollectionReviews   = "comments"
	CollectionBookings  = "bookings"
	CollectionAnalytics = "analytics"
)

// ReviewRepository defines the store operations for reviews
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) (string, error)
	GetRecent(ctx context.Context, limit int) ([]models.Review, error)
	GetAll(ctx context.Context) ([]models.Review, error)
	Delete(ctx context.Context, id string) error
}

// BookingRepository defines the store operations for booking events.
// Bookings are never mutated or deleted through this system.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) (string, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
}

// PageViewRepository defines the store operations for view counters
type PageViewRepository interface {
	Create(ctx context.Context, view *models.PageView) (string, error)
	GetAll(ctx context.Context) ([]models.PageView, error)
	Exists(ctx context.Context) (bool, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	Review   ReviewRepository
	Booking  BookingRepository
	PageView PageViewRepository
}

// NewRepositories creates firestore-backed instances of all repositories
func NewRepositories(client *firestore.Client) *Repositories {
	return &Repositories{
		Review:   NewReviewRepository(client),
		Booking:  NewBookingRepository(client),
		PageView: NewPageViewRepository(client),
	}
}

// NewMemoryRepositories creates in-process instances of all repositories,
// used with STORE_DRIVER=memory and in handler tests.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Review:   NewMemoryReviewRepository(),
		Booking:  NewMemoryBookingRepository(),
		PageView: NewMemoryPageViewRepository(),
	}
}
