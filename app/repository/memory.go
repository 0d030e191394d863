package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Puryll/Rent-a-car-A-L/app/models"
)

// In-process repositories for development without a firestore project and
// for handler tests. They mirror the store contract: generated ids, newest
// first ordering, delete failing on unknown ids.

// memoryReviewRepository holds reviews in memory
type memoryReviewRepository struct {
	mu      sync.RWMutex
	reviews map[string]models.Review
}

// NewMemoryReviewRepository creates an empty in-memory review repository
func NewMemoryReviewRepository() ReviewRepository {
	return &memoryReviewRepository{reviews: make(map[string]models.Review)}
}

func (r *memoryReviewRepository) Create(_ context.Context, review *models.Review) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	review.ID = uuid.New().String()
	r.reviews[review.ID] = *review

	return review.ID, nil
}

func (r *memoryReviewRepository) GetRecent(ctx context.Context, limit int) ([]models.Review, error) {
	reviews, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(reviews) > limit {
		reviews = reviews[:limit]
	}

	return reviews, nil
}

func (r *memoryReviewRepository) GetAll(_ context.Context) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := make([]models.Review, 0, len(r.reviews))
	for _, review := range r.reviews {
		reviews = append(reviews, review)
	}
	models.SortReviewsByNewest(reviews)

	return reviews, nil
}

func (r *memoryReviewRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.reviews[id]; !ok {
		return fmt.Errorf("review %s not found", id)
	}
	delete(r.reviews, id)

	return nil
}

// memoryBookingRepository holds booking events in memory
type memoryBookingRepository struct {
	mu       sync.RWMutex
	bookings []models.Booking
}

// NewMemoryBookingRepository creates an empty in-memory booking repository
func NewMemoryBookingRepository() BookingRepository {
	return &memoryBookingRepository{}
}

func (r *memoryBookingRepository) Create(_ context.Context, booking *models.Booking) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking.ID = uuid.New().String()
	r.bookings = append(r.bookings, *booking)

	return booking.ID, nil
}

func (r *memoryBookingRepository) GetAll(_ context.Context) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// newest first
	bookings := make([]models.Booking, 0, len(r.bookings))
	for i := len(r.bookings) - 1; i >= 0; i-- {
		bookings = append(bookings, r.bookings[i])
	}

	return bookings, nil
}

// memoryPageViewRepository holds view counters in memory
type memoryPageViewRepository struct {
	mu    sync.RWMutex
	views []models.PageView
}

// NewMemoryPageViewRepository creates an empty in-memory counter repository
func NewMemoryPageViewRepository() PageViewRepository {
	return &memoryPageViewRepository{}
}

func (r *memoryPageViewRepository) Create(_ context.Context, view *models.PageView) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	view.ID = uuid.New().String()
	r.views = append(r.views, *view)

	return view.ID, nil
}

func (r *memoryPageViewRepository) GetAll(_ context.Context) ([]models.PageView, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	views := make([]models.PageView, len(r.views))
	copy(views, r.views)

	return views, nil
}

func (r *memoryPageViewRepository) Exists(_ context.Context) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.views) > 0, nil
}
