package repository

import (
	"sync"

	"cloud.google.com/go/firestore"
)

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	client *firestore.Client
	repos  *Repositories
	once   sync.Once
}

// NewFactory creates a new repository factory backed by firestore
func NewFactory(client *firestore.Client) *Factory {
	return &Factory{
		client: client,
	}
}

// NewMemoryFactory creates a factory backed by the in-process driver
func NewMemoryFactory() *Factory {
	f := &Factory{}
	f.once.Do(func() {
		f.repos = NewMemoryRepositories()
	})
	return f
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.client)
	})
	return f.repos
}

// GetReviewRepository returns the review repository instance
func (f *Factory) GetReviewRepository() ReviewRepository {
	return f.GetRepositories().Review
}

// GetBookingRepository returns the booking repository instance
func (f *Factory) GetBookingRepository() BookingRepository {
	return f.GetRepositories().Booking
}

// GetPageViewRepository returns the view counter repository instance
func (f *Factory) GetPageViewRepository() PageViewRepository {
	return f.GetRepositories().PageView
}

// Global factory instance
var globalFactory *Factory
var factoryOnce sync.Once

// InitializeFactory initializes the global repository factory
func InitializeFactory(factory *Factory) {
	factoryOnce.Do(func() {
		globalFactory = factory
	})
}

// GetGlobalFactory returns the global repository factory instance
func GetGlobalFactory() *Factory {
	if globalFactory == nil {
		panic("Repository factory not initialized. Call InitializeFactory first.")
	}
	return globalFactory
}

// GetGlobalRepositories returns the global repositories instance
func GetGlobalRepositories() *Repositories {
	return GetGlobalFactory().GetRepositories()
}

// ResetGlobalFactory swaps in a fresh factory, used by tests to isolate
// state between cases.
func ResetGlobalFactory(factory *Factory) {
	globalFactory = factory
	factoryOnce = sync.Once{}
}
