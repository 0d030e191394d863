package statistics

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"time"

	"github.com/Puryll/Rent-a-car-A-L/app/models"
	"github.com/Puryll/Rent-a-car-A-L/app/repository"
	"github.com/Puryll/Rent-a-car-A-L/internal/pkg/cache"
)

const (
	CacheKeyDashboard = "statistics:dashboard"
	CacheExpiration   = 30 * time.Second
)

// DashboardStats holds the aggregate numbers shown on the admin dashboard
type DashboardStats struct {
	TotalViews    int64   `json:"total_views"`
	TotalBookings int     `json:"total_bookings"`
	TotalReviews  int     `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
}

// Aggregate computes dashboard statistics from already-fetched documents.
// The average rating is rounded to one decimal place and stays 0 when
// there are no reviews.
func Aggregate(views []models.PageView, bookings []models.Booking, reviews []models.Review) DashboardStats {
	stats := DashboardStats{
		TotalViews:    models.TotalViews(views),
		TotalBookings: len(bookings),
		TotalReviews:  len(reviews),
	}

	if len(reviews) > 0 {
		var totalRating int
		for _, r := range reviews {
			totalRating += r.Rating
		}
		avg := float64(totalRating) / float64(len(reviews))
		stats.AverageRating = math.Round(avg*10) / 10
	}

	return stats
}

// GetDashboardStats returns the cached dashboard statistics, recomputing
// them from the store when the cached copy has expired.
func GetDashboardStats(ctx context.Context, repos *repository.Repositories) (DashboardStats, error) {
	if val, err := cache.Get(CacheKeyDashboard); err == nil {
		var stats DashboardStats
		if err := json.Unmarshal([]byte(val), &stats); err == nil {
			return stats, nil
		}
	}

	stats, err := ComputeDashboardStats(ctx, repos)
	if err != nil {
		return DashboardStats{}, err
	}

	if data, err := json.Marshal(stats); err == nil {
		if err := cache.Set(CacheKeyDashboard, string(data), CacheExpiration); err != nil {
			log.Printf("Error caching dashboard statistics: %v", err)
		}
	}

	return stats, nil
}

// ComputeDashboardStats fetches all three collections and aggregates them,
// bypassing the cache.
func ComputeDashboardStats(ctx context.Context, repos *repository.Repositories) (DashboardStats, error) {
	views, err := repos.PageView.GetAll(ctx)
	if err != nil {
		log.Printf("Error loading view counters: %v", err)
		return DashboardStats{}, err
	}

	bookings, err := repos.Booking.GetAll(ctx)
	if err != nil {
		log.Printf("Error loading bookings: %v", err)
		return DashboardStats{}, err
	}

	reviews, err := repos.Review.GetAll(ctx)
	if err != nil {
		log.Printf("Error loading reviews: %v", err)
		return DashboardStats{}, err
	}

	return Aggregate(views, bookings, reviews), nil
}

// ResetCache drops the cached statistics so the next read recomputes them,
// used after a review is deleted.
func ResetCache() {
	if err := cache.Delete(CacheKeyDashboard); err != nil {
		log.Printf("Error resetting statistics cache: %v", err)
	}
}
