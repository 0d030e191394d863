package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Puryll/Rent-a-car-A-L/app/models"
)

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil, nil, nil)

	assert.Equal(t, int64(0), stats.TotalViews)
	assert.Equal(t, 0, stats.TotalBookings)
	assert.Equal(t, 0, stats.TotalReviews)
	// no reviews must yield 0, not NaN
	assert.Equal(t, 0.0, stats.AverageRating)
}

func TestAggregateAverageRating(t *testing.T) {
	reviews := []models.Review{
		{Rating: 5},
		{Rating: 4},
		{Rating: 3},
	}

	stats := Aggregate(nil, nil, reviews)

	assert.Equal(t, 3, stats.TotalReviews)
	assert.Equal(t, 4.0, stats.AverageRating)
}

func TestAggregateAverageRatingRoundsToOneDecimal(t *testing.T) {
	reviews := []models.Review{
		{Rating: 5},
		{Rating: 5},
		{Rating: 4},
	}

	// 14/3 = 4.666...
	stats := Aggregate(nil, nil, reviews)

	assert.Equal(t, 4.7, stats.AverageRating)
}

func TestAggregateCounts(t *testing.T) {
	views := []models.PageView{
		{Count: 1},
		{Count: 9},
	}
	bookings := []models.Booking{
		{CarType: "SUV"},
		{CarType: "Sedan"},
		{CarType: ""},
	}
	reviews := []models.Review{
		{Rating: 2},
	}

	stats := Aggregate(views, bookings, reviews)

	assert.Equal(t, int64(10), stats.TotalViews)
	assert.Equal(t, 3, stats.TotalBookings)
	assert.Equal(t, 1, stats.TotalReviews)
	assert.Equal(t, 2.0, stats.AverageRating)
}
