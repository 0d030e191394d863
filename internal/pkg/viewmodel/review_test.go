package viewmodel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Puryll/Rent-a-car-A-L/app/models"
)

func TestTruncateBody(t *testing.T) {
	short := "short text"
	assert.Equal(t, short, TruncateBody(short, BodyPreviewLimit))

	exact := strings.Repeat("a", BodyPreviewLimit)
	assert.Equal(t, exact, TruncateBody(exact, BodyPreviewLimit))

	long := strings.Repeat("a", BodyPreviewLimit+1)
	truncated := TruncateBody(long, BodyPreviewLimit)
	assert.Equal(t, strings.Repeat("a", BodyPreviewLimit)+"...", truncated)
}

func TestTruncateBodyMultibyte(t *testing.T) {
	long := strings.Repeat("ä", BodyPreviewLimit+5)

	truncated := TruncateBody(long, BodyPreviewLimit)

	assert.Equal(t, strings.Repeat("ä", BodyPreviewLimit)+"...", truncated)
}

func TestFormatDateFallback(t *testing.T) {
	assert.Equal(t, UnknownDate, FormatDate(0))
	assert.NotEqual(t, UnknownDate, FormatDate(models.NowMillis()))
}

func TestNewReviewStars(t *testing.T) {
	view := NewReview(models.Review{Name: "Amira", Rating: 3, Timestamp: 1700000000000})

	assert.Equal(t, strings.Repeat("⭐", 3), view.Stars)
	assert.NotEqual(t, UnknownDate, view.Date)
}

func TestNewBookingFallbacks(t *testing.T) {
	view := NewBooking(models.Booking{})

	assert.Equal(t, NotSpecified, view.CarType)
	assert.Equal(t, NotSpecified, view.Price)
	assert.Equal(t, UnknownDate, view.Date)

	filled := NewBooking(models.Booking{CarType: "SUV", Price: "75 KM / day", Timestamp: 1700000000000})
	assert.Equal(t, "SUV", filled.CarType)
	assert.Equal(t, "75 KM / day", filled.Price)
}

func TestActivityFeedLimitsAndTruncates(t *testing.T) {
	var reviews []models.Review
	for i := 0; i < 12; i++ {
		reviews = append(reviews, models.Review{
			Name:   "Visitor",
			Rating: 4,
			Text:   strings.Repeat("x", 90),
		})
	}

	feed := ActivityFeed(reviews, 10)

	require.Len(t, feed, 10)
	for _, entry := range feed {
		assert.Equal(t, strings.Repeat("x", BodyPreviewLimit)+"...", entry.Excerpt)
	}
}

func TestActivityFeedShortInput(t *testing.T) {
	feed := ActivityFeed([]models.Review{{Name: "Amira", Rating: 5, Text: "ok"}}, 10)

	require.Len(t, feed, 1)
	assert.Equal(t, "ok", feed[0].Excerpt)
}
