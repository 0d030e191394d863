package viewmodel

import (
	"strings"
	"time"

	"github.com/Puryll/Rent-a-car-A-L/app/models"
)

const (
	// NotSpecified replaces empty booking fields in the admin views.
	NotSpecified = "Not specified"
	// UnknownDate replaces dates of documents without a timestamp.
	UnknownDate = "Unknown date"

	// BodyPreviewLimit caps review text in the activity feed.
	BodyPreviewLimit = 80

	starGlyph  = "⭐"
	dateLayout = "1/2/2006"
)

// Review is the render-ready form of a review
type Review struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
	Stars  string `json:"stars"`
	Date   string `json:"date"`
}

// Activity is one entry of the dashboard activity feed
type Activity struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Excerpt string `json:"excerpt"`
	Date    string `json:"date"`
}

// Booking is the render-ready form of a booking event
type Booking struct {
	ID      string `json:"id"`
	CarType string `json:"car_type"`
	Price   string `json:"price"`
	Date    string `json:"date"`
}

// NewReview converts a review document for rendering
func NewReview(r models.Review) Review {
	return Review{
		ID:     r.ID,
		Name:   r.Name,
		Text:   r.Text,
		Rating: r.Rating,
		Stars:  strings.Repeat(starGlyph, r.Rating),
		Date:   FormatDate(r.Timestamp),
	}
}

// NewReviews converts a list of review documents for rendering
func NewReviews(reviews []models.Review) []Review {
	views := make([]Review, len(reviews))
	for i, r := range reviews {
		views[i] = NewReview(r)
	}
	return views
}

// NewBooking converts a booking document for rendering, substituting
// fallback text for fields the click handler failed to capture.
func NewBooking(b models.Booking) Booking {
	view := Booking{
		ID:      b.ID,
		CarType: b.CarType,
		Price:   b.Price,
		Date:    FormatDate(b.Timestamp),
	}
	if view.CarType == "" {
		view.CarType = NotSpecified
	}
	if view.Price == "" {
		view.Price = NotSpecified
	}
	return view
}

// NewBookings converts a list of booking documents for rendering
func NewBookings(bookings []models.Booking) []Booking {
	views := make([]Booking, len(bookings))
	for i, b := range bookings {
		views[i] = NewBooking(b)
	}
	return views
}

// ActivityFeed builds the dashboard activity feed from the newest reviews.
// Review bodies longer than BodyPreviewLimit characters are cut off with
// an ellipsis marker; shorter ones pass through unmodified.
func ActivityFeed(reviews []models.Review, limit int) []Activity {
	if len(reviews) > limit {
		reviews = reviews[:limit]
	}

	feed := make([]Activity, len(reviews))
	for i, r := range reviews {
		feed[i] = Activity{
			Name:    r.Name,
			Rating:  r.Rating,
			Excerpt: TruncateBody(r.Text, BodyPreviewLimit),
			Date:    FormatDate(r.Timestamp),
		}
	}

	return feed
}

// TruncateBody shortens text to at most limit characters, appending "..."
// only when something was cut.
func TruncateBody(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}

	return string(runes[:limit]) + "..."
}

// FormatDate renders a millisecond timestamp as a short calendar date.
// Documents without a timestamp get a fallback string instead.
func FormatDate(millis int64) string {
	if millis == 0 {
		return UnknownDate
	}

	return time.UnixMilli(millis).Format(dateLayout)
}
