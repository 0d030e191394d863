package models

import (
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	RatingMin = 1
	RatingMax = 5
)

// Review is a user-submitted rating with free text, stored in the
// "comments" collection. Reviews are never updated in place.
type Review struct {
	ID        string `firestore:"-" json:"id"`
	Name      string `firestore:"name" json:"name" validate:"required,min=1,max=100"`
	Text      string `firestore:"text" json:"text" validate:"required,min=1,max=2000"`
	Rating    int    `firestore:"rating" json:"rating" validate:"required,gte=1,lte=5"`
	Timestamp int64  `firestore:"timestamp" json:"timestamp"`
}

func (r *Review) Validate() error {
	v := validator.New()

	return v.Struct(r)
}

// CreateReview builds a validated review stamped with the current time.
func CreateReview(name string, text string, rating int) (*Review, error) {
	r := &Review{
		Name:      strings.TrimSpace(name),
		Text:      strings.TrimSpace(text),
		Rating:    rating,
		Timestamp: NowMillis(),
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// FilterReviews returns the reviews whose name or text contains term
// (case-insensitive) and, when rating is non-zero, whose rating matches it
// exactly. With an empty term and rating 0 the input is returned unchanged.
func FilterReviews(reviews []Review, term string, rating int) []Review {
	if term == "" && rating == 0 {
		return reviews
	}

	term = strings.ToLower(term)
	filtered := make([]Review, 0, len(reviews))
	for _, r := range reviews {
		matchesTerm := strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(strings.ToLower(r.Text), term)
		matchesRating := rating == 0 || r.Rating == rating
		if matchesTerm && matchesRating {
			filtered = append(filtered, r)
		}
	}

	return filtered
}

// SortReviewsByNewest orders reviews by timestamp descending in place.
// Ties keep their incoming order.
func SortReviewsByNewest(reviews []Review) {
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].Timestamp > reviews[j].Timestamp
	})
}

// NowMillis returns the current time in milliseconds since epoch, the
// timestamp unit shared by all collections.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
