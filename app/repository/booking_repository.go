package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/Puryll/Rent-a-car-A-L/app/models"
)

// bookingRepository implements BookingRepository against the "bookings"
// collection.
type bookingRepository struct {
	client *firestore.Client
}

// NewBookingRepository creates a firestore-backed booking repository
func NewBookingRepository(client *firestore.Client) BookingRepository {
	return &bookingRepository{client: client}
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) (string, error) {
	ref, _, err := r.client.Collection(CollectionBookings).Add(ctx, booking)
	if err != nil {
		return "", err
	}

	booking.ID = ref.ID

	return ref.ID, nil
}

func (r *bookingRepository) GetAll(ctx context.Context) ([]models.Booking, error) {
	iter := r.client.Collection(CollectionBookings).
		OrderBy("timestamp", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var bookings []models.Booking
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var booking models.Booking
		if err := doc.DataTo(&booking); err != nil {
			return nil, err
		}
		booking.ID = doc.Ref.ID
		bookings = append(bookings, booking)
	}

	return bookings, nil
}
