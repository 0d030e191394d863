package models

// Booking is a recorded click on a booking call-to-action, stored in the
// "bookings" collection. It captures intent only, not a reservation, so no
// field beyond the timestamp is required; car type and price arrive as
// display strings from the page that triggered the click.
type Booking struct {
	ID        string `firestore:"-" json:"id"`
	CarType   string `firestore:"carType" json:"car_type"`
	Price     string `firestore:"price" json:"price"`
	Timestamp int64  `firestore:"timestamp" json:"timestamp"`
}

// CreateBooking stamps a booking event with the current time.
func CreateBooking(carType string, price string) *Booking {
	return &Booking{
		CarType:   carType,
		Price:     price,
		Timestamp: NowMillis(),
	}
}
