package models

import "time"

// PageView is the analytics counter document in the "analytics" collection.
// A counter is only ever written when the collection is empty, so at most
// one document exists and its count stays at 1 after the first visit. The
// recorder checks for any counter, not one matching the current day; the
// admin dashboard still sums counts over all documents it finds.
type PageView struct {
	ID        string `firestore:"-" json:"id"`
	Date      string `firestore:"date" json:"date"`
	Count     int64  `firestore:"count" json:"count"`
	Timestamp int64  `firestore:"timestamp" json:"timestamp"`
}

// DateKeyLayout is the calendar-day key format used by counter documents.
const DateKeyLayout = "2006-01-02"

// CreatePageView seeds a counter for today with count 1.
func CreatePageView() *PageView {
	return &PageView{
		Date:      time.Now().Format(DateKeyLayout),
		Count:     1,
		Timestamp: NowMillis(),
	}
}

// TotalViews sums the count over all counter documents.
func TotalViews(views []PageView) int64 {
	var total int64
	for _, v := range views {
		total += v.Count
	}

	return total
}
