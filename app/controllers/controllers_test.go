package controllers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Puryll/Rent-a-car-A-L/app/models"
	"github.com/Puryll/Rent-a-car-A-L/app/repository"
)

// newTestApp builds the app against the in-memory driver with the routes
// the routers install in production.
func newTestApp(t *testing.T) (*fiber.App, *repository.Repositories) {
	t.Helper()

	factory := repository.NewMemoryFactory()
	repository.ResetGlobalFactory(factory)
	ResetAdminController()

	app := fiber.New(fiber.Config{
		Views: html.New("../../views", ".html"),
	})

	app.Get("/", HandleHome)
	app.Post("/reviews", HandleReviewStore)
	app.Post("/bookings", HandleBookingRecord)
	app.Get("/admin", HandleAdminDashboard)
	app.Get("/admin/reviews", HandleAdminReviews)
	app.Post("/admin/reviews/delete/:id", HandleAdminReviewDelete)
	app.Get("/admin/bookings", HandleAdminBookings)

	return app, factory.GetRepositories()
}

func bodyOf(t *testing.T, resp *http.Response) string {
	t.Helper()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return string(data)
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	resp, err := app.Test(req, int(5*time.Second/time.Millisecond))
	require.NoError(t, err)

	return resp
}

func seedReview(t *testing.T, repos *repository.Repositories, name, text string, rating int, ts int64) string {
	t.Helper()

	id, err := repos.Review.Create(context.Background(), &models.Review{
		Name:      name,
		Text:      text,
		Rating:    rating,
		Timestamp: ts,
	})
	require.NoError(t, err)

	return id
}

func TestHandleHomeRendersPlaceholderWithoutReviews(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := bodyOf(t, resp)
	assert.Contains(t, body, "No reviews yet. Be the first to comment!")
}

func TestHandleHomeShowsNewestSixReviews(t *testing.T) {
	app, repos := newTestApp(t)

	for i := int64(1); i <= 7; i++ {
		seedReview(t, repos, "Visitor", "review body", 4, i*100)
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)

	body := bodyOf(t, resp)
	assert.Equal(t, PublicFeedLimit, strings.Count(body, `class="comment-item"`))
}

func TestHandleHomeOrdersByTimestampDescending(t *testing.T) {
	app, repos := newTestApp(t)

	seedReview(t, repos, "first", "body", 5, 100)
	seedReview(t, repos, "third", "body", 3, 300)
	seedReview(t, repos, "second", "body", 4, 200)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)

	body := bodyOf(t, resp)
	posThird := strings.Index(body, "third")
	posSecond := strings.Index(body, "second")
	posFirst := strings.Index(body, "first")
	require.NotEqual(t, -1, posThird)
	assert.Less(t, posThird, posSecond)
	assert.Less(t, posSecond, posFirst)
}

func TestHandleHomeEscapesUserContent(t *testing.T) {
	app, repos := newTestApp(t)

	seedReview(t, repos, "<script>alert('x')</script>", "<img src=x onerror=alert(1)>", 5, 100)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)

	body := bodyOf(t, resp)
	assert.NotContains(t, body, "<script>alert")
	assert.NotContains(t, body, "<img src=x")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestHandleHomeRecordsSinglePageView(t *testing.T) {
	app, repos := newTestApp(t)

	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)

	views, err := repos.PageView.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, int64(1), views[0].Count)

	// a second load never writes another counter
	_, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)

	views, err = repos.PageView.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, views, 1)
}

func TestHandleReviewStoreCreatesReview(t *testing.T) {
	app, repos := newTestApp(t)
	before := time.Now().UnixMilli()

	resp := postForm(t, app, "/reviews", url.Values{
		"name":   {"Amira"},
		"text":   {"Great service"},
		"rating": {"5"},
	})
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	reviews, err := repos.Review.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Amira", reviews[0].Name)
	assert.Equal(t, "Great service", reviews[0].Text)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.GreaterOrEqual(t, reviews[0].Timestamp, before)
}

func TestHandleReviewStoreRejectsIncompleteSubmissions(t *testing.T) {
	app, repos := newTestApp(t)

	forms := []url.Values{
		{"text": {"body"}, "rating": {"5"}},
		{"name": {"Amira"}, "rating": {"5"}},
		{"name": {"Amira"}, "text": {"body"}},
		{"name": {"Amira"}, "text": {"body"}, "rating": {"9"}},
	}

	for _, form := range forms {
		resp := postForm(t, app, "/reviews", form)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	}

	reviews, err := repos.Review.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestHandleBookingRecordStoresEventAndRedirects(t *testing.T) {
	app, repos := newTestApp(t)

	resp := postForm(t, app, "/bookings", url.Values{
		"car_type": {"SUV"},
		"price":    {"75 KM / day"},
	})
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, defaultContactURL, resp.Header.Get(fiber.HeaderLocation))

	bookings, err := repos.Booking.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "SUV", bookings[0].CarType)
	assert.Equal(t, "75 KM / day", bookings[0].Price)
	assert.NotZero(t, bookings[0].Timestamp)
}

func TestHandleBookingRecordAcceptsEmptyFields(t *testing.T) {
	app, repos := newTestApp(t)

	resp := postForm(t, app, "/bookings", url.Values{})
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	bookings, err := repos.Booking.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Empty(t, bookings[0].CarType)
}

func TestHandleAdminReviewsFilters(t *testing.T) {
	app, repos := newTestApp(t)

	seedReview(t, repos, "Amira", "great SUV", 5, 300)
	seedReview(t, repos, "Bojan", "okay sedan", 3, 200)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/reviews?search=suv", nil))
	require.NoError(t, err)

	body := bodyOf(t, resp)
	assert.Contains(t, body, "Amira")
	assert.NotContains(t, body, "Bojan")

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/reviews?rating=3", nil))
	require.NoError(t, err)

	body = bodyOf(t, resp)
	assert.Contains(t, body, "Bojan")
	assert.NotContains(t, body, "Amira")
}

func TestHandleAdminReviewsEscapesUserContent(t *testing.T) {
	app, repos := newTestApp(t)

	seedReview(t, repos, "<script>alert('x')</script>", "body", 5, 100)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/reviews", nil))
	require.NoError(t, err)

	body := bodyOf(t, resp)
	assert.NotContains(t, body, "<script>alert")
	assert.Contains(t, body, "&lt;script&gt;")
}

func TestHandleAdminReviewDelete(t *testing.T) {
	app, repos := newTestApp(t)

	id1 := seedReview(t, repos, "Amira", "keep me out", 5, 300)
	id2 := seedReview(t, repos, "Bojan", "keep me in", 3, 200)

	resp := postForm(t, app, "/admin/reviews/delete/"+id1, url.Values{})
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)

	reviews, err := repos.Review.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, id2, reviews[0].ID)
}

func TestHandleAdminBookingsShowsFallbacks(t *testing.T) {
	app, repos := newTestApp(t)

	_, err := repos.Booking.Create(context.Background(), &models.Booking{})
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin/bookings", nil))
	require.NoError(t, err)

	body := bodyOf(t, resp)
	assert.Contains(t, body, "Not specified")
	assert.Contains(t, body, "Unknown date")
}
