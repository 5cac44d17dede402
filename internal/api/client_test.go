package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/salonhub/salon-client/internal/core/domain"
	"github.com/salonhub/salon-client/internal/core/service"
	"github.com/salonhub/salon-client/internal/infrastructure/httpclient"
)

const testSecret = "test-secret"

// ---------------------------------------------------------------------------
// In-memory credential store
// ---------------------------------------------------------------------------

type memStore struct {
	data map[string]string
}

func newMemStore() *memStore { return &memStore{data: make(map[string]string)} }

func (s *memStore) Get(_ context.Context, key string) (string, error) { return s.data[key], nil }
func (s *memStore) Set(_ context.Context, key, value string) error {
	s.data[key] = value
	return nil
}
func (s *memStore) Remove(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

// ---------------------------------------------------------------------------
// Fake backend, mirroring the server the client talks to
// ---------------------------------------------------------------------------

func mintToken(t *testing.T, username, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		parts := strings.SplitN(c.Request().Header.Get("Authorization"), " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}
		claims := jwt.MapClaims{}
		tkn, err := jwt.ParseWithClaims(parts[1], claims, func(*jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		if err != nil || !tkn.Valid {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		return next(c)
	}
}

func newTestBackend(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()

	e.POST("/api/auth/login", func(c echo.Context) error {
		var req domain.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request"})
		}
		if req.Password != "pw" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
		}
		role := domain.RoleBusinessOwner
		if req.Username == "admin" {
			role = domain.RoleAdmin
		}
		return c.JSON(http.StatusOK, domain.AuthResponse{
			Token: mintToken(t, req.Username, role), Type: "Bearer", UserID: 1,
			Username: req.Username, Email: "a@x", Role: role,
		})
	})

	// Public booking pages. These must never see a credential.
	public := e.Group("/api/public/:slug", func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Request().Header["Authorization"]; ok {
				t.Error("public endpoint received an Authorization header")
			}
			return next(c)
		}
	})
	public.GET("/services", func(c echo.Context) error {
		return c.String(http.StatusOK, `[{"id":7,"name":"Haircut","durationMinutes":30,"price":149.90,"active":true}]`)
	})
	public.GET("/available-times", func(c echo.Context) error {
		if q := c.QueryString(); q != "date=2025-03-15&serviceId=7" {
			t.Errorf("unexpected available-times query %q", q)
		}
		return c.String(http.StatusOK, `{
			"date": "2025-03-15",
			"timeSlots": [
				{"startTime":"2025-03-15T09:00:00+01:00","endTime":"2025-03-15T09:30:00+01:00","available":true},
				{"startTime":"2025-03-15T09:30:00+01:00","endTime":"2025-03-15T10:00:00+01:00","available":false}
			]
		}`)
	})
	public.POST("/bookings", func(c echo.Context) error {
		var req domain.BookingRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request"})
		}
		if req.ServiceID == 99 {
			return c.String(http.StatusConflict, `{"error":"slot taken"}`)
		}
		return c.JSON(http.StatusCreated, domain.BookingResponse{
			ID:      42,
			Service: domain.ServiceResponse{ID: req.ServiceID, Name: "Haircut", DurationMinutes: 30, Price: decimal.RequireFromString("149.90"), Active: true},
			StartTime: req.StartTime, EndTime: req.StartTime.Add(30 * time.Minute),
			CustomerName: req.CustomerName, CustomerPhone: req.CustomerPhone,
			Status: domain.BookingConfirmed, CreatedAt: time.Now().Truncate(time.Second),
		})
	})

	admin := e.Group("/api/admin", requireAuth)
	admin.POST("/businesses", func(c echo.Context) error {
		raw, _ := io.ReadAll(c.Request().Body)
		if string(raw) != `{"name":"Acme","slug":"acme"}` {
			t.Errorf("unexpected create-business body: %s", raw)
		}
		return c.JSON(http.StatusCreated, domain.BusinessWithOwnerResponse{
			BusinessID: 5, BusinessName: "Acme", BusinessSlug: "acme",
			BookingURL: "http://localhost:8080/booking/acme",
			OwnerUsername: "acme", OwnerEmail: "owner@acme.test",
			TemporaryPassword: "x7kP2m", Message: "Business created",
		})
	})
	admin.GET("/businesses", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []domain.BusinessResponse{
			{ID: 5, Name: "Acme", Slug: "acme", Active: true},
			{ID: 6, Name: "Bliss", Slug: "bliss", Active: false},
		})
	})
	admin.GET("/businesses/:slug", func(c echo.Context) error {
		return c.JSON(http.StatusOK, domain.BusinessResponse{ID: 5, Name: "Acme", Slug: c.Param("slug"), Active: true})
	})
	admin.PATCH("/businesses/:id/status", func(c echo.Context) error {
		if c.Request().ContentLength > 0 {
			t.Error("status update must carry no body")
		}
		return c.JSON(http.StatusOK, domain.BusinessResponse{
			ID: 5, Name: "Acme", Slug: "acme",
			Active: c.QueryParam("active") == "true",
		})
	})

	owner := e.Group("/api/business", requireAuth)
	owner.GET("/my-business", func(c echo.Context) error {
		return c.JSON(http.StatusOK, domain.BusinessResponse{ID: 5, Name: "Acme", Slug: "acme", Active: true})
	})
	owner.GET("/services", func(c echo.Context) error {
		return c.String(http.StatusOK, `null`) // backend quirk: empty set as JSON null
	})
	owner.GET("/bookings", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	owner.GET("/bookings/date", func(c echo.Context) error {
		if q := c.QueryString(); q != "date=2025-01-20" {
			t.Errorf("unexpected bookings query %q", q)
		}
		return c.JSON(http.StatusOK, []domain.BookingResponse{})
	})
	owner.PATCH("/bookings/:id/complete", func(c echo.Context) error {
		return c.JSON(http.StatusOK, domain.BookingResponse{ID: 42, Status: domain.BookingCompleted})
	})
	owner.GET("/hours", func(c echo.Context) error {
		return c.String(http.StatusOK, `[
			{"id":1,"dayOfWeek":"MONDAY","isOpen":true,"openTime":"09:00:00","closeTime":"17:30:00","breakStartTime":"12:00:00","breakEndTime":"12:30:00"},
			{"id":2,"dayOfWeek":"SUNDAY","isOpen":false}
		]`)
	})
	owner.PUT("/hours/:day", func(c echo.Context) error {
		if c.Param("day") != "MONDAY" {
			t.Errorf("unexpected day path param %q", c.Param("day"))
		}
		var req domain.BusinessHoursDto
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request"})
		}
		id := int64(1)
		req.ID = &id
		return c.JSON(http.StatusOK, req)
	})
	owner.GET("/closed-dates", func(c echo.Context) error {
		return c.String(http.StatusOK, `[{"id":3,"closedDate":"2025-12-24","reason":"Christmas"}]`)
	})
	owner.POST("/closed-dates", func(c echo.Context) error {
		var req domain.ClosedDateDto
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad request"})
		}
		id := int64(4)
		req.ID = &id
		return c.JSON(http.StatusCreated, req)
	})
	owner.DELETE("/closed-dates/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	return e
}

func newTestClient(t *testing.T) (*Client, *memStore) {
	t.Helper()
	srv := httptest.NewServer(newTestBackend(t))
	t.Cleanup(srv.Close)

	store := newMemStore()
	log := zerolog.Nop()
	public, err := httpclient.NewTransport(srv.URL, 0, nil, log)
	if err != nil {
		t.Fatalf("new transport: %v", err)
	}
	authed, err := httpclient.NewInterceptor(srv.URL, 0, store, log)
	if err != nil {
		t.Fatalf("new interceptor: %v", err)
	}
	return NewClient(public, authed, log), store
}

func loginAs(t *testing.T, store *memStore, username, role string) {
	t.Helper()
	ctx := context.Background()
	store.Set(ctx, domain.KeyToken, mintToken(t, username, role))
	store.Set(ctx, domain.KeyRole, role)
	store.Set(ctx, domain.KeyUsername, username)
}

// ---------------------------------------------------------------------------

func TestLogin_Admin(t *testing.T) {
	client, _ := newTestClient(t)

	resp, err := client.Login(context.Background(), domain.LoginRequest{Username: "admin", Password: "pw"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.Token == "" || resp.Type != "Bearer" || resp.Role != domain.RoleAdmin || resp.Username != "admin" {
		t.Fatalf("unexpected auth response: %+v", resp)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.Login(context.Background(), domain.LoginRequest{Username: "admin", Password: "wrong"})
	if !httpclient.IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestLogin_MissingFieldsRejectedLocally(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.Login(context.Background(), domain.LoginRequest{Username: "admin"})
	if err == nil || !strings.Contains(err.Error(), "password is required") {
		t.Fatalf("expected local validation error, got %v", err)
	}
}

func TestCreateBusiness_SendsBearerAndExactBody(t *testing.T) {
	client, store := newTestClient(t)
	loginAs(t, store, "admin", domain.RoleAdmin)

	created, err := client.CreateBusiness(context.Background(), domain.BusinessRequest{Name: "Acme", Slug: "acme"})
	if err != nil {
		t.Fatalf("create business: %v", err)
	}
	if created.TemporaryPassword == "" {
		t.Fatal("expected a temporary password")
	}
	if created.BusinessSlug != "acme" {
		t.Fatalf("unexpected response: %+v", created)
	}
}

func TestCreateBusiness_WithoutSessionIsRejected(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.CreateBusiness(context.Background(), domain.BusinessRequest{Name: "Acme", Slug: "acme"})
	if !httpclient.IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("expected 401 without a session, got %v", err)
	}
}

func TestGetAllBusinesses(t *testing.T) {
	client, store := newTestClient(t)
	loginAs(t, store, "admin", domain.RoleAdmin)

	businesses, err := client.GetAllBusinesses(context.Background())
	if err != nil {
		t.Fatalf("get businesses: %v", err)
	}
	if len(businesses) != 2 || businesses[0].Slug != "acme" || businesses[1].Active {
		t.Fatalf("unexpected businesses: %+v", businesses)
	}
}

func TestUpdateBusinessStatus_ActiveInQueryString(t *testing.T) {
	client, store := newTestClient(t)
	loginAs(t, store, "admin", domain.RoleAdmin)

	updated, err := client.UpdateBusinessStatus(context.Background(), 5, false)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Active {
		t.Fatal("expected business to be deactivated")
	}
}

func TestGetPublicServices_DecimalPricePreserved(t *testing.T) {
	client, _ := newTestClient(t)

	services, err := client.GetPublicServices(context.Background(), "acme")
	if err != nil {
		t.Fatalf("get public services: %v", err)
	}
	if len(services) != 1 {
		t.Fatalf("expected 1 service, got %d", len(services))
	}
	if !services[0].Price.Equal(decimal.RequireFromString("149.90")) {
		t.Fatalf("price not preserved: %s", services[0].Price)
	}
}

func TestGetAvailableTimeSlots_TruncatesDate(t *testing.T) {
	client, _ := newTestClient(t)

	// mid-afternoon timestamp; only the date part may reach the wire
	at := time.Date(2025, 3, 15, 14, 22, 0, 0, time.UTC)
	times, err := client.GetAvailableTimeSlots(context.Background(), "acme", at, 7)
	if err != nil {
		t.Fatalf("get available times: %v", err)
	}
	if times.Date.String() != "2025-03-15" {
		t.Fatalf("unexpected date: %s", times.Date)
	}
	if len(times.TimeSlots) != 2 || times.TimeSlots[1].Available {
		t.Fatalf("unexpected slots: %+v", times.TimeSlots)
	}

	want := time.Date(2025, 3, 15, 9, 0, 0, 0, time.FixedZone("", 3600))
	if !times.TimeSlots[0].StartTime.Equal(want) {
		t.Fatalf("timestamp not preserved: %s", times.TimeSlots[0].StartTime)
	}
}

func TestCreatePublicBooking_RoundTrip(t *testing.T) {
	client, _ := newTestClient(t)

	start := time.Date(2025, 3, 15, 9, 0, 0, 0, time.FixedZone("", 3600))
	booking, err := client.CreatePublicBooking(context.Background(), "acme", domain.BookingRequest{
		ServiceID: 7, StartTime: start, CustomerName: "Jo", CustomerPhone: "12345678",
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if booking.ID != 42 || booking.Status != domain.BookingConfirmed {
		t.Fatalf("unexpected booking: %+v", booking)
	}
	if !booking.StartTime.Equal(start) || !booking.EndTime.Equal(start.Add(30*time.Minute)) {
		t.Fatalf("times not preserved: %+v", booking)
	}
	if !booking.Service.Price.Equal(decimal.RequireFromString("149.9")) {
		t.Fatalf("nested price not preserved: %s", booking.Service.Price)
	}
}

func TestCreatePublicBooking_ConflictSurfacesBodyVerbatim(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.CreatePublicBooking(context.Background(), "acme", domain.BookingRequest{
		ServiceID: 99, StartTime: time.Now(), CustomerName: "Jo", CustomerPhone: "12345678",
	})
	var he *httpclient.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.StatusCode != http.StatusConflict || he.Body != `{"error":"slot taken"}` {
		t.Fatalf("unexpected failure payload: %+v", he)
	}
}

func TestListEndpoints_EmptyOrNullBodyYieldEmptyList(t *testing.T) {
	client, store := newTestClient(t)
	loginAs(t, store, "owner", domain.RoleBusinessOwner)
	ctx := context.Background()

	services, err := client.GetMyServices(ctx) // backend answers JSON null
	if err != nil {
		t.Fatalf("get services: %v", err)
	}
	if services == nil || len(services) != 0 {
		t.Fatalf("expected empty slice, got %#v", services)
	}

	bookings, err := client.GetAllMyBookings(ctx) // backend answers no body
	if err != nil {
		t.Fatalf("get bookings: %v", err)
	}
	if bookings == nil || len(bookings) != 0 {
		t.Fatalf("expected empty slice, got %#v", bookings)
	}
}

func TestGetBookingsByDate_FormatsDate(t *testing.T) {
	client, store := newTestClient(t)
	loginAs(t, store, "owner", domain.RoleBusinessOwner)

	day := time.Date(2025, 1, 20, 18, 45, 0, 0, time.UTC)
	if _, err := client.GetBookingsByDate(context.Background(), day); err != nil {
		t.Fatalf("get bookings by date: %v", err)
	}
}

func TestCompleteBooking(t *testing.T) {
	client, store := newTestClient(t)
	loginAs(t, store, "owner", domain.RoleBusinessOwner)

	booking, err := client.CompleteBooking(context.Background(), 42)
	if err != nil {
		t.Fatalf("complete booking: %v", err)
	}
	if booking.Status != domain.BookingCompleted {
		t.Fatalf("unexpected status: %s", booking.Status)
	}
}

func TestBusinessHours_RoundTrip(t *testing.T) {
	client, store := newTestClient(t)
	loginAs(t, store, "owner", domain.RoleBusinessOwner)
	ctx := context.Background()

	hours, err := client.GetBusinessHours(ctx)
	if err != nil {
		t.Fatalf("get hours: %v", err)
	}
	if len(hours) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(hours))
	}
	monday := hours[0]
	if monday.DayOfWeek != domain.Monday || !monday.IsOpen {
		t.Fatalf("unexpected monday: %+v", monday)
	}
	if monday.OpenTime == nil || monday.OpenTime.String() != "09:00:00" {
		t.Fatalf("open time not preserved: %v", monday.OpenTime)
	}
	if sunday := hours[1]; sunday.IsOpen || sunday.OpenTime != nil {
		t.Fatalf("closed day must carry no times: %+v", sunday)
	}

	updated, err := client.UpdateBusinessHours(ctx, domain.Monday, monday)
	if err != nil {
		t.Fatalf("update hours: %v", err)
	}
	if updated.CloseTime == nil || updated.CloseTime.String() != "17:30:00" {
		t.Fatalf("close time not preserved: %v", updated.CloseTime)
	}
}

func TestClosedDates(t *testing.T) {
	client, store := newTestClient(t)
	loginAs(t, store, "owner", domain.RoleBusinessOwner)
	ctx := context.Background()

	dates, err := client.GetClosedDates(ctx)
	if err != nil {
		t.Fatalf("get closed dates: %v", err)
	}
	if len(dates) != 1 || dates[0].ClosedDate.String() != "2025-12-24" {
		t.Fatalf("unexpected closed dates: %+v", dates)
	}

	added, err := client.AddClosedDate(ctx, domain.ClosedDateDto{
		ClosedDate: domain.NewDate(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
		Reason:     "New Year",
	})
	if err != nil {
		t.Fatalf("add closed date: %v", err)
	}
	if added.ID == nil || added.ClosedDate.String() != "2026-01-01" {
		t.Fatalf("unexpected added date: %+v", added)
	}

	if err := client.DeleteClosedDate(ctx, *added.ID); err != nil {
		t.Fatalf("delete closed date: %v", err)
	}
}

func TestAddService_ValidationRejectsBeforeDispatch(t *testing.T) {
	client, store := newTestClient(t)
	loginAs(t, store, "owner", domain.RoleBusinessOwner)

	_, err := client.AddService(context.Background(), domain.ServiceRequest{Name: "Cut", DurationMinutes: 0})
	if err == nil || !strings.Contains(err.Error(), "durationminutes") {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// Scenario: a stale session gets a 401, the UI reacts with a logout, and the
// derived state is anonymous with all keys cleared.
func TestLogoutAfter401(t *testing.T) {
	client, store := newTestClient(t)
	ctx := context.Background()
	store.Set(ctx, domain.KeyToken, "stale-token")
	store.Set(ctx, domain.KeyRole, domain.RoleBusinessOwner)
	store.Set(ctx, domain.KeyUsername, "owner")

	_, err := client.GetMyBusiness(ctx)
	if !httpclient.IsStatus(err, http.StatusUnauthorized) {
		t.Fatalf("expected 401 for stale token, got %v", err)
	}

	publisher := service.NewAuthStatePublisher(store, zerolog.Nop())
	auth := service.NewAuthService(client, store, publisher, zerolog.Nop())
	if err := auth.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if state := publisher.CurrentState(ctx); state != domain.Anonymous {
		t.Fatalf("expected anonymous, got %+v", state)
	}
	if len(store.data) != 0 {
		t.Fatalf("credential keys remain: %v", store.data)
	}
}
