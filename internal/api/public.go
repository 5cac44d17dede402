package api

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/salonhub/salon-client/internal/core/domain"
)

// Login authenticates with the backend. It is the one operation that returns
// a credential; persisting it is the auth workflow's job, not this layer's.
func (c *Client) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	if err := c.checkRequest(req); err != nil {
		return nil, err
	}
	data, err := c.public.Post(ctx, "auth/login", req)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.AuthResponse](data)
}

// GetPublicServices lists a tenant's active services for its public booking
// page. No credential is attached.
func (c *Client) GetPublicServices(ctx context.Context, slug string) ([]domain.ServiceResponse, error) {
	data, err := c.public.Get(ctx, fmt.Sprintf("public/%s/services", url.PathEscape(slug)))
	if err != nil {
		return nil, err
	}
	return decodeList[domain.ServiceResponse](data)
}

// GetAvailableTimeSlots fetches bookable intervals for a service on a given
// day. date is truncated to its date part before formatting.
func (c *Client) GetAvailableTimeSlots(ctx context.Context, slug string, date time.Time, serviceID int64) (*domain.AvailableTimesResponse, error) {
	day := domain.NewDate(date)
	path := fmt.Sprintf("public/%s/available-times?date=%s&serviceId=%d", url.PathEscape(slug), day, serviceID)
	data, err := c.public.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.AvailableTimesResponse](data)
}

// CreatePublicBooking books an appointment on a tenant's public page. On a
// 4xx the backend's body travels up verbatim inside the error for the end
// customer to see.
func (c *Client) CreatePublicBooking(ctx context.Context, slug string, req domain.BookingRequest) (*domain.BookingResponse, error) {
	if err := c.checkRequest(req); err != nil {
		return nil, err
	}
	data, err := c.public.Post(ctx, fmt.Sprintf("public/%s/bookings", url.PathEscape(slug)), req)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.BookingResponse](data)
}
