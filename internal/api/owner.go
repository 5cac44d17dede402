package api

import (
	"context"
	"fmt"
	"time"

	"github.com/salonhub/salon-client/internal/core/domain"
)

// Business-owner operations. The backend resolves the tenant from the bearer
// token, so none of these take a slug.

func (c *Client) GetMyBusiness(ctx context.Context) (*domain.BusinessResponse, error) {
	data, err := c.authed.Get(ctx, "business/my-business")
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.BusinessResponse](data)
}

func (c *Client) GetMyServices(ctx context.Context) ([]domain.ServiceResponse, error) {
	data, err := c.authed.Get(ctx, "business/services")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.ServiceResponse](data)
}

func (c *Client) AddService(ctx context.Context, req domain.ServiceRequest) (*domain.ServiceResponse, error) {
	if err := c.checkRequest(req); err != nil {
		return nil, err
	}
	data, err := c.authed.Post(ctx, "business/services", req)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.ServiceResponse](data)
}

func (c *Client) UpdateService(ctx context.Context, id int64, req domain.ServiceRequest) (*domain.ServiceResponse, error) {
	if err := c.checkRequest(req); err != nil {
		return nil, err
	}
	data, err := c.authed.Put(ctx, fmt.Sprintf("business/services/%d", id), req)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.ServiceResponse](data)
}

func (c *Client) DeleteService(ctx context.Context, id int64) error {
	_, err := c.authed.Delete(ctx, fmt.Sprintf("business/services/%d", id))
	return err
}

func (c *Client) GetAllMyBookings(ctx context.Context) ([]domain.BookingResponse, error) {
	data, err := c.authed.Get(ctx, "business/bookings")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.BookingResponse](data)
}

func (c *Client) GetTodayBookings(ctx context.Context) ([]domain.BookingResponse, error) {
	data, err := c.authed.Get(ctx, "business/bookings/today")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.BookingResponse](data)
}

func (c *Client) GetBookingsByDate(ctx context.Context, date time.Time) ([]domain.BookingResponse, error) {
	data, err := c.authed.Get(ctx, fmt.Sprintf("business/bookings/date?date=%s", domain.NewDate(date)))
	if err != nil {
		return nil, err
	}
	return decodeList[domain.BookingResponse](data)
}

func (c *Client) CompleteBooking(ctx context.Context, id int64) (*domain.BookingResponse, error) {
	data, err := c.authed.Patch(ctx, fmt.Sprintf("business/bookings/%d/complete", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.BookingResponse](data)
}

func (c *Client) CancelBooking(ctx context.Context, id int64) (*domain.BookingResponse, error) {
	data, err := c.authed.Patch(ctx, fmt.Sprintf("business/bookings/%d/cancel", id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.BookingResponse](data)
}

func (c *Client) GetBusinessHours(ctx context.Context) ([]domain.BusinessHoursDto, error) {
	data, err := c.authed.Get(ctx, "business/hours")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.BusinessHoursDto](data)
}

func (c *Client) UpdateBusinessHours(ctx context.Context, day domain.DayOfWeek, req domain.BusinessHoursDto) (*domain.BusinessHoursDto, error) {
	if err := c.checkRequest(req); err != nil {
		return nil, err
	}
	data, err := c.authed.Put(ctx, fmt.Sprintf("business/hours/%s", day), req)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.BusinessHoursDto](data)
}

func (c *Client) GetClosedDates(ctx context.Context) ([]domain.ClosedDateDto, error) {
	data, err := c.authed.Get(ctx, "business/closed-dates")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.ClosedDateDto](data)
}

func (c *Client) AddClosedDate(ctx context.Context, req domain.ClosedDateDto) (*domain.ClosedDateDto, error) {
	data, err := c.authed.Post(ctx, "business/closed-dates", req)
	if err != nil {
		return nil, err
	}
	return decodeOne[domain.ClosedDateDto](data)
}

func (c *Client) DeleteClosedDate(ctx context.Context, id int64) error {
	_, err := c.authed.Delete(ctx, fmt.Sprintf("business/closed-dates/%d", id))
	return err
}
