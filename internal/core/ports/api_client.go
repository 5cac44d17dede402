package ports

import (
	"context"
	"time"

	"github.com/salonhub/salon-client/internal/core/domain"
)

// APIClient is the typed operation surface over the backend's REST contract.
// Operations are partitioned by authentication requirement: the public group
// dispatches without a credential, every other group goes through the
// bearer-injecting transport.
type APIClient interface {
	// Auth (public)
	Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error)

	// Public booking pages
	GetPublicServices(ctx context.Context, slug string) ([]domain.ServiceResponse, error)
	GetAvailableTimeSlots(ctx context.Context, slug string, date time.Time, serviceID int64) (*domain.AvailableTimesResponse, error)
	CreatePublicBooking(ctx context.Context, slug string, req domain.BookingRequest) (*domain.BookingResponse, error)

	// Administrator
	CreateBusiness(ctx context.Context, req domain.BusinessRequest) (*domain.BusinessWithOwnerResponse, error)
	GetAllBusinesses(ctx context.Context) ([]domain.BusinessResponse, error)
	GetBusinessBySlug(ctx context.Context, slug string) (*domain.BusinessResponse, error)
	UpdateBusinessStatus(ctx context.Context, id int64, active bool) (*domain.BusinessResponse, error)

	// Business owner
	GetMyBusiness(ctx context.Context) (*domain.BusinessResponse, error)
	GetMyServices(ctx context.Context) ([]domain.ServiceResponse, error)
	AddService(ctx context.Context, req domain.ServiceRequest) (*domain.ServiceResponse, error)
	UpdateService(ctx context.Context, id int64, req domain.ServiceRequest) (*domain.ServiceResponse, error)
	DeleteService(ctx context.Context, id int64) error
	GetAllMyBookings(ctx context.Context) ([]domain.BookingResponse, error)
	GetTodayBookings(ctx context.Context) ([]domain.BookingResponse, error)
	GetBookingsByDate(ctx context.Context, date time.Time) ([]domain.BookingResponse, error)
	CompleteBooking(ctx context.Context, id int64) (*domain.BookingResponse, error)
	CancelBooking(ctx context.Context, id int64) (*domain.BookingResponse, error)

	// Business owner — opening hours and closures
	GetBusinessHours(ctx context.Context) ([]domain.BusinessHoursDto, error)
	UpdateBusinessHours(ctx context.Context, day domain.DayOfWeek, req domain.BusinessHoursDto) (*domain.BusinessHoursDto, error)
	GetClosedDates(ctx context.Context) ([]domain.ClosedDateDto, error)
	AddClosedDate(ctx context.Context, req domain.ClosedDateDto) (*domain.ClosedDateDto, error)
	DeleteClosedDate(ctx context.Context, id int64) error
}
