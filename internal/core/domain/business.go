package domain

import "time"

type BusinessRequest struct {
	Name       string `json:"name" validate:"required,max=100"`
	Slug       string `json:"slug" validate:"required,min=3,max=50,lowercase"`
	OwnerEmail string `json:"ownerEmail,omitempty" validate:"omitempty,email"`
}

type BusinessResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Active     bool      `json:"active"`
	BookingURL string    `json:"bookingUrl"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BusinessWithOwnerResponse is returned by business provisioning. The
// temporary password is shown once to the administrator and never stored.
type BusinessWithOwnerResponse struct {
	BusinessID        int64  `json:"businessId"`
	BusinessName      string `json:"businessName"`
	BusinessSlug      string `json:"businessSlug"`
	BookingURL        string `json:"bookingUrl"`
	OwnerUsername     string `json:"ownerUsername"`
	OwnerEmail        string `json:"ownerEmail"`
	TemporaryPassword string `json:"temporaryPassword"`
	Message           string `json:"message"`
}
