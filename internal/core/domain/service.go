package domain

import "github.com/shopspring/decimal"

func init() {
	// Money travels as a JSON number, matching the backend's BigDecimal.
	decimal.MarshalJSONWithoutQuotes = true
}

type ServiceRequest struct {
	Name            string          `json:"name" validate:"required"`
	DurationMinutes int             `json:"durationMinutes" validate:"gt=0"`
	Price           decimal.Decimal `json:"price"`
}

type ServiceResponse struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	DurationMinutes int             `json:"durationMinutes"`
	Price           decimal.Decimal `json:"price"`
	Active          bool            `json:"active"`
}
