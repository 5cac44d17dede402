package domain

import "time"

// BookingStatus values mirror the backend's booking lifecycle.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

type BookingRequest struct {
	ServiceID     int64     `json:"serviceId" validate:"gt=0"`
	StartTime     time.Time `json:"startTime" validate:"required"`
	CustomerName  string    `json:"customerName" validate:"required"`
	CustomerPhone string    `json:"customerPhone" validate:"required"`
}

type BookingResponse struct {
	ID            int64           `json:"id"`
	Service       ServiceResponse `json:"service"`
	StartTime     time.Time       `json:"startTime"`
	EndTime       time.Time       `json:"endTime"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	Status        BookingStatus   `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type AvailableTimeSlot struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Available bool      `json:"available"`
}

type AvailableTimesResponse struct {
	Date      Date                `json:"date"`
	TimeSlots []AvailableTimeSlot `json:"timeSlots"`
}
