package domain

// BusinessHoursDto describes opening hours for one weekday. Time fields are
// nil on closed days.
type BusinessHoursDto struct {
	ID             *int64     `json:"id,omitempty"`
	DayOfWeek      DayOfWeek  `json:"dayOfWeek" validate:"required"`
	IsOpen         bool       `json:"isOpen"`
	OpenTime       *TimeOfDay `json:"openTime,omitempty"`
	CloseTime      *TimeOfDay `json:"closeTime,omitempty"`
	BreakStartTime *TimeOfDay `json:"breakStartTime,omitempty"`
	BreakEndTime   *TimeOfDay `json:"breakEndTime,omitempty"`
}

// ClosedDateDto is a single-day closure such as a holiday.
type ClosedDateDto struct {
	ID         *int64 `json:"id,omitempty"`
	ClosedDate Date   `json:"closedDate"`
	Reason     string `json:"reason,omitempty"`
}
