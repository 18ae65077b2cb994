package domain

import "time"

// IntervalStatus represents the status of an availability interval
type IntervalStatus string

const (
	StatusAvailable   IntervalStatus = "available"
	StatusBooked      IntervalStatus = "booked"
	StatusBlocked     IntervalStatus = "blocked"
	StatusMaintenance IntervalStatus = "maintenance"
)

// AvailabilityInterval represents a span of dates on a chalet's calendar
// Intervals belonging to the same chalet must never overlap; this invariant
// is enforced by the create use case, not by the store
type AvailabilityInterval struct {
	ID        int64
	ChaletID  int64
	StartDate time.Time
	EndDate   time.Time
	Status    IntervalStatus

	// Optional booking details
	PricePerNight    *float64
	Notes            *string
	BookedBy         *string
	BookingReference *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Overlaps reports whether the interval overlaps the [start, end] span.
// Boundaries are inclusive: an interval ending exactly where another starts
// counts as a conflict
func (i *AvailabilityInterval) Overlaps(start, end time.Time) bool {
	return !i.StartDate.After(end) && !i.EndDate.Before(start)
}

// IsAvailable returns true if the interval is open for booking
func (i *AvailabilityInterval) IsAvailable() bool {
	return i.Status == StatusAvailable
}

// Nights returns the number of nights the interval covers
func (i *AvailabilityInterval) Nights() int {
	return int(i.EndDate.Sub(i.StartDate).Hours() / 24)
}

// IntervalFilter фильтр для выборки интервалов шале
type IntervalFilter struct {
	ChaletID  int64           // Обязательный параметр
	Status    *IntervalStatus // Фильтр по статусу (опционально)
	StartDate *time.Time      // Интервалы, заканчивающиеся не раньше этой даты (опционально)
	EndDate   *time.Time      // Интервалы, начинающиеся не позже этой даты (опционально)
}

// IntervalUpdate частичное обновление интервала
// nil поле означает "оставить прежнее значение"
type IntervalUpdate struct {
	StartDate        *time.Time
	EndDate          *time.Time
	Status           *IntervalStatus
	PricePerNight    *float64
	Notes            *string
	BookedBy         *string
	BookingReference *string
}

// IsEmpty returns true if the update carries no fields
func (u *IntervalUpdate) IsEmpty() bool {
	return u.StartDate == nil && u.EndDate == nil && u.Status == nil &&
		u.PricePerNight == nil && u.Notes == nil && u.BookedBy == nil &&
		u.BookingReference == nil
}
