package models

import (
	"errors"
	"time"

	"github.com/m04kA/Chalet-AvailabilityService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid interval status")
)

// Request модели

// UpdateIntervalRequest запрос на частичное обновление интервала
// nil поле означает "оставить прежнее значение"
type UpdateIntervalRequest struct {
	StartDate        *time.Time
	EndDate          *time.Time
	Status           *string
	PricePerNight    *float64
	Notes            *string
	BookedBy         *string
	BookingReference *string
}

// Response модели

// ChaletResponse данные шале, развернутые из реестра
type ChaletResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Slug     string  `json:"slug"`
	Location string  `json:"location"`
	Capacity int     `json:"capacity"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// IntervalResponse ответ с данными интервала доступности
type IntervalResponse struct {
	ID        int64  `json:"id"`
	ChaletID  int64  `json:"chaletId"`
	StartDate string `json:"startDate"` // "2024-12-20"
	EndDate   string `json:"endDate"`   // "2024-12-27"
	Status    string `json:"status"`

	PricePerNight    *float64 `json:"pricePerNight,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
	BookedBy         *string  `json:"bookedBy,omitempty"`
	BookingReference *string  `json:"bookingReference,omitempty"`

	// Данные шале из реестра (только для списочного запроса по всем шале)
	Chalet *ChaletResponse `json:"chalet,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IntervalListResponse ответ со списком интервалов
type IntervalListResponse struct {
	Intervals []IntervalResponse `json:"intervals"`
}

// Методы конвертации

// FromDomainInterval конвертирует domain модель в DTO
func FromDomainInterval(i *domain.AvailabilityInterval) *IntervalResponse {
	if i == nil {
		return nil
	}

	return &IntervalResponse{
		ID:               i.ID,
		ChaletID:         i.ChaletID,
		StartDate:        i.StartDate.Format(domain.DateFormat),
		EndDate:          i.EndDate.Format(domain.DateFormat),
		Status:           string(i.Status),
		PricePerNight:    i.PricePerNight,
		Notes:            i.Notes,
		BookedBy:         i.BookedBy,
		BookingReference: i.BookingReference,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
	}
}

// FromDomainIntervalList конвертирует список domain моделей в DTO
func FromDomainIntervalList(intervals []*domain.AvailabilityInterval) *IntervalListResponse {
	if intervals == nil {
		return &IntervalListResponse{
			Intervals: []IntervalResponse{},
		}
	}

	resp := &IntervalListResponse{
		Intervals: make([]IntervalResponse, len(intervals)),
	}

	for i, interval := range intervals {
		if intervalResp := FromDomainInterval(interval); intervalResp != nil {
			resp.Intervals[i] = *intervalResp
		}
	}

	return resp
}

// ToDomainIntervalStatus конвертирует строку в domain.IntervalStatus с валидацией
func ToDomainIntervalStatus(status string) (domain.IntervalStatus, error) {
	s := domain.IntervalStatus(status)

	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}

	return s, nil
}
