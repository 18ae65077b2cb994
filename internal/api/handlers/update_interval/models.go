package update_interval

import (
	"time"

	"github.com/m04kA/Chalet-AvailabilityService/internal/domain"
	"github.com/m04kA/Chalet-AvailabilityService/internal/service/intervals/models"
)

// UpdateIntervalRequest HTTP request model
// Все поля опциональны: отсутствующее поле сохраняет прежнее значение
type UpdateIntervalRequest struct {
	StartDate        *string  `json:"startDate,omitempty"` // "2024-12-20"
	EndDate          *string  `json:"endDate,omitempty"`   // "2024-12-27"
	Status           *string  `json:"status,omitempty"`
	PricePerNight    *float64 `json:"pricePerNight,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
	BookedBy         *string  `json:"bookedBy,omitempty"`
	BookingReference *string  `json:"bookingReference,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом дат)
func (r *UpdateIntervalRequest) ToServiceRequest() (*models.UpdateIntervalRequest, error) {
	req := &models.UpdateIntervalRequest{
		Status:           r.Status,
		PricePerNight:    r.PricePerNight,
		Notes:            r.Notes,
		BookedBy:         r.BookedBy,
		BookingReference: r.BookingReference,
	}

	if r.StartDate != nil {
		startDate, err := time.Parse(domain.DateFormat, *r.StartDate)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if r.EndDate != nil {
		endDate, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	return req, nil
}
