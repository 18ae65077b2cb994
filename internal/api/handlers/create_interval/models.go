package create_interval

import (
	"time"

	"github.com/m04kA/Chalet-AvailabilityService/internal/domain"
	createInterval "github.com/m04kA/Chalet-AvailabilityService/internal/usecase/create_interval"
)

// CreateIntervalRequest HTTP request model
type CreateIntervalRequest struct {
	ChaletID         int64    `json:"chaletId"`
	StartDate        string   `json:"startDate"` // "2024-12-20"
	EndDate          string   `json:"endDate"`   // "2024-12-27"
	Status           *string  `json:"status,omitempty"`
	PricePerNight    *float64 `json:"pricePerNight,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
	BookedBy         *string  `json:"bookedBy,omitempty"`
	BookingReference *string  `json:"bookingReference,omitempty"`
}

// IntervalResponse HTTP response model
type IntervalResponse struct {
	ID               int64    `json:"id"`
	ChaletID         int64    `json:"chaletId"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	Status           string   `json:"status"`
	PricePerNight    *float64 `json:"pricePerNight,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
	BookedBy         *string  `json:"bookedBy,omitempty"`
	BookingReference *string  `json:"bookingReference,omitempty"`
	CreatedAt        string   `json:"createdAt"`
	UpdatedAt        string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateIntervalRequest) ToUseCaseRequest() (*createInterval.Request, error) {
	// Парсим даты
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &createInterval.Request{
		ChaletID:         r.ChaletID,
		StartDate:        startDate,
		EndDate:          endDate,
		Status:           r.Status,
		PricePerNight:    r.PricePerNight,
		Notes:            r.Notes,
		BookedBy:         r.BookedBy,
		BookingReference: r.BookingReference,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createInterval.Response) *IntervalResponse {
	return &IntervalResponse{
		ID:               resp.ID,
		ChaletID:         resp.ChaletID,
		StartDate:        resp.StartDate.Format(domain.DateFormat),
		EndDate:          resp.EndDate.Format(domain.DateFormat),
		Status:           resp.Status,
		PricePerNight:    resp.PricePerNight,
		Notes:            resp.Notes,
		BookedBy:         resp.BookedBy,
		BookingReference: resp.BookingReference,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
