package get_available_periods

import (
	"github.com/m04kA/Chalet-AvailabilityService/internal/domain"
	getAvailablePeriods "github.com/m04kA/Chalet-AvailabilityService/internal/usecase/get_available_periods"
)

// PeriodResponse HTTP модель доступного периода
type PeriodResponse struct {
	ID            int64    `json:"id"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
	PricePerNight *float64 `json:"pricePerNight,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

// AvailablePeriodsResponse HTTP модель ответа со списком доступных периодов
type AvailablePeriodsResponse struct {
	ChaletID int64            `json:"chaletId"`
	Periods  []PeriodResponse `json:"periods"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailablePeriods.Response) *AvailablePeriodsResponse {
	periods := make([]PeriodResponse, len(resp.Periods))
	for i, p := range resp.Periods {
		periods[i] = PeriodResponse{
			ID:            p.ID,
			StartDate:     p.StartDate.Format(domain.DateFormat),
			EndDate:       p.EndDate.Format(domain.DateFormat),
			PricePerNight: p.PricePerNight,
			Notes:         p.Notes,
		}
	}

	return &AvailablePeriodsResponse{
		ChaletID: resp.ChaletID,
		Periods:  periods,
	}
}
