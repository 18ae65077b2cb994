package create_interval

import (
	"fmt"

	"github.com/m04kA/Chalet-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ChaletID <= 0 {
		return fmt.Errorf("%w: chaletID must be positive", ErrInvalidInput)
	}

	// Проверяем, что даты не являются нулевыми
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}
	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	// Дата окончания строго позже даты начала
	if !req.EndDate.After(req.StartDate) {
		return ErrInvalidRange
	}

	// Валидируем статус, если указан
	if req.Status != nil && !domain.IsValidStatus(domain.IntervalStatus(*req.Status)) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
	}

	// Цена информационная, но отрицательной быть не может
	if req.PricePerNight != nil && *req.PricePerNight < 0 {
		return fmt.Errorf("%w: pricePerNight must be non-negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// resolveStatus возвращает статус нового интервала
// Если статус не указан, используется available
func resolveStatus(req *Request) domain.IntervalStatus {
	if req.Status == nil {
		return domain.StatusAvailable
	}
	return domain.IntervalStatus(*req.Status)
}
