package get_available_periods

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ChaletID <= 0 {
		return fmt.Errorf("%w: chaletID must be positive", ErrInvalidInput)
	}

	// Если заданы обе границы окна, конец не может быть раньше начала
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return ErrInvalidWindow
	}

	return nil
}
