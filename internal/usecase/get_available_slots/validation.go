package get_available_slots

import "fmt"

// validateRequest валидирует входные данные запроса
// Закрытый день и отсутствие сотрудников - не ошибки валидации,
// они возвращаются как пустой результат с причиной
func validateRequest(req *Request) error {
	if req.BusinessID <= 0 {
		return fmt.Errorf("%w: businessID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}

	if !req.Staff.IsAny() && req.Staff.StaffID() <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	return nil
}
