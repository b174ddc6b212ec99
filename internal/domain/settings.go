package domain

import "time"

// BusinessSettings represents the slot configuration of a business:
// weekly operating hours and the granularity at which candidate slots are generated
type BusinessSettings struct {
	BusinessID          int64
	SlotIntervalMinutes int
	WeeklyHours         WeeklyHours

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultSettings возвращает настройки по умолчанию для бизнеса без записи в БД
// Дефолты применяются на границе хранилища, а не внутри резолвера слотов
func DefaultSettings(businessID int64) *BusinessSettings {
	return &BusinessSettings{
		BusinessID:          businessID,
		SlotIntervalMinutes: DefaultSlotIntervalMinutes,
		WeeklyHours:         DefaultWeeklyHours(),
	}
}
