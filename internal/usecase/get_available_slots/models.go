package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Reason машиночитаемая причина пустого списка слотов
type Reason string

const (
	// ReasonClosed бизнес закрыт в запрошенную дату
	ReasonClosed Reason = "closed"

	// ReasonNoActiveStaff у бизнеса нет активных сотрудников
	ReasonNoActiveStaff Reason = "no_active_staff"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	BusinessID      int64                  // ID бизнеса
	Date            time.Time              // Дата для получения слотов (без времени)
	DurationMinutes int                    // Длительность запрашиваемой услуги в минутах
	Staff           domain.ResourceRequest // Конкретный сотрудник или любой свободный
}

// Response модель ответа со списком доступных слотов
// Slots содержит времена начала в порядке генерации (по возрастанию)
// Пустой список с заполненным Reason - валидный результат, а не ошибка
type Response struct {
	BusinessID      int64
	Date            time.Time
	DurationMinutes int
	Staff           domain.ResourceRequest
	Slots           []types.TimeString
	Reason          Reason // Пустая строка, если слоты есть или день просто полностью занят
}
