package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/staffservice"
)

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	// ListActiveForDate получает активные (pending/confirmed) бронирования бизнеса на дату
	ListActiveForDate(ctx context.Context, businessID int64, date time.Time) ([]*domain.Appointment, error)
}

// SettingsRepository интерфейс репозитория настроек бизнеса
type SettingsRepository interface {
	GetByBusinessID(ctx context.Context, businessID int64) (*domain.BusinessSettings, error)
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	ListActive(ctx context.Context, businessID int64) ([]staffservice.StaffMember, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
