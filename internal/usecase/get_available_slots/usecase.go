package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/settings"
	staffClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// UseCase use case для получения доступных слотов для бронирования
//
// Чистая функция над снапшотами коллабораторов: ничего не пишет, не ретраит
// и не держит состояния между вызовами. Между проверкой доступности и
// последующей записью бронирования нет общей блокировки, поэтому два
// конкурентных запроса могут увидеть один слот свободным - уникальность
// обязан обеспечивать внешний booking-сервис на записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	settingsRepo    SettingsRepository
	staffClient     StaffServiceClient
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	settingsRepo SettingsRepository,
	staffClient StaffServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		settingsRepo:    settingsRepo,
		staffClient:     staffClient,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: business=%d, date=%s, duration=%d, staff=%s",
		req.BusinessID, req.Date.Format(domain.DateFormat), req.DurationMinutes, req.Staff)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем настройки бизнеса (интервал слотов + расписание работы)
	settings, err := uc.settingsRepo.GetByBusinessID(ctx, req.BusinessID)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("GetAvailableSlots: failed to get settings for business=%d: %v", req.BusinessID, err)
			return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		// Записи нет - применяем задокументированные дефолты
		settings = domain.DefaultSettings(req.BusinessID)
		uc.logger.Info("GetAvailableSlots: using default settings for business=%d", req.BusinessID)
	}

	// 3. Определяем рабочие часы на запрошенную дату
	dayHours := workingHoursForDay(settings.WeeklyHours, req.Date)
	if !dayHours.IsOpen {
		uc.logger.Info("GetAvailableSlots: business=%d is closed on %s",
			req.BusinessID, req.Date.Format(domain.DateFormat))
		return uc.emptyResponse(req, ReasonClosed), nil
	}

	// 4. Определяем релевантный ростер
	// Для запроса "любой" нужен список активных сотрудников; для конкретного
	// сотрудника ростер - это он сам, существование отдельно не проверяется
	activeStaffIDs, err := uc.relevantStaffIDs(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(activeStaffIDs) == 0 {
		uc.logger.Info("GetAvailableSlots: business=%d has no active staff", req.BusinessID)
		return uc.emptyResponse(req, ReasonNoActiveStaff), nil
	}

	// 5. Генерируем кандидатные слоты
	candidates, err := generateTimeSlots(dayHours, req.DurationMinutes, settings.SlotIntervalMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 6. Получаем активные бронирования на дату
	appointments, err := uc.appointmentRepo.ListActiveForDate(ctx, req.BusinessID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 7. Для каждого кандидата считаем занятость и проверяем ёмкость
	available := make([]types.TimeString, 0, len(candidates))
	for _, slot := range candidates {
		busy := busyMarkersForSlot(slot, appointments)
		if isSlotAvailable(busy, req.Staff, activeStaffIDs) {
			available = append(available, slot.StartTime)
		}
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for business=%d, date=%s, staff=%s",
		len(available), len(candidates), req.BusinessID, req.Date.Format(domain.DateFormat), req.Staff)

	return &Response{
		BusinessID:      req.BusinessID,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Staff:           req.Staff,
		Slots:           available,
	}, nil
}

// relevantStaffIDs возвращает список ID сотрудников, против которых считается ёмкость
func (uc *UseCase) relevantStaffIDs(ctx context.Context, req *Request) ([]int64, error) {
	if !req.Staff.IsAny() {
		return []int64{req.Staff.StaffID()}, nil
	}

	staff, err := uc.staffClient.ListActive(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, staffClient.ErrBusinessNotFound) {
			uc.logger.Warn("GetAvailableSlots: business id=%d not found in StaffService", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get staff roster for business=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get staff roster: %v", ErrInternal, err)
	}

	ids := make([]int64, 0, len(staff))
	for _, member := range staff {
		ids = append(ids, member.ID)
	}
	return ids, nil
}

func (uc *UseCase) emptyResponse(req *Request, reason Reason) *Response {
	return &Response{
		BusinessID:      req.BusinessID,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Staff:           req.Staff,
		Slots:           []types.TimeString{},
		Reason:          reason,
	}
}
