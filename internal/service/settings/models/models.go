package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модели

// DayHoursModel расписание одного дня недели
type DayHoursModel struct {
	IsOpen    bool    `json:"isOpen"`
	OpenTime  *string `json:"openTime,omitempty"`  // HH:MM, обязателен при isOpen
	CloseTime *string `json:"closeTime,omitempty"` // HH:MM, обязателен при isOpen
}

// WeeklyHoursModel расписание работы бизнеса по дням недели
type WeeklyHoursModel struct {
	Monday    DayHoursModel `json:"monday"`
	Tuesday   DayHoursModel `json:"tuesday"`
	Wednesday DayHoursModel `json:"wednesday"`
	Thursday  DayHoursModel `json:"thursday"`
	Friday    DayHoursModel `json:"friday"`
	Saturday  DayHoursModel `json:"saturday"`
	Sunday    DayHoursModel `json:"sunday"`
}

// UpdateSettingsRequest запрос на обновление настроек бизнеса
type UpdateSettingsRequest struct {
	UserID              int64            `json:"userId"`
	BusinessID          int64            `json:"businessId"`
	SlotIntervalMinutes int              `json:"slotIntervalMinutes"`
	WeeklyHours         WeeklyHoursModel `json:"weeklyHours"`
}

// Response модели

// SettingsResponse ответ с настройками бизнеса
type SettingsResponse struct {
	BusinessID          int64            `json:"businessId"`
	SlotIntervalMinutes int              `json:"slotIntervalMinutes"`
	WeeklyHours         WeeklyHoursModel `json:"weeklyHours"`
	UpdatedAt           *time.Time       `json:"updatedAt,omitempty"`
}

// FromDomainSettings конвертирует доменные настройки в response модель
func FromDomainSettings(settings *domain.BusinessSettings) *SettingsResponse {
	resp := &SettingsResponse{
		BusinessID:          settings.BusinessID,
		SlotIntervalMinutes: settings.SlotIntervalMinutes,
		WeeklyHours: WeeklyHoursModel{
			Monday:    fromDomainDayHours(settings.WeeklyHours.Monday),
			Tuesday:   fromDomainDayHours(settings.WeeklyHours.Tuesday),
			Wednesday: fromDomainDayHours(settings.WeeklyHours.Wednesday),
			Thursday:  fromDomainDayHours(settings.WeeklyHours.Thursday),
			Friday:    fromDomainDayHours(settings.WeeklyHours.Friday),
			Saturday:  fromDomainDayHours(settings.WeeklyHours.Saturday),
			Sunday:    fromDomainDayHours(settings.WeeklyHours.Sunday),
		},
	}
	if !settings.UpdatedAt.IsZero() {
		resp.UpdatedAt = &settings.UpdatedAt
	}
	return resp
}

// ToDomainSettings валидирует запрос и конвертирует его в доменные настройки
func (r *UpdateSettingsRequest) ToDomainSettings() (*domain.BusinessSettings, error) {
	weeklyHours := domain.WeeklyHours{}

	days := []struct {
		name  string
		model DayHoursModel
		dest  *domain.DayHours
	}{
		{"monday", r.WeeklyHours.Monday, &weeklyHours.Monday},
		{"tuesday", r.WeeklyHours.Tuesday, &weeklyHours.Tuesday},
		{"wednesday", r.WeeklyHours.Wednesday, &weeklyHours.Wednesday},
		{"thursday", r.WeeklyHours.Thursday, &weeklyHours.Thursday},
		{"friday", r.WeeklyHours.Friday, &weeklyHours.Friday},
		{"saturday", r.WeeklyHours.Saturday, &weeklyHours.Saturday},
		{"sunday", r.WeeklyHours.Sunday, &weeklyHours.Sunday},
	}

	for _, day := range days {
		converted, err := toDomainDayHours(day.model)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", day.name, err)
		}
		*day.dest = converted
	}

	return &domain.BusinessSettings{
		BusinessID:          r.BusinessID,
		SlotIntervalMinutes: r.SlotIntervalMinutes,
		WeeklyHours:         weeklyHours,
	}, nil
}

func fromDomainDayHours(day domain.DayHours) DayHoursModel {
	model := DayHoursModel{IsOpen: day.IsOpen}
	if day.OpenTime != nil {
		open := day.OpenTime.String()
		model.OpenTime = &open
	}
	if day.CloseTime != nil {
		closeT := day.CloseTime.String()
		model.CloseTime = &closeT
	}
	return model
}

func toDomainDayHours(model DayHoursModel) (domain.DayHours, error) {
	if !model.IsOpen {
		return domain.DayHours{IsOpen: false}, nil
	}

	if model.OpenTime == nil || model.CloseTime == nil {
		return domain.DayHours{}, fmt.Errorf("openTime and closeTime are required for an open day")
	}

	openTime, err := types.NewTimeStringFromString(*model.OpenTime)
	if err != nil {
		return domain.DayHours{}, err
	}

	closeTime, err := types.NewTimeStringFromString(*model.CloseTime)
	if err != nil {
		return domain.DayHours{}, err
	}

	if !openTime.IsBefore(closeTime) {
		return domain.DayHours{}, fmt.Errorf("openTime %s must be before closeTime %s", openTime, closeTime)
	}

	return domain.DayHours{
		IsOpen:    true,
		OpenTime:  &openTime,
		CloseTime: &closeTime,
	}, nil
}
