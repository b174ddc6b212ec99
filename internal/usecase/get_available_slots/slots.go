package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// workingHoursForDay возвращает расписание работы бизнеса на день недели запрошенной даты
// Некорректная запись дня (открыт, но без времён или open >= close) трактуется как закрытый день
func workingHoursForDay(weeklyHours domain.WeeklyHours, date time.Time) domain.DayHours {
	day := weeklyHours.ForWeekday(date.Weekday())
	if !day.IsValid() {
		return domain.DayHours{IsOpen: false}
	}
	return day
}

// generateTimeSlots генерирует список всех кандидатных слотов на день
// Начала слотов идут от открытия с фиксированным шагом intervalMinutes,
// слот принимается, пока его конец (start + durationMinutes) не выходит за закрытие
//
// Пустой список - валидный результат: закрытый день или услуга длиннее рабочего окна
func generateTimeSlots(dayHours domain.DayHours, durationMinutes, intervalMinutes int) ([]domain.Slot, error) {
	if !dayHours.IsOpen || dayHours.OpenTime == nil || dayHours.CloseTime == nil {
		return []domain.Slot{}, nil
	}

	openMin := dayHours.OpenTime.Minutes()
	closeMin := dayHours.CloseTime.Minutes()

	slots := make([]domain.Slot, 0)

	for start := openMin; start+durationMinutes <= closeMin; start += intervalMinutes {
		startTime, err := types.NewTimeStringFromMinutes(start)
		if err != nil {
			return nil, err
		}
		endTime, err := types.NewTimeStringFromMinutes(start + durationMinutes)
		if err != nil {
			return nil, err
		}
		slots = append(slots, domain.Slot{StartTime: startTime, EndTime: endTime})
	}

	return slots, nil
}

// busyMarkersForSlot проецирует активные бронирования на слот и возвращает набор маркеров занятости
// Бронирование с конкретным сотрудником даёт маркер этого сотрудника,
// бронирование "любой сотрудник" - анонимный маркер по ID бронирования
//
// Пересечение интервалов полуоткрытое, со строгими неравенствами с обеих сторон:
// бронирование, заканчивающееся ровно в начало слота (или начинающееся ровно
// в его конец), слот НЕ занимает
//
// Примеры:
// - Слот 10:00-10:30, бронирование 09:30-10:00 → НЕТ пересечения (граничат)
// - Слот 10:00-10:30, бронирование 10:30-11:00 → НЕТ пересечения (граничат)
// - Слот 10:00-10:30, бронирование 10:15-10:45 → ЕСТЬ пересечение
func busyMarkersForSlot(slot domain.Slot, appointments []*domain.Appointment) domain.BusySet {
	busy := make(domain.BusySet)

	slotStart := slot.StartTime.Minutes()
	slotEnd := slot.EndTime.Minutes()

	for _, appt := range appointments {
		// Пропускаем неактивные бронирования (cancelled, completed, no_show)
		if !appt.IsActive() {
			continue
		}

		if appt.StartTime.Minutes() < slotEnd && appt.EndTime.Minutes() > slotStart {
			if appt.IsAnyStaff() {
				busy.Add(domain.AnonymousBusy(appt.ID))
			} else {
				busy.Add(domain.SpecificBusy(*appt.StaffID))
			}
		}
	}

	return busy
}

// isSlotAvailable решает, можно ли забронировать слот для запрошенного ресурса
//
// Для конкретного сотрудника: свободен, если его нет в наборе занятости.
// Для запроса "любой": свободен, если в пуле остаётся хотя бы одна единица ёмкости
// после вычитания занятых сотрудников и анонимных бронирований. Анонимное
// бронирование занимает одну единицу пула независимо от того, кому оно в итоге
// достанется - политика консервативная и может занижать доступность, если
// анонимные бронирования позже привязываются к конкретным сотрудникам
func isSlotAvailable(busy domain.BusySet, staff domain.ResourceRequest, activeStaffIDs []int64) bool {
	if !staff.IsAny() {
		return !busy.HasSpecific(staff.StaffID())
	}

	busyReal := 0
	for _, id := range activeStaffIDs {
		if busy.HasSpecific(id) {
			busyReal++
		}
	}

	return len(activeStaffIDs)-busyReal-busy.CountAnonymous() > 0
}
