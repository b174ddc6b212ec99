package domain

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// Slot represents one candidate booking window.
// Slots are derived, ephemeral values: they exist only for the duration
// of one availability query and are never persisted.
type Slot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// BusyMarker represents one unit of consumed capacity within a slot:
// either a concrete staff member occupied by an appointment, or an
// anonymous any-staff appointment identified by its appointment id.
// Exactly one of the two fields is set.
type BusyMarker struct {
	StaffID       int64
	AppointmentID int64
}

// SpecificBusy возвращает маркер занятости конкретного сотрудника
func SpecificBusy(staffID int64) BusyMarker {
	return BusyMarker{StaffID: staffID}
}

// AnonymousBusy возвращает маркер занятости без привязки к сотруднику
// Такое бронирование занимает одну единицу общей ёмкости пула
func AnonymousBusy(appointmentID int64) BusyMarker {
	return BusyMarker{AppointmentID: appointmentID}
}

// IsAnonymous returns true if the marker consumes generic pool capacity
// without naming a staff member
func (m BusyMarker) IsAnonymous() bool {
	return m.StaffID == 0
}

// BusySet набор маркеров занятости одного слота
type BusySet map[BusyMarker]struct{}

// Add добавляет маркер в набор
func (s BusySet) Add(m BusyMarker) {
	s[m] = struct{}{}
}

// HasSpecific возвращает true, если конкретный сотрудник занят в этом слоте
func (s BusySet) HasSpecific(staffID int64) bool {
	_, ok := s[SpecificBusy(staffID)]
	return ok
}

// CountAnonymous возвращает количество анонимных маркеров в наборе
func (s BusySet) CountAnonymous() int {
	count := 0
	for m := range s {
		if m.IsAnonymous() {
			count++
		}
	}
	return count
}
