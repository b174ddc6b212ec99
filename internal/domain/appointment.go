package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment represents an existing appointment in the system.
// Appointments are created and transitioned by the external booking workflow;
// this service only reads them as a point-in-time snapshot.
type Appointment struct {
	ID         int64
	BusinessID int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	StaffID    *int64 // nil = бронирование без привязки к конкретному сотруднику ("any")
	Status     AppointmentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment consumes capacity.
// Only pending and confirmed appointments block slots.
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsAnyStaff returns true if the appointment has no concrete staff assignment
func (a *Appointment) IsAnyStaff() bool {
	return a.StaffID == nil
}

// ActiveStatuses список статусов, при которых бронирование занимает слот
// Используется при выборке бронирований для подсчёта доступности
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}
