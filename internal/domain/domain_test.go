package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func TestAppointment_IsActive(t *testing.T) {
	tests := []struct {
		status AppointmentStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusCancelled, false},
		{StatusCompleted, false},
		{StatusNoShow, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			a := Appointment{Status: tt.status}
			assert.Equal(t, tt.want, a.IsActive())
		})
	}
}

func TestAppointment_IsAnyStaff(t *testing.T) {
	withStaff := Appointment{StaffID: ptr.Ptr(int64(5))}
	assert.False(t, withStaff.IsAnyStaff())

	anyStaff := Appointment{}
	assert.True(t, anyStaff.IsAnyStaff())
}

func TestBusySet(t *testing.T) {
	busy := make(BusySet)
	busy.Add(SpecificBusy(1))
	busy.Add(SpecificBusy(1)) // дубликат схлопывается
	busy.Add(AnonymousBusy(100))
	busy.Add(AnonymousBusy(101))

	assert.Len(t, busy, 3)
	assert.True(t, busy.HasSpecific(1))
	assert.False(t, busy.HasSpecific(2))
	assert.Equal(t, 2, busy.CountAnonymous())
}

func TestResourceRequest(t *testing.T) {
	anyReq := AnyResource()
	assert.True(t, anyReq.IsAny())
	assert.Equal(t, "any", anyReq.String())

	specific := SpecificStaff(7)
	assert.False(t, specific.IsAny())
	assert.Equal(t, int64(7), specific.StaffID())
	assert.Equal(t, "staff:7", specific.String())
}

func TestDayHours_IsValid(t *testing.T) {
	open := func(openTime, closeTime string) DayHours {
		o := types.TimeString(openTime)
		c := types.TimeString(closeTime)
		return DayHours{IsOpen: true, OpenTime: &o, CloseTime: &c}
	}

	assert.True(t, DayHours{IsOpen: false}.IsValid())
	assert.True(t, open("09:00", "18:00").IsValid())
	assert.False(t, open("18:00", "09:00").IsValid())
	assert.False(t, open("10:00", "10:00").IsValid())
	assert.False(t, DayHours{IsOpen: true}.IsValid())
}
