package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func ts(s string) types.TimeString {
	return types.TimeString(s)
}

func openDay(open, close string) domain.DayHours {
	openTime := ts(open)
	closeTime := ts(close)
	return domain.DayHours{IsOpen: true, OpenTime: &openTime, CloseTime: &closeTime}
}

func appt(id int64, staffID *int64, start, end string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:         id,
		BusinessID: 1,
		StartTime:  ts(start),
		EndTime:    ts(end),
		StaffID:    staffID,
		Status:     status,
	}
}

func slotStarts(slots []domain.Slot) []types.TimeString {
	starts := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.StartTime)
	}
	return starts
}

func TestWorkingHoursForDay(t *testing.T) {
	weekly := domain.WeeklyHours{
		Monday:  openDay("09:00", "18:00"),
		Tuesday: domain.DayHours{IsOpen: false},
	}

	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	sunday := monday.AddDate(0, 0, -1)

	t.Run("open weekday", func(t *testing.T) {
		day := workingHoursForDay(weekly, monday)
		require.True(t, day.IsOpen)
		assert.Equal(t, ts("09:00"), *day.OpenTime)
		assert.Equal(t, ts("18:00"), *day.CloseTime)
	})

	t.Run("closed weekday", func(t *testing.T) {
		assert.False(t, workingHoursForDay(weekly, tuesday).IsOpen)
	})

	t.Run("weekday without entry is closed", func(t *testing.T) {
		assert.False(t, workingHoursForDay(weekly, sunday).IsOpen)
	})

	t.Run("malformed open day is treated as closed", func(t *testing.T) {
		broken := domain.WeeklyHours{
			// Открыт, но open >= close - запись некорректна
			Monday: openDay("18:00", "09:00"),
		}
		assert.False(t, workingHoursForDay(broken, monday).IsOpen)
	})

	t.Run("open day without times is treated as closed", func(t *testing.T) {
		broken := domain.WeeklyHours{
			Monday: domain.DayHours{IsOpen: true},
		}
		assert.False(t, workingHoursForDay(broken, monday).IsOpen)
	})
}

func TestGenerateTimeSlots(t *testing.T) {
	t.Run("full day with 30 minute grid", func(t *testing.T) {
		slots, err := generateTimeSlots(openDay("09:00", "18:00"), 30, 30)
		require.NoError(t, err)

		// 09:00 ... 17:30 - ровно 18 кандидатов
		require.Len(t, slots, 18)
		assert.Equal(t, ts("09:00"), slots[0].StartTime)
		assert.Equal(t, ts("09:30"), slots[0].EndTime)
		assert.Equal(t, ts("17:30"), slots[17].StartTime)
		assert.Equal(t, ts("18:00"), slots[17].EndTime)
	})

	t.Run("last slot must fit before closing", func(t *testing.T) {
		// Услуга 90 минут: слот 17:00 не влезает (конец 18:30)
		slots, err := generateTimeSlots(openDay("09:00", "18:00"), 90, 60)
		require.NoError(t, err)

		require.NotEmpty(t, slots)
		last := slots[len(slots)-1]
		assert.Equal(t, ts("16:00"), last.StartTime)
		assert.Equal(t, ts("17:30"), last.EndTime)
	})

	t.Run("slot ending exactly at close is included", func(t *testing.T) {
		slots, err := generateTimeSlots(openDay("09:00", "12:00"), 60, 60)
		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{ts("09:00"), ts("10:00"), ts("11:00")}, slotStarts(slots))
	})

	t.Run("interval independent of duration", func(t *testing.T) {
		slots, err := generateTimeSlots(openDay("09:00", "11:00"), 45, 30)
		require.NoError(t, err)

		// Шаг 30 минут, конец слота = старт + 45
		require.Len(t, slots, 3)
		assert.Equal(t, []types.TimeString{ts("09:00"), ts("09:30"), ts("10:00")}, slotStarts(slots))
		assert.Equal(t, ts("10:45"), slots[2].EndTime)
	})

	t.Run("duration longer than working window", func(t *testing.T) {
		slots, err := generateTimeSlots(openDay("09:00", "10:00"), 120, 30)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("closed day yields no slots", func(t *testing.T) {
		slots, err := generateTimeSlots(domain.DayHours{IsOpen: false}, 30, 30)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}

func TestBusyMarkersForSlot(t *testing.T) {
	slot := domain.Slot{StartTime: ts("10:00"), EndTime: ts("10:30")}

	t.Run("overlapping appointment marks staff busy", func(t *testing.T) {
		busy := busyMarkersForSlot(slot, []*domain.Appointment{
			appt(1, ptr.Ptr(int64(7)), "10:15", "10:45", domain.StatusConfirmed),
		})
		assert.True(t, busy.HasSpecific(7))
	})

	t.Run("appointment ending at slot start does not block", func(t *testing.T) {
		busy := busyMarkersForSlot(slot, []*domain.Appointment{
			appt(1, ptr.Ptr(int64(7)), "09:30", "10:00", domain.StatusConfirmed),
		})
		assert.Empty(t, busy)
	})

	t.Run("appointment starting at slot end does not block", func(t *testing.T) {
		busy := busyMarkersForSlot(slot, []*domain.Appointment{
			appt(1, ptr.Ptr(int64(7)), "10:30", "11:00", domain.StatusConfirmed),
		})
		assert.Empty(t, busy)
	})

	t.Run("appointment covering the whole slot blocks", func(t *testing.T) {
		busy := busyMarkersForSlot(slot, []*domain.Appointment{
			appt(1, ptr.Ptr(int64(7)), "09:00", "12:00", domain.StatusPending),
		})
		assert.True(t, busy.HasSpecific(7))
	})

	t.Run("inactive statuses are ignored", func(t *testing.T) {
		busy := busyMarkersForSlot(slot, []*domain.Appointment{
			appt(1, ptr.Ptr(int64(7)), "10:00", "10:30", domain.StatusCancelled),
			appt(2, ptr.Ptr(int64(7)), "10:00", "10:30", domain.StatusCompleted),
			appt(3, ptr.Ptr(int64(7)), "10:00", "10:30", domain.StatusNoShow),
		})
		assert.Empty(t, busy)
	})

	t.Run("any-staff appointments become distinct anonymous markers", func(t *testing.T) {
		busy := busyMarkersForSlot(slot, []*domain.Appointment{
			appt(1, nil, "10:00", "10:30", domain.StatusConfirmed),
			appt(2, nil, "10:00", "10:30", domain.StatusPending),
		})
		assert.Equal(t, 2, busy.CountAnonymous())
		assert.False(t, busy.HasSpecific(7))
	})

	t.Run("duplicate staff overlaps collapse into one marker", func(t *testing.T) {
		busy := busyMarkersForSlot(slot, []*domain.Appointment{
			appt(1, ptr.Ptr(int64(7)), "10:00", "10:15", domain.StatusConfirmed),
			appt(2, ptr.Ptr(int64(7)), "10:15", "10:30", domain.StatusConfirmed),
		})
		assert.Len(t, busy, 1)
		assert.True(t, busy.HasSpecific(7))
	})
}

func TestIsSlotAvailable(t *testing.T) {
	staffIDs := []int64{1, 2}

	t.Run("specific staff free", func(t *testing.T) {
		busy := domain.BusySet{}
		busy.Add(domain.SpecificBusy(2))
		assert.True(t, isSlotAvailable(busy, domain.SpecificStaff(1), staffIDs))
	})

	t.Run("specific staff busy", func(t *testing.T) {
		busy := domain.BusySet{}
		busy.Add(domain.SpecificBusy(1))
		assert.False(t, isSlotAvailable(busy, domain.SpecificStaff(1), staffIDs))
	})

	t.Run("specific staff ignores anonymous load", func(t *testing.T) {
		busy := domain.BusySet{}
		busy.Add(domain.AnonymousBusy(100))
		busy.Add(domain.AnonymousBusy(101))
		assert.True(t, isSlotAvailable(busy, domain.SpecificStaff(1), staffIDs))
	})

	t.Run("any with free capacity", func(t *testing.T) {
		busy := domain.BusySet{}
		busy.Add(domain.SpecificBusy(1))
		assert.True(t, isSlotAvailable(busy, domain.AnyResource(), staffIDs))
	})

	t.Run("any with pool exhausted by staff appointments", func(t *testing.T) {
		busy := domain.BusySet{}
		busy.Add(domain.SpecificBusy(1))
		busy.Add(domain.SpecificBusy(2))
		assert.False(t, isSlotAvailable(busy, domain.AnyResource(), staffIDs))
	})

	t.Run("any with pool exhausted by mixed load", func(t *testing.T) {
		busy := domain.BusySet{}
		busy.Add(domain.SpecificBusy(1))
		busy.Add(domain.AnonymousBusy(100))
		assert.False(t, isSlotAvailable(busy, domain.AnyResource(), staffIDs))
	})

	t.Run("staff outside the roster does not consume capacity", func(t *testing.T) {
		busy := domain.BusySet{}
		busy.Add(domain.SpecificBusy(99))
		assert.True(t, isSlotAvailable(busy, domain.AnyResource(), staffIDs))
	})
}
