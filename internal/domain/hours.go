package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// DayHours represents the open/close window of a single weekday
type DayHours struct {
	IsOpen    bool
	OpenTime  *types.TimeString
	CloseTime *types.TimeString
}

// IsValid returns true if the entry is usable for slot generation.
// An open day must carry both times with open strictly before close;
// anything malformed is treated as closed by the resolver.
func (d DayHours) IsValid() bool {
	if !d.IsOpen {
		return true
	}
	return d.OpenTime != nil && d.CloseTime != nil && d.OpenTime.IsBefore(*d.CloseTime)
}

// WeeklyHours represents the business operating hours for each weekday
type WeeklyHours struct {
	Monday    DayHours
	Tuesday   DayHours
	Wednesday DayHours
	Thursday  DayHours
	Friday    DayHours
	Saturday  DayHours
	Sunday    DayHours
}

// ForWeekday возвращает расписание работы на указанный день недели
func (w WeeklyHours) ForWeekday(weekday time.Weekday) DayHours {
	switch weekday {
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	case time.Saturday:
		return w.Saturday
	case time.Sunday:
		return w.Sunday
	default:
		return DayHours{IsOpen: false}
	}
}

// DefaultWeeklyHours возвращает расписание по умолчанию для бизнеса без настроек:
// будние дни 09:00-18:00, выходные закрыты
func DefaultWeeklyHours() WeeklyHours {
	openTime := types.TimeString(DefaultOpenTime)
	closeTime := types.TimeString(DefaultCloseTime)

	workday := DayHours{IsOpen: true, OpenTime: &openTime, CloseTime: &closeTime}
	closed := DayHours{IsOpen: false}

	return WeeklyHours{
		Monday:    workday,
		Tuesday:   workday,
		Wednesday: workday,
		Thursday:  workday,
		Friday:    workday,
		Saturday:  closed,
		Sunday:    closed,
	}
}
