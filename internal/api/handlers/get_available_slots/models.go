package get_available_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// anyStaffParam значение query-параметра staffId для запроса "любой сотрудник"
const anyStaffParam = "any"

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string   `json:"date"`
	BusinessID      int64    `json:"businessId"`
	StaffID         string   `json:"staffId"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"`
	Reason          string   `json:"reason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	staffID := anyStaffParam
	if !resp.Staff.IsAny() {
		staffID = strconv.FormatInt(resp.Staff.StaffID(), 10)
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		BusinessID:      resp.BusinessID,
		StaffID:         staffID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
		Reason:          string(resp.Reason),
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(businessID int64, dateStr, durationStr, staffIDStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		return nil, err
	}

	staff := domain.AnyResource()
	if staffIDStr != anyStaffParam {
		staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		staff = domain.SpecificStaff(staffID)
	}

	return &getAvailableSlots.Request{
		BusinessID:      businessID,
		Date:            date,
		DurationMinutes: duration,
		Staff:           staff,
	}, nil
}
