package update_business_settings

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/service/settings/models"
)

// UpdateBusinessSettingsRequest HTTP request model
// UserID берётся из заголовка X-User-ID, а не из тела
type UpdateBusinessSettingsRequest struct {
	SlotIntervalMinutes int                     `json:"slotIntervalMinutes"`
	WeeklyHours         models.WeeklyHoursModel `json:"weeklyHours"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateBusinessSettingsRequest) ToServiceRequest(businessID, userID int64) *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		UserID:              userID,
		BusinessID:          businessID,
		SlotIntervalMinutes: r.SlotIntervalMinutes,
		WeeklyHours:         r.WeeklyHours,
	}
}
