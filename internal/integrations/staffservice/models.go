package staffservice

// StaffMember модель сотрудника из StaffService
type StaffMember struct {
	ID         int64  `json:"id"`
	BusinessID int64  `json:"business_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	IsActive   bool   `json:"is_active"`
}

// staffListResponse модель ответа со списком сотрудников
type staffListResponse struct {
	Staff []StaffMember `json:"staff"`
}

// ErrorResponse модель ошибки от StaffService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
