package domain

// Default configuration values applied at the settings store boundary
// when a business has no settings record
const (
	DefaultSlotIntervalMinutes = 30
	DefaultOpenTime            = "09:00"
	DefaultCloseTime           = "18:00"
)

// Business validation constants
const (
	MinSlotIntervalMinutes = 5
	MaxSlotIntervalMinutes = 480 // 8 hours
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
