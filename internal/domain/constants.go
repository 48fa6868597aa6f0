package domain

// Business validation constants
const (
	MaxCustomerNameLength = 255
	MaxNotesLength        = 500
	DefaultGenerateDays   = 1
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
