package domain

// Default scheduling preferences (used when nothing is stored for a company)
const (
	DefaultLeadTimeMinutes = 30
	DefaultBufferMinutes   = 15
	DefaultTravelMinutes   = 30
)

// Business validation constants
const (
	MinLeadTimeMinutes = 0
	MaxLeadTimeMinutes = 10080 // 1 week
	MinBufferMinutes   = 0
	MaxBufferMinutes   = 480 // 8 hours
	MinTravelMinutes   = 0
	MaxTravelMinutes   = 480 // 8 hours
)

// Weekday bounds (0 = Sunday … 6 = Saturday)
const (
	MinWeekday  = 0
	MaxWeekday  = 6
	DaysPerWeek = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
