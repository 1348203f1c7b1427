package domain

import (
	"encoding/json"
	"time"
)

// ScheduleSettings represents the persisted working-hours row of a company.
// WorkingDays and WorkingHours are kept raw: older rows hold legacy shapes
// and are canonicalized on every read.
type ScheduleSettings struct {
	ID              int64
	CompanyID       int64
	WorkingDays     json.RawMessage // NULL = not stored
	WorkingHours    json.RawMessage // NULL = not stored
	LeadTimeMinutes int
	BufferMinutes   int
	TravelMinutes   int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Preferences returns the scheduling preferences stored with the schedule
func (s *ScheduleSettings) Preferences() SchedulingPreferences {
	return SchedulingPreferences{
		LeadTimeMinutes: s.LeadTimeMinutes,
		BufferMinutes:   s.BufferMinutes,
		TravelMinutes:   s.TravelMinutes,
	}
}

// HasStoredHours returns true if any working-hours data is persisted
func (s *ScheduleSettings) HasStoredHours() bool {
	return len(s.WorkingHours) > 0 || len(s.WorkingDays) > 0
}

// SchedulingPreferences inputs of the downstream availability computation
type SchedulingPreferences struct {
	LeadTimeMinutes int
	BufferMinutes   int
	TravelMinutes   int
}

// DefaultPreferences returns the preferences used when nothing is stored
func DefaultPreferences() SchedulingPreferences {
	return SchedulingPreferences{
		LeadTimeMinutes: DefaultLeadTimeMinutes,
		BufferMinutes:   DefaultBufferMinutes,
		TravelMinutes:   DefaultTravelMinutes,
	}
}

// IsValid checks the business ranges of every preference
func (p SchedulingPreferences) IsValid() bool {
	return p.LeadTimeMinutes >= MinLeadTimeMinutes && p.LeadTimeMinutes <= MaxLeadTimeMinutes &&
		p.BufferMinutes >= MinBufferMinutes && p.BufferMinutes <= MaxBufferMinutes &&
		p.TravelMinutes >= MinTravelMinutes && p.TravelMinutes <= MaxTravelMinutes
}
