package models

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/schedule"
)

// Request модели

// UpdateScheduleRequest запрос на сохранение расписания.
// WorkingHours принимается в любом из сохраняемых форматов и нормализуется.
// Незаданные предпочтения сохраняют текущие значения.
type UpdateScheduleRequest struct {
	UserID          int64           `json:"userId"`
	CompanyID       int64           `json:"companyId"`
	WorkingDays     json.RawMessage `json:"workingDays,omitempty"`
	WorkingHours    json.RawMessage `json:"workingHours,omitempty"`
	LeadTimeMinutes *int            `json:"leadTimeMinutes,omitempty"`
	BufferMinutes   *int            `json:"bufferMinutes,omitempty"`
	TravelMinutes   *int            `json:"travelMinutes,omitempty"`
}

// ApplyToPreferences применяет заданные поля к предпочтениям
func (r *UpdateScheduleRequest) ApplyToPreferences(prefs domain.SchedulingPreferences) domain.SchedulingPreferences {
	if r.LeadTimeMinutes != nil {
		prefs.LeadTimeMinutes = *r.LeadTimeMinutes
	}
	if r.BufferMinutes != nil {
		prefs.BufferMinutes = *r.BufferMinutes
	}
	if r.TravelMinutes != nil {
		prefs.TravelMinutes = *r.TravelMinutes
	}
	return prefs
}

// Response модели

// ScheduleResponse каноническое расписание компании
type ScheduleResponse struct {
	CompanyID       int64               `json:"companyId"`
	WorkingDays     []int               `json:"workingDays"`
	WorkingHours    domain.WeekSchedule `json:"workingHours"`
	LeadTimeMinutes int                 `json:"leadTimeMinutes"`
	BufferMinutes   int                 `json:"bufferMinutes"`
	TravelMinutes   int                 `json:"travelMinutes"`
	IsDefault       bool                `json:"isDefault"` // ничего не сохранено, значения по умолчанию
	UpdatedAt       *time.Time          `json:"updatedAt,omitempty"`
}

// SlotResponse рабочий слот
type SlotResponse struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// WorkingSlotsResponse рабочие слоты на дату
type WorkingSlotsResponse struct {
	CompanyID       int64          `json:"companyId"`
	Date            string         `json:"date"`
	Weekday         int            `json:"weekday"`
	Enabled         bool           `json:"enabled"`
	Slots           []SlotResponse `json:"slots"`
	LeadTimeMinutes int            `json:"leadTimeMinutes"`
	BufferMinutes   int            `json:"bufferMinutes"`
	TravelMinutes   int            `json:"travelMinutes"`
}

// SessionResponse состояние сессии редактирования
type SessionResponse struct {
	SessionID    string                         `json:"sessionId"`
	CompanyID    int64                          `json:"companyId"`
	WorkingDays  []int                          `json:"workingDays"`
	WorkingHours domain.WeekSchedule            `json:"workingHours"`
	Options      map[string]schedule.DayOptions `json:"options"` // ключи "0".."6"
	CanSave      bool                           `json:"canSave"`
	ExpiresAt    time.Time                      `json:"expiresAt"`
}

// Методы конвертации

// FromSettings собирает ответ из нормализованной недели и сохраненной строки (nil = значения по умолчанию)
func FromSettings(companyID int64, week domain.WeekSchedule, prefs domain.SchedulingPreferences, settings *domain.ScheduleSettings) *ScheduleResponse {
	canonical := schedule.Canonical(week)
	resp := &ScheduleResponse{
		CompanyID:       companyID,
		WorkingDays:     canonical.WorkingDays,
		WorkingHours:    canonical.WorkingHours,
		LeadTimeMinutes: prefs.LeadTimeMinutes,
		BufferMinutes:   prefs.BufferMinutes,
		TravelMinutes:   prefs.TravelMinutes,
		IsDefault:       settings == nil,
	}
	if settings != nil && !settings.UpdatedAt.IsZero() {
		updatedAt := settings.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// FromWorkingDay конвертирует рабочий день в DTO
func FromWorkingDay(companyID int64, day domain.WorkingDay, prefs domain.SchedulingPreferences) *WorkingSlotsResponse {
	slots := make([]SlotResponse, 0, len(day.Slots))
	for _, s := range day.Slots {
		slots = append(slots, SlotResponse{
			StartTime:       s.StartTime.String(),
			DurationMinutes: s.DurationMinutes,
		})
	}

	return &WorkingSlotsResponse{
		CompanyID:       companyID,
		Date:            day.Date.Format(domain.DateFormat),
		Weekday:         int(day.Weekday),
		Enabled:         day.Config.Enabled,
		Slots:           slots,
		LeadTimeMinutes: prefs.LeadTimeMinutes,
		BufferMinutes:   prefs.BufferMinutes,
		TravelMinutes:   prefs.TravelMinutes,
	}
}

// FromSession собирает состояние сессии вместе с вариантами выбора для редактора
func FromSession(id string, companyID int64, week domain.WeekSchedule, options [domain.DaysPerWeek]schedule.DayOptions, expiresAt time.Time) *SessionResponse {
	opts := make(map[string]schedule.DayOptions, domain.DaysPerWeek)
	for day, o := range options {
		opts[strconv.Itoa(day)] = o
	}

	return &SessionResponse{
		SessionID:    id,
		CompanyID:    companyID,
		WorkingDays:  week.EnabledDays(),
		WorkingHours: week,
		Options:      opts,
		CanSave:      schedule.Validate(week) == nil,
		ExpiresAt:    expiresAt,
	}
}
