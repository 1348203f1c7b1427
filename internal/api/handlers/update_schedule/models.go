package update_schedule

import (
	"encoding/json"

	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model.
// workingHours и workingDays принимаются в любом из поддерживаемых форматов.
type UpdateScheduleRequest struct {
	WorkingDays     json.RawMessage `json:"workingDays,omitempty"`
	WorkingHours    json.RawMessage `json:"workingHours,omitempty"`
	LeadTimeMinutes *int            `json:"leadTimeMinutes,omitempty" validate:"omitempty,min=0,max=10080"`
	BufferMinutes   *int            `json:"bufferMinutes,omitempty" validate:"omitempty,min=0,max=480"`
	TravelMinutes   *int            `json:"travelMinutes,omitempty" validate:"omitempty,min=0,max=480"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(companyID, userID int64) *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		UserID:          userID,
		CompanyID:       companyID,
		WorkingDays:     r.WorkingDays,
		WorkingHours:    r.WorkingHours,
		LeadTimeMinutes: r.LeadTimeMinutes,
		BufferMinutes:   r.BufferMinutes,
		TravelMinutes:   r.TravelMinutes,
	}
}
