package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "не указан пользователь"
	msgForbidden          = "доступ запрещен"
	msgInvalidData        = "некорректные параметры расписания"
	msgNoEnabledDay       = "должен быть выбран хотя бы один рабочий день"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/companies/{companyId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyIDStr := mux.Vars(r)["companyId"]
	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil || companyID <= 0 {
		h.logger.Warn("PUT /companies/{id}/schedule - Invalid company ID: %s", companyIDStr)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /companies/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /companies/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /companies/{id}/schedule - Invalid data: company_id=%d, error=%v", companyID, err)
		handlers.RespondBadRequest(w, msgInvalidData)
		return
	}

	result, err := h.service.UpdateSchedule(r.Context(), req.ToServiceRequest(companyID, userID))
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrNoEnabledDay):
			h.logger.Warn("PUT /companies/{id}/schedule - No working day: company_id=%d", companyID)
			handlers.RespondUnprocessable(w, msgNoEnabledDay)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /companies/{id}/schedule - Invalid data: company_id=%d, error=%v", companyID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /companies/{id}/schedule - Access denied: company_id=%d, user_id=%d", companyID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PUT /companies/{id}/schedule - Failed to update schedule: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /companies/{id}/schedule - Schedule updated: company_id=%d, user_id=%d, working_days=%v",
		companyID, userID, result.WorkingDays)
	handlers.RespondJSON(w, http.StatusOK, result)
}
