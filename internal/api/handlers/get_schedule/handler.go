package get_schedule

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
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

// Handle GET /api/v1/companies/{companyId}/schedule
// Публичный endpoint - без авторизации. Сохраненное расписание любого формата отдается в каноническом виде.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyIDStr := mux.Vars(r)["companyId"]
	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil || companyID <= 0 {
		h.logger.Warn("GET /companies/{id}/schedule - Invalid company ID: %s", companyIDStr)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	result, err := h.service.GetSchedule(r.Context(), companyID)
	if err != nil {
		h.logger.Error("GET /companies/{id}/schedule - Failed to get schedule: company_id=%d, error=%v",
			companyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /companies/{id}/schedule - Schedule retrieved: company_id=%d, is_default=%t",
		companyID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
