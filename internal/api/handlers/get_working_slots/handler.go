package get_working_slots

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/companies/{companyId}/schedule/slots
// Query params: date (required, YYYY-MM-DD)
// Публичный endpoint. Возвращает слоты рабочего времени без учета бронирований.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyIDStr := mux.Vars(r)["companyId"]
	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil || companyID <= 0 {
		h.logger.Warn("GET /companies/{id}/schedule/slots - Invalid company ID: %s", companyIDStr)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /companies/{id}/schedule/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /companies/{id}/schedule/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetWorkingSlots(r.Context(), companyID, date)
	if err != nil {
		h.logger.Error("GET /companies/{id}/schedule/slots - Failed to get slots: company_id=%d, date=%s, error=%v",
			companyID, dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /companies/{id}/schedule/slots - Slots retrieved: company_id=%d, date=%s, count=%d",
		companyID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
