package open_session

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
	msgInvalidCompanyID = "некорректный ID компании"
	msgMissingUserID    = "не указан пользователь"
	msgForbidden        = "доступ запрещен"
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

// Handle POST /api/v1/companies/{companyId}/schedule/sessions
// Открывает сессию редактирования с нормализованной копией расписания
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyIDStr := mux.Vars(r)["companyId"]
	companyID, err := strconv.ParseInt(companyIDStr, 10, 64)
	if err != nil || companyID <= 0 {
		h.logger.Warn("POST /companies/{id}/schedule/sessions - Invalid company ID: %s", companyIDStr)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /companies/{id}/schedule/sessions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.OpenSession(r.Context(), companyID, userID)
	if err != nil {
		if errors.Is(err, schedule.ErrAccessDenied) {
			h.logger.Warn("POST /companies/{id}/schedule/sessions - Access denied: company_id=%d, user_id=%d",
				companyID, userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}

		h.logger.Error("POST /companies/{id}/schedule/sessions - Failed to open session: company_id=%d, error=%v",
			companyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /companies/{id}/schedule/sessions - Session opened: company_id=%d, session_id=%s",
		companyID, result.SessionID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
