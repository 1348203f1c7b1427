package save_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
)

const (
	msgMissingUserID = "не указан пользователь"
	msgNotFound      = "сессия редактирования не найдена или истекла"
	msgForbidden     = "доступ запрещен"
	msgNoEnabledDay  = "должен быть выбран хотя бы один рабочий день"
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

// Handle POST /api/v1/schedule/sessions/{sessionId}/save
// Сохраняет неделю сессии, сессия остается открытой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /schedule/sessions/{id}/save - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.SaveSession(r.Context(), sessionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrNoEnabledDay):
			h.logger.Warn("POST /schedule/sessions/{id}/save - No working day: session_id=%s", sessionID)
			handlers.RespondUnprocessable(w, msgNoEnabledDay)

		case errors.Is(err, schedule.ErrSessionNotFound):
			h.logger.Warn("POST /schedule/sessions/{id}/save - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("POST /schedule/sessions/{id}/save - Access denied: session_id=%s, user_id=%d", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /schedule/sessions/{id}/save - Failed to save session: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/sessions/{id}/save - Schedule saved: session_id=%s, company_id=%d",
		sessionID, result.CompanyID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
