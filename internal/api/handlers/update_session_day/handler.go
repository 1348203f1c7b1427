package update_session_day

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
)

const (
	msgMissingUserID      = "не указан пользователь"
	msgInvalidDay         = "некорректный день недели, ожидается число от 0 до 6"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "сессия редактирования не найдена или истекла"
	msgForbidden          = "доступ запрещен"
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

// Handle PATCH /api/v1/schedule/sessions/{sessionId}/days/{day}
// Body: любые поля дня (enabled, start, end, breakEnabled, breakStart, breakEnd).
// Поля с неверным типом игнорируются, день нормализуется заново.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	day, err := ParseDay(vars["day"])
	if err != nil {
		h.logger.Warn("PATCH /schedule/sessions/{id}/days/{day} - Invalid day: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /schedule/sessions/{id}/days/{day} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var patch domain.DayPatch
	if err := handlers.DecodeJSON(r, &patch); err != nil {
		h.logger.Warn("PATCH /schedule/sessions/{id}/days/{day} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateSessionDay(r.Context(), sessionID, userID, day, patch)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PATCH /schedule/sessions/{id}/days/{day} - Invalid day: session_id=%s, day=%d", sessionID, day)
			handlers.RespondBadRequest(w, msgInvalidDay)

		case errors.Is(err, schedule.ErrSessionNotFound):
			h.logger.Warn("PATCH /schedule/sessions/{id}/days/{day} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PATCH /schedule/sessions/{id}/days/{day} - Access denied: session_id=%s, user_id=%d",
				sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("PATCH /schedule/sessions/{id}/days/{day} - Failed to update day: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /schedule/sessions/{id}/days/{day} - Day updated: session_id=%s, day=%d", sessionID, day)
	handlers.RespondJSON(w, http.StatusOK, result)
}
