package apply_session_preset

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
)

const (
	msgMissingUserID  = "не указан пользователь"
	msgPresetNotFound = "неизвестный пресет, доступны: weekdays, everyday, clear"
	msgNotFound       = "сессия редактирования не найдена или истекла"
	msgForbidden      = "доступ запрещен"
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

// Handle POST /api/v1/schedule/sessions/{sessionId}/presets/{preset}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	preset := vars["preset"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /schedule/sessions/{id}/presets/{preset} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.ApplySessionPreset(r.Context(), sessionID, userID, preset)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrPresetNotFound):
			h.logger.Warn("POST /schedule/sessions/{id}/presets/{preset} - Unknown preset: %s", preset)
			handlers.RespondNotFound(w, msgPresetNotFound)

		case errors.Is(err, schedule.ErrSessionNotFound):
			h.logger.Warn("POST /schedule/sessions/{id}/presets/{preset} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("POST /schedule/sessions/{id}/presets/{preset} - Access denied: session_id=%s, user_id=%d",
				sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /schedule/sessions/{id}/presets/{preset} - Failed to apply preset: session_id=%s, error=%v",
				sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedule/sessions/{id}/presets/{preset} - Preset applied: session_id=%s, preset=%s",
		sessionID, preset)
	handlers.RespondJSON(w, http.StatusOK, result)
}
