package update_session_day

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

type fakeService struct {
	err   error
	day   time.Weekday
	patch domain.DayPatch
}

func (f *fakeService) UpdateSessionDay(ctx context.Context, sessionID string, userID int64, day time.Weekday, patch domain.DayPatch) (*models.SessionResponse, error) {
	f.day, f.patch = day, patch
	if f.err != nil {
		return nil, f.err
	}
	return &models.SessionResponse{SessionID: sessionID}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *fakeService, day string, userID int64, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPatch, "/api/v1/schedule/sessions/abc/days/"+day, strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"sessionId": "abc", "day": day})
	if userID != 0 {
		r = r.WithContext(middleware.WithUserID(r.Context(), userID))
	}
	w := httptest.NewRecorder()
	NewHandler(svc, nopLogger{}).Handle(w, r)
	return w
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	w := serve(svc, "0", 3, `{"enabled":true,"start":"10:00","end":42}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, time.Sunday, svc.day)
	require.NotNil(t, svc.patch.Enabled)
	assert.True(t, *svc.patch.Enabled)
	assert.Equal(t, types.TimeString("10:00"), *svc.patch.Start)
	assert.Nil(t, svc.patch.End, "wrongly typed field is ignored")
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		day        string
		userID     int64
		body       string
		err        error
		wantStatus int
	}{
		{"day out of range", "7", 3, `{}`, nil, http.StatusBadRequest},
		{"day not a number", "mon", 3, `{}`, nil, http.StatusBadRequest},
		{"no user", "1", 0, `{}`, nil, http.StatusUnauthorized},
		{"broken body", "1", 3, `{"start":`, nil, http.StatusBadRequest},
		{"not found", "1", 3, `{}`, schedule.ErrSessionNotFound, http.StatusNotFound},
		{"foreign session", "1", 3, `{}`, schedule.ErrAccessDenied, http.StatusForbidden},
		{"internal", "1", 3, `{}`, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&fakeService{err: tt.err}, tt.day, tt.userID, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
