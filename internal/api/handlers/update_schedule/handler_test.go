package update_schedule

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule"
	"github.com/m04kA/SMC-ScheduleService/internal/service/schedule/models"
)

type fakeService struct {
	err error
	got *models.UpdateScheduleRequest
}

func (f *fakeService) UpdateSchedule(ctx context.Context, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ScheduleResponse{CompanyID: req.CompanyID, WorkingDays: []int{1}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, companyID string, userID int64, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPut, "/api/v1/companies/"+companyID+"/schedule", strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"companyId": companyID})
	if userID != 0 {
		r = r.WithContext(middleware.WithUserID(r.Context(), userID))
	}
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	body := `{"workingDays":"1,2","workingHours":["09:00","09:30"],"bufferMinutes":20}`

	w := serve(NewHandler(svc, nopLogger{}), "3", 8, body)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, int64(3), svc.got.CompanyID)
	assert.Equal(t, int64(8), svc.got.UserID)
	assert.JSONEq(t, `"1,2"`, string(svc.got.WorkingDays))
	assert.JSONEq(t, `["09:00","09:30"]`, string(svc.got.WorkingHours))
	require.NotNil(t, svc.got.BufferMinutes)
	assert.Equal(t, 20, *svc.got.BufferMinutes)
	assert.Nil(t, svc.got.LeadTimeMinutes)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		companyID  string
		userID     int64
		body       string
		err        error
		wantStatus int
	}{
		{"bad company", "x", 1, `{}`, nil, http.StatusBadRequest},
		{"no user", "1", 0, `{}`, nil, http.StatusUnauthorized},
		{"broken body", "1", 1, `{"workingHours":`, nil, http.StatusBadRequest},
		{"lead out of range", "1", 1, `{"leadTimeMinutes":99999}`, nil, http.StatusBadRequest},
		{"travel negative", "1", 1, `{"travelMinutes":-1}`, nil, http.StatusBadRequest},
		{"no enabled day", "1", 1, `{"workingDays":[]}`, schedule.ErrNoEnabledDay, http.StatusUnprocessableEntity},
		{"invalid input", "1", 1, `{}`, fmt.Errorf("%w: lead", schedule.ErrInvalidInput), http.StatusBadRequest},
		{"access denied", "1", 1, `{}`, schedule.ErrAccessDenied, http.StatusForbidden},
		{"internal", "1", 1, `{}`, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			w := serve(NewHandler(svc, nopLogger{}), tt.companyID, tt.userID, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
