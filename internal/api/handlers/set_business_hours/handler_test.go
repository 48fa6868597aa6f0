package set_business_hours

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	businessHours "github.com/m04kA/SMC-SalonAvailability/internal/service/business_hours"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/business_hours/models"
	"github.com/m04kA/SMC-SalonAvailability/pkg/logger"
)

type fakeService struct {
	got *models.SetWeeklyHoursRequest
	err error
}

func (f *fakeService) SetWeeklyHours(_ context.Context, req *models.SetWeeklyHoursRequest) (*models.WeeklyHoursResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.WeeklyHoursResponse{ProfessionalID: req.ProfessionalID, Hours: []models.BusinessHoursResponse{}}, nil
}

func serve(svc *fakeService, professionalID, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPut, "/api/v1/professionals/x/business-hours", strings.NewReader(body))
	r = mux.SetURLVars(r, map[string]string{"professionalId": professionalID})
	w := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(w, r)
	return w
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{}
	w := serve(svc, "7", `{"hours":[{"dayOfWeek":1,"startTime":"09:00","endTime":"17:00"}]}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), svc.got.ProfessionalID)
	require.Len(t, svc.got.Hours, 1)
	assert.Equal(t, "17:00", svc.got.Hours[0].EndTime)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name           string
		professionalID string
		body           string
		err            error
		wantCode       int
	}{
		{"bad professional", "abc", `{"hours":[]}`, nil, http.StatusBadRequest},
		{"broken body", "7", `{"hours":`, nil, http.StatusBadRequest},
		{"invalid hours", "7", `{"hours":[]}`, fmt.Errorf("%w: bad", businessHours.ErrInvalidInput), http.StatusBadRequest},
		{"overlap", "7", `{"hours":[]}`, fmt.Errorf("%w: day 1", businessHours.ErrOverlappingHours), http.StatusBadRequest},
		{"internal", "7", `{"hours":[]}`, businessHours.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&fakeService{err: tt.err}, tt.professionalID, tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
