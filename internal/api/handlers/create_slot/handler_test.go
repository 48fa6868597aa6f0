package create_slot

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAvailability/internal/api/handlers"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/slots"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/slots/models"
	"github.com/m04kA/SMC-SalonAvailability/pkg/logger"
)

const validBody = `{"professionalId":1,"serviceId":2,"slotDate":"2024-03-04T09:00:00Z"}`

type fakeService struct {
	err error
	got *models.CreateSlotRequest
}

func (f *fakeService) CreateSlot(_ context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.SlotResponse{ID: 11, ProfessionalID: req.ProfessionalID, ServiceID: req.ServiceID, SlotDate: req.SlotDate}, nil
}

func serve(svc *fakeService, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/slots", strings.NewReader(body))
	w := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(w, r)
	return w
}

func TestHandle_Created(t *testing.T) {
	svc := &fakeService{}

	w := serve(svc, validBody)
	require.Equal(t, http.StatusCreated, w.Code)

	var body models.SlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(11), body.ID)
	assert.True(t, svc.got.SlotDate.Equal(time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)))
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		err     error
		want    int
		message string
	}{
		{name: "broken json", body: `{"professionalId":`, want: http.StatusBadRequest, message: msgInvalidRequestBody},
		{name: "invalid input", body: validBody, err: slots.ErrInvalidInput, want: http.StatusBadRequest, message: msgInvalidInput},
		{name: "service not found", body: validBody, err: slots.ErrServiceNotFound, want: http.StatusNotFound, message: msgServiceNotFound},
		{name: "duplicate slot", body: validBody, err: slots.ErrSlotAlreadyExists, want: http.StatusConflict, message: msgSlotAlreadyExists},
		{name: "internal", body: validBody, err: errors.New("db down"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&fakeService{err: tt.err}, tt.body)
			require.Equal(t, tt.want, w.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, resp.Message)
			}
		})
	}
}
