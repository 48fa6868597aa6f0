package get_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonAvailability/internal/service/bookings"
	"github.com/m04kA/SMC-SalonAvailability/internal/service/bookings/models"
	"github.com/m04kA/SMC-SalonAvailability/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) GetByID(_ context.Context, id int64) (*models.BookingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{
		ID:             id,
		ProfessionalID: 1,
		ServiceID:      2,
		CustomerName:   "Anna",
		BookingDate:    "2024-03-04T10:00:00Z",
		Status:         "pending",
		PaymentStatus:  "pending",
	}, nil
}

func serve(svc *fakeService, bookingID string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/x", nil)
	r = mux.SetURLVars(r, map[string]string{"bookingId": bookingID})
	w := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(w, r)
	return w
}

func TestHandle_OK(t *testing.T) {
	w := serve(&fakeService{}, "42")
	require.Equal(t, http.StatusOK, w.Code)

	var body models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(42), body.ID)
	assert.Equal(t, "2024-03-04T10:00:00Z", body.BookingDate)
	assert.Nil(t, body.SlotID)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name      string
		bookingID string
		err       error
		want      int
	}{
		{name: "bad id", bookingID: "abc", want: http.StatusBadRequest},
		{name: "not found", bookingID: "42", err: bookings.ErrBookingNotFound, want: http.StatusNotFound},
		{name: "internal", bookingID: "42", err: errors.New("db down"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(&fakeService{err: tt.err}, tt.bookingID).Code)
		})
	}
}
