package get_professional_bookings

import (
	"context"
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
	got *models.GetProfessionalBookingsRequest
}

func (f *fakeService) ListProfessionalBookings(_ context.Context, req *models.GetProfessionalBookingsRequest) (*models.BookingListResponse, error) {
	f.got = req
	if req.Status != nil && *req.Status == "unknown" {
		return nil, bookings.ErrInvalidStatus
	}
	return &models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil
}

func serve(svc *fakeService, professionalID, query string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/professionals/x/bookings"+query, nil)
	r = mux.SetURLVars(r, map[string]string{"professionalId": professionalID})
	w := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(w, r)
	return w
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}

	w := serve(svc, "10", "?status=confirmed")
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.got.Status)
	assert.Equal(t, "confirmed", *svc.got.Status)
	assert.JSONEq(t, `{"bookings":[]}`, w.Body.String())

	w = serve(svc, "10", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, svc.got.Status)

	assert.Equal(t, http.StatusBadRequest, serve(svc, "10", "?status=unknown").Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "abc", "").Code)
}
