package delete_slot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonAvailability/internal/service/slots"
	"github.com/m04kA/SMC-SalonAvailability/pkg/logger"
)

type fakeService struct {
	deleted []int64
}

func (f *fakeService) DeleteSlot(_ context.Context, id int64) error {
	if id != 3 {
		return slots.ErrSlotNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func serve(svc *fakeService, slotID string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodDelete, "/api/v1/slots/x", nil)
	r = mux.SetURLVars(r, map[string]string{"slotId": slotID})
	w := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(w, r)
	return w
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}

	assert.Equal(t, http.StatusNoContent, serve(svc, "3").Code)
	assert.Equal(t, []int64{3}, svc.deleted)

	assert.Equal(t, http.StatusNotFound, serve(svc, "4").Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "abc").Code)
}
