package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hanksha/turf-booking-backend/api"
	mock_api "github.com/hanksha/turf-booking-backend/api/mocks"
	bk "github.com/hanksha/turf-booking-backend/booking"
	"github.com/hanksha/turf-booking-backend/identity"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupPaymentRouter(t *testing.T, user identity.Actor) (*gin.Engine, *gomock.Controller, *mock_api.MockPaymentService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockPaymentService(ctrl)
	rg := router.Group("/api/v1/payments")
	rg.Use(setUserInContext(user))
	api.NewPaymentHandler(mockService).Register(rg)

	return router, ctrl, mockService
}

func TestConfirmPayment(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentRouter(t, superAdmin)
		defer ctrl.Finish()

		confirmed := []bk.Booking{sampleBooking("1", bk.StatusConfirmed)}
		confirmedJson, _ := json.MarshalIndent(confirmed, "", "    ")

		mockService.EXPECT().ConfirmPayment(gomock.Any(), "batch-1").Return(confirmed, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/payments/batch-1/confirm", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, string(confirmedJson), w.Body.String())
	})

	t.Run("forbidden", func(t *testing.T) {
		router, ctrl, _ := setupPaymentRouter(t, turfAdmin)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/payments/batch-1/confirm", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 403, w.Code)
		assert.JSONEq(t, `{"error":"not allowed"}`, w.Body.String())
	})

	t.Run("already failed", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentRouter(t, superAdmin)
		defer ctrl.Finish()

		mockService.EXPECT().ConfirmPayment(gomock.Any(), "batch-1").
			Return(nil, &bk.TransitionError{BookingID: "1", From: bk.StatusFailed, Trigger: bk.TriggerPaymentSettled}).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/payments/batch-1/confirm", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 409, w.Code)
		assert.JSONEq(t, `{"error":"invalid booking state","status":"FAILED"}`, w.Body.String())
	})
}

func TestFailPayment(t *testing.T) {

	t.Run("with reason", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentRouter(t, superAdmin)
		defer ctrl.Finish()

		mockService.EXPECT().FailPayment(gomock.Any(), "batch-1", "card declined").Return([]bk.Booking{}, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/payments/batch-1/fail?reason=card%20declined", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
	})

	t.Run("default reason", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentRouter(t, superAdmin)
		defer ctrl.Finish()

		mockService.EXPECT().FailPayment(gomock.Any(), "batch-1", "payment failed").Return([]bk.Booking{}, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/payments/batch-1/fail", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
	})

	t.Run("unknown batch", func(t *testing.T) {
		router, ctrl, mockService := setupPaymentRouter(t, superAdmin)
		defer ctrl.Finish()

		mockService.EXPECT().FailPayment(gomock.Any(), "nope", "payment failed").Return(nil, bk.ErrBookingNotFound).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/payments/nope/fail", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
		assert.JSONEq(t, `{"error":"booking not found"}`, w.Body.String())
	})
}
