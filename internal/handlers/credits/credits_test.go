package credits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dkovalev/creditplan/internal/service/creditservice"
)

func NewMock(t *testing.T) (*CreditHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestGetUserCreditsHandler(t *testing.T) {
	handler, service := NewMock(t)

	issuance := time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC)
	returnDate := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	actualReturn := time.Date(2023, time.December, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		userID       string
		prepareMock  func()
		expectedCode int
		expectedBody []map[string]interface{}
	}{
		{
			name:   "Open and closed credits",
			userID: "1",
			prepareMock: func() {
				service.EXPECT().
					GetUserCredits(gomock.Any(), 1).
					Return([]creditservice.CreditStatus{
						{
							IssuanceDate:    issuance,
							ReturnDate:      returnDate,
							OverdueDays:     14,
							Body:            100000,
							Percent:         12.5,
							BodyPayments:    40000,
							PercentPayments: 5000,
						},
						{
							IssuanceDate:     issuance,
							Closed:           true,
							ActualReturnDate: actualReturn,
							Body:             50000,
							Percent:          10,
							TotalPayment:     55000,
						},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []map[string]interface{}{
				{
					"issuance_date":    "2023-01-10",
					"return_date":      "2024-01-10",
					"overdue_days":     float64(14),
					"body":             float64(100000),
					"percent":          12.5,
					"body_payments":    float64(40000),
					"percent_payments": float64(5000),
				},
				{
					"issuance_date":      "2023-01-10",
					"actual_return_date": "2023-12-20",
					"body":               float64(50000),
					"percent":            float64(10),
					"total_payment":      float64(55000),
				},
			},
		},
		{
			name:         "Invalid user id",
			userID:       "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "User not found",
			userID: "42",
			prepareMock: func() {
				service.EXPECT().
					GetUserCredits(gomock.Any(), 42).
					Return(nil, creditservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "No credits",
			userID: "2",
			prepareMock: func() {
				service.EXPECT().
					GetUserCredits(gomock.Any(), 2).
					Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name:   "Internal server error",
			userID: "3",
			prepareMock: func() {
				service.EXPECT().
					GetUserCredits(gomock.Any(), 3).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/user_credits/"+tt.userID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("userID", tt.userID)
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			handler.GetUserCredits(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []map[string]interface{}
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
