package plans

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dkovalev/creditplan/internal/dto"
	"github.com/dkovalev/creditplan/internal/service/planservice"
)

func NewMock(t *testing.T) (*PlanHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func TestInsertPlansHandler(t *testing.T) {
	handler, service := NewMock(t)

	records := []planservice.PlanRecord{
		{Period: "01.07.2023", Sum: "214000", Category: "disbursement"},
		{Period: "01.07.2023", Sum: "100000", Category: "collection"},
	}

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.InsertPlansResponseDTO
	}{
		{
			name: "Successful insert",
			body: "01.07.2023\t214000\tdisbursement\n01.07.2023\t100000\tcollection\n",
			prepareMock: func() {
				service.EXPECT().
					InsertPlans(gomock.Any(), records).
					Return(2, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.InsertPlansResponseDTO{
				Message:  "plans inserted",
				Inserted: 2,
			},
		},
		{
			name:         "Malformed line",
			body:         "01.07.2023\t214000\n",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Invalid record",
			body: "15.07.2023\t214000\tdisbursement\n",
			prepareMock: func() {
				service.EXPECT().
					InsertPlans(gomock.Any(), gomock.Any()).
					Return(0, planservice.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Conflicting record",
			body: "01.07.2023\t214000\tdisbursement\n",
			prepareMock: func() {
				service.EXPECT().
					InsertPlans(gomock.Any(), gomock.Any()).
					Return(0, planservice.ErrConflict)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal server error",
			body: "01.07.2023\t214000\tdisbursement\n",
			prepareMock: func() {
				service.EXPECT().
					InsertPlans(gomock.Any(), gomock.Any()).
					Return(0, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/plans_insert", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.InsertPlans(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.InsertPlansResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestInsertPlansHandlerMultipart(t *testing.T) {
	handler, service := NewMock(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "plans.tsv")
	assert.NoError(t, err)
	_, err = part.Write([]byte("01.07.2023\t214000\tdisbursement\n"))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	service.EXPECT().
		InsertPlans(gomock.Any(), []planservice.PlanRecord{
			{Period: "01.07.2023", Sum: "214000", Category: "disbursement"},
		}).
		Return(1, nil)

	r := httptest.NewRequest(http.MethodPost, "/plans_insert", &buf)
	r.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()

	handler.InsertPlans(w, r)

	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.InsertPlansResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, 1, body.Inserted)
}

func TestInsertPlansHandlerMissingFile(t *testing.T) {
	handler, _ := NewMock(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	assert.NoError(t, writer.Close())

	r := httptest.NewRequest(http.MethodPost, "/plans_insert", &buf)
	r.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()

	handler.InsertPlans(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPlansPerformanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		query        string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.PlanPerformanceDTO
	}{
		{
			name:  "Successful retrieval",
			query: "?year=2023&month=7",
			prepareMock: func() {
				service.EXPECT().
					GetPlansPerformance(gomock.Any(), 7, 2023).
					Return([]planservice.PlanPerformance{
						{
							Month:      "2023-07",
							Category:   "disbursement",
							PlanSum:    214000,
							ActualSum:  80000,
							Percentage: 37.38,
						},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.PlanPerformanceDTO{
				{
					Month:                 "2023-07",
					Category:              "disbursement",
					PlanAmount:            214000,
					ActualAmount:          80000,
					PerformancePercentage: 37.38,
				},
			},
		},
		{
			name:  "No plans for month",
			query: "?year=2023&month=6",
			prepareMock: func() {
				service.EXPECT().
					GetPlansPerformance(gomock.Any(), 6, 2023).
					Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.PlanPerformanceDTO{},
		},
		{
			name:         "Missing year",
			query:        "?month=7",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing month",
			query:        "?year=2023",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Unsupported plan category",
			query: "?year=2023&month=7",
			prepareMock: func() {
				service.EXPECT().
					GetPlansPerformance(gomock.Any(), 7, 2023).
					Return(nil, planservice.ErrValidation)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "Internal server error",
			query: "?year=2023&month=7",
			prepareMock: func() {
				service.EXPECT().
					GetPlansPerformance(gomock.Any(), 7, 2023).
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/plans_performance"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.GetPlansPerformance(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.PlanPerformanceDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
