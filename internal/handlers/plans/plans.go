package plans

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/dkovalev/creditplan/internal/dto"
	"github.com/dkovalev/creditplan/internal/service/planservice"
	"github.com/dkovalev/creditplan/pkg/utils"
)

type Service interface {
	InsertPlans(ctx context.Context, records []planservice.PlanRecord) (int, error)
	GetPlansPerformance(ctx context.Context, month, year int) ([]planservice.PlanPerformance, error)
	CheckDictionary(ctx context.Context) error
}

type PlanHandler struct {
	planService Service
}

func New(planService Service) *PlanHandler {
	return &PlanHandler{
		planService: planService,
	}
}

// InsertPlans godoc
//
//	@Summary		Insert a batch of monthly plans
//	@Description	Accept tab-separated plan records (period DD.MM.YYYY, integer sum, category name), either as the raw request body or as a multipart form file named "file". The batch is committed atomically: the first invalid record rejects the whole batch.
//	@Tags			Plans
//	@Accept			text/plain
//	@Produce		json
//	@Success		200	{object}	dto.InsertPlansResponseDTO
//	@Failure		400	{object}	utils.Response	"Malformed, invalid or conflicting record"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/plans_insert [post]
func (h *PlanHandler) InsertPlans(w http.ResponseWriter, r *http.Request) {
	body, err := planBatchBody(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	records, err := planservice.ParsePlanRecords(body)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	inserted, err := h.planService.InsertPlans(r.Context(), records)
	if err != nil {
		switch {
		case errors.Is(err, planservice.ErrFormat),
			errors.Is(err, planservice.ErrValidation),
			errors.Is(err, planservice.ErrConflict):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.InsertPlansResponseDTO{
		Message:  "plans inserted",
		Inserted: inserted,
	})
}

// planBatchBody picks the record stream: the "file" field of a
// multipart form when one is posted, the raw body otherwise.
func planBatchBody(r *http.Request) (io.Reader, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, err
		}
		return file, nil
	}
	return r.Body, nil
}

// GetPlansPerformance godoc
//
//	@Summary		Get plan-vs-actual performance for a month
//	@Description	For every plan of the target month, report the planned amount, the matching actual activity (credit issuance for disbursement plans, payment intake for collection plans) and the performance percentage.
//	@Tags			Plans
//	@Produce		json
//	@Param			year	query		int	true	"Target year"
//	@Param			month	query		int	true	"Target month (1-12)"
//	@Success		200		{array}		dto.PlanPerformanceDTO
//	@Failure		400		{object}	utils.Response	"Bad query or unsupported plan category"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/plans_performance [get]
func (h *PlanHandler) GetPlansPerformance(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid year")
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid month")
		return
	}

	performances, err := h.planService.GetPlansPerformance(r.Context(), month, year)
	if err != nil {
		switch {
		case errors.Is(err, planservice.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	response := make([]dto.PlanPerformanceDTO, 0, len(performances))
	for _, p := range performances {
		response = append(response, dto.PlanPerformanceDTO{
			Month:                 p.Month,
			Category:              p.Category,
			PlanAmount:            p.PlanSum,
			ActualAmount:          p.ActualSum,
			PerformancePercentage: p.Percentage,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
