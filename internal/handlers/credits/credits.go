package credits

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dkovalev/creditplan/internal/dto"
	"github.com/dkovalev/creditplan/internal/service/creditservice"
	"github.com/dkovalev/creditplan/pkg/utils"
)

type Service interface {
	GetUserCredits(ctx context.Context, userID int) ([]creditservice.CreditStatus, error)
}

type CreditHandler struct {
	creditService Service
}

func New(creditService Service) *CreditHandler {
	return &CreditHandler{
		creditService: creditService,
	}
}

const dateLayout = "2006-01-02"

// GetUserCredits godoc
//
//	@Summary		Get credit statuses for a user
//	@Description	Retrieve every credit of the user: open credits with overdue days and the repayment split into principal and interest, closed credits with the total repaid amount.
//	@Tags			Credits
//	@Produce		json
//	@Param			userID	path		int	true	"User ID"
//	@Success		200		{array}		dto.ActiveCreditDTO
//	@Success		204		{object}	utils.Response	"User has no credits"
//	@Failure		400		{object}	utils.Response	"Invalid user id"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/user_credits/{userID} [get]
func (h *CreditHandler) GetUserCredits(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	statuses, err := h.creditService.GetUserCredits(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, creditservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	if len(statuses) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No credits found")
		return
	}

	response := make([]interface{}, 0, len(statuses))
	for _, status := range statuses {
		if status.Closed {
			response = append(response, dto.ClosedCreditDTO{
				IssuanceDate:     status.IssuanceDate.Format(dateLayout),
				ActualReturnDate: status.ActualReturnDate.Format(dateLayout),
				Body:             status.Body,
				Percent:          status.Percent,
				TotalPayment:     status.TotalPayment,
			})
			continue
		}
		response = append(response, dto.ActiveCreditDTO{
			IssuanceDate:    status.IssuanceDate.Format(dateLayout),
			ReturnDate:      status.ReturnDate.Format(dateLayout),
			OverdueDays:     status.OverdueDays,
			Body:            status.Body,
			Percent:         status.Percent,
			BodyPayments:    status.BodyPayments,
			PercentPayments: status.PercentPayments,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
