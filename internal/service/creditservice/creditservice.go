package creditservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dkovalev/creditplan/internal/domain"
	"github.com/dkovalev/creditplan/internal/pg"
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
}

type CreditRepo interface {
	FindByUserID(ctx context.Context, userID int) ([]domain.Credit, error)
	SumBodyByIssuancePeriod(ctx context.Context, from, to time.Time) (float64, error)
}

type PaymentRepo interface {
	FindByUserID(ctx context.Context, userID int) ([]domain.Payment, error)
	SumByPaymentPeriod(ctx context.Context, from, to time.Time) (float64, error)
}

type Service struct {
	userRepo    UserRepo
	creditRepo  CreditRepo
	paymentRepo PaymentRepo
	txManager   pg.TXManager
	// now is the reference date for overdue computation, replaced in tests
	now func() time.Time
}

func New(userRepo UserRepo, creditRepo CreditRepo, paymentRepo PaymentRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:    userRepo,
		creditRepo:  creditRepo,
		paymentRepo: paymentRepo,
		txManager:   txManager,
		now:         time.Now,
	}
}

var ErrUserNotFound = errors.New("user not found")

// CreditStatus is the per-credit view returned by GetUserCredits.
// Closed selects which field group is meaningful: open credits carry
// ReturnDate, OverdueDays and the payment partition, closed credits
// carry ActualReturnDate and TotalPayment.
type CreditStatus struct {
	IssuanceDate time.Time
	Closed       bool
	Body         float64
	Percent      float64

	ReturnDate      time.Time
	OverdueDays     int
	BodyPayments    float64
	PercentPayments float64

	ActualReturnDate time.Time
	TotalPayment     float64
}

func (s *Service) GetUserCredits(ctx context.Context, userID int) ([]CreditStatus, error) {
	var statuses []CreditStatus

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.FindByID(ctx, userID)
		if err != nil {
			zap.L().Error("can't find user", zap.Error(err))
			return err
		}
		if user == nil {
			return fmt.Errorf("%w: id %d", ErrUserNotFound, userID)
		}

		credits, err := s.creditRepo.FindByUserID(ctx, userID)
		if err != nil {
			zap.L().Error("can't get credits", zap.Error(err))
			return err
		}

		payments, err := s.paymentRepo.FindByUserID(ctx, userID)
		if err != nil {
			zap.L().Error("can't get payments", zap.Error(err))
			return err
		}
		byCredit := make(map[int][]domain.Payment, len(credits))
		for _, payment := range payments {
			byCredit[payment.CreditID] = append(byCredit[payment.CreditID], payment)
		}

		statuses = make([]CreditStatus, 0, len(credits))
		for _, credit := range credits {
			statuses = append(statuses, s.creditStatus(credit, byCredit[credit.ID]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return statuses, nil
}

func (s *Service) creditStatus(credit domain.Credit, payments []domain.Payment) CreditStatus {
	status := CreditStatus{
		IssuanceDate: credit.IssuanceDate,
		Closed:       credit.Closed(),
		Body:         credit.Body,
		Percent:      credit.Percent,
	}

	if credit.Closed() {
		status.ActualReturnDate = *credit.ActualReturnDate
		for _, payment := range payments {
			status.TotalPayment += payment.Sum
		}
		return status
	}

	status.ReturnDate = credit.ReturnDate
	status.OverdueDays = overdueDays(s.now(), credit.ReturnDate)
	for _, payment := range payments {
		switch payment.CategoryName {
		case domain.CategoryPrincipal:
			status.BodyPayments += payment.Sum
		case domain.CategoryInterest:
			status.PercentPayments += payment.Sum
		}
	}
	return status
}

// overdueDays counts whole days the reference date is past the
// contractual return date, never negative.
func overdueDays(reference, returnDate time.Time) int {
	days := int(truncateToDay(reference).Sub(truncateToDay(returnDate)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
