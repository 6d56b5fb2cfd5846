package service

import (
	"github.com/dkovalev/creditplan/internal/handlers/credits"
	"github.com/dkovalev/creditplan/internal/handlers/plans"
	"github.com/dkovalev/creditplan/internal/pg"
	"github.com/dkovalev/creditplan/internal/repo"
	"github.com/dkovalev/creditplan/internal/service/creditservice"
	"github.com/dkovalev/creditplan/internal/service/planservice"
)

type Services struct {
	CreditService credits.Service
	PlanService   plans.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	creditService := creditservice.New(repo.UserRepo, repo.CreditRepo, repo.PaymentRepo, txManager)
	planService := planservice.New(repo.CategoryRepo, repo.PlanRepo, repo.CreditRepo, repo.PaymentRepo, txManager)

	return &Services{
		CreditService: creditService,
		PlanService:   planService,
	}
}
