package repo

import (
	"github.com/dkovalev/creditplan/internal/pg"
	categoryrepo "github.com/dkovalev/creditplan/internal/repo/category-repo"
	creditrepo "github.com/dkovalev/creditplan/internal/repo/credit-repo"
	paymentrepo "github.com/dkovalev/creditplan/internal/repo/payment-repo"
	planrepo "github.com/dkovalev/creditplan/internal/repo/plan-repo"
	userrepo "github.com/dkovalev/creditplan/internal/repo/user-repo"
	"github.com/dkovalev/creditplan/internal/service/creditservice"
	"github.com/dkovalev/creditplan/internal/service/planservice"
)

type Repositories struct {
	UserRepo     creditservice.UserRepo
	CreditRepo   creditservice.CreditRepo
	PaymentRepo  creditservice.PaymentRepo
	CategoryRepo planservice.CategoryRepo
	PlanRepo     planservice.PlanRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:     userrepo.New(conn),
		CreditRepo:   creditrepo.New(conn),
		PaymentRepo:  paymentrepo.New(conn),
		CategoryRepo: categoryrepo.New(conn),
		PlanRepo:     planrepo.New(conn),
	}
}
