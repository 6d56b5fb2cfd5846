package paymentrepo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dkovalev/creditplan/internal/domain"
	"github.com/dkovalev/creditplan/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// FindByUserID returns every payment made against the user's credits,
// with the payment category name resolved from the dictionary.
func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Payment, error) {
	query := `
        SELECT p.id, p.credit_id, p.payment_date, p.sum, p.type_id, d.name
        FROM payments p
        JOIN credits c ON c.id = p.credit_id
        JOIN dictionary d ON d.id = p.type_id
        WHERE c.user_id = $1
        ORDER BY p.id ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get user payments", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		err := rows.Scan(&payment.ID, &payment.CreditID, &payment.PaymentDate,
			&payment.Sum, &payment.TypeID, &payment.CategoryName)
		if err != nil {
			zap.L().Error("can't scan payment row", zap.Error(err))
			return nil, err
		}
		payments = append(payments, payment)
	}
	return payments, nil
}

// SumByPaymentPeriod totals payments received in [from, to). An empty
// window yields 0.
func (r *Repository) SumByPaymentPeriod(ctx context.Context, from, to time.Time) (float64, error) {
	query := `
        SELECT COALESCE(SUM(sum), 0)
        FROM payments
        WHERE payment_date >= $1 AND payment_date < $2
    `
	var total float64
	err := r.db.QueryRow(ctx, query, from, to).Scan(&total)
	if err != nil {
		zap.L().Error("can't sum payments", zap.Error(err))
		return 0, err
	}
	return total, nil
}
