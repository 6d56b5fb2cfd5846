package creditrepo

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

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Credit, error) {
	query := `
        SELECT id, user_id, issuance_date, return_date, actual_return_date, body, percent
        FROM credits
        WHERE user_id = $1
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get user credits", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var credits []domain.Credit
	for rows.Next() {
		var credit domain.Credit
		err := rows.Scan(&credit.ID, &credit.UserID, &credit.IssuanceDate, &credit.ReturnDate,
			&credit.ActualReturnDate, &credit.Body, &credit.Percent)
		if err != nil {
			zap.L().Error("can't scan credit row", zap.Error(err))
			return nil, err
		}
		credits = append(credits, credit)
	}
	return credits, nil
}

// SumBodyByIssuancePeriod totals the principal of credits issued in
// [from, to). An empty window yields 0.
func (r *Repository) SumBodyByIssuancePeriod(ctx context.Context, from, to time.Time) (float64, error) {
	query := `
        SELECT COALESCE(SUM(body), 0)
        FROM credits
        WHERE issuance_date >= $1 AND issuance_date < $2
    `
	var total float64
	err := r.db.QueryRow(ctx, query, from, to).Scan(&total)
	if err != nil {
		zap.L().Error("can't sum issued credit bodies", zap.Error(err))
		return 0, err
	}
	return total, nil
}
