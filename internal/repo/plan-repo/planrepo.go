package planrepo

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

// SyncIDSequence realigns the plans id sequence with the current
// maximum stored id. Externally seeded rows bypass the sequence and
// would otherwise collide on the next insert.
func (r *Repository) SyncIDSequence(ctx context.Context) error {
	query := `
        SELECT setval(pg_get_serial_sequence('plans', 'id'), COALESCE(MAX(id), 0) + 1, false)
        FROM plans
    `
	if _, err := r.db.Exec(ctx, query); err != nil {
		zap.L().Error("can't sync plans id sequence", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ExistsForPeriod(ctx context.Context, period time.Time, categoryID int) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM plans WHERE period = $1 AND category_id = $2
        )
    `
	var exists bool
	err := r.db.QueryRow(ctx, query, period, categoryID).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check plan existence", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) Save(ctx context.Context, plan *domain.Plan) error {
	query := `
        INSERT INTO plans (period, sum, category_id)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, plan.Period, plan.Sum, plan.CategoryID).Scan(&plan.ID)
	if err != nil {
		zap.L().Error("can't save plan", zap.Error(err))
		return err
	}
	return nil
}

// FindByPeriod returns the plans whose period falls in [from, to),
// with category names resolved from the dictionary.
func (r *Repository) FindByPeriod(ctx context.Context, from, to time.Time) ([]domain.Plan, error) {
	query := `
        SELECT p.id, p.period, p.sum, p.category_id, d.name
        FROM plans p
        JOIN dictionary d ON d.id = p.category_id
        WHERE p.period >= $1 AND p.period < $2
        ORDER BY p.id ASC
    `
	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		zap.L().Error("can't get plans", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var plans []domain.Plan
	for rows.Next() {
		var plan domain.Plan
		err := rows.Scan(&plan.ID, &plan.Period, &plan.Sum, &plan.CategoryID, &plan.CategoryName)
		if err != nil {
			zap.L().Error("can't scan plan row", zap.Error(err))
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}
