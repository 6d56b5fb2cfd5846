package categoryrepo

import (
	"context"

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

func (r *Repository) ListAll(ctx context.Context) ([]domain.Category, error) {
	query := `
        SELECT id, name
        FROM dictionary
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get categories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			zap.L().Error("can't scan category row", zap.Error(err))
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}
