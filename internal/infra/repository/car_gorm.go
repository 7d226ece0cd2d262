package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/autokomis-pl/autokomis-api/internal/domain/car"
)

const carSelect = `c.*,
	b.name AS brand_name, b.country AS brand_country,
	u.id AS owner_id, u.name AS owner_name`

type CarGormRepository struct {
	db *gorm.DB
}

func NewCarGormRepository(db *gorm.DB) *CarGormRepository {
	return &CarGormRepository{db: db}
}

// joined starts a query over cars joined with brands (inner, every car
// references a valid brand) and users (left, owner may be deleted).
func (r *CarGormRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("cars AS c").
		Joins("JOIN brands b ON c.brand_id = b.id").
		Joins("LEFT JOIN users u ON c.added_by = u.id")
}

func (r *CarGormRepository) List(
	ctx context.Context,
	f domain.ListFilters,
) ([]domain.Row, int64, error) {

	conds := f.Conditions()

	count := r.db.WithContext(ctx).
		Table("cars AS c").
		Joins("JOIN brands b ON c.brand_id = b.id")
	for _, cond := range conds {
		count = count.Where(cond.Expr, cond.Args...)
	}

	var total int64
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.joined(ctx).Select(carSelect)
	for _, cond := range conds {
		q = q.Where(cond.Expr, cond.Args...)
	}

	var rows []domain.Row
	if err := q.
		Order(f.OrderClause()).
		Limit(f.Limit).
		Offset(f.Offset()).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *CarGormRepository) GetRow(
	ctx context.Context,
	id uint,
) (*domain.Row, error) {

	var row domain.Row
	err := r.joined(ctx).
		Select(carSelect).
		Where("c.id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
