package car

import (
	"context"

	domain "github.com/autokomis-pl/autokomis-api/internal/domain/car"
)

type GetCar struct {
	repo domain.Repository
}

func NewGetCar(repo domain.Repository) *GetCar {
	return &GetCar{repo: repo}
}

func (uc *GetCar) Execute(
	ctx context.Context,
	id uint,
) (*domain.Row, error) {
	return uc.repo.GetRow(ctx, id)
}
