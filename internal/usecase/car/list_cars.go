package car

import (
	"context"

	domain "github.com/autokomis-pl/autokomis-api/internal/domain/car"
)

type ListResult struct {
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
	Cars  []domain.Row `json:"cars"`
}

type ListCars struct {
	repo domain.Repository
}

func NewListCars(repo domain.Repository) *ListCars {
	return &ListCars{repo: repo}
}

func (uc *ListCars) Execute(
	ctx context.Context,
	f domain.ListFilters,
) (*ListResult, error) {

	f.Normalize()

	rows, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	if rows == nil {
		rows = []domain.Row{}
	}

	return &ListResult{
		Total: total,
		Page:  f.Page,
		Limit: f.Limit,
		Cars:  rows,
	}, nil
}
