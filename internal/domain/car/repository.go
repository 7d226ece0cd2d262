package car

import "context"

type Repository interface {
	// List returns one page of enriched rows plus the total match count
	// independent of pagination.
	List(
		ctx context.Context,
		f ListFilters,
	) ([]Row, int64, error)

	// GetRow returns a single enriched row.
	GetRow(
		ctx context.Context,
		id uint,
	) (*Row, error)
}
