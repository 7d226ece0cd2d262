package car

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func uintPtr(v uint) *uint        { return &v }
func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestConditionsEmpty(t *testing.T) {
	var f ListFilters
	assert.Empty(t, f.Conditions())
}

func TestConditionsOnlyPresentFilters(t *testing.T) {
	f := ListFilters{
		BrandID:  uintPtr(3),
		FuelType: "diesel",
		MinYear:  intPtr(2010),
	}

	conds := f.Conditions()
	assert.Len(t, conds, 3)
	assert.Equal(t, "c.brand_id = ?", conds[0].Expr)
	assert.Equal(t, []any{uint(3)}, conds[0].Args)
	assert.Equal(t, "c.fuel_type = ?", conds[1].Expr)
	assert.Equal(t, "c.year >= ?", conds[2].Expr)
}

func TestConditionsPriceRangeInclusive(t *testing.T) {
	f := ListFilters{
		MinPrice: floatPtr(100000),
		MaxPrice: floatPtr(200000),
	}

	conds := f.Conditions()
	assert.Len(t, conds, 2)
	assert.Equal(t, "c.price >= ?", conds[0].Expr)
	assert.Equal(t, []any{100000.0}, conds[0].Args)
	assert.Equal(t, "c.price <= ?", conds[1].Expr)
	assert.Equal(t, []any{200000.0}, conds[1].Args)
}

func TestConditionsSearchBindsPattern(t *testing.T) {
	f := ListFilters{Search: "  Golf GTI "}

	conds := f.Conditions()
	assert.Len(t, conds, 1)
	assert.Equal(t,
		"(LOWER(c.model) LIKE ? OR LOWER(b.name) LIKE ? OR LOWER(c.description) LIKE ?)",
		conds[0].Expr)
	assert.Equal(t, []any{"%golf gti%", "%golf gti%", "%golf gti%"}, conds[0].Args)
}

func TestConditionsSearchNeverInterpolated(t *testing.T) {
	f := ListFilters{Search: "'; DROP TABLE cars; --"}

	conds := f.Conditions()
	assert.Len(t, conds, 1)
	assert.NotContains(t, conds[0].Expr, "DROP TABLE")
}

func TestConditionsOwnerFilter(t *testing.T) {
	f := ListFilters{AddedBy: uintPtr(7)}

	conds := f.Conditions()
	assert.Len(t, conds, 1)
	assert.Equal(t, "c.added_by = ?", conds[0].Expr)
}

func TestOrderClauseDefaults(t *testing.T) {
	var f ListFilters
	assert.Equal(t, "c.created_at DESC", f.OrderClause())
}

func TestOrderClauseAllowList(t *testing.T) {
	f := ListFilters{Sort: "price", Order: "asc"}
	assert.Equal(t, "c.price ASC", f.OrderClause())

	f = ListFilters{Sort: "mileage", Order: "DESC"}
	assert.Equal(t, "c.mileage DESC", f.OrderClause())
}

func TestOrderClauseRejectsUnknownSort(t *testing.T) {
	f := ListFilters{Sort: "nonexistent_column", Order: "ASC"}
	assert.Equal(t, "c.created_at ASC", f.OrderClause())

	f = ListFilters{Sort: "price; DROP TABLE cars"}
	assert.Equal(t, "c.created_at DESC", f.OrderClause())
}

func TestNormalizeAndOffset(t *testing.T) {
	var f ListFilters
	f.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, DefaultLimit, f.Limit)
	assert.Equal(t, 0, f.Offset())

	f = ListFilters{Page: 2, Limit: 12}
	f.Normalize()
	assert.Equal(t, 12, f.Offset())

	f = ListFilters{Page: -3}
	f.Normalize()
	assert.Equal(t, 1, f.Page)
}
