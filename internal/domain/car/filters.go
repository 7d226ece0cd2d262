package car

import (
	"fmt"
	"strings"
)

const DefaultLimit = 12

// Fuel types, transmissions and statuses accepted on car payloads.
var (
	FuelTypes     = []string{"benzyna", "diesel", "elektryczny", "hybryda", "lpg"}
	Transmissions = []string{"manualna", "automatyczna"}
	Statuses      = []string{"dostępny", "sprzedany", "zarezerwowany"}
)

const StatusAvailable = "dostępny"

// Sort keys that may reach the ORDER BY clause. Anything else silently
// falls back to created_at; caller strings are never interpolated.
var allowedSorts = map[string]bool{
	"price":      true,
	"year":       true,
	"mileage":    true,
	"created_at": true,
}

// Condition is a single parameter-bound predicate. Expr references the
// aliases c (cars), b (brands) and u (users) used by the repository.
type Condition struct {
	Expr string
	Args []any
}

// ListFilters describes one listing request. Nil/empty fields impose no
// constraint.
type ListFilters struct {
	BrandID      *uint
	FuelType     string
	Transmission string
	Status       string
	MinPrice     *float64
	MaxPrice     *float64
	MinYear      *int
	MaxYear      *int
	Search       string
	AddedBy      *uint

	Sort  string
	Order string
	Page  int
	Limit int
}

// Normalize fills pagination defaults in place.
func (f *ListFilters) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
}

// Conditions returns the conjunctive predicate set for the present filters.
func (f ListFilters) Conditions() []Condition {
	var conds []Condition

	if f.BrandID != nil {
		conds = append(conds, Condition{"c.brand_id = ?", []any{*f.BrandID}})
	}
	if f.FuelType != "" {
		conds = append(conds, Condition{"c.fuel_type = ?", []any{f.FuelType}})
	}
	if f.Transmission != "" {
		conds = append(conds, Condition{"c.transmission = ?", []any{f.Transmission}})
	}
	if f.Status != "" {
		conds = append(conds, Condition{"c.status = ?", []any{f.Status}})
	}
	if f.MinPrice != nil {
		conds = append(conds, Condition{"c.price >= ?", []any{*f.MinPrice}})
	}
	if f.MaxPrice != nil {
		conds = append(conds, Condition{"c.price <= ?", []any{*f.MaxPrice}})
	}
	if f.MinYear != nil {
		conds = append(conds, Condition{"c.year >= ?", []any{*f.MinYear}})
	}
	if f.MaxYear != nil {
		conds = append(conds, Condition{"c.year <= ?", []any{*f.MaxYear}})
	}

	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		conds = append(conds, Condition{
			"(LOWER(c.model) LIKE ? OR LOWER(b.name) LIKE ? OR LOWER(c.description) LIKE ?)",
			[]any{like, like, like},
		})
	}

	if f.AddedBy != nil {
		conds = append(conds, Condition{"c.added_by = ?", []any{*f.AddedBy}})
	}

	return conds
}

// OrderClause builds the ORDER BY fragment from the allow-list only.
func (f ListFilters) OrderClause() string {
	sort := f.Sort
	if !allowedSorts[sort] {
		sort = "created_at"
	}
	order := "DESC"
	if strings.EqualFold(f.Order, "ASC") {
		order = "ASC"
	}
	return fmt.Sprintf("c.%s %s", sort, order)
}

func (f ListFilters) Offset() int {
	return (f.Page - 1) * f.Limit
}
