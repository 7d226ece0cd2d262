package car

import "time"

// Row is a car joined with its brand (inner) and owner (left) for display.
type Row struct {
	ID uint `json:"id"`

	BrandID uint `json:"brand_id"`

	Model        string  `json:"model"`
	Year         int     `json:"year"`
	Price        float64 `json:"price"`
	Mileage      int     `json:"mileage"`
	FuelType     string  `json:"fuel_type"`
	Transmission string  `json:"transmission"`
	Color        string  `json:"color"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"image_url"`
	Status       string  `json:"status"`
	AddedBy      *uint   `json:"added_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	BrandName    string  `json:"brand_name"`
	BrandCountry string  `json:"brand_country"`
	OwnerID      *uint   `json:"owner_id"`
	OwnerName    *string `json:"owner_name"`
}
