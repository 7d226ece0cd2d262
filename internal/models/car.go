package models

import "time"

type Car struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BrandID uint  `gorm:"not null" json:"brand_id"`
	Brand   Brand `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Model   string  `gorm:"size:100;not null" json:"model"`
	Year    int     `gorm:"not null" json:"year"`
	Price   float64 `gorm:"not null" json:"price"`
	Mileage int     `gorm:"not null;default:0" json:"mileage"`

	FuelType     string `gorm:"size:20;not null" json:"fuel_type"`
	Transmission string `gorm:"size:20;not null" json:"transmission"`

	Color       string `gorm:"size:50" json:"color"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"size:255" json:"image_url"`

	Status string `gorm:"size:20;default:'dostępny'" json:"status"`

	AddedBy *uint `json:"added_by"`
	Owner   *User `gorm:"foreignKey:AddedBy;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
