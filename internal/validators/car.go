package validators

import (
	"strconv"
	"strings"

	domain "github.com/autokomis-pl/autokomis-api/internal/domain/car"
)

// CarForm carries the raw multipart form fields of a car create/update.
type CarForm struct {
	BrandID      string
	Model        string
	Year         string
	Price        string
	Mileage      string
	FuelType     string
	Transmission string
	Color        string
	Description  string
	Status       string
}

// CarInput is a validated car payload.
type CarInput struct {
	BrandID      uint
	Model        string
	Year         int
	Price        float64
	Mileage      int
	FuelType     string
	Transmission string
	Color        string
	Description  string
	Status       string
}

// ValidateCar checks every field and returns all violations at once, so
// the client can show them together.
func ValidateCar(form CarForm) (CarInput, []string) {
	var (
		in   CarInput
		errs []string
	)

	brandID, err := strconv.ParseUint(strings.TrimSpace(form.BrandID), 10, 32)
	if err != nil || brandID < 1 {
		errs = append(errs, "Nieprawidłowe ID marki.")
	} else {
		in.BrandID = uint(brandID)
	}

	in.Model = strings.TrimSpace(form.Model)
	if in.Model == "" || len(in.Model) > 100 {
		errs = append(errs, "Model jest wymagany.")
	}

	year, err := strconv.Atoi(strings.TrimSpace(form.Year))
	if err != nil || year < 1900 || year > 2030 {
		errs = append(errs, "Nieprawidłowy rok.")
	} else {
		in.Year = year
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(form.Price), 64)
	if err != nil || price <= 0 {
		errs = append(errs, "Cena musi być większa od 0.")
	} else {
		in.Price = price
	}

	mileage, err := strconv.Atoi(strings.TrimSpace(form.Mileage))
	if err != nil || mileage < 0 {
		errs = append(errs, "Przebieg musi być nieujemny.")
	} else {
		in.Mileage = mileage
	}

	in.FuelType = strings.TrimSpace(form.FuelType)
	if !contains(domain.FuelTypes, in.FuelType) {
		errs = append(errs, "Nieprawidłowy typ paliwa.")
	}

	in.Transmission = strings.TrimSpace(form.Transmission)
	if !contains(domain.Transmissions, in.Transmission) {
		errs = append(errs, "Nieprawidłowa skrzynia biegów.")
	}

	in.Color = strings.TrimSpace(form.Color)
	if len(in.Color) > 50 {
		errs = append(errs, "Kolor może mieć maksymalnie 50 znaków.")
	}

	in.Description = strings.TrimSpace(form.Description)

	in.Status = strings.TrimSpace(form.Status)
	if in.Status == "" {
		in.Status = domain.StatusAvailable
	} else if !IsValidStatus(in.Status) {
		errs = append(errs, "Nieprawidłowy status.")
	}

	return in, errs
}

func IsValidStatus(status string) bool {
	return contains(domain.Statuses, status)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
