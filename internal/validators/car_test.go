package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validForm() CarForm {
	return CarForm{
		BrandID:      "1",
		Model:        "Octavia",
		Year:         "2019",
		Price:        "65000",
		Mileage:      "84000",
		FuelType:     "benzyna",
		Transmission: "manualna",
	}
}

func TestValidateCarAcceptsValidForm(t *testing.T) {
	in, errs := ValidateCar(validForm())
	assert.Empty(t, errs)
	assert.Equal(t, uint(1), in.BrandID)
	assert.Equal(t, "Octavia", in.Model)
	assert.Equal(t, 2019, in.Year)
	assert.Equal(t, 65000.0, in.Price)
	assert.Equal(t, 84000, in.Mileage)
}

func TestValidateCarDefaultsStatus(t *testing.T) {
	in, errs := ValidateCar(validForm())
	assert.Empty(t, errs)
	assert.Equal(t, "dostępny", in.Status)
}

func TestValidateCarRejectsYearRange(t *testing.T) {
	form := validForm()
	form.Year = "1899"
	_, errs := ValidateCar(form)
	assert.Contains(t, errs, "Nieprawidłowy rok.")

	form.Year = "2031"
	_, errs = ValidateCar(form)
	assert.Contains(t, errs, "Nieprawidłowy rok.")
}

func TestValidateCarRejectsNonPositivePrice(t *testing.T) {
	form := validForm()
	form.Price = "0"
	_, errs := ValidateCar(form)
	assert.Contains(t, errs, "Cena musi być większa od 0.")
}

func TestValidateCarRejectsNegativeMileage(t *testing.T) {
	form := validForm()
	form.Mileage = "-1"
	_, errs := ValidateCar(form)
	assert.Contains(t, errs, "Przebieg musi być nieujemny.")
}

func TestValidateCarRejectsUnknownEnums(t *testing.T) {
	form := validForm()
	form.FuelType = "węgiel"
	form.Transmission = "sekwencyjna"
	form.Status = "spalony"

	_, errs := ValidateCar(form)
	assert.Contains(t, errs, "Nieprawidłowy typ paliwa.")
	assert.Contains(t, errs, "Nieprawidłowa skrzynia biegów.")
	assert.Contains(t, errs, "Nieprawidłowy status.")
}

func TestValidateCarCollectsAllErrors(t *testing.T) {
	_, errs := ValidateCar(CarForm{})
	// every required field reports its own message
	assert.GreaterOrEqual(t, len(errs), 5)
}

func TestValidateCarRequiresModel(t *testing.T) {
	form := validForm()
	form.Model = "   "
	_, errs := ValidateCar(form)
	assert.Contains(t, errs, "Model jest wymagany.")
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus("sprzedany"))
	assert.True(t, IsValidStatus("zarezerwowany"))
	assert.False(t, IsValidStatus("dostepny"))
}
