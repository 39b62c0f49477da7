package validation_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vintage-cars-backend/internal/models"
	"vintage-cars-backend/internal/validation"
)

func existingBrand(id uuid.UUID) validation.BrandResolver {
	return func(brandID uuid.UUID) (bool, error) {
		return brandID == id, nil
	}
}

func TestValidateBrand(t *testing.T) {
	out, fieldErrors := validation.ValidateBrand(models.BrandRequest{
		Name:        "  Ferrari  ",
		Description: "Maranello",
	})

	require.Nil(t, fieldErrors)
	assert.Equal(t, "Ferrari", out.Name)
	assert.Equal(t, "Maranello", out.Description)
}

func TestValidateBrand_NameRequired(t *testing.T) {
	_, fieldErrors := validation.ValidateBrand(models.BrandRequest{Name: "   "})
	require.Contains(t, fieldErrors, "name")
}

func validCarRequest(brandID uuid.UUID) models.CarRequest {
	return models.CarRequest{
		Brand: brandID.String(),
		Model: "250 GTO",
		Year:  1962,
		Price: decimal.RequireFromString("25000000.00"),
	}
}

func TestValidateCar_DefaultsStatusToDraft(t *testing.T) {
	brandID := uuid.New()

	out, fieldErrors, err := validation.ValidateCar(validCarRequest(brandID), existingBrand(brandID))

	require.NoError(t, err)
	require.Nil(t, fieldErrors)
	assert.Equal(t, models.StatusDraft, out.Status)
	assert.Equal(t, brandID, out.BrandID)
}

func TestValidateCar_InvalidStatus(t *testing.T) {
	brandID := uuid.New()
	req := validCarRequest(brandID)
	req.Status = "parked"

	_, fieldErrors, err := validation.ValidateCar(req, existingBrand(brandID))

	require.NoError(t, err)
	require.Contains(t, fieldErrors, "status")
}

func TestValidateCar_AllStatusesAccepted(t *testing.T) {
	brandID := uuid.New()
	for _, status := range []string{models.StatusDraft, models.StatusActive, models.StatusSold, models.StatusArchived} {
		req := validCarRequest(brandID)
		req.Status = status
		out, fieldErrors, err := validation.ValidateCar(req, existingBrand(brandID))
		require.NoError(t, err)
		require.Nil(t, fieldErrors, "status %q", status)
		assert.Equal(t, status, out.Status)
	}
}

func TestValidateCar_BrandMustExist(t *testing.T) {
	req := validCarRequest(uuid.New())

	_, fieldErrors, err := validation.ValidateCar(req, func(uuid.UUID) (bool, error) {
		return false, nil
	})

	require.NoError(t, err)
	require.Contains(t, fieldErrors, "brand")
}

func TestValidateCar_NegativeYear(t *testing.T) {
	brandID := uuid.New()
	req := validCarRequest(brandID)
	req.Year = -1

	_, fieldErrors, err := validation.ValidateCar(req, existingBrand(brandID))

	require.NoError(t, err)
	require.Contains(t, fieldErrors, "year")
}

func TestValidateCar_PriceBounds(t *testing.T) {
	brandID := uuid.New()

	cases := []struct {
		name  string
		price string
		valid bool
	}{
		{"two decimal places", "25000000.00", true},
		{"ten integer digits", "9999999999.99", true},
		{"eleven integer digits", "10000000000.00", false},
		{"three decimal places", "0.001", false},
		{"zero", "0", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCarRequest(brandID)
			req.Price = decimal.RequireFromString(tc.price)
			_, fieldErrors, err := validation.ValidateCar(req, existingBrand(brandID))
			require.NoError(t, err)
			if tc.valid {
				assert.Nil(t, fieldErrors)
			} else {
				assert.Contains(t, fieldErrors, "price")
			}
		})
	}
}

func TestValidateCarImage(t *testing.T) {
	out, fieldErrors := validation.ValidateCarImage(models.CarImageRequest{
		ImageURL:  "https://example.com/front.jpg",
		IsPrimary: true,
		SortOrder: 2,
	})

	require.Nil(t, fieldErrors)
	assert.Equal(t, "https://example.com/front.jpg", out.ImageURL)
	assert.True(t, out.IsPrimary)
}

func TestValidateCarImage_URLRequired(t *testing.T) {
	_, fieldErrors := validation.ValidateCarImage(models.CarImageRequest{})
	require.Contains(t, fieldErrors, "image_url")
}

func TestValidateCarImage_NegativeSortOrder(t *testing.T) {
	_, fieldErrors := validation.ValidateCarImage(models.CarImageRequest{
		ImageURL:  "https://example.com/front.jpg",
		SortOrder: -1,
	})
	require.Contains(t, fieldErrors, "sort_order")
}
