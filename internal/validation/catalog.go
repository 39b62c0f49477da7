package validation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"vintage-cars-backend/internal/models"
)

const (
	PriceMaxDigits     = 12
	PriceDecimalPlaces = 2
)

// priceLimit is the smallest value that overflows NUMERIC(12,2):
// 10 integer digits plus 2 decimal places.
var priceLimit = decimal.New(1, PriceMaxDigits-PriceDecimalPlaces)

// BrandResolver reports whether a brand with the given id exists.
type BrandResolver func(brandID uuid.UUID) (bool, error)

type BrandInput struct {
	Name        string
	LogoURL     string
	Description string
}

func ValidateBrand(req models.BrandRequest) (*BrandInput, Errors) {
	fieldErrors := Errors{}

	out := &BrandInput{
		Name:        strings.TrimSpace(req.Name),
		LogoURL:     strings.TrimSpace(req.LogoURL),
		Description: strings.TrimSpace(req.Description),
	}
	if out.Name == "" {
		fieldErrors.Add("name", msgRequired)
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}
	return out, nil
}

type CarInput struct {
	BrandID     uuid.UUID
	Model       string
	Year        int
	Price       decimal.Decimal
	Description string
	IsFeatured  bool
	Status      string
}

// ValidateCar checks an admin car payload. Status defaults to draft when
// left empty. The returned error is reserved for store failures during
// brand resolution.
func ValidateCar(req models.CarRequest, brandExists BrandResolver) (*CarInput, Errors, error) {
	fieldErrors := Errors{}
	out := &CarInput{
		Model:       strings.TrimSpace(req.Model),
		Year:        req.Year,
		Price:       req.Price,
		Description: strings.TrimSpace(req.Description),
		IsFeatured:  req.IsFeatured,
		Status:      strings.TrimSpace(req.Status),
	}

	rawBrand := strings.TrimSpace(req.Brand)
	if rawBrand == "" {
		fieldErrors.Add("brand", msgRequired)
	} else if brandID, err := uuid.Parse(rawBrand); err != nil {
		fieldErrors.Add("brand", "Must be a valid UUID.")
	} else {
		exists, err := brandExists(brandID)
		if err != nil {
			return nil, nil, err
		}
		if !exists {
			fieldErrors.Add("brand", fmt.Sprintf("Invalid pk %q - object does not exist.", rawBrand))
		} else {
			out.BrandID = brandID
		}
	}

	if out.Model == "" {
		fieldErrors.Add("model", msgRequired)
	}

	if out.Year < 0 {
		fieldErrors.Add("year", "Ensure this value is greater than or equal to 0.")
	}

	if out.Price.Exponent() < -PriceDecimalPlaces {
		fieldErrors.Add("price", fmt.Sprintf("Ensure that there are no more than %d decimal places.", PriceDecimalPlaces))
	}
	if out.Price.Abs().GreaterThanOrEqual(priceLimit) {
		fieldErrors.Add("price", fmt.Sprintf("Ensure that there are no more than %d digits in total.", PriceMaxDigits))
	}

	if out.Status == "" {
		out.Status = models.StatusDraft
	} else if !models.ValidStatus(out.Status) {
		fieldErrors.Add("status", fmt.Sprintf("%q is not a valid choice.", out.Status))
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}
	return out, nil, nil
}

type CarImageInput struct {
	ImageURL  string
	AltText   string
	IsPrimary bool
	SortOrder int
}

// ValidateCarImage checks an admin image payload. Several images of one car
// may be flagged primary; no exclusivity is enforced.
func ValidateCarImage(req models.CarImageRequest) (*CarImageInput, Errors) {
	fieldErrors := Errors{}
	out := &CarImageInput{
		ImageURL:  strings.TrimSpace(req.ImageURL),
		AltText:   strings.TrimSpace(req.AltText),
		IsPrimary: req.IsPrimary,
		SortOrder: req.SortOrder,
	}

	if out.ImageURL == "" {
		fieldErrors.Add("image_url", msgRequired)
	}
	if out.SortOrder < 0 {
		fieldErrors.Add("sort_order", "Ensure this value is greater than or equal to 0.")
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}
	return out, nil
}
