package handlers

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"vintage-cars-backend/internal/database"
	"vintage-cars-backend/internal/models"
)

// Store is the persistence surface the handlers run against. It is
// implemented by database.Client and by an in-memory fake in tests.
type Store interface {
	ListBrands() ([]models.Brand, error)
	GetBrand(brandID uuid.UUID) (*models.Brand, error)
	CreateBrand(name, logoURL, description string) (*models.Brand, error)
	UpdateBrand(brandID uuid.UUID, name, logoURL, description string) (*models.Brand, error)
	DeleteBrand(brandID uuid.UUID) error

	ListActiveCars(filter database.CarFilter, limit, offset int) ([]models.CarWithBrand, int, error)
	GetActiveCar(carID uuid.UUID) (*models.CarWithBrand, error)
	GetCar(carID uuid.UUID) (*models.Car, error)
	CarExists(carID uuid.UUID) (bool, error)
	CreateCar(brandID uuid.UUID, model string, year int, price decimal.Decimal, description string, isFeatured bool, status string) (*models.Car, error)
	UpdateCar(carID, brandID uuid.UUID, model string, year int, price decimal.Decimal, description string, isFeatured bool, status string) (*models.Car, error)
	DeleteCar(carID uuid.UUID) error

	ListCarImages(carID uuid.UUID) ([]models.CarImage, error)
	ListCarImagesByCars(carIDs []uuid.UUID) (map[uuid.UUID][]models.CarImage, error)
	CreateCarImage(carID uuid.UUID, imageURL, altText string, isPrimary bool, sortOrder int) (*models.CarImage, error)
	DeleteCarImage(imageID uuid.UUID) error

	CreateInquiry(carID uuid.UUID, collectorName, collectorEmail, collectorPhone, message string) (*models.Inquiry, error)
	ListInquiries(carID *uuid.UUID) ([]models.Inquiry, error)
}

func brandResponse(b models.Brand) models.BrandResponse {
	return models.BrandResponse{
		ID:          b.ID.String(),
		Name:        b.Name,
		LogoURL:     b.LogoURL,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func carImageResponse(img models.CarImage) models.CarImageResponse {
	return models.CarImageResponse{
		ID:        img.ID.String(),
		ImageURL:  img.ImageURL,
		AltText:   img.AltText,
		IsPrimary: img.IsPrimary,
		SortOrder: img.SortOrder,
	}
}

func inquiryData(inq *models.Inquiry) models.InquiryData {
	return models.InquiryData{
		ID:             inq.ID.String(),
		Car:            inq.CarID.String(),
		CollectorName:  inq.CollectorName,
		CollectorEmail: inq.CollectorEmail,
		CollectorPhone: inq.CollectorPhone,
		Message:        inq.Message,
		CreatedAt:      inq.CreatedAt,
	}
}
