package handlers_test

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"vintage-cars-backend/internal/database"
	"vintage-cars-backend/internal/models"
)

// fakeStore is an in-memory handlers.Store with the same visible semantics
// as the Postgres client: name-ordered brands, newest-first cars, display-
// ordered images, cascading deletes and unique brand names.
type fakeStore struct {
	brands    []models.Brand
	cars      []models.Car
	images    []models.CarImage
	inquiries []models.Inquiry

	clock time.Time
}

func newFakeStore() *fakeStore {
	return &fakeStore{clock: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

// tick returns a strictly increasing timestamp so creation order is
// observable through created_at ordering.
func (s *fakeStore) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *fakeStore) ListBrands() ([]models.Brand, error) {
	out := append([]models.Brand(nil), s.brands...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *fakeStore) GetBrand(brandID uuid.UUID) (*models.Brand, error) {
	for i := range s.brands {
		if s.brands[i].ID == brandID {
			b := s.brands[i]
			return &b, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *fakeStore) CreateBrand(name, logoURL, description string) (*models.Brand, error) {
	for i := range s.brands {
		if s.brands[i].Name == name {
			return nil, &pq.Error{Code: "23505"}
		}
	}
	now := s.tick()
	b := models.Brand{
		ID:          uuid.New(),
		Name:        name,
		LogoURL:     logoURL,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.brands = append(s.brands, b)
	return &b, nil
}

func (s *fakeStore) UpdateBrand(brandID uuid.UUID, name, logoURL, description string) (*models.Brand, error) {
	for i := range s.brands {
		if s.brands[i].Name == name && s.brands[i].ID != brandID {
			return nil, &pq.Error{Code: "23505"}
		}
	}
	for i := range s.brands {
		if s.brands[i].ID == brandID {
			s.brands[i].Name = name
			s.brands[i].LogoURL = logoURL
			s.brands[i].Description = description
			s.brands[i].UpdatedAt = s.tick()
			b := s.brands[i]
			return &b, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *fakeStore) DeleteBrand(brandID uuid.UUID) error {
	for i := range s.brands {
		if s.brands[i].ID == brandID {
			s.brands = append(s.brands[:i], s.brands[i+1:]...)
			for _, car := range s.carsOfBrand(brandID) {
				s.DeleteCar(car.ID)
			}
			return nil
		}
	}
	return database.ErrNotFound
}

func (s *fakeStore) carsOfBrand(brandID uuid.UUID) []models.Car {
	var out []models.Car
	for _, c := range s.cars {
		if c.BrandID == brandID {
			out = append(out, c)
		}
	}
	return out
}

func (s *fakeStore) ListActiveCars(filter database.CarFilter, limit, offset int) ([]models.CarWithBrand, int, error) {
	var matched []models.Car
	for _, c := range s.cars {
		if c.Status != models.StatusActive {
			continue
		}
		if filter.BrandID != nil && c.BrandID != *filter.BrandID {
			continue
		}
		if filter.Featured != nil && c.IsFeatured != *filter.Featured {
			continue
		}
		matched = append(matched, c)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := len(matched)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	var out []models.CarWithBrand
	for _, c := range matched[offset:end] {
		brand, err := s.GetBrand(c.BrandID)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, models.CarWithBrand{Car: c, Brand: *brand})
	}
	return out, total, nil
}

func (s *fakeStore) GetActiveCar(carID uuid.UUID) (*models.CarWithBrand, error) {
	for _, c := range s.cars {
		if c.ID == carID && c.Status == models.StatusActive {
			brand, err := s.GetBrand(c.BrandID)
			if err != nil {
				return nil, err
			}
			return &models.CarWithBrand{Car: c, Brand: *brand}, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *fakeStore) GetCar(carID uuid.UUID) (*models.Car, error) {
	for i := range s.cars {
		if s.cars[i].ID == carID {
			c := s.cars[i]
			return &c, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *fakeStore) CarExists(carID uuid.UUID) (bool, error) {
	_, err := s.GetCar(carID)
	if err == database.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (s *fakeStore) CreateCar(brandID uuid.UUID, model string, year int, price decimal.Decimal, description string, isFeatured bool, status string) (*models.Car, error) {
	now := s.tick()
	c := models.Car{
		ID:          uuid.New(),
		BrandID:     brandID,
		Model:       model,
		Year:        year,
		Price:       price,
		Description: description,
		IsFeatured:  isFeatured,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.cars = append(s.cars, c)
	return &c, nil
}

func (s *fakeStore) UpdateCar(carID, brandID uuid.UUID, model string, year int, price decimal.Decimal, description string, isFeatured bool, status string) (*models.Car, error) {
	for i := range s.cars {
		if s.cars[i].ID == carID {
			s.cars[i].BrandID = brandID
			s.cars[i].Model = model
			s.cars[i].Year = year
			s.cars[i].Price = price
			s.cars[i].Description = description
			s.cars[i].IsFeatured = isFeatured
			s.cars[i].Status = status
			s.cars[i].UpdatedAt = s.tick()
			c := s.cars[i]
			return &c, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *fakeStore) DeleteCar(carID uuid.UUID) error {
	for i := range s.cars {
		if s.cars[i].ID == carID {
			s.cars = append(s.cars[:i], s.cars[i+1:]...)
			var images []models.CarImage
			for _, img := range s.images {
				if img.CarID != carID {
					images = append(images, img)
				}
			}
			s.images = images
			var inquiries []models.Inquiry
			for _, inq := range s.inquiries {
				if inq.CarID != carID {
					inquiries = append(inquiries, inq)
				}
			}
			s.inquiries = inquiries
			return nil
		}
	}
	return database.ErrNotFound
}

func (s *fakeStore) ListCarImages(carID uuid.UUID) ([]models.CarImage, error) {
	var out []models.CarImage
	for _, img := range s.images {
		if img.CarID == carID {
			out = append(out, img)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *fakeStore) ListCarImagesByCars(carIDs []uuid.UUID) (map[uuid.UUID][]models.CarImage, error) {
	out := make(map[uuid.UUID][]models.CarImage, len(carIDs))
	for _, id := range carIDs {
		images, err := s.ListCarImages(id)
		if err != nil {
			return nil, err
		}
		if len(images) > 0 {
			out[id] = images
		}
	}
	return out, nil
}

func (s *fakeStore) CreateCarImage(carID uuid.UUID, imageURL, altText string, isPrimary bool, sortOrder int) (*models.CarImage, error) {
	now := s.tick()
	img := models.CarImage{
		ID:        uuid.New(),
		CarID:     carID,
		ImageURL:  imageURL,
		AltText:   altText,
		IsPrimary: isPrimary,
		SortOrder: sortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.images = append(s.images, img)
	return &img, nil
}

func (s *fakeStore) DeleteCarImage(imageID uuid.UUID) error {
	for i := range s.images {
		if s.images[i].ID == imageID {
			s.images = append(s.images[:i], s.images[i+1:]...)
			return nil
		}
	}
	return database.ErrNotFound
}

func (s *fakeStore) CreateInquiry(carID uuid.UUID, collectorName, collectorEmail, collectorPhone, message string) (*models.Inquiry, error) {
	now := s.tick()
	inq := models.Inquiry{
		ID:             uuid.New(),
		CarID:          carID,
		CollectorName:  collectorName,
		CollectorEmail: collectorEmail,
		CollectorPhone: collectorPhone,
		Message:        message,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	s.inquiries = append(s.inquiries, inq)
	return &inq, nil
}

func (s *fakeStore) ListInquiries(carID *uuid.UUID) ([]models.Inquiry, error) {
	var out []models.Inquiry
	for _, inq := range s.inquiries {
		if carID != nil && inq.CarID != *carID {
			continue
		}
		out = append(out, inq)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
