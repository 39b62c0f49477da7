package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"vintage-cars-backend/internal/models"
)

// ErrNotFound is returned when a query resolves no visible record.
var ErrNotFound = errors.New("record not found")

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation (duplicate brand name, most commonly).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

type Client struct {
	db *sql.DB
}

func NewClient(connectionString string) (*Client, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Client{db: db}, nil
}

func (c *Client) Close() error {
	return c.db.Close()
}

// --- Brands ---

func (c *Client) ListBrands() ([]models.Brand, error) {
	rows, err := c.db.Query(`
		SELECT id, name, logo_url, description, created_at, updated_at
		FROM brands
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	defer rows.Close()

	var brands []models.Brand
	for rows.Next() {
		var b models.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.LogoURL, &b.Description, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}

	return brands, nil
}

func (c *Client) GetBrand(brandID uuid.UUID) (*models.Brand, error) {
	var b models.Brand
	err := c.db.QueryRow(`
		SELECT id, name, logo_url, description, created_at, updated_at
		FROM brands
		WHERE id = $1
	`, brandID).Scan(&b.ID, &b.Name, &b.LogoURL, &b.Description, &b.CreatedAt, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}

	return &b, nil
}

func (c *Client) CreateBrand(name, logoURL, description string) (*models.Brand, error) {
	var b models.Brand
	err := c.db.QueryRow(`
		INSERT INTO brands (name, logo_url, description)
		VALUES ($1, $2, $3)
		RETURNING id, name, logo_url, description, created_at, updated_at
	`, name, logoURL, description).Scan(&b.ID, &b.Name, &b.LogoURL, &b.Description, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}

	return &b, nil
}

func (c *Client) UpdateBrand(brandID uuid.UUID, name, logoURL, description string) (*models.Brand, error) {
	var b models.Brand
	err := c.db.QueryRow(`
		UPDATE brands
		SET name = $1, logo_url = $2, description = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, name, logo_url, description, created_at, updated_at
	`, name, logoURL, description, brandID).Scan(&b.ID, &b.Name, &b.LogoURL, &b.Description, &b.CreatedAt, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		if IsUniqueViolation(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update brand: %w", err)
	}

	return &b, nil
}

// DeleteBrand removes a brand; the schema cascades the delete to its cars,
// their images and their inquiries.
func (c *Client) DeleteBrand(brandID uuid.UUID) error {
	res, err := c.db.Exec(`DELETE FROM brands WHERE id = $1`, brandID)
	if err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Cars ---

// CarFilter narrows the public car listing. Nil fields are unused; set
// fields are AND-composed.
type CarFilter struct {
	BrandID  *uuid.UUID
	Featured *bool
}

const carWithBrandColumns = `
	c.id, c.brand_id, c.model, c.year, c.price, c.description, c.is_featured, c.status, c.created_at, c.updated_at,
	b.id, b.name, b.logo_url, b.description, b.created_at, b.updated_at
`

func scanCarWithBrand(row interface{ Scan(...any) error }) (*models.CarWithBrand, error) {
	var cw models.CarWithBrand
	err := row.Scan(
		&cw.ID, &cw.BrandID, &cw.Model, &cw.Year, &cw.Price, &cw.Description,
		&cw.IsFeatured, &cw.Status, &cw.CreatedAt, &cw.UpdatedAt,
		&cw.Brand.ID, &cw.Brand.Name, &cw.Brand.LogoURL, &cw.Brand.Description,
		&cw.Brand.CreatedAt, &cw.Brand.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cw, nil
}

// ListActiveCars returns one page of active cars, newest first, plus the
// total count matching the filter.
func (c *Client) ListActiveCars(filter CarFilter, limit, offset int) ([]models.CarWithBrand, int, error) {
	where := `c.status = 'active'`
	args := []any{}
	if filter.BrandID != nil {
		args = append(args, *filter.BrandID)
		where += fmt.Sprintf(" AND c.brand_id = $%d", len(args))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		where += fmt.Sprintf(" AND c.is_featured = $%d", len(args))
	}

	var total int
	err := c.db.QueryRow(`SELECT COUNT(*) FROM cars c WHERE `+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count cars: %w", err)
	}

	args = append(args, limit, offset)
	query := `
		SELECT ` + carWithBrandColumns + `
		FROM cars c
		JOIN brands b ON b.id = c.brand_id
		WHERE ` + where + `
		ORDER BY c.created_at DESC
	` + fmt.Sprintf("LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list cars: %w", err)
	}
	defer rows.Close()

	var cars []models.CarWithBrand
	for rows.Next() {
		cw, err := scanCarWithBrand(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan car: %w", err)
		}
		cars = append(cars, *cw)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to list cars: %w", err)
	}

	return cars, total, nil
}

// GetActiveCar resolves a car only when its status is active; a draft, sold
// or archived car is indistinguishable from a missing one.
func (c *Client) GetActiveCar(carID uuid.UUID) (*models.CarWithBrand, error) {
	row := c.db.QueryRow(`
		SELECT `+carWithBrandColumns+`
		FROM cars c
		JOIN brands b ON b.id = c.brand_id
		WHERE c.id = $1 AND c.status = 'active'
	`, carID)

	cw, err := scanCarWithBrand(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get car: %w", err)
	}

	return cw, nil
}

// GetCar resolves a car regardless of status (admin paths only).
func (c *Client) GetCar(carID uuid.UUID) (*models.Car, error) {
	var car models.Car
	err := c.db.QueryRow(`
		SELECT id, brand_id, model, year, price, description, is_featured, status, created_at, updated_at
		FROM cars
		WHERE id = $1
	`, carID).Scan(
		&car.ID, &car.BrandID, &car.Model, &car.Year, &car.Price,
		&car.Description, &car.IsFeatured, &car.Status, &car.CreatedAt, &car.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get car: %w", err)
	}

	return &car, nil
}

func (c *Client) CarExists(carID uuid.UUID) (bool, error) {
	var exists bool
	err := c.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM cars WHERE id = $1)`, carID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check car: %w", err)
	}
	return exists, nil
}

func (c *Client) CreateCar(brandID uuid.UUID, model string, year int, price decimal.Decimal, description string, isFeatured bool, status string) (*models.Car, error) {
	var car models.Car
	err := c.db.QueryRow(`
		INSERT INTO cars (brand_id, model, year, price, description, is_featured, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, brand_id, model, year, price, description, is_featured, status, created_at, updated_at
	`, brandID, model, year, price, description, isFeatured, status).Scan(
		&car.ID, &car.BrandID, &car.Model, &car.Year, &car.Price,
		&car.Description, &car.IsFeatured, &car.Status, &car.CreatedAt, &car.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create car: %w", err)
	}

	return &car, nil
}

func (c *Client) UpdateCar(carID, brandID uuid.UUID, model string, year int, price decimal.Decimal, description string, isFeatured bool, status string) (*models.Car, error) {
	var car models.Car
	err := c.db.QueryRow(`
		UPDATE cars
		SET brand_id = $1, model = $2, year = $3, price = $4, description = $5, is_featured = $6, status = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING id, brand_id, model, year, price, description, is_featured, status, created_at, updated_at
	`, brandID, model, year, price, description, isFeatured, status, carID).Scan(
		&car.ID, &car.BrandID, &car.Model, &car.Year, &car.Price,
		&car.Description, &car.IsFeatured, &car.Status, &car.CreatedAt, &car.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update car: %w", err)
	}

	return &car, nil
}

func (c *Client) DeleteCar(carID uuid.UUID) error {
	res, err := c.db.Exec(`DELETE FROM cars WHERE id = $1`, carID)
	if err != nil {
		return fmt.Errorf("failed to delete car: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Car images ---

// ListCarImages returns a car's images in display order.
func (c *Client) ListCarImages(carID uuid.UUID) ([]models.CarImage, error) {
	rows, err := c.db.Query(`
		SELECT id, car_id, image_url, alt_text, is_primary, sort_order, created_at, updated_at
		FROM car_images
		WHERE car_id = $1
		ORDER BY sort_order ASC, created_at ASC
	`, carID)
	if err != nil {
		return nil, fmt.Errorf("failed to list car images: %w", err)
	}
	defer rows.Close()

	return scanCarImages(rows)
}

// ListCarImagesByCars fetches images for a whole page of cars in one query,
// keyed by car id, each slice in display order.
func (c *Client) ListCarImagesByCars(carIDs []uuid.UUID) (map[uuid.UUID][]models.CarImage, error) {
	if len(carIDs) == 0 {
		return map[uuid.UUID][]models.CarImage{}, nil
	}

	ids := make([]string, len(carIDs))
	for i, id := range carIDs {
		ids[i] = id.String()
	}

	rows, err := c.db.Query(`
		SELECT id, car_id, image_url, alt_text, is_primary, sort_order, created_at, updated_at
		FROM car_images
		WHERE car_id = ANY($1::uuid[])
		ORDER BY sort_order ASC, created_at ASC
	`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to list car images: %w", err)
	}
	defer rows.Close()

	images, err := scanCarImages(rows)
	if err != nil {
		return nil, err
	}

	byCar := make(map[uuid.UUID][]models.CarImage, len(carIDs))
	for _, img := range images {
		byCar[img.CarID] = append(byCar[img.CarID], img)
	}

	return byCar, nil
}

func scanCarImages(rows *sql.Rows) ([]models.CarImage, error) {
	var images []models.CarImage
	for rows.Next() {
		var img models.CarImage
		err := rows.Scan(
			&img.ID, &img.CarID, &img.ImageURL, &img.AltText,
			&img.IsPrimary, &img.SortOrder, &img.CreatedAt, &img.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan car image: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list car images: %w", err)
	}
	return images, nil
}

func (c *Client) CreateCarImage(carID uuid.UUID, imageURL, altText string, isPrimary bool, sortOrder int) (*models.CarImage, error) {
	var img models.CarImage
	err := c.db.QueryRow(`
		INSERT INTO car_images (car_id, image_url, alt_text, is_primary, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, car_id, image_url, alt_text, is_primary, sort_order, created_at, updated_at
	`, carID, imageURL, altText, isPrimary, sortOrder).Scan(
		&img.ID, &img.CarID, &img.ImageURL, &img.AltText,
		&img.IsPrimary, &img.SortOrder, &img.CreatedAt, &img.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create car image: %w", err)
	}

	return &img, nil
}

func (c *Client) DeleteCarImage(imageID uuid.UUID) error {
	res, err := c.db.Exec(`DELETE FROM car_images WHERE id = $1`, imageID)
	if err != nil {
		return fmt.Errorf("failed to delete car image: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// --- Inquiries ---

func (c *Client) CreateInquiry(carID uuid.UUID, collectorName, collectorEmail, collectorPhone, message string) (*models.Inquiry, error) {
	var inq models.Inquiry
	err := c.db.QueryRow(`
		INSERT INTO inquiries (car_id, collector_name, collector_email, collector_phone, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, car_id, collector_name, collector_email, collector_phone, message, created_at, updated_at
	`, carID, collectorName, collectorEmail, collectorPhone, message).Scan(
		&inq.ID, &inq.CarID, &inq.CollectorName, &inq.CollectorEmail,
		&inq.CollectorPhone, &inq.Message, &inq.CreatedAt, &inq.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	return &inq, nil
}

// ListInquiries returns inquiries newest first, optionally narrowed to one
// car. Admin triage path; inquiries are never mutated.
func (c *Client) ListInquiries(carID *uuid.UUID) ([]models.Inquiry, error) {
	query := `
		SELECT id, car_id, collector_name, collector_email, collector_phone, message, created_at, updated_at
		FROM inquiries
	`
	args := []any{}
	if carID != nil {
		query += ` WHERE car_id = $1`
		args = append(args, *carID)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := c.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []models.Inquiry
	for rows.Next() {
		var inq models.Inquiry
		err := rows.Scan(
			&inq.ID, &inq.CarID, &inq.CollectorName, &inq.CollectorEmail,
			&inq.CollectorPhone, &inq.Message, &inq.CreatedAt, &inq.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, inq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}

	return inquiries, nil
}
