package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vintage-cars-backend/internal/database"
	"vintage-cars-backend/internal/models"
	"vintage-cars-backend/internal/validation"
)

// AdminHandler covers catalog management: brands, cars and images are
// created and mutated here only. Admin reads ignore the status visibility
// predicate used on the public paths.
type AdminHandler struct {
	store Store
}

func NewAdminHandler(store Store) *AdminHandler {
	return &AdminHandler{store: store}
}

func adminCarResponse(car *models.Car) models.AdminCarResponse {
	return models.AdminCarResponse{
		ID:          car.ID.String(),
		Brand:       car.BrandID.String(),
		Model:       car.Model,
		Year:        car.Year,
		Price:       car.Price.StringFixed(2),
		Description: car.Description,
		IsFeatured:  car.IsFeatured,
		Status:      car.Status,
		CreatedAt:   car.CreatedAt,
		UpdatedAt:   car.UpdatedAt,
	}
}

func (h *AdminHandler) brandExists(brandID uuid.UUID) (bool, error) {
	_, err := h.store.GetBrand(brandID)
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateBrand godoc
// @Summary     Create a brand
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Success     201 {object} models.BrandResponse
// @Failure     400 {object} map[string][]string
// @Router      /api/admin/brands [post]
func (h *AdminHandler) CreateBrand(c *gin.Context) {
	var req models.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "malformed request body"})
		return
	}

	input, fieldErrors := validation.ValidateBrand(req)
	if fieldErrors != nil {
		c.JSON(http.StatusBadRequest, fieldErrors)
		return
	}

	brand, err := h.store.CreateBrand(input.Name, input.LogoURL, input.Description)
	if database.IsUniqueViolation(err) {
		c.JSON(http.StatusBadRequest, validation.Errors{"name": {"brand with this name already exists."}})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create brand"})
		return
	}

	c.JSON(http.StatusCreated, brandResponse(*brand))
}

// UpdateBrand godoc
// @Summary     Update a brand
// @Tags        admin
// @Security    Bearer
// @Router      /api/admin/brands/{brand_id} [put]
func (h *AdminHandler) UpdateBrand(c *gin.Context) {
	brandID, err := uuid.Parse(c.Param("brand_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid brand id"})
		return
	}

	var req models.BrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "malformed request body"})
		return
	}

	input, fieldErrors := validation.ValidateBrand(req)
	if fieldErrors != nil {
		c.JSON(http.StatusBadRequest, fieldErrors)
		return
	}

	brand, err := h.store.UpdateBrand(brandID, input.Name, input.LogoURL, input.Description)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "brand not found"})
		return
	}
	if database.IsUniqueViolation(err) {
		c.JSON(http.StatusBadRequest, validation.Errors{"name": {"brand with this name already exists."}})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update brand"})
		return
	}

	c.JSON(http.StatusOK, brandResponse(*brand))
}

// DeleteBrand godoc
// @Summary     Delete a brand and, by cascade, its cars, images and inquiries
// @Tags        admin
// @Security    Bearer
// @Router      /api/admin/brands/{brand_id} [delete]
func (h *AdminHandler) DeleteBrand(c *gin.Context) {
	brandID, err := uuid.Parse(c.Param("brand_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid brand id"})
		return
	}

	err = h.store.DeleteBrand(brandID)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "brand not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete brand"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "brand deleted successfully"})
}

// CreateCar godoc
// @Summary     Create a car listing
// @Description Status defaults to draft; a listing becomes publicly visible
// @Description only once set to active.
// @Tags        admin
// @Security    Bearer
// @Router      /api/admin/cars [post]
func (h *AdminHandler) CreateCar(c *gin.Context) {
	var req models.CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "malformed request body"})
		return
	}

	input, fieldErrors, err := validation.ValidateCar(req, h.brandExists)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to validate car"})
		return
	}
	if fieldErrors != nil {
		c.JSON(http.StatusBadRequest, fieldErrors)
		return
	}

	car, err := h.store.CreateCar(input.BrandID, input.Model, input.Year, input.Price, input.Description, input.IsFeatured, input.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create car"})
		return
	}

	c.JSON(http.StatusCreated, adminCarResponse(car))
}

// UpdateCar godoc
// @Summary     Update a car listing
// @Tags        admin
// @Security    Bearer
// @Router      /api/admin/cars/{car_id} [put]
func (h *AdminHandler) UpdateCar(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("car_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid car id"})
		return
	}

	var req models.CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "malformed request body"})
		return
	}

	input, fieldErrors, err := validation.ValidateCar(req, h.brandExists)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to validate car"})
		return
	}
	if fieldErrors != nil {
		c.JSON(http.StatusBadRequest, fieldErrors)
		return
	}

	car, err := h.store.UpdateCar(carID, input.BrandID, input.Model, input.Year, input.Price, input.Description, input.IsFeatured, input.Status)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "car not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update car"})
		return
	}

	c.JSON(http.StatusOK, adminCarResponse(car))
}

// DeleteCar godoc
// @Summary     Delete a car and, by cascade, its images and inquiries
// @Tags        admin
// @Security    Bearer
// @Router      /api/admin/cars/{car_id} [delete]
func (h *AdminHandler) DeleteCar(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("car_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid car id"})
		return
	}

	err = h.store.DeleteCar(carID)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "car not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete car"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "car deleted successfully"})
}

// CreateCarImage godoc
// @Summary     Attach an image to a car
// @Tags        admin
// @Security    Bearer
// @Router      /api/admin/cars/{car_id}/images [post]
func (h *AdminHandler) CreateCarImage(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("car_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid car id"})
		return
	}

	if _, err := h.store.GetCar(carID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "car not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get car"})
		return
	}

	var req models.CarImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "malformed request body"})
		return
	}

	input, fieldErrors := validation.ValidateCarImage(req)
	if fieldErrors != nil {
		c.JSON(http.StatusBadRequest, fieldErrors)
		return
	}

	img, err := h.store.CreateCarImage(carID, input.ImageURL, input.AltText, input.IsPrimary, input.SortOrder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create car image"})
		return
	}

	c.JSON(http.StatusCreated, carImageResponse(*img))
}

// DeleteCarImage godoc
// @Summary     Delete a car image
// @Tags        admin
// @Security    Bearer
// @Router      /api/admin/images/{image_id} [delete]
func (h *AdminHandler) DeleteCarImage(c *gin.Context) {
	imageID, err := uuid.Parse(c.Param("image_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid image id"})
		return
	}

	err = h.store.DeleteCarImage(imageID)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "image not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to delete car image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "image deleted successfully"})
}

// ListInquiries godoc
// @Summary     List inquiries for triage
// @Description Read-only; inquiries are append-only records.
// @Tags        admin
// @Security    Bearer
// @Param       car query string false "Car ID"
// @Router      /api/admin/inquiries [get]
func (h *AdminHandler) ListInquiries(c *gin.Context) {
	var carID *uuid.UUID
	if raw := c.Query("car"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid car id"})
			return
		}
		carID = &id
	}

	inquiries, err := h.store.ListInquiries(carID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list inquiries"})
		return
	}

	results := make([]models.InquiryData, len(inquiries))
	for i := range inquiries {
		results[i] = inquiryData(&inquiries[i])
	}

	c.JSON(http.StatusOK, models.InquiryListResponse{Count: len(results), Results: results})
}
