package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vintage-cars-backend/internal/catalog"
	"vintage-cars-backend/internal/database"
	"vintage-cars-backend/internal/models"
)

type CarsHandler struct {
	store   Store
	baseURL string
}

func NewCarsHandler(store Store, baseURL string) *CarsHandler {
	return &CarsHandler{store: store, baseURL: baseURL}
}

// ListCars godoc
// @Summary     List active cars
// @Description Returns active cars only, newest first, 20 per page.
// @Tags        cars
// @Produce     json
// @Param       brand    query string false "Brand ID (exact match)"
// @Param       featured query string false "Featured flag (true/1/yes)"
// @Param       page     query int    false "Page number"
// @Success     200 {object} models.CarListResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /api/cars/ [get]
func (h *CarsHandler) ListCars(c *gin.Context) {
	var filter database.CarFilter

	if raw := c.Query("brand"); raw != "" {
		brandID, err := uuid.Parse(raw)
		if err != nil {
			// An unparsable brand id cannot match any car.
			c.JSON(http.StatusOK, models.CarListResponse{Count: 0, Results: []models.CarListItem{}})
			return
		}
		filter.BrandID = &brandID
	}

	if raw, ok := c.GetQuery("featured"); ok {
		featured := catalog.ParseFeatured(raw)
		filter.Featured = &featured
	}

	page, ok := catalog.ParsePage(c.Query("page"))
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "invalid page"})
		return
	}

	cars, total, err := h.store.ListActiveCars(filter, catalog.PageSize, (page-1)*catalog.PageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list cars"})
		return
	}

	if page > catalog.PageCount(total) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "invalid page"})
		return
	}

	carIDs := make([]uuid.UUID, len(cars))
	for i, cw := range cars {
		carIDs[i] = cw.ID
	}

	imagesByCar, err := h.store.ListCarImagesByCars(carIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list cars"})
		return
	}

	results := make([]models.CarListItem, len(cars))
	for i, cw := range cars {
		results[i] = models.CarListItem{
			ID:           cw.ID.String(),
			Brand:        brandResponse(cw.Brand),
			Model:        cw.Model,
			Year:         cw.Year,
			Price:        cw.Price.StringFixed(2),
			IsFeatured:   cw.IsFeatured,
			Status:       cw.Status,
			PrimaryImage: catalog.PrimaryImageURL(imagesByCar[cw.ID]),
			CreatedAt:    cw.CreatedAt,
		}
	}

	next, previous := catalog.PageLinks(h.baseURL, c.Request.URL, page, total)

	c.JSON(http.StatusOK, models.CarListResponse{
		Count:    total,
		Next:     next,
		Previous: previous,
		Results:  results,
	})
}

// GetCar godoc
// @Summary     Get an active car
// @Description Status is part of the visibility predicate: draft, sold and
// @Description archived cars 404 exactly like missing ones.
// @Tags        cars
// @Produce     json
// @Param       car_id path string true "Car ID"
// @Success     200 {object} models.CarDetailResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /api/cars/{car_id}/ [get]
func (h *CarsHandler) GetCar(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("car_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "car not found"})
		return
	}

	cw, err := h.store.GetActiveCar(carID)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "car not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get car"})
		return
	}

	images, err := h.store.ListCarImages(carID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get car"})
		return
	}

	imageResponses := make([]models.CarImageResponse, len(images))
	for i, img := range images {
		imageResponses[i] = carImageResponse(img)
	}

	c.JSON(http.StatusOK, models.CarDetailResponse{
		ID:          cw.ID.String(),
		Brand:       brandResponse(cw.Brand),
		Model:       cw.Model,
		Year:        cw.Year,
		Price:       cw.Price.StringFixed(2),
		Description: cw.Description,
		IsFeatured:  cw.IsFeatured,
		Status:      cw.Status,
		Images:      imageResponses,
		CreatedAt:   cw.CreatedAt,
		UpdatedAt:   cw.UpdatedAt,
	})
}
