package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vintage-cars-backend/internal/database"
	"vintage-cars-backend/internal/models"
)

type BrandsHandler struct {
	store Store
}

func NewBrandsHandler(store Store) *BrandsHandler {
	return &BrandsHandler{store: store}
}

// ListBrands godoc
// @Summary     List brands
// @Description Returns every brand, ordered by name. The brand set is small
// @Description and bounded, so the full set is returned without pagination.
// @Tags        brands
// @Produce     json
// @Success     200 {array} models.BrandResponse
// @Router      /api/cars/brands/ [get]
func (h *BrandsHandler) ListBrands(c *gin.Context) {
	brands, err := h.store.ListBrands()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to list brands"})
		return
	}

	out := make([]models.BrandResponse, len(brands))
	for i, b := range brands {
		out[i] = brandResponse(b)
	}

	c.JSON(http.StatusOK, out)
}

// GetBrand godoc
// @Summary     Get a brand
// @Tags        brands
// @Produce     json
// @Param       brand_id path string true "Brand ID"
// @Success     200 {object} models.BrandResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /api/cars/brands/{brand_id}/ [get]
func (h *BrandsHandler) GetBrand(c *gin.Context) {
	// A non-UUID id cannot resolve to a record, so it reads as absent.
	brandID, err := uuid.Parse(c.Param("brand_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "brand not found"})
		return
	}

	brand, err := h.store.GetBrand(brandID)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "brand not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get brand"})
		return
	}

	c.JSON(http.StatusOK, brandResponse(*brand))
}
