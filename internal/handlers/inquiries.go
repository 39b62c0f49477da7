package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vintage-cars-backend/internal/models"
	"vintage-cars-backend/internal/validation"
)

type InquiriesHandler struct {
	store Store
}

func NewInquiriesHandler(store Store) *InquiriesHandler {
	return &InquiriesHandler{store: store}
}

// CreateInquiry godoc
// @Summary     Submit an inquiry
// @Description Records a buyer's contact-form submission for a car. All
// @Description field failures are reported together in one response.
// @Tags        inquiries
// @Accept      json
// @Produce     json
// @Param       inquiry body models.InquiryCreateRequest true "Inquiry"
// @Success     201 {object} models.InquiryCreatedResponse
// @Failure     400 {object} map[string][]string
// @Router      /api/cars/inquiries/ [post]
func (h *InquiriesHandler) CreateInquiry(c *gin.Context) {
	var req models.InquiryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "malformed request body"})
		return
	}

	validated, fieldErrors, err := validation.ValidateInquiry(req, h.store.CarExists)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to validate inquiry"})
		return
	}
	if fieldErrors != nil {
		c.JSON(http.StatusBadRequest, fieldErrors)
		return
	}

	inquiry, err := h.store.CreateInquiry(
		validated.CarID,
		validated.CollectorName,
		validated.CollectorEmail,
		validated.CollectorPhone,
		validated.Message,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create inquiry"})
		return
	}

	c.JSON(http.StatusCreated, models.InquiryCreatedResponse{
		Message: "Inquiry submitted successfully",
		Data:    inquiryData(inquiry),
	})
}
