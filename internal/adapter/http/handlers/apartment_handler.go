package handlers

import (
	"net/http"
	"strconv"

	response "thikana_backend/internal/adapter/http/dto/response"
	"thikana_backend/internal/usecase"
	"thikana_backend/pkg"

	"github.com/gin-gonic/gin"
)

// ApartmentHandler serves the public apartment listings.

type ApartmentHandler struct {
	usecase usecase.IApartmentUseCase
}

func NewApartmentHandler(uc usecase.IApartmentUseCase) *ApartmentHandler {
	return &ApartmentHandler{usecase: uc}
}

// List returns one page of listings filtered by ?minRent and ?maxRent.
// Malformed query values fall back to their defaults rather than erroring,
// matching what the listing page expects.
func (h *ApartmentHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	minRent, _ := strconv.ParseFloat(c.DefaultQuery("minRent", "0"), 64)
	maxRent, _ := strconv.ParseFloat(c.DefaultQuery("maxRent", "0"), 64)

	result, err := h.usecase.ListPage(c.Request.Context(), page, minRent, maxRent)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromApartmentPage(result))
}
