package handlers

import (
	"errors"
	"net/http"

	response "thikana_backend/internal/adapter/http/dto/response"
	"thikana_backend/internal/usecase"
	"thikana_backend/pkg"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the admin dashboard summary.

type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

func (h *AdminHandler) Profile(c *gin.Context) {
	profile, err := h.usecase.Profile(c.Request.Context())
	if err != nil {
		appErr := mapAdminError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAdminProfile(profile))
}

func mapAdminError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrAdminNotFound):
		return pkg.NewDomainErrorSimple("ADMIN_NOT_FOUND", "Admin not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
