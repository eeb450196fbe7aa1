package handlers

import (
	"errors"
	"net/http"

	response "thikana_backend/internal/adapter/http/dto/response"
	"thikana_backend/internal/usecase"
	"thikana_backend/pkg"

	"github.com/gin-gonic/gin"
)

// UserHandler answers role lookups for the frontend's route guards.

type UserHandler struct {
	usecase usecase.IRoleUseCase
}

func NewUserHandler(uc usecase.IRoleUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// GetRole resolves the caller's role from the agreement; anyone without an
// agreement is a plain user.
func (h *UserHandler) GetRole(c *gin.Context) {
	role, err := h.usecase.GetRole(c.Request.Context(), c.Param("email"))
	if err != nil {
		appErr := mapRoleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.RoleResponse{Role: string(role)})
}

func mapRoleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Email is required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Failed to get role", err, http.StatusInternalServerError)
	}
}
