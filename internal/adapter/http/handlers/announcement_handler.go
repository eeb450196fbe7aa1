package handlers

import (
	"errors"
	"net/http"

	request "thikana_backend/internal/adapter/http/dto/request"
	response "thikana_backend/internal/adapter/http/dto/response"
	"thikana_backend/internal/usecase"
	"thikana_backend/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAnnouncementPayload = pkg.NewDomainErrorSimple("INVALID_ANNOUNCEMENT_INPUT", "Title and description required", http.StatusBadRequest)

// AnnouncementHandler handles the community notice board.

type AnnouncementHandler struct {
	usecase usecase.IAnnouncementUseCase
}

func NewAnnouncementHandler(uc usecase.IAnnouncementUseCase) *AnnouncementHandler {
	return &AnnouncementHandler{usecase: uc}
}

func (h *AnnouncementHandler) Create(c *gin.Context) {
	var payload request.AnnouncementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAnnouncementPayload.HTTPStatus, errInvalidAnnouncementPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.Title, payload.Description)
	if err != nil {
		appErr := mapAnnouncementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.AnnouncementCreatedResponse{Message: "Announcement created successfully", AnnouncementID: created.ID})
}

// List returns announcements newest first.
func (h *AnnouncementHandler) List(c *gin.Context) {
	announcements, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapAnnouncementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAnnouncements(announcements))
}

func mapAnnouncementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAnnouncementInput):
		return errInvalidAnnouncementPayload
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
