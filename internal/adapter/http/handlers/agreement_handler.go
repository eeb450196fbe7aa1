package handlers

import (
	"errors"
	"net/http"

	request "thikana_backend/internal/adapter/http/dto/request"
	response "thikana_backend/internal/adapter/http/dto/response"
	"thikana_backend/internal/domain/entities"
	"thikana_backend/internal/usecase"
	"thikana_backend/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAgreementPayload = pkg.NewDomainErrorSimple("INVALID_AGREEMENT_INPUT", "Invalid agreement payload", http.StatusBadRequest)

// AgreementHandler handles HTTP requests for the tenancy-agreement lifecycle.

type AgreementHandler struct {
	usecase usecase.IAgreementUseCase
}

func NewAgreementHandler(uc usecase.IAgreementUseCase) *AgreementHandler {
	return &AgreementHandler{usecase: uc}
}

// Apply creates a pending agreement for the applicant.
func (h *AgreementHandler) Apply(c *gin.Context) {
	var payload request.AgreementApplyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAgreementPayload.HTTPStatus, errInvalidAgreementPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Apply(c.Request.Context(), entities.Agreement{
		UserName:    payload.UserName,
		UserEmail:   payload.ResolveEmail(),
		UserImage:   payload.UserImage,
		FloorNo:     payload.FloorNo,
		BlockName:   payload.BlockName,
		ApartmentNo: payload.ApartmentNo,
		Rent:        payload.Rent,
	})
	if err != nil {
		appErr := mapAgreementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAgreement(created))
}

// GetByEmail returns the agreement for an applicant email.
func (h *AgreementHandler) GetByEmail(c *gin.Context) {
	agreement, err := h.usecase.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		appErr := mapAgreementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAgreement(agreement))
}

// List returns every agreement regardless of status.
func (h *AgreementHandler) List(c *gin.Context) {
	agreements, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapAgreementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAgreements(agreements))
}

// Accept decides the pending agreement in favor of the applicant. A zero-count
// response means another decision already won the pending record.
func (h *AgreementHandler) Accept(c *gin.Context) {
	res, err := h.usecase.Accept(c.Request.Context(), c.Param("email"))
	if err != nil {
		appErr := mapAgreementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAcceptResult(res))
}

// Reject decides the pending agreement against the applicant.
func (h *AgreementHandler) Reject(c *gin.Context) {
	modified, err := h.usecase.Reject(c.Request.Context(), c.Param("email"))
	if err != nil {
		appErr := mapAgreementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.AgreementRejectedResponse{ModifiedCount: modified})
}

// RemoveMember reverts an accepted member to a plain user.
func (h *AgreementHandler) RemoveMember(c *gin.Context) {
	if err := h.usecase.RemoveMember(c.Request.Context(), c.Param("email")); err != nil {
		appErr := mapAgreementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member role reverted to user successfully."})
}

func mapAgreementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail), errors.Is(err, usecase.ErrInvalidAgreementDraft):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDuplicatePendingAgreement):
		return pkg.NewDomainErrorSimple("PENDING_AGREEMENT_EXISTS", "You already have a pending agreement.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAgreementNotFound):
		return pkg.NewDomainErrorSimple("AGREEMENT_NOT_FOUND", "No agreement found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMemberNotFound):
		return pkg.NewDomainErrorSimple("MEMBER_NOT_FOUND", "Member not found or already removed.", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
