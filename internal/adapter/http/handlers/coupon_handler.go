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

var errInvalidCouponPayload = pkg.NewDomainErrorSimple("INVALID_COUPON_INPUT", "Coupon code and discount are required", http.StatusBadRequest)

// CouponHandler handles discount-code CRUD.

type CouponHandler struct {
	usecase usecase.ICouponUseCase
}

func NewCouponHandler(uc usecase.ICouponUseCase) *CouponHandler {
	return &CouponHandler{usecase: uc}
}

func (h *CouponHandler) Create(c *gin.Context) {
	payload, ok := bindCouponPayload(c)
	if !ok {
		return
	}

	discount, err := payload.ResolveDiscount()
	if err != nil || payload.ResolveCode() == "" {
		c.JSON(errInvalidCouponPayload.HTTPStatus, errInvalidCouponPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ResolveCode(), discount, payload.Description)
	if err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.CouponCreatedResponse{Message: "Coupon added", CouponID: created.ID})
}

func (h *CouponHandler) Update(c *gin.Context) {
	payload, ok := bindCouponPayload(c)
	if !ok {
		return
	}

	discount, err := payload.ResolveDiscount()
	if err != nil || payload.ResolveCode() == "" {
		c.JSON(errInvalidCouponPayload.HTTPStatus, errInvalidCouponPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ResolveCode(), discount, payload.Description)
	if err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCoupon(updated))
}

func (h *CouponHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted successfully"})
}

// List returns coupons newest first, optionally filtered by ?code.
func (h *CouponHandler) List(c *gin.Context) {
	coupons, err := h.usecase.List(c.Request.Context(), c.Query("code"))
	if err != nil {
		appErr := mapCouponError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCoupons(coupons))
}

func bindCouponPayload(c *gin.Context) (request.CouponRequest, bool) {
	var payload request.CouponRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCouponPayload.HTTPStatus, errInvalidCouponPayload.ToHTTPError())
		return request.CouponRequest{}, false
	}
	return payload, true
}

func mapCouponError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCouponInput), errors.Is(err, usecase.ErrInvalidCouponID):
		return errInvalidCouponPayload
	case errors.Is(err, usecase.ErrCouponNotFound):
		return pkg.NewDomainErrorSimple("COUPON_NOT_FOUND", "Coupon not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
