package handlers

import (
	"errors"
	"log"
	"net/http"

	request "thikana_backend/internal/adapter/http/dto/request"
	response "thikana_backend/internal/adapter/http/dto/response"
	"thikana_backend/internal/domain/entities"
	"thikana_backend/internal/usecase"
	"thikana_backend/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles the rent payment ledger and gateway delegation.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// Record appends a confirmed charge to the ledger.
func (h *PaymentHandler) Record(c *gin.Context) {
	var payload request.PaymentRecordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Record(c.Request.Context(), entities.Payment{
		UserEmail:       payload.UserEmail,
		Amount:          payload.Amount,
		Month:           payload.Month,
		PaymentIntentID: payload.PaymentIntentID,
		ApartmentNo:     payload.ApartmentNo,
		BlockName:       payload.BlockName,
		FloorNo:         payload.FloorNo,
	})
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.PaymentRecordedResponse{Message: "Payment recorded", ID: created.ID})
}

// List returns ledger rows newest first, optionally filtered by ?email.
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.usecase.List(c.Request.Context(), c.Query("email"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// CreateCheckoutSession starts a hosted checkout at the payment provider.
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	var payload request.CheckoutSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.CreateCheckoutSession(c.Request.Context(), entities.CheckoutRequest{
		UserEmail:   payload.ResolveEmail(),
		Amount:      payload.Amount,
		Month:       payload.Month,
		ApartmentNo: payload.ApartmentDetails.ApartmentNo,
		BlockName:   payload.ApartmentDetails.BlockName,
		FloorNo:     payload.ApartmentDetails.FloorNo,
	})
	if err != nil {
		log.Printf("[payment][handler] checkout session failed email=%s err=%v", payload.UserEmail, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCheckoutSession(session))
}

// CreatePaymentIntent starts an in-app payment at the provider.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var payload request.PaymentIntentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	intent, err := h.usecase.CreatePaymentIntent(c.Request.Context(), payload.Amount, payload.Email)
	if err != nil {
		log.Printf("[payment][handler] payment intent failed email=%s err=%v", payload.Email, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentIntent(intent))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingPaymentFields):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", "Missing required fields", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayFailure):
		// The provider failure detail stays in the server log only.
		return pkg.NewDomainErrorSimple("PAYMENT_FAILED", "Payment failed", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
