package routes

import (
	"net/http"

	"thikana_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathApartments    = "/apartments"
	PathAgreements    = "/agreements"
	PathPayments      = "/payments"
	PathCoupons       = "/coupons"
	PathAnnouncements = "/announcements"
)

func addCommunityRoutes(
	rg *gin.RouterGroup,
	auth gin.HandlerFunc,
	apartmentHandler *handlers.ApartmentHandler,
	agreementHandler *handlers.AgreementHandler,
	userHandler *handlers.UserHandler,
	paymentHandler *handlers.PaymentHandler,
	couponHandler *handlers.CouponHandler,
	announcementHandler *handlers.AnnouncementHandler,
	adminHandler *handlers.AdminHandler,
) {
	rg.GET(PathApartments, apartmentHandler.List)

	agreements := rg.Group(PathAgreements)
	{
		agreements.GET("", agreementHandler.List)
		agreements.GET("/:email", agreementHandler.GetByEmail)
		agreements.POST("", auth, agreementHandler.Apply)
		agreements.PUT("/accept/:email", auth, agreementHandler.Accept)
		agreements.PUT("/reject/:email", auth, agreementHandler.Reject)
		agreements.PUT("/remove-member/:email", auth, agreementHandler.RemoveMember)
	}

	rg.GET("/users/:email/role", userHandler.GetRole)

	rg.POST("/create-payment", auth, paymentHandler.CreateCheckoutSession)
	rg.POST("/create-payment-intent", auth, paymentHandler.CreatePaymentIntent)

	payments := rg.Group(PathPayments)
	{
		payments.POST("", auth, paymentHandler.Record)
		payments.GET("", auth, paymentHandler.List)
	}

	coupons := rg.Group(PathCoupons)
	{
		coupons.GET("", couponHandler.List)
		coupons.POST("", auth, couponHandler.Create)
		coupons.PUT("/:id", auth, couponHandler.Update)
		coupons.DELETE("/:id", auth, couponHandler.Delete)
	}

	announcements := rg.Group(PathAnnouncements)
	{
		announcements.GET("", announcementHandler.List)
		announcements.POST("", auth, announcementHandler.Create)
	}

	rg.GET("/admin/profile", auth, adminHandler.Profile)
}

func addHealthRoutes(rg *gin.RouterGroup) {
	rg.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "thikana server is running")
	})
}
