package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"thikana_backend/internal/adapter/http/handlers"
	"thikana_backend/internal/adapter/http/middleware"
	"thikana_backend/internal/adapter/persistence/repository"
	"thikana_backend/internal/infrastructure/database"
	"thikana_backend/internal/infrastructure/payments"
	"thikana_backend/internal/security"
	"thikana_backend/internal/usecase"
	"thikana_backend/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const shutdownTimeout = 10 * time.Second

// Run starts the server and blocks until SIGINT/SIGTERM, then drains in-flight
// requests. The shutdown hook is the guaranteed release point for the process
// scope; the DynamoDB client itself is connectionless and needs no teardown.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	srv := &http.Server{
		Addr:    ":" + getenvDefault("PORT", "4000"),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err)
		}
	}()
	log.Printf("thikana server is running on %s", srv.Addr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
	log.Printf("thikana server stopped")
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	agreementRepo := repository.NewAgreementDynamoRepository(ddb)
	apartmentRepo := repository.NewApartmentDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)
	couponRepo := repository.NewCouponDynamoRepository(ddb)
	announcementRepo := repository.NewAnnouncementDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	agreementUseCase := usecase.NewAgreementUseCase(agreementRepo)
	roleUseCase := usecase.NewRoleUseCase(agreementRepo)
	apartmentUseCase := usecase.NewApartmentUseCase(apartmentRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, paymentGateway)
	couponUseCase := usecase.NewCouponUseCase(couponRepo)
	announcementUseCase := usecase.NewAnnouncementUseCase(announcementRepo)
	adminUseCase := usecase.NewAdminUseCase(agreementRepo, apartmentRepo)

	tokens := security.NewTokenManager(getenvDefault("TOKEN_SECRET", "local-dev-secret"))
	auth := middleware.RequireAuth(tokens)

	root := router.Group("")
	addHealthRoutes(root)
	addCommunityRoutes(root, auth,
		handlers.NewApartmentHandler(apartmentUseCase),
		handlers.NewAgreementHandler(agreementUseCase),
		handlers.NewUserHandler(roleUseCase),
		handlers.NewPaymentHandler(paymentUseCase),
		handlers.NewCouponHandler(couponUseCase),
		handlers.NewAnnouncementHandler(announcementUseCase),
		handlers.NewAdminHandler(adminUseCase),
	)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
