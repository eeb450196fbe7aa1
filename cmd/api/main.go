package main

import (
	_ "thikana_backend/docs"
	"thikana_backend/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Thikana Community API
// @version         1.0
// @description     Residential community management (apartments, agreements, rent payments, coupons) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:4000

// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
