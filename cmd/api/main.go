package main

import (
	_ "rockstar_services/docs"
	"rockstar_services/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Rockstar Services API
// @version         1.0
// @description     Invoice wizard and admin dashboard for a painting and handyman business.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
