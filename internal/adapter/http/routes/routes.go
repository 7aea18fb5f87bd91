package routes

import (
	"os"
	"strconv"

	_ "rockstar_services/docs" // This will be auto-generated
	"rockstar_services/internal/adapter/http/handlers"
	"rockstar_services/internal/adapter/persistence/repository"
	"rockstar_services/internal/infrastructure/cache"
	"rockstar_services/internal/infrastructure/database"
	"rockstar_services/internal/infrastructure/logging"
	"rockstar_services/internal/usecase"
	"rockstar_services/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		logging.Logger().Fatalf("Failed to startup the application: %v", err)
	}
}

func getRoutes() {
	log := logging.Logger()

	sessionStore := newSessionStore()
	invoiceRepo := newInvoiceRepository()
	userRepo := repository.NewUserMemoryRepository()
	notifier := logging.NewLogrusNotifier(log)

	wizardUseCase := usecase.NewWizardUseCase(sessionStore, invoiceRepo, notifier)
	dashboardUseCase := usecase.NewDashboardUseCase(invoiceRepo, userRepo)

	sessionHandler := handlers.NewSessionHandler(wizardUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	catalogHandler := handlers.NewCatalogHandler()

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWizardRoutes(v1, sessionHandler)
	addDashboardRoutes(v1, dashboardHandler)
	addCatalogRoutes(v1, catalogHandler)
}

// newSessionStore picks Redis when REDIS_ADDR is set, falling back to the
// in-process store when it is absent or unreachable.
func newSessionStore() interfaces.ISessionStore {
	log := logging.Logger()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Info("REDIS_ADDR not set; using in-memory session store")
		return repository.NewSessionMemoryStore()
	}

	client, err := cache.ConnectRedis(addr)
	if err != nil {
		log.WithField("addr", addr).Warnf("redis unavailable, using in-memory session store: %v", err)
		return repository.NewSessionMemoryStore()
	}
	log.WithField("addr", addr).Info("using redis session store")
	return repository.NewSessionRedisStore(client)
}

// newInvoiceRepository picks DynamoDB when INVOICE_STORE=dynamodb, otherwise
// the seeded in-memory repository the dashboard demos with.
func newInvoiceRepository() interfaces.IInvoiceRepository {
	if os.Getenv("INVOICE_STORE") == "dynamodb" {
		logging.Logger().Info("using dynamodb invoice repository")
		return repository.NewInvoiceDynamoRepository(database.ConnectDynamoDB())
	}
	return repository.NewInvoiceMemoryRepository()
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logging.Logger().Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AddAllowMethods("GET", "POST", "PUT", "DELETE", "OPTIONS")
	router.Use(cors.New(corsConfig))
}
