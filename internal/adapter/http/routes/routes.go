package routes

import (
	"log"
	"os"
	"strconv"

	_ "fieldops/docs" // This will be auto-generated
	"fieldops/internal/adapter/http/handlers"
	repository2 "fieldops/internal/adapter/persistence/repository"
	"fieldops/internal/infrastructure/cache"
	"fieldops/internal/infrastructure/database"
	"fieldops/internal/infrastructure/events"
	"fieldops/internal/infrastructure/platformapi"
	"fieldops/internal/usecase"
	"fieldops/internal/usecase/interfaces"

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

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	rdb := cache.NewRedisClient()

	sessionStore := repository2.NewSessionLRUStore()
	receiptRepo := repository2.NewDispatchReceiptDynamoRepository(ddb)

	var platformAPI interfaces.IPlatformAPI
	apiClient, err := platformapi.NewClient(os.Getenv("PLATFORM_API_BASE_URL"))
	if err != nil {
		log.Printf("Platform API client not configured: %v", err)
	} else {
		platformAPI = apiClient
	}

	invalidator := cache.NewDashboardInvalidator(rdb)

	var publisher interfaces.IEventPublisher
	if qp := events.NewQueuePublisher(); qp != nil {
		publisher = qp
	} else {
		log.Printf("Event publisher not configured: RABBITMQ_URL/AMQP_URL unset")
	}

	completionUseCase := usecase.NewCompletionUseCase(sessionStore, platformAPI, receiptRepo, invalidator, publisher)

	completionHandler := handlers.NewCompletionHandler(completionUseCase)
	catalogHandler := handlers.NewCatalogHandler(platformAPI, rdb)
	receiptHandler := handlers.NewReceiptHandler(receiptRepo)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCompletionRoutes(v1, completionHandler, catalogHandler, receiptHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
