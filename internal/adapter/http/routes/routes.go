package routes

import (
	"log"
	"os"
	"strconv"

	_ "github.com/raisilvacor/clinicadomobile/docs" // This will be auto-generated
	"github.com/raisilvacor/clinicadomobile/internal/adapter/http/handlers"
	repository2 "github.com/raisilvacor/clinicadomobile/internal/adapter/persistence/repository"
	"github.com/raisilvacor/clinicadomobile/internal/infrastructure/database"
	"github.com/raisilvacor/clinicadomobile/internal/infrastructure/identity"
	"github.com/raisilvacor/clinicadomobile/internal/infrastructure/payments"
	"github.com/raisilvacor/clinicadomobile/internal/infrastructure/risk"
	"github.com/raisilvacor/clinicadomobile/internal/usecase"
	"github.com/raisilvacor/clinicadomobile/internal/usecase/interfaces"

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

	var repairRepo interfaces.IRepairRepository = repository2.NewRepairDynamoRepository(ddb)
	var checklistRepo interfaces.IChecklistRepository = repository2.NewChecklistDynamoRepository(ddb)
	var orderRepo interfaces.IOrderRepository = repository2.NewOrderDynamoRepository(ddb)

	// Local BoltDB keeps the counter working through a DynamoDB outage. When
	// the file cannot be opened the service runs on DynamoDB alone.
	if boltDB, err := database.OpenFallbackBolt(); err != nil {
		log.Printf("[routes] fallback store unavailable, running without it: %v", err)
	} else {
		repairBolt, err1 := repository2.NewRepairBoltRepository(boltDB)
		checklistBolt, err2 := repository2.NewChecklistBoltRepository(boltDB)
		orderBolt, err3 := repository2.NewOrderBoltRepository(boltDB)
		if err1 != nil || err2 != nil || err3 != nil {
			log.Printf("[routes] fallback store init failed: %v %v %v", err1, err2, err3)
		} else {
			repairRepo = repository2.NewFallbackRepairRepository(repairRepo, repairBolt)
			checklistRepo = repository2.NewFallbackChecklistRepository(checklistRepo, checklistBolt)
			orderRepo = repository2.NewFallbackOrderRepository(orderRepo, orderBolt)
		}
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var riskProvider interfaces.IRiskScoreProvider
	riskHTTP, err := risk.NewHTTPProvider()
	if err != nil {
		log.Printf("Risk score provider not configured: %v", err)
	} else {
		riskProvider = riskHTTP
	}

	clock := identity.NewUTCClock()
	ids := identity.NewGenerator()

	// One locker for every usecase: the lifecycle, checklist and emission
	// paths all mutate the same Repair aggregates.
	locks := usecase.NewRepairLocker()

	repairUseCase := usecase.NewRepairUseCase(repairRepo, checklistRepo, orderRepo, riskProvider, clock, ids, locks)
	checklistUseCase := usecase.NewChecklistUseCase(checklistRepo, repairRepo, clock, ids, locks)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, repairRepo, checklistRepo, paymentGateway, clock, ids, locks)
	abandonmentUseCase := usecase.NewAbandonmentUseCase(repairRepo, clock)

	repairHandler := handlers.NewRepairHandler(repairUseCase)
	checklistHandler := handlers.NewChecklistHandler(checklistUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase, abandonmentUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRepairRoutes(v1, repairHandler, orderHandler)
	addChecklistRoutes(v1, checklistHandler)
	addOrderRoutes(v1, orderHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
