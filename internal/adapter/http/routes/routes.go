package routes

import (
	"log"
	"os"
	"strconv"

	_ "tradeportal/docs" // This will be auto-generated
	"tradeportal/internal/adapter/http/handlers"
	"tradeportal/internal/adapter/http/middleware"
	repository2 "tradeportal/internal/adapter/persistence/repository"
	"tradeportal/internal/infrastructure/alerts"
	"tradeportal/internal/infrastructure/database"
	"tradeportal/internal/infrastructure/email"
	"tradeportal/internal/infrastructure/payments"
	"tradeportal/internal/usecase"
	"tradeportal/internal/usecase/interfaces"

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

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	jobRepo := repository2.NewJobDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	templateRepo := repository2.NewQuoteTemplateDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)
	notificationRepo := repository2.NewNotificationDynamoRepository(ddb)
	reviewRepo := repository2.NewReviewDynamoRepository(ddb)
	tokenStore := repository2.NewTokenDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var smsSender interfaces.ISMSSender
	twilioSender, err := alerts.NewTwilioSMSSender()
	if err != nil {
		log.Printf("Twilio SMS sender not configured: %v", err)
	} else {
		smsSender = twilioSender
	}

	matcher := usecase.NewMatchingUseCase(userRepo)
	fanout := usecase.NewNotificationFanout(notificationRepo, email.NewLogSender(), smsSender)

	jobUseCase := usecase.NewJobUseCase(jobRepo, quoteRepo, userRepo, matcher, fanout)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, templateRepo, jobRepo)
	paymentUseCase := usecase.NewPaymentUseCase(jobRepo, paymentGateway)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, jobRepo)
	inbox := usecase.NewNotificationInbox(notificationRepo)

	jobHandler := handlers.NewJobHandler(jobUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	reviewHandler := handlers.NewReviewHandler(reviewUseCase)
	notificationHandler := handlers.NewNotificationHandler(inbox)

	v1 := router.Group("/v1")
	v1.Use(middleware.NoStore())
	addPingRoutes(v1)

	authed := v1.Group("")
	authed.Use(middleware.Identity(tokenStore))
	addJobRoutes(authed, jobHandler, quoteHandler, paymentHandler)
	addQuoteTemplateRoutes(authed, quoteHandler)
	addPaymentRoutes(authed, paymentHandler)
	addReviewRoutes(authed, reviewHandler)
	addNotificationRoutes(authed, notificationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Auth-Token"},
		AllowCredentials: true,
	}))
}

func corsOrigins() []string {
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		return []string{v}
	}
	return []string{"http://localhost:3000"}
}
