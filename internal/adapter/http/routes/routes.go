package routes

import (
	"log"
	"os"
	"strconv"

	_ "djflowerz_payments/docs" // This will be auto-generated
	"djflowerz_payments/internal/adapter/http/handlers"
	repository2 "djflowerz_payments/internal/adapter/persistence/repository"
	"djflowerz_payments/internal/domain/entities"
	"djflowerz_payments/internal/infrastructure/database"
	"djflowerz_payments/internal/infrastructure/notify"
	"djflowerz_payments/internal/infrastructure/payments"
	"djflowerz_payments/internal/usecase"
	"djflowerz_payments/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	dispatcher := getRoutes()
	defer dispatcher.Shutdown()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() *notify.Dispatcher {
	ddb := database.ConnectDynamoDB()

	intentRepo := repository2.NewPaymentIntentDynamoRepository(ddb)
	bookingRepo := repository2.NewBookingDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	subscriptionRepo := repository2.NewSubscriptionDynamoRepository(ddb)

	var paystackGateway interfaces.IPaystackGateway
	psGateway, err := payments.NewPaystackGateway(os.Getenv("PAYSTACK_SECRET_KEY"))
	if err != nil {
		log.Printf("Paystack gateway not configured: %v", err)
	} else {
		paystackGateway = psGateway
	}

	var mpesaGateway interfaces.IMpesaGateway
	darajaGateway, err := payments.NewMpesaGateway(payments.MpesaConfig{
		ConsumerKey:    os.Getenv("MPESA_CONSUMER_KEY"),
		ConsumerSecret: os.Getenv("MPESA_CONSUMER_SECRET"),
		Shortcode:      os.Getenv("MPESA_SHORTCODE"),
		Passkey:        os.Getenv("MPESA_PASSKEY"),
		CallbackURL:    os.Getenv("MPESA_CALLBACK_URL"),
	})
	if err != nil {
		log.Printf("M-Pesa gateway not configured: %v", err)
	} else {
		mpesaGateway = darajaGateway
	}

	dispatcher := buildDispatcher()

	checkoutUseCase := usecase.NewCheckoutUseCase(intentRepo, bookingRepo, orderRepo, paystackGateway, mpesaGateway, os.Getenv("PAYMENT_CURRENCY"), payments.NormalizeMsisdn)
	reconciliationUseCase := usecase.NewReconciliationUseCase(intentRepo, bookingRepo, orderRepo, subscriptionRepo, paystackGateway)

	bookingHandler := handlers.NewBookingHandler(checkoutUseCase)
	paymentHandler := handlers.NewPaymentHandler(checkoutUseCase, reconciliationUseCase, dispatcher)
	webhookHandler := handlers.NewWebhookHandler(reconciliationUseCase, dispatcher,
		os.Getenv("PAYSTACK_SECRET_KEY"), os.Getenv("MPESA_CALLBACK_TOKEN"))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, bookingHandler, paymentHandler, webhookHandler)

	return dispatcher
}

// buildDispatcher wires whichever notification transports have credentials;
// anything without them falls through to the console notifier.
func buildDispatcher() *notify.Dispatcher {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}

	dispatcher := notify.NewDispatcher(64, logger)

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		tg, err := notify.NewTelegramNotifier(token, os.Getenv("TELEGRAM_CHAT_ID"))
		if err != nil {
			log.Printf("Telegram notifier not configured: %v", err)
		} else {
			dispatcher.Register(entities.ChannelTelegram, tg)
		}
	}

	if host := os.Getenv("SMTP_HOST"); host != "" {
		mailer, err := notify.NewSMTPNotifier(notify.SMTPConfig{
			Host:     host,
			Port:     os.Getenv("SMTP_PORT"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     os.Getenv("SMTP_FROM"),
			AdminTo:  os.Getenv("ADMIN_EMAIL"),
		})
		if err != nil {
			log.Printf("SMTP notifier not configured: %v", err)
		} else {
			dispatcher.Register(entities.ChannelEmail, mailer)
		}
	}

	dispatcher.Register(entities.ChannelConsole, notify.NewConsole())
	dispatcher.Start(2)
	return dispatcher
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
