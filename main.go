package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expertbridge/config"
	"expertbridge/database"
	adminRepoPkg "expertbridge/database/repository/admin"
	professionalRepoPkg "expertbridge/database/repository/professional"
	reviewRepoPkg "expertbridge/database/repository/review"
	subscriptionRepoPkg "expertbridge/database/repository/subscription"
	"expertbridge/handlers"
	"expertbridge/routes"
	adminSvc "expertbridge/services/admin"
	"expertbridge/services/notification"
	"expertbridge/services/payment"
	professionalSvc "expertbridge/services/professional"
	reviewSvc "expertbridge/services/review"
	"expertbridge/services/storage"
	subscriptionSvc "expertbridge/services/subscription"
	"expertbridge/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	mongoClient, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to database: %v", err)
	}
	defer database.Disconnect(mongoClient)
	db := mongoClient.Database(cfg.DatabaseName)

	cacheClient := utils.NewCacheClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisCacheDB)

	imageStore, err := storage.NewImageStore(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize image storage: %v", err)
	}
	mailer := notification.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)

	stripe.Key = cfg.StripeKey
	gateway := payment.NewGateway(cfg.StripeKey)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	professionalRepo := professionalRepoPkg.NewMongoProfessionalRepo(db)
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo(db)
	subscriptionRepo := subscriptionRepoPkg.NewMongoSubscriptionRepo(db)
	adminRepo := adminRepoPkg.NewMongoAdminRepo(db)

	// services.
	professionalService := &professionalSvc.DefaultProfessionalService{
		Repo:          professionalRepo,
		Reviews:       reviewRepo,
		Subscriptions: subscriptionRepo,
		Mailer:        mailer,
		Images:        imageStore,
	}
	reviewService := &reviewSvc.DefaultReviewService{
		Repo:          reviewRepo,
		Professionals: professionalRepo,
		AutoApprove:   cfg.ReviewAutoApprove,
	}
	subscriptionService := &subscriptionSvc.DefaultSubscriptionService{
		Repo:          subscriptionRepo,
		Professionals: professionalRepo,
		Gateway:       gateway,
		Mailer:        mailer,
		CallbackURL:   cfg.PaymentCallbackURL,
	}
	adminService := &adminSvc.DefaultAdminService{
		Repo:          adminRepo,
		Professionals: professionalRepo,
		Reviews:       reviewRepo,
		Cache:         cacheClient,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth: &handlers.AuthHandler{
			Professionals: professionalService,
			Admins:        adminService,
		},
		Professionals: &handlers.ProfessionalHandler{
			Service: professionalService,
			Reviews: reviewService,
		},
		Search: &handlers.SearchHandler{
			Repo: professionalRepo,
		},
		Reviews: &handlers.ReviewHandler{
			Service: reviewService,
		},
		Subscriptions: &handlers.SubscriptionHandler{
			Service: subscriptionService,
		},
		Admin: &handlers.AdminHandler{
			Admins:        adminService,
			Professionals: professionalService,
			Reviews:       reviewService,
		},
	}

	routes.RegisterRoutes(router, handlerBundle, cfg.MaxRequestsPerMin)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
