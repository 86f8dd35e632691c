package routes

import (
	"time"

	"expertbridge/handlers"
	"expertbridge/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and sign-in endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/admin/login", hb.Auth.AdminLoginHandler)

		api.GET("/me", middleware.Authenticated(), hb.Auth.MeHandler)
	}
}

// RegisterProfessionalRoutes registers profile endpoints.
func RegisterProfessionalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/professionals")
	{
		// Public listing and profile reads, plus engagement tracking. The
		// listing shares the search handler: same visibility filter, same
		// featured-first order.
		api.GET("", hb.Search.SearchProfessionalsHandler)
		api.GET("/:id", hb.Professionals.GetProfessionalHandler)
		api.POST("/:id/contact", hb.Professionals.TrackContactHandler)

		// Owner-only writes.
		protected := api.Group("")
		protected.Use(middleware.AuthProfessional())
		protected.PUT("/:id", hb.Professionals.UpdateProfessionalHandler)
		protected.POST("/:id/photo", hb.Professionals.UploadPhotoHandler)
	}
}

// RegisterSearchRoutes registers the public directory listing endpoints.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/search", hb.Search.SearchProfessionalsHandler)
	r.GET("/api/categories", hb.Search.CategoriesHandler)
}

// RegisterReviewRoutes registers public review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.POST("", hb.Reviews.SubmitReviewHandler)
		api.GET("/:professionalId", hb.Reviews.ListReviewsHandler)
	}
}

// RegisterSubscriptionRoutes registers featured-placement endpoints.
func RegisterSubscriptionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/plans", hb.Subscriptions.ListPlansHandler)

	api := r.Group("/api/subscriptions")
	{
		api.GET("/plans", hb.Subscriptions.ListPlansHandler)

		// Verification is keyed on the payment reference alone: the gateway
		// redirect that lands here carries no bearer token.
		api.GET("/verify/:reference", hb.Subscriptions.VerifyHandler)

		protected := api.Group("")
		protected.Use(middleware.AuthProfessional())
		protected.POST("/initialize", hb.Subscriptions.InitializeHandler)
		protected.POST("/mock", hb.Subscriptions.ActivateMockHandler)
	}
}

// RegisterAdminRoutes registers back-office endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AuthAdmin())
		adminGroup.GET("/professionals", hb.Admin.ListAllHandler)
		adminGroup.GET("/professionals/pending", hb.Admin.ListPendingHandler)
		adminGroup.PUT("/professionals/:id/verify", hb.Admin.VerifyProfessionalHandler)
		adminGroup.DELETE("/professionals/:id", hb.Admin.DeleteProfessionalHandler)
		adminGroup.GET("/reviews/pending", hb.Admin.PendingReviewsHandler)
		adminGroup.PUT("/reviews/:id/approve", hb.Admin.ApproveReviewHandler)
		adminGroup.GET("/stats", hb.Admin.StatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, requestsPerMin int) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware(requestsPerMin))

	RegisterAuthRoutes(r, hb)
	RegisterProfessionalRoutes(r, hb)
	RegisterSearchRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterSubscriptionRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
