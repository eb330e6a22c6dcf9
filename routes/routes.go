package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/spice-app/api-go/controllers"
	"github.com/spice-app/api-go/middleware"
	"github.com/spice-app/api-go/repositories"
	"github.com/spice-app/api-go/services"
	"github.com/spice-app/api-go/ws"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, hub *ws.Hub) {
	// Repositories
	profileRepo := repositories.NewProfileRepository(db)
	swipeRepo := repositories.NewSwipeRepository(db)
	matchRepo := repositories.NewMatchRepository(db)
	blockRepo := repositories.NewBlockRepository(db)
	reportRepo := repositories.NewReportRepository(db)
	messageRepo := repositories.NewMessageRepository(db)

	// Services
	discoveryService := services.NewDiscoveryService(profileRepo, swipeRepo, blockRepo)
	swipeService := services.NewSwipeService(profileRepo, swipeRepo, blockRepo)

	// Controllers
	authController := controllers.NewAuthController(db)
	profileController := controllers.NewProfileController(profileRepo, blockRepo)
	discoveryController := controllers.NewDiscoveryController(profileRepo, discoveryService)
	swipeController := controllers.NewSwipeController(profileRepo, swipeService, hub)
	matchController := controllers.NewMatchController(profileRepo, matchRepo)
	messageController := controllers.NewMessageController(profileRepo, matchRepo, messageRepo, hub)
	moderationController := controllers.NewModerationController(profileRepo, blockRepo, reportRepo, matchRepo)
	uploadController := controllers.NewUploadController(profileRepo)
	eventsController := controllers.NewEventsController(profileRepo, hub)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)
		public.POST("/login/google", authController.GoogleLogin)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", authController.Logout)
		protected.POST("/refresh-token", authController.RefreshToken)
		protected.GET("/events", eventsController.Subscribe)

		SetupProfileRoutes(protected, profileController)
		SetupDiscoveryRoutes(protected, discoveryController)
		SetupSwipeRoutes(protected, swipeController)
		SetupMatchRoutes(protected, matchController)
		SetupMessageRoutes(protected, messageController)
		SetupModerationRoutes(protected, moderationController)
		SetupUploadRoutes(protected, uploadController)
	}
}
