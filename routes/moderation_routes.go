package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/spice-app/api-go/controllers"
)

func SetupModerationRoutes(protected *gin.RouterGroup, moderationController *controllers.ModerationController) {
	profiles := protected.Group("/profiles")
	{
		profiles.POST("/:id/block", moderationController.BlockProfile)
		profiles.POST("/:id/report", moderationController.ReportProfile)
	}
}
