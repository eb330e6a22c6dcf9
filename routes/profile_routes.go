package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/spice-app/api-go/controllers"
)

func SetupProfileRoutes(protected *gin.RouterGroup, profileController *controllers.ProfileController) {
	protected.POST("/profile", profileController.CreateProfile)
	protected.GET("/profile", profileController.GetMyProfile)
	protected.PUT("/profile", profileController.UpdateMyProfile)
	protected.GET("/profiles/:id", profileController.GetProfileByID)
}
