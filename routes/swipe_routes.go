package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/spice-app/api-go/controllers"
)

func SetupSwipeRoutes(protected *gin.RouterGroup, swipeController *controllers.SwipeController) {
	protected.POST("/swipes", swipeController.Swipe)
	protected.GET("/likes/received", swipeController.GetReceivedLikes)
}
