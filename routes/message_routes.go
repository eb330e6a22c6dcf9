package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/spice-app/api-go/controllers"
)

func SetupMessageRoutes(protected *gin.RouterGroup, messageController *controllers.MessageController) {
	messages := protected.Group("/messages")
	{
		messages.POST("", messageController.SendMessage)
		messages.GET("/:matchId", messageController.GetMessages)
	}
}
