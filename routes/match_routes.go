package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/spice-app/api-go/controllers"
)

func SetupMatchRoutes(protected *gin.RouterGroup, matchController *controllers.MatchController) {
	matches := protected.Group("/matches")
	{
		matches.GET("", matchController.GetMatches)
		matches.DELETE("/:id", matchController.Unmatch)
	}
}
