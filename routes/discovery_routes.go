package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/spice-app/api-go/controllers"
)

func SetupDiscoveryRoutes(protected *gin.RouterGroup, discoveryController *controllers.DiscoveryController) {
	protected.GET("/discovery", discoveryController.GetDiscovery)
}
