package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/spice-app/api-go/controllers"
)

func SetupUploadRoutes(protected *gin.RouterGroup, uploadController *controllers.UploadController) {
	photos := protected.Group("/photos")
	{
		photos.POST("/upload-url", uploadController.GetPhotoUploadURL)
		photos.POST("/confirm", uploadController.ConfirmPhotoUpload)
		photos.DELETE("/:id", uploadController.DeletePhoto)
	}
}
