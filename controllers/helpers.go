package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spice-app/api-go/models"
	"github.com/spice-app/api-go/repositories"
	"github.com/spice-app/api-go/utils"
	"gorm.io/gorm"
)

// currentProfile resolves the authenticated user's profile. It writes the
// error response itself and returns false when the request cannot proceed.
func currentProfile(c *gin.Context, profiles repositories.ProfileRepository) (models.Profile, bool) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return models.Profile{}, false
	}

	profile, err := profiles.GetByUserID(c.Request.Context(), user.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		}
		return models.Profile{}, false
	}
	return profile, true
}
