package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spice-app/api-go/repositories"
	"github.com/spice-app/api-go/services"
)

type DiscoveryController struct {
	Profiles  repositories.ProfileRepository
	Discovery *services.DiscoveryService
}

type DiscoveryQuery struct {
	MinAge         *int     `form:"minAge" binding:"omitempty,min=18"`
	MaxAge         *int     `form:"maxAge" binding:"omitempty,max=120"`
	Genders        []string `form:"genders" binding:"omitempty"`
	AccountTypes   []string `form:"accountTypes" binding:"omitempty,dive,oneof=single couple"`
	MaxDistance    *float64 `form:"maxDistance" binding:"omitempty,min=1,max=500"` // in kilometers
	OnlyVerified   *bool    `form:"onlyVerified"`
	OnlyWithPhotos *bool    `form:"onlyWithPhotos"`
}

func NewDiscoveryController(profiles repositories.ProfileRepository, discovery *services.DiscoveryService) *DiscoveryController {
	return &DiscoveryController{Profiles: profiles, Discovery: discovery}
}

// GetDiscovery returns the filtered candidate feed for the authenticated
// profile. Query parameters override the profile's stored preferences.
func (dc *DiscoveryController) GetDiscovery(c *gin.Context) {
	profile, ok := currentProfile(c, dc.Profiles)
	if !ok {
		return
	}

	var query DiscoveryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidates, err := dc.Discovery.Candidates(c.Request.Context(), profile.ID, services.DiscoveryFilters{
		MinAge:         query.MinAge,
		MaxAge:         query.MaxAge,
		Genders:        query.Genders,
		AccountTypes:   query.AccountTypes,
		MaxDistance:    query.MaxDistance,
		OnlyVerified:   query.OnlyVerified,
		OnlyWithPhotos: query.OnlyWithPhotos,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching discovery feed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"candidates": candidates,
		"count":      len(candidates),
	})
}
