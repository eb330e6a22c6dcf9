package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spice-app/api-go/repositories"
	"gorm.io/gorm"
)

type MatchController struct {
	Profiles repositories.ProfileRepository
	Matches  repositories.MatchRepository
}

func NewMatchController(profiles repositories.ProfileRepository, matches repositories.MatchRepository) *MatchController {
	return &MatchController{Profiles: profiles, Matches: matches}
}

// GetMatches returns the requester's matches joined with the counterpart
// profile, most recently active first.
func (mc *MatchController) GetMatches(c *gin.Context) {
	profile, ok := currentProfile(c, mc.Profiles)
	if !ok {
		return
	}

	matches, err := mc.Matches.ListForProfile(c.Request.Context(), profile.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching matches"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"matches": matches,
		"count":   len(matches),
	})
}

// Unmatch deletes a match the requester participates in, messages included.
func (mc *MatchController) Unmatch(c *gin.Context) {
	profile, ok := currentProfile(c, mc.Profiles)
	if !ok {
		return
	}

	matchID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match id"})
		return
	}

	match, err := mc.Matches.GetByID(c.Request.Context(), uint(matchID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching match"})
		}
		return
	}

	if !match.Involves(profile.ID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		return
	}

	if err := mc.Matches.Delete(c.Request.Context(), match.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unmatch"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Unmatched successfully"})
}
