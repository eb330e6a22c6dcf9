package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spice-app/api-go/models"
	"github.com/spice-app/api-go/repositories"
	"gorm.io/gorm"
)

type ModerationController struct {
	Profiles repositories.ProfileRepository
	Blocks   repositories.BlockRepository
	Reports  repositories.ReportRepository
	Matches  repositories.MatchRepository
}

func NewModerationController(profiles repositories.ProfileRepository, blocks repositories.BlockRepository, reports repositories.ReportRepository, matches repositories.MatchRepository) *ModerationController {
	return &ModerationController{Profiles: profiles, Blocks: blocks, Reports: reports, Matches: matches}
}

// BlockProfile toggles a block on the target profile. Blocking also tears
// down an existing match between the pair.
func (mc *ModerationController) BlockProfile(c *gin.Context) {
	profile, ok := currentProfile(c, mc.Profiles)
	if !ok {
		return
	}

	targetID, ok := mc.targetProfileID(c, &profile)
	if !ok {
		return
	}

	existing, err := mc.Blocks.Find(c.Request.Context(), profile.ID, targetID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		block := models.Block{
			BlockerProfileID: profile.ID,
			BlockedProfileID: targetID,
		}

		if err := mc.Blocks.Create(c.Request.Context(), &block); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to block profile"})
			return
		}

		if err := mc.Matches.DeleteForPair(c.Request.Context(), profile.ID, targetID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to block profile"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Profile blocked successfully",
			"blocked": true,
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to block profile"})
		return
	}

	if err := mc.Blocks.Delete(c.Request.Context(), &existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unblock profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile unblocked successfully",
		"blocked": false,
	})
}

// ReportProfile files a report against the target profile.
func (mc *ModerationController) ReportProfile(c *gin.Context) {
	profile, ok := currentProfile(c, mc.Profiles)
	if !ok {
		return
	}

	targetID, ok := mc.targetProfileID(c, &profile)
	if !ok {
		return
	}

	var input struct {
		Reason      string `json:"reason" binding:"required"`
		Description string `json:"description"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := models.Report{
		ReporterProfileID: profile.ID,
		ReportedProfileID: targetID,
		Reason:            input.Reason,
		Description:       input.Description,
		Status:            "pending",
	}

	if err := mc.Reports.Create(c.Request.Context(), &report); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Report submitted successfully",
	})
}

// targetProfileID parses and validates the :id path parameter. Self-targeting
// is rejected and the target must exist.
func (mc *ModerationController) targetProfileID(c *gin.Context, requester *models.Profile) (uint, bool) {
	rawID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile id"})
		return 0, false
	}
	targetID := uint(rawID)

	if targetID == requester.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot target yourself"})
		return 0, false
	}

	if _, err := mc.Profiles.GetByID(c.Request.Context(), targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		}
		return 0, false
	}
	return targetID, true
}
