package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spice-app/api-go/middleware"
	"github.com/spice-app/api-go/models"
	"github.com/spice-app/api-go/repositories"
	"github.com/spice-app/api-go/services"
	"github.com/spice-app/api-go/ws"
	"gorm.io/gorm"
)

type SwipeController struct {
	Profiles repositories.ProfileRepository
	Swipes   *services.SwipeService
	Hub      *ws.Hub
}

func NewSwipeController(profiles repositories.ProfileRepository, swipes *services.SwipeService, hub *ws.Hub) *SwipeController {
	return &SwipeController{Profiles: profiles, Swipes: swipes, Hub: hub}
}

// Swipe records a like/pass/superlike toward another profile and reports
// whether it closed a mutual match.
func (sc *SwipeController) Swipe(c *gin.Context) {
	profile, ok := currentProfile(c, sc.Profiles)
	if !ok {
		return
	}

	var input struct {
		SwipedProfileID uint   `json:"swipedProfileId" binding:"required"`
		Action          string `json:"action" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := sc.Swipes.RecordSwipe(c.Request.Context(), profile.ID, input.SwipedProfileID, input.Action)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAction), errors.Is(err, services.ErrSelfSwipe):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrBlocked), errors.Is(err, gorm.ErrRecordNotFound):
			// Blocked profiles are indistinguishable from missing ones.
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record swipe"})
		}
		return
	}

	outcome := "no_match"
	if result.IsMatch {
		outcome = "match"
		sc.notifyMatch(c, &profile, result.Match)
	}
	middleware.SwipesTotal.WithLabelValues(input.Action, outcome).Inc()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"swipe":   result.Swipe,
		"isMatch": result.IsMatch,
		"match":   result.Match,
	})
}

// GetReceivedLikes lists profiles that liked the requester and were not yet
// swiped back. Premium feature, enforced here rather than in the client.
func (sc *SwipeController) GetReceivedLikes(c *gin.Context) {
	profile, ok := currentProfile(c, sc.Profiles)
	if !ok {
		return
	}

	if profile.MembershipTier == models.TierFree {
		c.JSON(http.StatusForbidden, gin.H{"error": "Upgrade your membership to see who liked you"})
		return
	}

	likers, err := sc.Swipes.ReceivedLikes(c.Request.Context(), profile.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching received likes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"likers":  likers,
		"count":   len(likers),
	})
}

// notifyMatch pushes the new match to both participants, each with the
// counterpart's profile attached.
func (sc *SwipeController) notifyMatch(c *gin.Context, swiper *models.Profile, match *models.Match) {
	if sc.Hub == nil || match == nil {
		return
	}

	counterpartID := match.Counterpart(swiper.ID)
	counterpart, err := sc.Profiles.GetByID(c.Request.Context(), counterpartID)
	if err != nil {
		return
	}

	sc.Hub.Notify(swiper.ID, ws.Event{
		Type:  "new_match",
		Match: &repositories.MatchWithProfile{Match: *match, Profile: counterpart},
	})
	sc.Hub.Notify(counterpartID, ws.Event{
		Type:  "new_match",
		Match: &repositories.MatchWithProfile{Match: *match, Profile: *swiper},
	})
}
