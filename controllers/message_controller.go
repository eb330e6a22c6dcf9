package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spice-app/api-go/middleware"
	"github.com/spice-app/api-go/models"
	"github.com/spice-app/api-go/repositories"
	"github.com/spice-app/api-go/ws"
	"gorm.io/gorm"
)

const defaultMessagePageSize = 50

type MessageController struct {
	Profiles repositories.ProfileRepository
	Matches  repositories.MatchRepository
	Messages repositories.MessageRepository
	Hub      *ws.Hub
}

func NewMessageController(profiles repositories.ProfileRepository, matches repositories.MatchRepository, messages repositories.MessageRepository, hub *ws.Hub) *MessageController {
	return &MessageController{Profiles: profiles, Matches: matches, Messages: messages, Hub: hub}
}

// SendMessage posts a message into one of the requester's matches and pushes
// it to the counterpart if online.
func (mc *MessageController) SendMessage(c *gin.Context) {
	profile, ok := currentProfile(c, mc.Profiles)
	if !ok {
		return
	}

	var input struct {
		MatchID uint   `json:"matchId" binding:"required"`
		Content string `json:"content" binding:"required"`
		Type    string `json:"type"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Type == "" {
		input.Type = models.MessageTypeText
	}
	if !models.ValidMessageType(input.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message type"})
		return
	}

	match, ok := mc.participantMatch(c, input.MatchID, profile.ID)
	if !ok {
		return
	}

	message := models.Message{
		MatchID:         match.ID,
		SenderProfileID: profile.ID,
		Content:         input.Content,
		Type:            input.Type,
	}

	if err := mc.Messages.Create(c.Request.Context(), &message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	middleware.MessagesSentTotal.WithLabelValues(message.Type).Inc()

	if mc.Hub != nil {
		mc.Hub.Notify(match.Counterpart(profile.ID), ws.Event{Type: "new_message", Message: &message})
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": message})
}

// GetMessages returns a match's thread oldest first and marks the
// counterpart's messages read as a side effect.
func (mc *MessageController) GetMessages(c *gin.Context) {
	profile, ok := currentProfile(c, mc.Profiles)
	if !ok {
		return
	}

	matchID, err := strconv.ParseUint(c.Param("matchId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid match id"})
		return
	}

	match, ok := mc.participantMatch(c, uint(matchID), profile.ID)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultMessagePageSize)))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > defaultMessagePageSize {
		limit = defaultMessagePageSize
	}
	if offset < 0 {
		offset = 0
	}

	messages, err := mc.Messages.ListForMatch(c.Request.Context(), match.ID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching messages"})
		return
	}

	if err := mc.Messages.MarkRead(c.Request.Context(), match.ID, profile.ID); err != nil {
		// Reading still succeeded; the unread flags catch up on the next fetch.
		c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "messages": messages})
}

// participantMatch loads a match and verifies the requester takes part in
// it. Non-participants get a 403, a missing match a 404.
func (mc *MessageController) participantMatch(c *gin.Context, matchID, profileID uint) (models.Match, bool) {
	match, err := mc.Matches.GetByID(c.Request.Context(), matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching match"})
		}
		return models.Match{}, false
	}

	if !match.Involves(profileID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not a participant of this match"})
		return models.Match{}, false
	}
	return match, true
}
