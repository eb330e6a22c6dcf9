package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spice-app/api-go/models"
	"github.com/spice-app/api-go/repositories"
	"github.com/spice-app/api-go/utils"
	"gorm.io/gorm"
)

type ProfileController struct {
	Profiles repositories.ProfileRepository
	Blocks   repositories.BlockRepository
}

func NewProfileController(profiles repositories.ProfileRepository, blocks repositories.BlockRepository) *ProfileController {
	return &ProfileController{Profiles: profiles, Blocks: blocks}
}

type profileInput struct {
	DisplayName         string   `json:"displayName" binding:"required"`
	Age                 int      `json:"age" binding:"required,min=18,max=120"`
	Bio                 string   `json:"bio"`
	City                string   `json:"city"`
	State               string   `json:"state"`
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	Gender              string   `json:"gender" binding:"required"`
	AccountType         string   `json:"accountType" binding:"required,oneof=single couple"`
	Interests           []string `json:"interests"`
	SeekingGenders      []string `json:"seekingGenders"`
	SeekingAccountTypes []string `json:"seekingAccountTypes"`
	MinAgePref          int      `json:"minAgePref" binding:"omitempty,min=18"`
	MaxAgePref          int      `json:"maxAgePref" binding:"omitempty,max=120"`
	MaxDistancePref     float64  `json:"maxDistancePref" binding:"omitempty,min=1,max=500"`
	IsVisible           *bool    `json:"isVisible"`
}

// CreateProfile completes profile setup for the authenticated user.
func (pc *ProfileController) CreateProfile(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	if _, err := pc.Profiles.GetByUserID(c.Request.Context(), user.UserID); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Profile already exists"})
		return
	}

	var input profileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile := models.Profile{
		UserID:              user.UserID,
		DisplayName:         input.DisplayName,
		Age:                 input.Age,
		Bio:                 input.Bio,
		City:                input.City,
		State:               input.State,
		Latitude:            input.Latitude,
		Longitude:           input.Longitude,
		Gender:              input.Gender,
		AccountType:         input.AccountType,
		Interests:           input.Interests,
		SeekingGenders:      input.SeekingGenders,
		SeekingAccountTypes: input.SeekingAccountTypes,
		MinAgePref:          18,
		MaxAgePref:          99,
		MaxDistancePref:     100,
		IsVisible:           true,
		IsComplete:          true,
	}
	if input.MinAgePref != 0 {
		profile.MinAgePref = input.MinAgePref
	}
	if input.MaxAgePref != 0 {
		profile.MaxAgePref = input.MaxAgePref
	}
	if input.MaxDistancePref != 0 {
		profile.MaxDistancePref = input.MaxDistancePref
	}

	if err := pc.Profiles.Create(c.Request.Context(), &profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create profile"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "profile": profile})
}

// GetMyProfile returns the authenticated user's own profile.
func (pc *ProfileController) GetMyProfile(c *gin.Context) {
	profile, ok := currentProfile(c, pc.Profiles)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

// UpdateMyProfile mutates the owning user's profile, preferences included.
func (pc *ProfileController) UpdateMyProfile(c *gin.Context) {
	profile, ok := currentProfile(c, pc.Profiles)
	if !ok {
		return
	}

	var input profileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile.DisplayName = input.DisplayName
	profile.Age = input.Age
	profile.Bio = input.Bio
	profile.City = input.City
	profile.State = input.State
	profile.Latitude = input.Latitude
	profile.Longitude = input.Longitude
	profile.Gender = input.Gender
	profile.AccountType = input.AccountType
	profile.Interests = input.Interests
	profile.SeekingGenders = input.SeekingGenders
	profile.SeekingAccountTypes = input.SeekingAccountTypes
	if input.MinAgePref != 0 {
		profile.MinAgePref = input.MinAgePref
	}
	if input.MaxAgePref != 0 {
		profile.MaxAgePref = input.MaxAgePref
	}
	if input.MaxDistancePref != 0 {
		profile.MaxDistancePref = input.MaxDistancePref
	}
	if input.IsVisible != nil {
		profile.IsVisible = *input.IsVisible
	}

	if err := pc.Profiles.Update(c.Request.Context(), &profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profile": profile})
}

// GetProfileByID returns another profile if it is visible and not in a block
// relationship with the requester. Blocked and hidden profiles look identical
// to missing ones.
func (pc *ProfileController) GetProfileByID(c *gin.Context) {
	requester, ok := currentProfile(c, pc.Profiles)
	if !ok {
		return
	}

	targetID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile id"})
		return
	}

	target, err := pc.Profiles.GetByID(c.Request.Context(), uint(targetID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		}
		return
	}

	if target.ID != requester.ID {
		blocked, err := pc.Blocks.IsBlockedEither(c.Request.Context(), requester.ID, target.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
			return
		}
		if blocked || !target.IsVisible {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "profile": target})
}
