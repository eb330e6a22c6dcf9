package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/spice-app/api-go/mocks"
	"github.com/spice-app/api-go/models"
	"github.com/spice-app/api-go/services"
)

func setupSwipeRouter(profiles *mocks.ProfileRepositoryMock, swipes *mocks.SwipeRepositoryMock, blocks *mocks.BlockRepositoryMock) *gin.Engine {
	service := services.NewSwipeService(profiles, swipes, blocks)
	controller := NewSwipeController(profiles, service, nil)

	router := gin.New()
	group := router.Group("/api", authAs(1))
	group.POST("/swipes", controller.Swipe)
	group.GET("/likes/received", controller.GetReceivedLikes)
	return router
}

func TestSwipeLikeNoMatch(t *testing.T) {
	profiles := new(mocks.ProfileRepositoryMock)
	swipes := new(mocks.SwipeRepositoryMock)
	blocks := new(mocks.BlockRepositoryMock)
	router := setupSwipeRouter(profiles, swipes, blocks)

	profiles.On("GetByUserID", mock.Anything, uint(1)).Return(models.Profile{ID: 1}, nil).Once()
	profiles.On("GetByID", mock.Anything, uint(2)).Return(models.Profile{ID: 2}, nil).Once()
	blocks.On("IsBlockedEither", mock.Anything, uint(1), uint(2)).Return(false, nil).Once()
	swipes.On("RecordSwipe", mock.Anything, uint(1), uint(2), models.SwipeActionLike).
		Return(models.Swipe{ID: 5, SwiperID: 1, SwipedID: 2, Action: models.SwipeActionLike}, (*models.Match)(nil), nil).Once()

	recorder := performRequest(t, router, http.MethodPost, "/api/swipes", gin.H{
		"swipedProfileId": 2,
		"action":          "like",
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, false, body["isMatch"])

	swipes.AssertExpectations(t)
}

func TestSwipeMutualLikeReportsMatch(t *testing.T) {
	profiles := new(mocks.ProfileRepositoryMock)
	swipes := new(mocks.SwipeRepositoryMock)
	blocks := new(mocks.BlockRepositoryMock)
	router := setupSwipeRouter(profiles, swipes, blocks)

	match := &models.Match{ID: 7, ProfileAID: 1, ProfileBID: 2}
	profiles.On("GetByUserID", mock.Anything, uint(1)).Return(models.Profile{ID: 1}, nil).Once()
	profiles.On("GetByID", mock.Anything, uint(2)).Return(models.Profile{ID: 2}, nil).Once()
	blocks.On("IsBlockedEither", mock.Anything, uint(1), uint(2)).Return(false, nil).Once()
	swipes.On("RecordSwipe", mock.Anything, uint(1), uint(2), models.SwipeActionLike).
		Return(models.Swipe{ID: 6, SwiperID: 1, SwipedID: 2, Action: models.SwipeActionLike}, match, nil).Once()

	recorder := performRequest(t, router, http.MethodPost, "/api/swipes", gin.H{
		"swipedProfileId": 2,
		"action":          "like",
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["isMatch"])
	assert.NotNil(t, body["match"])
}

func TestSwipeInvalidAction(t *testing.T) {
	profiles := new(mocks.ProfileRepositoryMock)
	swipes := new(mocks.SwipeRepositoryMock)
	blocks := new(mocks.BlockRepositoryMock)
	router := setupSwipeRouter(profiles, swipes, blocks)

	profiles.On("GetByUserID", mock.Anything, uint(1)).Return(models.Profile{ID: 1}, nil).Once()

	recorder := performRequest(t, router, http.MethodPost, "/api/swipes", gin.H{
		"swipedProfileId": 2,
		"action":          "wink",
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	swipes.AssertNotCalled(t, "RecordSwipe", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSwipeBlockedPairLooksMissing(t *testing.T) {
	profiles := new(mocks.ProfileRepositoryMock)
	swipes := new(mocks.SwipeRepositoryMock)
	blocks := new(mocks.BlockRepositoryMock)
	router := setupSwipeRouter(profiles, swipes, blocks)

	profiles.On("GetByUserID", mock.Anything, uint(1)).Return(models.Profile{ID: 1}, nil).Once()
	profiles.On("GetByID", mock.Anything, uint(2)).Return(models.Profile{ID: 2}, nil).Once()
	blocks.On("IsBlockedEither", mock.Anything, uint(1), uint(2)).Return(true, nil).Once()

	recorder := performRequest(t, router, http.MethodPost, "/api/swipes", gin.H{
		"swipedProfileId": 2,
		"action":          "like",
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "Profile not found", body["error"])
}

func TestSwipeUnknownTarget(t *testing.T) {
	profiles := new(mocks.ProfileRepositoryMock)
	swipes := new(mocks.SwipeRepositoryMock)
	blocks := new(mocks.BlockRepositoryMock)
	router := setupSwipeRouter(profiles, swipes, blocks)

	profiles.On("GetByUserID", mock.Anything, uint(1)).Return(models.Profile{ID: 1}, nil).Once()
	profiles.On("GetByID", mock.Anything, uint(99)).Return(models.Profile{}, gorm.ErrRecordNotFound).Once()

	recorder := performRequest(t, router, http.MethodPost, "/api/swipes", gin.H{
		"swipedProfileId": 99,
		"action":          "pass",
	})

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetReceivedLikesRequiresPremium(t *testing.T) {
	profiles := new(mocks.ProfileRepositoryMock)
	swipes := new(mocks.SwipeRepositoryMock)
	blocks := new(mocks.BlockRepositoryMock)
	router := setupSwipeRouter(profiles, swipes, blocks)

	profiles.On("GetByUserID", mock.Anything, uint(1)).
		Return(models.Profile{ID: 1, MembershipTier: models.TierFree}, nil).Once()

	recorder := performRequest(t, router, http.MethodGet, "/api/likes/received", nil)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	swipes.AssertNotCalled(t, "PendingLikerIDs", mock.Anything, mock.Anything)
}

func TestGetReceivedLikesPremium(t *testing.T) {
	profiles := new(mocks.ProfileRepositoryMock)
	swipes := new(mocks.SwipeRepositoryMock)
	blocks := new(mocks.BlockRepositoryMock)
	router := setupSwipeRouter(profiles, swipes, blocks)

	profiles.On("GetByUserID", mock.Anything, uint(1)).
		Return(models.Profile{ID: 1, MembershipTier: models.TierPremium}, nil).Once()
	swipes.On("PendingLikerIDs", mock.Anything, uint(1)).Return([]uint{3, 2}, nil).Once()
	profiles.On("ListByIDs", mock.Anything, []uint{3, 2}).Return([]models.Profile{
		{ID: 2}, {ID: 3},
	}, nil).Once()

	recorder := performRequest(t, router, http.MethodGet, "/api/likes/received", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, float64(2), body["count"])
}
