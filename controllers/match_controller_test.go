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
	"github.com/spice-app/api-go/repositories"
)

func setupMatchRouter(profiles *mocks.ProfileRepositoryMock, matches *mocks.MatchRepositoryMock) *gin.Engine {
	controller := NewMatchController(profiles, matches)

	router := gin.New()
	group := router.Group("/api", authAs(1))
	group.GET("/matches", controller.GetMatches)
	group.DELETE("/matches/:id", controller.Unmatch)
	return router
}

func TestGetMatches(t *testing.T) {
	profiles := new(mocks.ProfileRepositoryMock)
	matches := new(mocks.MatchRepositoryMock)
	router := setupMatchRouter(profiles, matches)

	profiles.On("GetByUserID", mock.Anything, uint(1)).Return(models.Profile{ID: 1}, nil).Once()
	matches.On("ListForProfile", mock.Anything, uint(1)).Return([]repositories.MatchWithProfile{
		{Match: models.Match{ID: 7, ProfileAID: 1, ProfileBID: 2}, Profile: models.Profile{ID: 2}},
	}, nil).Once()

	recorder := performRequest(t, router, http.MethodGet, "/api/matches", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, float64(1), body["count"])
}

func TestUnmatch(t *testing.T) {
	profiles := new(mocks.ProfileRepositoryMock)
	matches := new(mocks.MatchRepositoryMock)
	router := setupMatchRouter(profiles, matches)

	profiles.On("GetByUserID", mock.Anything, uint(1)).Return(models.Profile{ID: 1}, nil).Once()
	matches.On("GetByID", mock.Anything, uint(7)).
		Return(models.Match{ID: 7, ProfileAID: 1, ProfileBID: 2}, nil).Once()
	matches.On("Delete", mock.Anything, uint(7)).Return(nil).Once()

	recorder := performRequest(t, router, http.MethodDelete, "/api/matches/7", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	matches.AssertExpectations(t)
}

func TestUnmatchNotParticipant(t *testing.T) {
	profiles := new(mocks.ProfileRepositoryMock)
	matches := new(mocks.MatchRepositoryMock)
	router := setupMatchRouter(profiles, matches)

	profiles.On("GetByUserID", mock.Anything, uint(1)).Return(models.Profile{ID: 1}, nil).Once()
	matches.On("GetByID", mock.Anything, uint(7)).
		Return(models.Match{ID: 7, ProfileAID: 2, ProfileBID: 3}, nil).Once()

	recorder := performRequest(t, router, http.MethodDelete, "/api/matches/7", nil)

	// Other people's matches look like they do not exist.
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	matches.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUnmatchMissing(t *testing.T) {
	profiles := new(mocks.ProfileRepositoryMock)
	matches := new(mocks.MatchRepositoryMock)
	router := setupMatchRouter(profiles, matches)

	profiles.On("GetByUserID", mock.Anything, uint(1)).Return(models.Profile{ID: 1}, nil).Once()
	matches.On("GetByID", mock.Anything, uint(9)).Return(models.Match{}, gorm.ErrRecordNotFound).Once()

	recorder := performRequest(t, router, http.MethodDelete, "/api/matches/9", nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
