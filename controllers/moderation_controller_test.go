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
)

func setupModerationRouter(profiles *mocks.ProfileRepositoryMock, blocks *mocks.BlockRepositoryMock, reports *mocks.ReportRepositoryMock, matches *mocks.MatchRepositoryMock) *gin.Engine {
	controller := NewModerationController(profiles, blocks, reports, matches)

	router := gin.New()
	group := router.Group("/api", authAs(1))
	group.POST("/profiles/:id/block", controller.BlockProfile)
	group.POST("/profiles/:id/report", controller.ReportProfile)
	return router
}

func TestBlockProfileCreatesBlockAndRemovesMatch(t *testing.T) {
	profiles := new(mocks.ProfileRepositoryMock)
	blocks := new(mocks.BlockRepositoryMock)
	reports := new(mocks.ReportRepositoryMock)
	matches := new(mocks.MatchRepositoryMock)
	router := setupModerationRouter(profiles, blocks, reports, matches)

	profiles.On("GetByUserID", mock.Anything, uint(1)).Return(models.Profile{ID: 1}, nil).Once()
	profiles.On("GetByID", mock.Anything, uint(2)).Return(models.Profile{ID: 2}, nil).Once()
	blocks.On("Find", mock.Anything, uint(1), uint(2)).Return(models.Block{}, gorm.ErrRecordNotFound).Once()
	blocks.On("Create", mock.Anything, mock.MatchedBy(func(b *models.Block) bool {
		return b.BlockerProfileID == 1 && b.BlockedProfileID == 2
	})).Return(nil).Once()
	matches.On("DeleteForPair", mock.Anything, uint(1), uint(2)).Return(nil).Once()

	recorder := performRequest(t, router, http.MethodPost, "/api/profiles/2/block", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["blocked"])

	blocks.AssertExpectations(t)
	matches.AssertExpectations(t)
}

func TestBlockProfileTogglesOff(t *testing.T) {
	profiles := new(mocks.ProfileRepositoryMock)
	blocks := new(mocks.BlockRepositoryMock)
	reports := new(mocks.ReportRepositoryMock)
	matches := new(mocks.MatchRepositoryMock)
	router := setupModerationRouter(profiles, blocks, reports, matches)

	existing := models.Block{ID: 4, BlockerProfileID: 1, BlockedProfileID: 2}
	profiles.On("GetByUserID", mock.Anything, uint(1)).Return(models.Profile{ID: 1}, nil).Once()
	profiles.On("GetByID", mock.Anything, uint(2)).Return(models.Profile{ID: 2}, nil).Once()
	blocks.On("Find", mock.Anything, uint(1), uint(2)).Return(existing, nil).Once()
	blocks.On("Delete", mock.Anything, &existing).Return(nil).Once()

	recorder := performRequest(t, router, http.MethodPost, "/api/profiles/2/block", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["blocked"])

	matches.AssertNotCalled(t, "DeleteForPair", mock.Anything, mock.Anything, mock.Anything)
}

func TestBlockProfileSelf(t *testing.T) {
	profiles := new(mocks.ProfileRepositoryMock)
	blocks := new(mocks.BlockRepositoryMock)
	reports := new(mocks.ReportRepositoryMock)
	matches := new(mocks.MatchRepositoryMock)
	router := setupModerationRouter(profiles, blocks, reports, matches)

	profiles.On("GetByUserID", mock.Anything, uint(1)).Return(models.Profile{ID: 1}, nil).Once()

	recorder := performRequest(t, router, http.MethodPost, "/api/profiles/1/block", nil)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	blocks.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything)
}

func TestReportProfile(t *testing.T) {
	profiles := new(mocks.ProfileRepositoryMock)
	blocks := new(mocks.BlockRepositoryMock)
	reports := new(mocks.ReportRepositoryMock)
	matches := new(mocks.MatchRepositoryMock)
	router := setupModerationRouter(profiles, blocks, reports, matches)

	profiles.On("GetByUserID", mock.Anything, uint(1)).Return(models.Profile{ID: 1}, nil).Once()
	profiles.On("GetByID", mock.Anything, uint(2)).Return(models.Profile{ID: 2}, nil).Once()
	reports.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Report) bool {
		return r.ReporterProfileID == 1 && r.ReportedProfileID == 2 &&
			r.Reason == "spam" && r.Status == "pending"
	})).Return(nil).Once()

	recorder := performRequest(t, router, http.MethodPost, "/api/profiles/2/report", gin.H{
		"reason":      "spam",
		"description": "keeps sending links",
	})

	assert.Equal(t, http.StatusOK, recorder.Code)
	reports.AssertExpectations(t)
}

func TestReportProfileMissingReason(t *testing.T) {
	profiles := new(mocks.ProfileRepositoryMock)
	blocks := new(mocks.BlockRepositoryMock)
	reports := new(mocks.ReportRepositoryMock)
	matches := new(mocks.MatchRepositoryMock)
	router := setupModerationRouter(profiles, blocks, reports, matches)

	profiles.On("GetByUserID", mock.Anything, uint(1)).Return(models.Profile{ID: 1}, nil).Once()
	profiles.On("GetByID", mock.Anything, uint(2)).Return(models.Profile{ID: 2}, nil).Once()

	recorder := performRequest(t, router, http.MethodPost, "/api/profiles/2/report", gin.H{})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	reports.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
