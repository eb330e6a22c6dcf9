package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/spice-app/api-go/mocks"
	"github.com/spice-app/api-go/models"
)

func newSwipeMocks() (*mocks.ProfileRepositoryMock, *mocks.SwipeRepositoryMock, *mocks.BlockRepositoryMock, *SwipeService) {
	profiles := new(mocks.ProfileRepositoryMock)
	swipes := new(mocks.SwipeRepositoryMock)
	blocks := new(mocks.BlockRepositoryMock)
	return profiles, swipes, blocks, NewSwipeService(profiles, swipes, blocks)
}

func TestRecordSwipeInvalidAction(t *testing.T) {
	profiles, swipes, _, service := newSwipeMocks()

	_, err := service.RecordSwipe(context.Background(), 1, 2, "wink")
	assert.ErrorIs(t, err, ErrInvalidAction)

	profiles.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	swipes.AssertNotCalled(t, "RecordSwipe", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordSwipeSelf(t *testing.T) {
	_, swipes, _, service := newSwipeMocks()

	_, err := service.RecordSwipe(context.Background(), 1, 1, models.SwipeActionLike)
	assert.ErrorIs(t, err, ErrSelfSwipe)

	swipes.AssertNotCalled(t, "RecordSwipe", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordSwipeTargetMissing(t *testing.T) {
	profiles, swipes, _, service := newSwipeMocks()

	profiles.On("GetByID", mock.Anything, uint(2)).Return(models.Profile{}, gorm.ErrRecordNotFound).Once()

	_, err := service.RecordSwipe(context.Background(), 1, 2, models.SwipeActionLike)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	swipes.AssertNotCalled(t, "RecordSwipe", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordSwipeBlockedPair(t *testing.T) {
	profiles, swipes, blocks, service := newSwipeMocks()

	profiles.On("GetByID", mock.Anything, uint(2)).Return(models.Profile{ID: 2}, nil).Once()
	blocks.On("IsBlockedEither", mock.Anything, uint(1), uint(2)).Return(true, nil).Once()

	_, err := service.RecordSwipe(context.Background(), 1, 2, models.SwipeActionLike)
	assert.ErrorIs(t, err, ErrBlocked)

	swipes.AssertNotCalled(t, "RecordSwipe", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRecordSwipePassNeverMatches(t *testing.T) {
	profiles, swipes, blocks, service := newSwipeMocks()

	profiles.On("GetByID", mock.Anything, uint(2)).Return(models.Profile{ID: 2}, nil).Once()
	blocks.On("IsBlockedEither", mock.Anything, uint(1), uint(2)).Return(false, nil).Once()
	swipes.On("RecordSwipe", mock.Anything, uint(1), uint(2), models.SwipeActionPass).
		Return(models.Swipe{ID: 10, SwiperID: 1, SwipedID: 2, Action: models.SwipeActionPass}, (*models.Match)(nil), nil).Once()

	result, err := service.RecordSwipe(context.Background(), 1, 2, models.SwipeActionPass)
	require.NoError(t, err)
	assert.False(t, result.IsMatch)
	assert.Nil(t, result.Match)
	assert.Equal(t, models.SwipeActionPass, result.Swipe.Action)

	swipes.AssertExpectations(t)
}

func TestRecordSwipeMutualLike(t *testing.T) {
	profiles, swipes, blocks, service := newSwipeMocks()

	match := &models.Match{ID: 7, ProfileAID: 1, ProfileBID: 2}
	profiles.On("GetByID", mock.Anything, uint(2)).Return(models.Profile{ID: 2}, nil).Once()
	blocks.On("IsBlockedEither", mock.Anything, uint(1), uint(2)).Return(false, nil).Once()
	swipes.On("RecordSwipe", mock.Anything, uint(1), uint(2), models.SwipeActionLike).
		Return(models.Swipe{ID: 11, SwiperID: 1, SwipedID: 2, Action: models.SwipeActionLike}, match, nil).Once()

	result, err := service.RecordSwipe(context.Background(), 1, 2, models.SwipeActionLike)
	require.NoError(t, err)
	assert.True(t, result.IsMatch)
	require.NotNil(t, result.Match)
	assert.Equal(t, uint(7), result.Match.ID)

	swipes.AssertExpectations(t)
}

func TestReceivedLikesPreservesNewestFirst(t *testing.T) {
	profiles, swipes, _, service := newSwipeMocks()

	swipes.On("PendingLikerIDs", mock.Anything, uint(1)).Return([]uint{9, 4, 6}, nil).Once()
	// Store returns in id order; the service restores swipe recency order.
	profiles.On("ListByIDs", mock.Anything, []uint{9, 4, 6}).Return([]models.Profile{
		{ID: 4}, {ID: 6}, {ID: 9},
	}, nil).Once()

	likers, err := service.ReceivedLikes(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, likers, 3)
	assert.Equal(t, uint(9), likers[0].ID)
	assert.Equal(t, uint(4), likers[1].ID)
	assert.Equal(t, uint(6), likers[2].ID)
}

func TestReceivedLikesEmpty(t *testing.T) {
	profiles, swipes, _, service := newSwipeMocks()

	swipes.On("PendingLikerIDs", mock.Anything, uint(1)).Return([]uint{}, nil).Once()
	profiles.On("ListByIDs", mock.Anything, []uint{}).Return([]models.Profile{}, nil).Once()

	likers, err := service.ReceivedLikes(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, likers)
}
