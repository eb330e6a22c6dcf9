package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/spice-app/api-go/models"
	"github.com/spice-app/api-go/repositories"
)

type ProfileRepositoryMock struct {
	mock.Mock
}

func (m *ProfileRepositoryMock) Create(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *ProfileRepositoryMock) GetByID(ctx context.Context, id uint) (models.Profile, error) {
	args := m.Called(ctx, id)
	var profile models.Profile
	if val := args.Get(0); val != nil {
		profile = val.(models.Profile)
	}
	return profile, args.Error(1)
}

func (m *ProfileRepositoryMock) GetByUserID(ctx context.Context, userID uint) (models.Profile, error) {
	args := m.Called(ctx, userID)
	var profile models.Profile
	if val := args.Get(0); val != nil {
		profile = val.(models.Profile)
	}
	return profile, args.Error(1)
}

func (m *ProfileRepositoryMock) Update(ctx context.Context, profile *models.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *ProfileRepositoryMock) ListByIDs(ctx context.Context, ids []uint) ([]models.Profile, error) {
	args := m.Called(ctx, ids)
	var profiles []models.Profile
	if val := args.Get(0); val != nil {
		profiles = val.([]models.Profile)
	}
	return profiles, args.Error(1)
}

func (m *ProfileRepositoryMock) DeletePhoto(ctx context.Context, photo *models.ProfilePhoto) error {
	args := m.Called(ctx, photo)
	return args.Error(0)
}

func (m *ProfileRepositoryMock) FindCandidates(ctx context.Context, excludedIDs []uint, filters repositories.CandidateFilters, limit int) ([]models.Profile, error) {
	args := m.Called(ctx, excludedIDs, filters, limit)
	var profiles []models.Profile
	if val := args.Get(0); val != nil {
		profiles = val.([]models.Profile)
	}
	return profiles, args.Error(1)
}

type SwipeRepositoryMock struct {
	mock.Mock
}

func (m *SwipeRepositoryMock) RecordSwipe(ctx context.Context, swiperID, swipedID uint, action string) (models.Swipe, *models.Match, error) {
	args := m.Called(ctx, swiperID, swipedID, action)
	var swipe models.Swipe
	if val := args.Get(0); val != nil {
		swipe = val.(models.Swipe)
	}
	var match *models.Match
	if val := args.Get(1); val != nil {
		match = val.(*models.Match)
	}
	return swipe, match, args.Error(2)
}

func (m *SwipeRepositoryMock) SwipedIDs(ctx context.Context, swiperID uint) ([]uint, error) {
	args := m.Called(ctx, swiperID)
	var ids []uint
	if val := args.Get(0); val != nil {
		ids = val.([]uint)
	}
	return ids, args.Error(1)
}

func (m *SwipeRepositoryMock) PendingLikerIDs(ctx context.Context, profileID uint) ([]uint, error) {
	args := m.Called(ctx, profileID)
	var ids []uint
	if val := args.Get(0); val != nil {
		ids = val.([]uint)
	}
	return ids, args.Error(1)
}

type BlockRepositoryMock struct {
	mock.Mock
}

func (m *BlockRepositoryMock) Find(ctx context.Context, blockerID, blockedID uint) (models.Block, error) {
	args := m.Called(ctx, blockerID, blockedID)
	var block models.Block
	if val := args.Get(0); val != nil {
		block = val.(models.Block)
	}
	return block, args.Error(1)
}

func (m *BlockRepositoryMock) Create(ctx context.Context, block *models.Block) error {
	args := m.Called(ctx, block)
	return args.Error(0)
}

func (m *BlockRepositoryMock) Delete(ctx context.Context, block *models.Block) error {
	args := m.Called(ctx, block)
	return args.Error(0)
}

func (m *BlockRepositoryMock) BlockedIDs(ctx context.Context, blockerID uint) ([]uint, error) {
	args := m.Called(ctx, blockerID)
	var ids []uint
	if val := args.Get(0); val != nil {
		ids = val.([]uint)
	}
	return ids, args.Error(1)
}

func (m *BlockRepositoryMock) BlockerIDs(ctx context.Context, blockedID uint) ([]uint, error) {
	args := m.Called(ctx, blockedID)
	var ids []uint
	if val := args.Get(0); val != nil {
		ids = val.([]uint)
	}
	return ids, args.Error(1)
}

func (m *BlockRepositoryMock) IsBlockedEither(ctx context.Context, profileX, profileY uint) (bool, error) {
	args := m.Called(ctx, profileX, profileY)
	return args.Bool(0), args.Error(1)
}

type MatchRepositoryMock struct {
	mock.Mock
}

func (m *MatchRepositoryMock) GetByID(ctx context.Context, id uint) (models.Match, error) {
	args := m.Called(ctx, id)
	var match models.Match
	if val := args.Get(0); val != nil {
		match = val.(models.Match)
	}
	return match, args.Error(1)
}

func (m *MatchRepositoryMock) ListForProfile(ctx context.Context, profileID uint) ([]repositories.MatchWithProfile, error) {
	args := m.Called(ctx, profileID)
	var list []repositories.MatchWithProfile
	if val := args.Get(0); val != nil {
		list = val.([]repositories.MatchWithProfile)
	}
	return list, args.Error(1)
}

func (m *MatchRepositoryMock) Delete(ctx context.Context, matchID uint) error {
	args := m.Called(ctx, matchID)
	return args.Error(0)
}

func (m *MatchRepositoryMock) DeleteForPair(ctx context.Context, profileX, profileY uint) error {
	args := m.Called(ctx, profileX, profileY)
	return args.Error(0)
}

type ReportRepositoryMock struct {
	mock.Mock
}

func (m *ReportRepositoryMock) Create(ctx context.Context, report *models.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

type MessageRepositoryMock struct {
	mock.Mock
}

func (m *MessageRepositoryMock) Create(ctx context.Context, message *models.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MessageRepositoryMock) ListForMatch(ctx context.Context, matchID uint, limit, offset int) ([]models.Message, error) {
	args := m.Called(ctx, matchID, limit, offset)
	var messages []models.Message
	if val := args.Get(0); val != nil {
		messages = val.([]models.Message)
	}
	return messages, args.Error(1)
}

func (m *MessageRepositoryMock) MarkRead(ctx context.Context, matchID, readerID uint) error {
	args := m.Called(ctx, matchID, readerID)
	return args.Error(0)
}
