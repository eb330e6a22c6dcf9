package services

import (
	"context"
	"errors"

	"github.com/spice-app/api-go/models"
	"github.com/spice-app/api-go/repositories"
)

var (
	ErrInvalidAction = errors.New("invalid swipe action")
	ErrSelfSwipe     = errors.New("cannot swipe on yourself")
	ErrBlocked       = errors.New("profiles are in a block relationship")
)

// SwipeResult is the outcome of a single swipe: the recorded (or updated)
// swipe row and, when a mutual like closed the pair, the match.
type SwipeResult struct {
	Swipe   models.Swipe  `json:"swipe"`
	IsMatch bool          `json:"is_match"`
	Match   *models.Match `json:"match,omitempty"`
}

type SwipeService struct {
	profiles repositories.ProfileRepository
	swipes   repositories.SwipeRepository
	blocks   repositories.BlockRepository
}

func NewSwipeService(profiles repositories.ProfileRepository, swipes repositories.SwipeRepository, blocks repositories.BlockRepository) *SwipeService {
	return &SwipeService{profiles: profiles, swipes: swipes, blocks: blocks}
}

// RecordSwipe validates and persists a swipe from swiperID toward swipedID.
// A like or superlike against an existing reverse like creates the match;
// a pass never does.
func (s *SwipeService) RecordSwipe(ctx context.Context, swiperID, swipedID uint, action string) (SwipeResult, error) {
	if !models.ValidSwipeAction(action) {
		return SwipeResult{}, ErrInvalidAction
	}
	if swiperID == swipedID {
		return SwipeResult{}, ErrSelfSwipe
	}

	if _, err := s.profiles.GetByID(ctx, swipedID); err != nil {
		return SwipeResult{}, err
	}

	blocked, err := s.blocks.IsBlockedEither(ctx, swiperID, swipedID)
	if err != nil {
		return SwipeResult{}, err
	}
	if blocked {
		return SwipeResult{}, ErrBlocked
	}

	swipe, match, err := s.swipes.RecordSwipe(ctx, swiperID, swipedID, action)
	if err != nil {
		return SwipeResult{}, err
	}

	return SwipeResult{Swipe: swipe, IsMatch: match != nil, Match: match}, nil
}

// ReceivedLikes returns the profiles that liked profileID and were not yet
// swiped back, newest like first.
func (s *SwipeService) ReceivedLikes(ctx context.Context, profileID uint) ([]models.Profile, error) {
	likerIDs, err := s.swipes.PendingLikerIDs(ctx, profileID)
	if err != nil {
		return nil, err
	}

	profiles, err := s.profiles.ListByIDs(ctx, likerIDs)
	if err != nil {
		return nil, err
	}

	// ListByIDs does not preserve order; restore newest-first.
	byID := make(map[uint]models.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}
	ordered := make([]models.Profile, 0, len(profiles))
	for _, id := range likerIDs {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}
