package services

import (
	"context"
	"sort"

	"github.com/spice-app/api-go/models"
	"github.com/spice-app/api-go/repositories"
	"github.com/spice-app/api-go/utils"
)

const (
	// Hard cap on a discovery page.
	discoveryResultLimit = 50
	// Candidates fetched before the distance pass; distance filtering can
	// only shrink the set, so we over-fetch.
	discoveryFetchLimit = 200
)

// DiscoveryFilters override the requester's stored preferences. Nil fields
// fall back to the profile defaults.
type DiscoveryFilters struct {
	MinAge         *int
	MaxAge         *int
	Genders        []string
	AccountTypes   []string
	MaxDistance    *float64
	OnlyVerified   *bool
	OnlyWithPhotos *bool
}

type DiscoveryService struct {
	profiles repositories.ProfileRepository
	swipes   repositories.SwipeRepository
	blocks   repositories.BlockRepository
}

func NewDiscoveryService(profiles repositories.ProfileRepository, swipes repositories.SwipeRepository, blocks repositories.BlockRepository) *DiscoveryService {
	return &DiscoveryService{profiles: profiles, swipes: swipes, blocks: blocks}
}

// Candidates returns the discovery feed for a profile: visible, complete
// profiles outside the exclusion set, attribute-filtered, distance-annotated
// and sorted nearest first. An empty result is a valid "no more profiles"
// answer, not an error.
func (s *DiscoveryService) Candidates(ctx context.Context, requesterID uint, filters DiscoveryFilters) ([]models.Profile, error) {
	requester, err := s.profiles.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	excluded, err := s.exclusionSet(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	candidateFilters := s.resolveFilters(&requester, filters)
	candidates, err := s.profiles.FindCandidates(ctx, excluded, candidateFilters, discoveryFetchLimit)
	if err != nil {
		return nil, err
	}

	if requester.HasCoordinates() {
		maxDistance := requester.MaxDistancePref
		if filters.MaxDistance != nil {
			maxDistance = *filters.MaxDistance
		}
		candidates = s.applyDistance(&requester, candidates, maxDistance)
	}

	if len(candidates) > discoveryResultLimit {
		candidates = candidates[:discoveryResultLimit]
	}
	return candidates, nil
}

// exclusionSet is self plus everyone already swiped on plus every profile in
// a block relationship with the requester, in either direction.
func (s *DiscoveryService) exclusionSet(ctx context.Context, requesterID uint) ([]uint, error) {
	swiped, err := s.swipes.SwipedIDs(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	blocked, err := s.blocks.BlockedIDs(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	blockedBy, err := s.blocks.BlockerIDs(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	seen := map[uint]bool{requesterID: true}
	excluded := []uint{requesterID}
	for _, group := range [][]uint{swiped, blocked, blockedBy} {
		for _, id := range group {
			if !seen[id] {
				seen[id] = true
				excluded = append(excluded, id)
			}
		}
	}
	return excluded, nil
}

func (s *DiscoveryService) resolveFilters(requester *models.Profile, filters DiscoveryFilters) repositories.CandidateFilters {
	resolved := repositories.CandidateFilters{
		MinAge:       requester.MinAgePref,
		MaxAge:       requester.MaxAgePref,
		Genders:      requester.SeekingGenders,
		AccountTypes: requester.SeekingAccountTypes,
	}
	if filters.MinAge != nil {
		resolved.MinAge = *filters.MinAge
	}
	if filters.MaxAge != nil {
		resolved.MaxAge = *filters.MaxAge
	}
	if len(filters.Genders) > 0 {
		resolved.Genders = filters.Genders
	}
	if len(filters.AccountTypes) > 0 {
		resolved.AccountTypes = filters.AccountTypes
	}
	if filters.OnlyVerified != nil {
		resolved.OnlyVerified = *filters.OnlyVerified
	}
	if filters.OnlyWithPhotos != nil {
		resolved.OnlyWithPhotos = *filters.OnlyWithPhotos
	}
	return resolved
}

// applyDistance annotates coordinate-bearing candidates with their haversine
// distance from the requester, drops those beyond maxDistance and sorts
// nearest first. Candidates without coordinates are kept and sort last.
func (s *DiscoveryService) applyDistance(requester *models.Profile, candidates []models.Profile, maxDistance float64) []models.Profile {
	filtered := candidates[:0]
	for i := range candidates {
		candidate := candidates[i]
		if candidate.HasCoordinates() {
			distance := utils.Haversine(*requester.Latitude, *requester.Longitude,
				*candidate.Latitude, *candidate.Longitude)
			if maxDistance > 0 && distance > maxDistance {
				continue
			}
			candidate.Distance = &distance
		}
		filtered = append(filtered, candidate)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i].Distance, filtered[j].Distance
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a < *b
	})
	return filtered
}
