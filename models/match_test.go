package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePair(t *testing.T) {
	a, b := NormalizePair(9, 3)
	assert.Equal(t, uint(3), a)
	assert.Equal(t, uint(9), b)

	a, b = NormalizePair(3, 9)
	assert.Equal(t, uint(3), a)
	assert.Equal(t, uint(9), b)
}

func TestMatchInvolvesAndCounterpart(t *testing.T) {
	match := Match{ProfileAID: 3, ProfileBID: 9}

	assert.True(t, match.Involves(3))
	assert.True(t, match.Involves(9))
	assert.False(t, match.Involves(4))

	assert.Equal(t, uint(9), match.Counterpart(3))
	assert.Equal(t, uint(3), match.Counterpart(9))
}

func TestValidSwipeAction(t *testing.T) {
	assert.True(t, ValidSwipeAction(SwipeActionLike))
	assert.True(t, ValidSwipeAction(SwipeActionPass))
	assert.True(t, ValidSwipeAction(SwipeActionSuperlike))
	assert.False(t, ValidSwipeAction("wink"))
	assert.False(t, ValidSwipeAction(""))
}

func TestIsLike(t *testing.T) {
	assert.True(t, IsLike(SwipeActionLike))
	assert.True(t, IsLike(SwipeActionSuperlike))
	assert.False(t, IsLike(SwipeActionPass))
}
