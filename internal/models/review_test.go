package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetType_IsValid(t *testing.T) {
	assert.True(t, TargetTypeArtist.IsValid())
	assert.True(t, TargetTypeEvent.IsValid())
	assert.True(t, TargetTypeVenue.IsValid())
	assert.False(t, TargetType("user").IsValid())
	assert.False(t, TargetType("").IsValid())
}

func TestReview_SetTarget_ExactlyOneColumn(t *testing.T) {
	var review Review

	review.SetTarget(ReviewTarget{Type: TargetTypeArtist, ID: 42})
	assert.NotNil(t, review.ArtistID)
	assert.Equal(t, int64(42), *review.ArtistID)
	assert.Nil(t, review.EventID)
	assert.Nil(t, review.VenueID)

	// Повторная установка обнуляет предыдущую цель.
	review.SetTarget(ReviewTarget{Type: TargetTypeVenue, ID: 7})
	assert.Nil(t, review.ArtistID)
	assert.Nil(t, review.EventID)
	assert.NotNil(t, review.VenueID)
	assert.Equal(t, int64(7), *review.VenueID)

	assert.Equal(t, ReviewTarget{Type: TargetTypeVenue, ID: 7}, review.Target())
}
