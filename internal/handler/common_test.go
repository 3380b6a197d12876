package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gigbook/internal/repository"
)

func fixedClock() time.Time {
	return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
}

func TestPartitionShows(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	shows := []repository.ShowDetail{
		{ShowID: 1, StartTime: now.Add(-48 * time.Hour)},
		{ShowID: 2, StartTime: now}, // boundary: exactly now is past
		{ShowID: 3, StartTime: now.Add(time.Minute)},
		{ShowID: 4, StartTime: now.Add(72 * time.Hour)},
	}

	past, upcoming := partitionShows(shows, now)

	assert.Len(t, past, 2)
	assert.Len(t, upcoming, 2)
	assert.Equal(t, uint64(1), past[0].ShowID)
	assert.Equal(t, uint64(2), past[1].ShowID)
	assert.Equal(t, uint64(3), upcoming[0].ShowID)
	assert.Equal(t, uint64(4), upcoming[1].ShowID)
}

func TestPartitionShowsEmpty(t *testing.T) {
	past, upcoming := partitionShows(nil, time.Now())
	assert.NotNil(t, past)
	assert.NotNil(t, upcoming)
	assert.Empty(t, past)
	assert.Empty(t, upcoming)
}

func TestNotices(t *testing.T) {
	assert.Equal(t,
		"Venue 'The Musical Hop' was successfully listed!",
		listedNotice("Venue", "The Musical Hop", "listed", true))
	assert.Equal(t,
		"An error occurred. Artist 'Guns N Petals' could not be updated.",
		listedNotice("Artist", "Guns N Petals", "updated", false))
	assert.Equal(t,
		"ERROR: venue with ID 999999 does not exist!",
		missingNotice("venue", 999999))
}
