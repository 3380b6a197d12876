package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"gigbook/internal/model"
)

func TestSplitTerms(t *testing.T) {
	assert.Equal(t, []string{"hop"}, SplitTerms("hop"))
	assert.Equal(t, []string{"hop", "pianos"}, SplitTerms("hop, pianos"))
	assert.Equal(t, []string{"a", "b", "c"}, SplitTerms(" a ,b,  c"))
}

// An empty query and empty comma segments survive as empty terms; the
// resulting %% pattern matches every record. Legacy behavior, kept on
// purpose.
func TestSplitTermsKeepsEmptyTerms(t *testing.T) {
	assert.Equal(t, []string{""}, SplitTerms(""))
	assert.Equal(t, []string{"hop", ""}, SplitTerms("hop,"))
	assert.Equal(t, "%%", Pattern(""))
}

func TestPattern(t *testing.T) {
	assert.Equal(t, "%musical%", Pattern("musical"))
}

func TestSearchFieldOrder(t *testing.T) {
	// Dedup order contract: name matches first, then state, then city.
	assert.Equal(t, []string{"name", "state", "city"}, searchFields)
}

func venueBatch(ids ...uint64) []*model.Venue {
	out := make([]*model.Venue, 0, len(ids))
	for _, id := range ids {
		out = append(out, &model.Venue{ID: id})
	}
	return out
}

func venueIDs(venues []*model.Venue) []uint64 {
	out := make([]uint64, 0, len(venues))
	for _, v := range venues {
		out = append(out, v.ID)
	}
	return out
}

func venueID(v *model.Venue) uint64 { return v.ID }

// A record whose name is matched by exactly one term comes back once,
// even though the same LIKE pass runs per searchable field.
func TestMergeUniqueSingleMatchOnce(t *testing.T) {
	batches := [][]*model.Venue{
		venueBatch(7), // name pass
		venueBatch(),  // state pass
		venueBatch(7), // city pass happens to match too
	}
	got := mergeUnique(batches, venueID)
	assert.Len(t, got, 1)
	assert.Equal(t, uint64(7), got[0].ID)
}

// Multi-term queries union their per-term matches deduplicated by id,
// keeping each record at the position of its earliest match.
func TestMergeUniqueMultiTermUnion(t *testing.T) {
	batches := [][]*model.Venue{
		venueBatch(1, 3), // term "hop"
		venueBatch(3, 5), // term "pianos"
	}
	got := mergeUnique(batches, venueID)
	assert.Equal(t, []uint64{1, 3, 5}, venueIDs(got))
}

// Batches arrive in field-major order, so a name match on a later
// term still precedes a city match on an earlier one.
func TestMergeUniqueFieldOrderPrecedence(t *testing.T) {
	batches := [][]*model.Venue{
		venueBatch(),     // name x term1
		venueBatch(9),    // name x term2
		venueBatch(2),    // state x term1
		venueBatch(9, 4), // city x term1
	}
	got := mergeUnique(batches, venueID)
	assert.Equal(t, []uint64{9, 2, 4}, venueIDs(got))
}

func TestMergeUniqueEmpty(t *testing.T) {
	got := mergeUnique(nil, venueID)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTerritoryFilter(t *testing.T) {
	where, args := territoryFilter("city", "Smithville", "TX")
	assert.Equal(t, `city = ?`, where)
	assert.Equal(t, []any{"Smithville"}, args)

	where, args = territoryFilter("city_state", "Smithville", "TX")
	assert.Equal(t, `city = ? AND state = ?`, where)
	assert.Equal(t, []any{"Smithville", "TX"}, args)

	// Anything else falls back to the legacy city-only grouping.
	where, args = territoryFilter("", "Smithville", "TX")
	assert.Equal(t, `city = ?`, where)
	assert.Equal(t, []any{"Smithville"}, args)
}

func TestUpcomingStrictInequality(t *testing.T) {
	now := time.Date(2026, 8, 28, 20, 0, 0, 0, time.UTC)

	later := ShowDetail{StartTime: now.Add(time.Second)}
	exact := ShowDetail{StartTime: now}
	earlier := ShowDetail{StartTime: now.Add(-time.Second)}

	assert.True(t, Upcoming(later, now))
	assert.False(t, Upcoming(exact, now), "a show starting exactly now is past")
	assert.False(t, Upcoming(earlier, now))
}
