package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenresRoundTrip(t *testing.T) {
	in := []string{"Jazz", "Reggae", "Swing", "Classical", "Folk"}
	assert.Equal(t, in, SplitGenres(JoinGenres(in)))
}

func TestSplitGenresEmpty(t *testing.T) {
	got := SplitGenres("")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestJoinGenresSingle(t *testing.T) {
	assert.Equal(t, "R&B", JoinGenres([]string{"R&B"}))
	assert.Equal(t, []string{"R&B"}, SplitGenres("R&B"))
}
