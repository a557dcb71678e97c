package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	assert.Equal(t, 0, tracker.Count())
	assert.Empty(t, tracker.Ordered())
}

func TestTracker_TrackAndContains(t *testing.T) {
	tracker := NewTracker()

	assert.False(t, tracker.Contains("chr1"))

	tracker.Track("chr1")
	assert.True(t, tracker.Contains("chr1"))
	assert.Equal(t, 1, tracker.Count())

	tracker.Track("chr2")
	assert.Equal(t, []string{"chr1", "chr2"}, tracker.Ordered())
}

func TestTracker_TrackDuplicate_NoOp(t *testing.T) {
	tracker := NewTracker()

	tracker.Track("chr1")
	tracker.Track("chr1")

	assert.Equal(t, 1, tracker.Count())
	assert.Equal(t, []string{"chr1"}, tracker.Ordered())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	tracker.Track("chr1")
	tracker.Track("chr2")

	tracker.Reset()

	assert.Equal(t, 0, tracker.Count())
	assert.False(t, tracker.Contains("chr1"))
}
