package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDerivePlaylistIDs(t *testing.T) {
	videosID, shortsID, ok := DerivePlaylistIDs("UCabcdefghijklmnopqrstuv")
	assert.True(t, ok)
	assert.Equal(t, "UULFabcdefghijklmnopqrstuv", videosID)
	assert.Equal(t, "UUSHabcdefghijklmnopqrstuv", shortsID)
}

func TestDerivePlaylistIDs_GoldenValue(t *testing.T) {
	// Real-world shaped ID: 24 characters, UC prefix.
	videosID, shortsID, ok := DerivePlaylistIDs("UC1DCedRgGHBdm81E1llLhOQ")
	assert.True(t, ok)
	assert.Equal(t, "UULF1DCedRgGHBdm81E1llLhOQ", videosID)
	assert.Equal(t, "UUSH1DCedRgGHBdm81E1llLhOQ", shortsID)
}

func TestDerivePlaylistIDs_RejectsBadShapes(t *testing.T) {
	cases := []struct {
		name string
		id   string
	}{
		{"empty", ""},
		{"too short", "UCabc"},
		{"too long", "UCabcdefghijklmnopqrstuvwxyz"},
		{"wrong prefix", "XXabcdefghijklmnopqrstuv"},
		{"playlist id passed in", "UULFabcdefghijklmnopqrst"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			videosID, shortsID, ok := DerivePlaylistIDs(tc.id)
			assert.False(t, ok)
			assert.Empty(t, videosID)
			assert.Empty(t, shortsID)
		})
	}
}

func TestKindForDuration(t *testing.T) {
	assert.Equal(t, KindShort, KindForDuration(45*time.Second))
	assert.Equal(t, KindShort, KindForDuration(ShortMaxDuration))
	assert.Equal(t, KindVideo, KindForDuration(ShortMaxDuration+1))
	assert.Equal(t, KindVideo, KindForDuration(0))
}
