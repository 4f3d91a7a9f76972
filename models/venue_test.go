package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenreRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		genres []string
		stored string
	}{
		{"empty", nil, ""},
		{"single", []string{"Jazz"}, "Jazz"},
		{"multiple", []string{"Jazz", "Reggae", "Swing"}, "Jazz,Reggae,Swing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.stored, JoinGenres(tt.genres))
			assert.Equal(t, tt.genres, SplitGenres(tt.stored))
		})
	}
}

func TestShowIsPast(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, Show{StartTime: now.Add(-time.Second)}.IsPast(now))
	assert.True(t, Show{StartTime: now}.IsPast(now))
	assert.False(t, Show{StartTime: now.Add(time.Second)}.IsPast(now))
}
