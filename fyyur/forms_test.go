package fyyur

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/errs"
	"github.com/lgaetano/Udacity-Full-Stack-Nanodegree/models"
)

func TestParseGenres(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{"nil", nil, nil},
		{"repeated_values", []string{"Jazz", "Blues"}, []string{"Jazz", "Blues"}},
		{"comma_separated", []string{"Jazz,Blues, Swing"}, []string{"Jazz", "Blues", "Swing"}},
		{"blank_entries_dropped", []string{" , Jazz ,,"}, []string{"Jazz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseGenres(tt.values))
		})
	}
}

func TestVenueFormApply(t *testing.T) {
	form := VenueForm{
		Name:          "The Musical Hop",
		City:          "San Francisco",
		State:         "CA",
		Address:       "1015 Folsom Street",
		Phone:         "123-123-1234",
		Genres:        []string{"Jazz", "Reggae"},
		SeekingTalent: true,
	}

	var venue models.Venue
	require.NoError(t, form.Apply(&venue))
	assert.Equal(t, "Jazz,Reggae", venue.Genres)
	assert.True(t, venue.SeekingTalent)
	assert.Nil(t, venue.SeekingDescription)

	t.Run("missing_required_field", func(t *testing.T) {
		bad := form
		bad.Phone = "  "
		err := bad.Apply(&models.Venue{})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, errs.StatusCode(err))
	})
}

func TestShowFormModel(t *testing.T) {
	tests := []struct {
		name    string
		form    ShowForm
		want    models.Show
		wantErr bool
	}{
		{
			name: "datetime_local",
			form: ShowForm{ArtistID: "4", VenueID: "1", StartTime: "2035-04-01T20:00"},
			want: models.Show{ArtistID: 4, VenueID: 1, StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
		},
		{
			name: "space_separated_with_seconds",
			form: ShowForm{ArtistID: "4", VenueID: "1", StartTime: "2035-04-01 20:00:30"},
			want: models.Show{ArtistID: 4, VenueID: 1, StartTime: time.Date(2035, 4, 1, 20, 0, 30, 0, time.UTC)},
		},
		{
			name:    "missing_start_time",
			form:    ShowForm{ArtistID: "4", VenueID: "1"},
			wantErr: true,
		},
		{
			name:    "non_numeric_artist_id",
			form:    ShowForm{ArtistID: "four", VenueID: "1", StartTime: "2035-04-01T20:00"},
			wantErr: true,
		},
		{
			name:    "unparseable_start_time",
			form:    ShowForm{ArtistID: "4", VenueID: "1", StartTime: "next tuesday"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			show, err := tt.form.Model()
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, errs.StatusCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want.ArtistID, show.ArtistID)
			assert.Equal(t, tt.want.VenueID, show.VenueID)
			assert.True(t, tt.want.StartTime.Equal(show.StartTime))
		})
	}
}
