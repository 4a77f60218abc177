package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, time.October, 14, 20, 0, 0, 0, time.UTC)

func showAt(id uint, start time.Time) Show {
	return Show{ID: id, StartDate: start, VenueID: 1, ArtistID: 1}
}

func ids(shows []Show) []uint {
	out := make([]uint, 0, len(shows))
	for _, s := range shows {
		out = append(out, s.ID)
	}
	return out
}

func TestPartitionShows(t *testing.T) {
	shows := []Show{
		showAt(1, now.Add(-48*time.Hour)),
		showAt(2, now.Add(time.Hour)),
		showAt(3, now),
		showAt(4, now.Add(-time.Nanosecond)),
		showAt(5, now.AddDate(1, 0, 0)),
	}

	p := PartitionShows(shows, now)

	assert.Equal(t, []uint{1, 4}, ids(p.Past))
	assert.Equal(t, []uint{2, 5}, ids(p.Upcoming))
	assert.Equal(t, 2, p.PastCount())
	assert.Equal(t, 2, p.UpcomingCount())
}

func TestShowAtEvaluationInstantIsInNeitherSet(t *testing.T) {
	shows := []Show{showAt(1, now)}

	assert.Empty(t, UpcomingShows(shows, now))
	assert.Empty(t, PastShows(shows, now))
}

func TestPartitionNoShows(t *testing.T) {
	p := PartitionShows(nil, now)

	assert.NotNil(t, p.Past)
	assert.NotNil(t, p.Upcoming)
	assert.Zero(t, p.PastCount())
	assert.Zero(t, p.UpcomingCount())
}

func TestVenueAndArtistSeeSameShow(t *testing.T) {
	future := showAt(9, now.Add(24*time.Hour))
	venue := Venue{ID: 1, Shows: []Show{future}}
	artist := Artist{ID: 1, Shows: []Show{future}}

	assert.Len(t, venue.UpcomingShows(now), 1)
	assert.Len(t, artist.UpcomingShows(now), 1)
	assert.Empty(t, venue.PastShows(now))
	assert.Empty(t, artist.PastShows(now))

	later := now.Add(48 * time.Hour)
	assert.Empty(t, venue.UpcomingShows(later))
	assert.Len(t, artist.PastShows(later), 1)
}

func TestStartTimeLayout(t *testing.T) {
	s := showAt(1, time.Date(2019, time.May, 21, 21, 30, 0, 0, time.UTC))
	assert.Equal(t, "2019-05-21 21:30:00", s.StartTime())
}
