package models

import "time"

// ShowPartition splits an entity's shows around a reference instant.
// A show starting exactly at that instant belongs to neither side.
type ShowPartition struct {
	Past     []Show
	Upcoming []Show
}

// PastCount returns the number of past shows.
func (p ShowPartition) PastCount() int { return len(p.Past) }

// UpcomingCount returns the number of upcoming shows.
func (p ShowPartition) UpcomingCount() int { return len(p.Upcoming) }

// PartitionShows splits shows into past and upcoming relative to now.
func PartitionShows(shows []Show, now time.Time) ShowPartition {
	return ShowPartition{
		Past:     PastShows(shows, now),
		Upcoming: UpcomingShows(shows, now),
	}
}

// UpcomingShows keeps the shows whose start date is strictly after now.
func UpcomingShows(shows []Show, now time.Time) []Show {
	out := make([]Show, 0, len(shows))
	for _, s := range shows {
		if s.StartDate.After(now) {
			out = append(out, s)
		}
	}
	return out
}

// PastShows keeps the shows whose start date is strictly before now.
func PastShows(shows []Show, now time.Time) []Show {
	out := make([]Show, 0, len(shows))
	for _, s := range shows {
		if s.StartDate.Before(now) {
			out = append(out, s)
		}
	}
	return out
}
