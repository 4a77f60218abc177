package services

import "github.com/fyyur/backend/internal/models"

// Area groups the venues sharing one (city, state) pair.
type Area struct {
	City   string
	State  string
	Venues []models.Venue
}

type areaKey struct {
	city  string
	state string
}

// GroupByArea groups venues by (city, state). Groups appear in the order
// their pair is first seen; venues keep their input order within a group.
func GroupByArea(venues []models.Venue) []Area {
	index := make(map[areaKey]int)
	areas := make([]Area, 0)
	for _, v := range venues {
		key := areaKey{city: v.City, state: v.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, Area{City: v.City, State: v.State})
		}
		areas[i].Venues = append(areas[i].Venues, v)
	}
	return areas
}
