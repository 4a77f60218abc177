package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func parseSchema(t *testing.T, model any) *schema.Schema {
	t.Helper()
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	return s
}

func TestShowsVenueForeignKeyDeclaredOnce(t *testing.T) {
	venue := parseSchema(t, &Venue{})
	shows, ok := venue.Relationships.Relations["Shows"]
	require.True(t, ok)

	fk := shows.ParseConstraint()
	require.NotNil(t, fk)
	assert.Equal(t, "fk_venues_shows", fk.Name)
	assert.Equal(t, "CASCADE", fk.OnDelete)

	show := parseSchema(t, &Show{})
	belongs, ok := show.Relationships.Relations["Venue"]
	require.True(t, ok)
	assert.Empty(t, belongs.Field.TagSettings["CONSTRAINT"])
}

func TestArtistShowsDoNotCascade(t *testing.T) {
	artist := parseSchema(t, &Artist{})
	shows, ok := artist.Relationships.Relations["Shows"]
	require.True(t, ok)

	assert.Empty(t, shows.Field.TagSettings["CONSTRAINT"])
	if fk := shows.ParseConstraint(); fk != nil {
		assert.Empty(t, fk.OnDelete)
	}
}
