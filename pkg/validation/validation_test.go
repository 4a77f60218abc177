package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name    string   `json:"name" validate:"required"`
	Genres  []string `json:"genres" validate:"required,min=1"`
	Website string   `json:"website_link" validate:"omitempty,url"`
	Note    string
}

func TestStructValid(t *testing.T) {
	fields, err := Struct(sample{Name: "The Musical Hop", Genres: []string{"Jazz"}})
	require.NoError(t, err)
	assert.Nil(t, fields)
}

func TestStructReportsJSONNames(t *testing.T) {
	fields, err := Struct(sample{Website: "not a url"})
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "genres", "website_link"}, fields)
}

func TestStructEmptyGenres(t *testing.T) {
	fields, err := Struct(sample{Name: "x", Genres: []string{}})
	require.NoError(t, err)
	assert.Equal(t, []string{"genres"}, fields)
}

func TestStructRejectsNonStruct(t *testing.T) {
	_, err := Struct(42)
	assert.Error(t, err)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "Park Square", SanitizeString("  Park\x00 Square \n"))
	assert.Equal(t, []string{"Jazz", "Folk"}, SanitizeList([]string{" Jazz", "", "  ", "Folk "}))
	assert.NotNil(t, SanitizeList(nil))
}
