package models

import (
	"testing"

	"wiki-quiz/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestStringSliceRoundTrip(t *testing.T) {
	original := StringSlice{"History", "Recipients", "Criticism"}

	value, err := original.Value()
	assert.NoError(t, err)

	var scanned StringSlice
	assert.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)
}

func TestStringSliceValueNil(t *testing.T) {
	var s StringSlice
	value, err := s.Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", value)
}

func TestStringSliceScanEdgeCases(t *testing.T) {
	var s StringSlice

	assert.NoError(t, s.Scan(nil))
	assert.Equal(t, StringSlice{}, s)

	assert.NoError(t, s.Scan(""))
	assert.Equal(t, StringSlice{}, s)

	assert.NoError(t, s.Scan("null"))
	assert.Equal(t, StringSlice{}, s)

	assert.NoError(t, s.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringSlice{"a", "b"}, s)

	assert.Error(t, s.Scan(42))
}

func TestKeyEntitiesRoundTrip(t *testing.T) {
	original := KeyEntities{
		People:        []string{"Alan Turing"},
		Organizations: []string{"ACM"},
		Locations:     []string{"United States"},
	}

	value, err := original.Value()
	assert.NoError(t, err)

	var scanned KeyEntities
	assert.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)
}

func TestKeyEntitiesScanEmptyColumn(t *testing.T) {
	var k KeyEntities

	assert.NoError(t, k.Scan(nil))
	assert.Equal(t, KeyEntities(domain.NewKeyEntities()), k)

	assert.NoError(t, k.Scan(""))
	assert.NotNil(t, k.People)
	assert.NotNil(t, k.Organizations)
	assert.NotNil(t, k.Locations)
}

func TestKeyEntitiesScanPartialObject(t *testing.T) {
	var k KeyEntities
	assert.NoError(t, k.Scan(`{"people":["Alan Turing"]}`))

	assert.Equal(t, []string{"Alan Turing"}, k.People)
	// Missing lists scan to empty, never nil
	assert.NotNil(t, k.Organizations)
	assert.NotNil(t, k.Locations)
}
