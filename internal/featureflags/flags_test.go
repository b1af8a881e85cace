package featureflags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnabled_BooleanValues(t *testing.T) {
	s := Parse("swapi_validation=on,favorite_repoint=off,a=true,b=false,c=1,d=0")

	assert.True(t, s.Enabled(SwapiValidation, 1))
	assert.False(t, s.Enabled(FavoriteRepoint, 1))
	assert.True(t, s.Enabled("a", 1))
	assert.False(t, s.Enabled("b", 1))
	assert.True(t, s.Enabled("c", 1))
	assert.False(t, s.Enabled("d", 1))
	assert.False(t, s.Enabled("missing", 1))
}

func TestEnabled_PercentageValues(t *testing.T) {
	s := Parse("always=100%,never=0%,canary=25%,junk=abc%")

	assert.True(t, s.Enabled("always", 1))
	assert.False(t, s.Enabled("never", 1))
	assert.False(t, s.Enabled("junk", 1))

	first := s.Enabled("canary", 42)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, s.Enabled("canary", 42), "rollout must be deterministic per user")
	}
	assert.False(t, s.Enabled("canary", 0), "percentage rollout requires a user")
}

func TestParse_SkipsMalformedPairs(t *testing.T) {
	s := Parse(" bad ,SWAPI_Validation = ON , favorite_repoint=20%, =on, x= ")

	snap := s.Snapshot(7)
	assert.Len(t, snap, 2)
	assert.Contains(t, snap, string(FavoriteRepoint))
	assert.True(t, snap[string(SwapiValidation)])
}

func TestSnapshot_IncludesKnownFlags(t *testing.T) {
	snap := Parse("").Snapshot(1)

	assert.Equal(t, map[string]bool{
		"swapi_validation": false,
		"favorite_repoint": false,
	}, snap)
}

func TestNilSet(t *testing.T) {
	var s *Set
	assert.False(t, s.Enabled(SwapiValidation, 1))
}
