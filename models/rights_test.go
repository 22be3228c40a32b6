package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRights_WireValues(t *testing.T) {
	// these integers travel on the wire and must never shift
	assert.Equal(t, 0, int(RightsNone))
	assert.Equal(t, 1, int(RightsRead))
	assert.Equal(t, 2, int(RightsReadProtected))
	assert.Equal(t, 3, int(RightsWrite))
	assert.Equal(t, 4, int(RightsGrant))
}

func TestRights_Ordered(t *testing.T) {
	assert.True(t, RightsNone < RightsRead)
	assert.True(t, RightsRead < RightsReadProtected)
	assert.True(t, RightsReadProtected < RightsWrite)
	assert.True(t, RightsWrite < RightsGrant)
}

func TestParseRights_RoundTrip(t *testing.T) {
	for _, r := range []Rights{RightsNone, RightsRead, RightsReadProtected, RightsWrite, RightsGrant} {
		parsed, err := ParseRights(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}
}

func TestParseRights_Unknown(t *testing.T) {
	_, err := ParseRights("sudo")
	assert.Error(t, err)
}

func TestRights_StringUnknown(t *testing.T) {
	assert.Equal(t, "rights(99)", Rights(99).String())
}
