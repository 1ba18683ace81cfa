package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeRemoteRoundTrip(t *testing.T) {
	cases := []struct {
		accountID int64
		remoteID  string
	}{
		{1, "12345"},
		{1, "feed/0001"},
		{42, "tag:google.com,2005:reader/item/00000000a8c91b1e"},
		{7, ""},
	}

	for _, tc := range cases {
		composite := Compose(tc.accountID, tc.remoteID)
		assert.Equal(t, tc.remoteID, Remote(composite), "composite %q", composite)
	}
}

func TestRemoteMalformedReturnsInput(t *testing.T) {
	assert.Equal(t, "no-separator-here", Remote("no-separator-here"))
}

func TestAccountOf(t *testing.T) {
	assert.Equal(t, int64(42), AccountOf(Compose(42, "abc")))
	assert.Equal(t, int64(0), AccountOf("malformed"))
}

func TestNewLocalIsUniquePerCall(t *testing.T) {
	a := NewLocal(3)
	b := NewLocal(3)
	assert.NotEqual(t, a, b)
	assert.Equal(t, int64(3), AccountOf(a))
}
