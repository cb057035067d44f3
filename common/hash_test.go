package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexRoundTrip(t *testing.T) {
	b := Sha256([]byte("turtle"))
	s := ToHex(b)
	assert.Equal(t, "0x", s[:2])

	b2, err := FromHex(s)
	require.NoError(t, err)
	assert.Equal(t, b, b2)
}

func TestToHexEmpty(t *testing.T) {
	assert.Equal(t, "", ToHex(nil))
}

func TestCopyBytes(t *testing.T) {
	assert.Nil(t, CopyBytes(nil))
	b := []byte{1, 2, 3}
	c := CopyBytes(b)
	assert.Equal(t, b, c)
	c[0] = 9
	assert.Equal(t, byte(1), b[0])
}
