package bleadv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppearanceRoundTrip(t *testing.T) {
	a := NewAppearance(0x1444)
	assert.Equal(t, uint8(3), a.Length)

	b := a.Encode()
	assert.Equal(t, []byte{0x03, TypeAppearance, 0x44, 0x14}, b)

	decoded, err := DecodeAppearance(b, 0)
	require.NoError(t, err)
	assert.Equal(t, a, decoded)
	assert.Equal(t, b, decoded.Encode())
}

func TestDecodeAppearanceWithOffset(t *testing.T) {
	data := append([]byte{0x00}, NewAppearance(0x1444).Encode()...)

	decoded, err := DecodeAppearance(data, 1)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1444), decoded.Appearance)
}

func TestAppearanceCategoryExtraction(t *testing.T) {
	a := NewAppearance(0x1444)
	assert.Equal(t, uint16(0x051), a.Category())
	assert.Equal(t, uint16(0x04), a.SubCategory())
}

func TestDecodeAppearanceTooShort(t *testing.T) {
	var tooShort ErrTooShort
	for _, data := range [][]byte{
		nil,
		{0x03},
		{0x03, TypeAppearance},
		{0x03, TypeAppearance, 0x44},
	} {
		_, err := DecodeAppearance(data, 0)
		require.Error(t, err)
		require.True(t, errors.As(err, &tooShort))
	}
}
