package bleadv

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceData16RoundTrip(t *testing.T) {
	s := NewServiceData16BitUUID(UUID16(0x180D), []byte{0x03})
	assert.Equal(t, uint8(4), s.Length)

	b := s.Encode()
	assert.Equal(t, []byte{0x04, TypeServiceData16, 0x0D, 0x18, 0x03}, b)

	decoded, err := DecodeServiceData16BitUUID(b, 0)
	require.NoError(t, err)
	assert.Equal(t, s, decoded)
	assert.Equal(t, b, decoded.Encode())
}

func TestServiceData16BoundaryAcceptance(t *testing.T) {
	// The minimum well-formed record is [0x03][tag][uuid lo][uuid hi]:
	// exactly four bytes with an empty tail.
	minimal := []byte{0x03, TypeServiceData16, 0x0D, 0x18}

	decoded, err := DecodeServiceData16BitUUID(minimal, 0)
	require.NoError(t, err)
	assert.Equal(t, UUID16(0x180D), decoded.UUID)
	assert.Empty(t, decoded.AdditionalServiceData)

	var tooShort ErrTooShort
	_, err = DecodeServiceData16BitUUID(minimal[:3], 0)
	require.Error(t, err)
	require.True(t, errors.As(err, &tooShort))
	assert.Equal(t, 3, tooShort.Got)
}

func TestServiceData32RoundTrip(t *testing.T) {
	s := NewServiceData32BitUUID(UUID32(0x01020304), []byte{0xAA, 0xBB})

	b := s.Encode()
	assert.Equal(t, []byte{0x07, TypeServiceData32, 0x04, 0x03, 0x02, 0x01, 0xAA, 0xBB}, b)

	decoded, err := DecodeServiceData32BitUUID(b, 0)
	require.NoError(t, err)
	assert.Equal(t, s, decoded)
	assert.Equal(t, b, decoded.Encode())
}

func TestServiceData128RoundTrip(t *testing.T) {
	u := uuid.MustParse("6E400002-B5A3-F393-E0A9-E50E24DCCA9E")
	s := NewServiceData128BitUUID(u, []byte{0x01})

	b := s.Encode()
	require.Len(t, b, 19)
	assert.Equal(t, uint8(18), b[0])

	decoded, err := DecodeServiceData128BitUUID(b, 0)
	require.NoError(t, err)
	assert.Equal(t, u, decoded.UUID)
	assert.Equal(t, []byte{0x01}, decoded.AdditionalServiceData)
	assert.Equal(t, b, decoded.Encode())
}

func TestServiceDataOwnsTail(t *testing.T) {
	b := NewServiceData16BitUUID(UUID16(0xFEAA), []byte{0x10, 0x20}).Encode()

	decoded, err := DecodeServiceData16BitUUID(b, 0)
	require.NoError(t, err)
	b[4] = 0xFF
	assert.Equal(t, []byte{0x10, 0x20}, decoded.AdditionalServiceData)
}
