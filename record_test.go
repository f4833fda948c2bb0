package bleadv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanEmptyBuffer(t *testing.T) {
	assert.Empty(t, Scan(nil))
	assert.Empty(t, Scan([]byte{}))
}

func TestScanSingleRecord(t *testing.T) {
	buf := []byte{0x02, TypeFlags, 0x06}

	out := Scan(buf)
	require.Len(t, out, 1)
	require.NoError(t, out[0].Err)
	assert.Equal(t, 0, out[0].Offset)
	assert.Equal(t, uint8(2), out[0].Record.Length)
	assert.Equal(t, byte(TypeFlags), out[0].Record.Type)
	assert.Equal(t, []byte{0x06}, out[0].Record.Payload)
	assert.Equal(t, buf, out[0].Record.Bytes())
}

func TestScanMultipleRecords(t *testing.T) {
	buf := []byte{
		0x02, TypeFlags, 0x06,
		0x03, TypeAppearance, 0x44, 0x14,
		0x05, TypeCompleteName, 'G', 'o', 'p', 'h',
	}

	out := Scan(buf)
	require.Len(t, out, 3)
	for i, s := range out {
		require.NoError(t, s.Err, "record %d", i)
	}
	assert.Equal(t, []int{0, 3, 8}, []int{out[0].Offset, out[1].Offset, out[2].Offset})
	assert.Equal(t, byte(TypeCompleteName), out[2].Record.Type)
	assert.Equal(t, []byte("Goph"), out[2].Record.Payload)
}

func TestScanZeroLengthRecordAdvancesOneByte(t *testing.T) {
	// A zero length byte cannot carry a tag; scanning must report it and
	// keep going from the next byte.
	buf := []byte{
		0x00,
		0x02, TypeFlags, 0x06,
	}

	out := Scan(buf)
	require.Len(t, out, 2)

	var tooShort ErrTooShort
	require.Error(t, out[0].Err)
	require.True(t, errors.As(out[0].Err, &tooShort))
	assert.Equal(t, 0, out[0].Offset)

	require.NoError(t, out[1].Err)
	assert.Equal(t, 1, out[1].Offset)
	assert.Equal(t, byte(TypeFlags), out[1].Record.Type)
}

func TestScanTruncatedRecordStops(t *testing.T) {
	buf := []byte{
		0x02, TypeFlags, 0x06,
		0x09, TypeCompleteName, 'G', 'o', // declares 9, only 3 present
	}

	out := Scan(buf)
	require.Len(t, out, 2)
	require.NoError(t, out[0].Err)

	var tooShort ErrTooShort
	require.Error(t, out[1].Err)
	require.True(t, errors.As(out[1].Err, &tooShort))
	assert.Equal(t, 4, tooShort.Got)
	assert.Equal(t, 3, out[1].Offset)
}

func TestScanCopiesPayload(t *testing.T) {
	buf := []byte{0x02, TypeFlags, 0x06}

	out := Scan(buf)
	require.Len(t, out, 1)
	buf[2] = 0xFF
	assert.Equal(t, []byte{0x06}, out[0].Record.Payload)
}
