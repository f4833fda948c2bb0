package bleadv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBIGInfoRoundTrip(t *testing.T) {
	b := NewBIGInfo(
		1,     // bigOffset
		true,  // bigOffsetUnits
		2,     // isoInterval
		3,     // numBIS
		4,     // nse
		5,     // bn
		6,     // subInterval
		7,     // pto
		8,     // bisSpacing
		9,     // irc
		10,    // maxPDU
		11,    // rfu
		12,    // seedAccessAddress
		13,    // sduInterval
		14,    // maxSDU
		15,    // baseCRCInit
		16,    // chM
		17,    // phy
		18,    // bisPayloadCount
		false, // framing
		nil,
		nil,
	)
	assert.Equal(t, uint8(34), b.Length)
	assert.False(t, b.IsEncrypted())

	wire := b.Encode()
	require.Len(t, wire, 35)
	assert.Equal(t, uint8(34), wire[0])
	assert.Equal(t, byte(TypeBIGInfo), wire[1])

	decoded, err := DecodeBIGInfo(wire, 0)
	require.NoError(t, err)
	assert.Equal(t, b, decoded)
	assert.Equal(t, uint16(1), decoded.BIGOffset)
	assert.True(t, decoded.BIGOffsetUnits)
	assert.Equal(t, uint16(2), decoded.ISOInterval)
	assert.Equal(t, uint8(3), decoded.NumBIS)
	assert.Equal(t, uint8(4), decoded.NSE)
	assert.Equal(t, uint8(5), decoded.BN)
	assert.Equal(t, uint32(6), decoded.SubInterval)
	assert.Equal(t, uint8(7), decoded.PTO)
	assert.Equal(t, uint32(8), decoded.BISSpacing)
	assert.Equal(t, uint8(9), decoded.IRC)
	assert.Equal(t, uint8(10), decoded.MaxPDU)
	assert.Equal(t, uint8(11), decoded.RFU)
	assert.Equal(t, uint32(12), decoded.SeedAccessAddress)
	assert.Equal(t, uint32(13), decoded.SDUInterval)
	assert.Equal(t, uint16(14), decoded.MaxSDU)
	assert.Equal(t, uint16(15), decoded.BaseCRCInit)
	assert.Equal(t, uint64(16), decoded.ChM)
	assert.Equal(t, uint8(17), decoded.PHY)
	assert.Equal(t, uint64(18), decoded.BISPayloadCount)
	assert.False(t, decoded.Framing)
	assert.Nil(t, decoded.GIV)
	assert.Nil(t, decoded.GSKD)
}

func TestBIGInfoEncryptedRoundTrip(t *testing.T) {
	giv := &[8]byte{1, 2, 3, 4, 5, 6, 7, 8}
	var gskd [16]byte
	for i := range gskd {
		gskd[i] = byte(0xF0 + i)
	}

	b := NewBIGInfo(
		0x3FFF,   // bigOffset, all 14 bits
		false,    // bigOffsetUnits
		0xFFF,    // isoInterval, all 12 bits
		0x1F,     // numBIS
		0x1F,     // nse
		0x07,     // bn
		0xFFFFF,  // subInterval, all 20 bits
		0x0F,     // pto
		0xFFFFF,  // bisSpacing
		0x0F,     // irc
		0xFF,     // maxPDU
		0x00,     // rfu
		0x9E8B33, // seedAccessAddress
		0xFFFFF,  // sduInterval
		0xFFF,    // maxSDU
		0xFFFF,   // baseCRCInit
		0x1FFFFFFFFF, // chM, all 37 bits
		0x07,         // phy
		0x7FFFFFFFFF, // bisPayloadCount, all 39 bits
		true,         // framing
		giv,
		&gskd,
	)
	assert.Equal(t, uint8(58), b.Length)
	assert.True(t, b.IsEncrypted())

	wire := b.Encode()
	require.Len(t, wire, 59)

	decoded, err := DecodeBIGInfo(wire, 0)
	require.NoError(t, err)
	assert.Equal(t, b, decoded)
	require.NotNil(t, decoded.GIV)
	require.NotNil(t, decoded.GSKD)
	assert.Equal(t, *giv, *decoded.GIV)
	assert.Equal(t, gskd, *decoded.GSKD)
	assert.Equal(t, wire, decoded.Encode())
}

func TestBIGInfoBadLength(t *testing.T) {
	wire := NewBIGInfo(
		1, true, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18,
		false, nil, nil,
	).Encode()

	// A declared length that is neither the plain nor the encrypted size.
	bad := append([]byte{}, wire...)
	bad = append(bad, 0x00)
	bad[0] = 35
	var invalid ErrInvalidEncoding
	_, err := DecodeBIGInfo(bad, 0)
	require.Error(t, err)
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, byte(TypeBIGInfo), invalid.Type)

	var tooShort ErrTooShort
	_, err = DecodeBIGInfo(wire[:20], 0)
	require.Error(t, err)
	require.True(t, errors.As(err, &tooShort))
}

func TestAdvertisingIntervalRoundTrip(t *testing.T) {
	a := NewAdvertisingInterval(0x0800)

	wire := a.Encode()
	assert.Equal(t, []byte{0x03, TypeAdvertisingInterval, 0x00, 0x08}, wire)

	decoded, err := DecodeAdvertisingInterval(wire, 0)
	require.NoError(t, err)
	assert.Equal(t, a, decoded)
	assert.Equal(t, 1280.0, decoded.Millis())
}

func TestAdvertisingIntervalLongRoundTrip(t *testing.T) {
	t.Run("24bits", func(t *testing.T) {
		a := NewAdvertisingIntervalLong(false, 0x123456)

		wire := a.Encode()
		assert.Equal(t, []byte{0x04, TypeAdvIntervalLong, 0x56, 0x34, 0x12}, wire)

		decoded, err := DecodeAdvertisingIntervalLong(wire, 0)
		require.NoError(t, err)
		assert.Equal(t, a, decoded)
		assert.False(t, decoded.ValueIs32Bits)
	})

	t.Run("32bits", func(t *testing.T) {
		a := NewAdvertisingIntervalLong(true, 0x12345678)

		wire := a.Encode()
		assert.Equal(t, []byte{0x05, TypeAdvIntervalLong, 0x78, 0x56, 0x34, 0x12}, wire)

		decoded, err := DecodeAdvertisingIntervalLong(wire, 0)
		require.NoError(t, err)
		assert.Equal(t, a, decoded)
		assert.True(t, decoded.ValueIs32Bits)
	})

	t.Run("bad length", func(t *testing.T) {
		var invalid ErrInvalidEncoding
		_, err := DecodeAdvertisingIntervalLong(
			[]byte{0x06, TypeAdvIntervalLong, 0x01, 0x02, 0x03, 0x04, 0x05}, 0)
		require.Error(t, err)
		require.True(t, errors.As(err, &invalid))
	})
}
