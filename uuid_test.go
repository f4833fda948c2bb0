package bleadv

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUUID16(t *testing.T) {
	assert.Equal(t,
		"0000180d-0000-1000-8000-00805f9b34fb",
		UUID16(0x180D).String(),
	)
	assert.Equal(t,
		"00002a37-0000-1000-8000-00805f9b34fb",
		UUID16(0x2A37).String(),
	)
}

func TestUUID32(t *testing.T) {
	assert.Equal(t,
		"12345678-0000-1000-8000-00805f9b34fb",
		UUID32(0x12345678).String(),
	)
}

func TestUUIDWireForm(t *testing.T) {
	u := uuid.MustParse("a3c87500-8ed3-4bdf-8a39-a01bebede295")

	wire := appendUUIDLE(nil, u, 16)
	assert.Equal(t, []byte{
		0x95, 0xE2, 0xED, 0xEB, 0x1B, 0xA0, 0x39, 0x8A,
		0xDF, 0x4B, 0xD3, 0x8E, 0x00, 0x75, 0xC8, 0xA3,
	}, wire)
	assert.Equal(t, u, uuidFromLE(wire))
}

func TestUUIDShortWireForm(t *testing.T) {
	assert.Equal(t, []byte{0x0D, 0x18}, appendUUIDLE(nil, UUID16(0x180D), 2))
	assert.Equal(t, UUID16(0x180D), uuidFromShortLE([]byte{0x0D, 0x18}, 2))

	assert.Equal(t,
		[]byte{0x78, 0x56, 0x34, 0x12},
		appendUUIDLE(nil, UUID32(0x12345678), 4),
	)
	assert.Equal(t,
		UUID32(0x12345678),
		uuidFromShortLE([]byte{0x78, 0x56, 0x34, 0x12}, 4),
	)
}
