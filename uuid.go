package bleadv

import "github.com/google/uuid"

// BaseUUID is the Bluetooth SIG base UUID. 16-bit and 32-bit UUIDs are not
// independent values; they occupy the low-order bits of its first field.
var BaseUUID = uuid.MustParse("00000000-0000-1000-8000-00805F9B34FB")

// UUID16 returns the full 128-bit UUID for a 16-bit assigned UUID,
// e.g. UUID16(0x180D) for the Heart Rate service.
func UUID16(v uint16) uuid.UUID {
	u := BaseUUID
	u[2] = byte(v >> 8)
	u[3] = byte(v)
	return u
}

// UUID32 returns the full 128-bit UUID for a 32-bit assigned UUID.
func UUID32(v uint32) uuid.UUID {
	u := BaseUUID
	u[0] = byte(v >> 24)
	u[1] = byte(v >> 16)
	u[2] = byte(v >> 8)
	u[3] = byte(v)
	return u
}

// uuidFromLE interprets b[:16] as a little-endian 128-bit UUID.
func uuidFromLE(b []byte) uuid.UUID {
	var u uuid.UUID
	for i := range u {
		u[i] = b[15-i]
	}
	return u
}

// uuidFromShortLE overlays the w little-endian bytes of b onto BaseUUID.
func uuidFromShortLE(b []byte, w int) uuid.UUID {
	u := BaseUUID
	for i := 0; i < w; i++ {
		u[3-i] = b[i]
	}
	return u
}

// appendUUIDLE appends the wire form of u at element width w: the low-order
// w bytes little-endian for widths 2 and 4, all 16 bytes little-endian for
// width 16. High-order (base) bytes are discarded, never validated.
func appendUUIDLE(dst []byte, u uuid.UUID, w int) []byte {
	switch w {
	case 2:
		return append(dst, u[3], u[2])
	case 4:
		return append(dst, u[3], u[2], u[1], u[0])
	default:
		for i := 15; i >= 0; i-- {
			dst = append(dst, u[i])
		}
		return dst
	}
}
