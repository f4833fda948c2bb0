package bleadv

import "encoding/binary"

// ChannelMapUpdateIndication is the Channel Map Update Indication structure
// (0x28): a 37-bit channel map over five octets followed by the u16 instant
// at which the new map takes effect.
type ChannelMapUpdateIndication struct {
	Length  uint8
	ChM     [5]byte
	Instant uint16
}

// NewChannelMapUpdateIndication returns the structure for the given channel
// map and instant.
func NewChannelMapUpdateIndication(chM [5]byte, instant uint16) *ChannelMapUpdateIndication {
	return &ChannelMapUpdateIndication{
		Length:  8,
		ChM:     chM,
		Instant: instant,
	}
}

// DecodeChannelMapUpdateIndication decodes a Channel Map Update Indication
// record starting at offset in data.
func DecodeChannelMapUpdateIndication(data []byte, offset int) (*ChannelMapUpdateIndication, error) {
	r, err := checkRecord(data, offset, TypeChannelMapUpdate, 9)
	if err != nil {
		return nil, err
	}
	c := &ChannelMapUpdateIndication{
		Length:  r[0],
		Instant: binary.LittleEndian.Uint16(r[7:9]),
	}
	copy(c.ChM[:], r[2:7])
	return c, nil
}

// UsesChannel reports whether data channel ch (0..36) is marked used in the
// channel map.
func (c *ChannelMapUpdateIndication) UsesChannel(ch int) bool {
	if ch < 0 || ch > 36 {
		return false
	}
	return c.ChM[ch/8]&(1<<(ch%8)) != 0
}

// TypeTag returns 0x28.
func (c *ChannelMapUpdateIndication) TypeTag() byte { return TypeChannelMapUpdate }

func (c *ChannelMapUpdateIndication) Encode() []byte {
	data := make([]byte, 9)
	data[0] = c.Length
	data[1] = c.TypeTag()
	copy(data[2:7], c.ChM[:])
	binary.LittleEndian.PutUint16(data[7:9], c.Instant)
	return data
}
