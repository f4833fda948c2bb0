package bleadv

import "encoding/binary"

// advIntervalUnitMillis is the advertising interval unit, 0.625 ms.
const advIntervalUnitMillis = 0.625

// AdvertisingInterval is the Advertising Interval structure (0x1A): the
// advInterval of the advertiser, in units of 0.625 ms.
type AdvertisingInterval struct {
	Length              uint8
	AdvertisingInterval uint16
}

// NewAdvertisingInterval returns an AdvertisingInterval structure for the
// given interval value.
func NewAdvertisingInterval(interval uint16) *AdvertisingInterval {
	return &AdvertisingInterval{
		Length:              3,
		AdvertisingInterval: interval,
	}
}

// DecodeAdvertisingInterval decodes an Advertising Interval record starting
// at offset in data.
func DecodeAdvertisingInterval(data []byte, offset int) (*AdvertisingInterval, error) {
	r, err := checkRecord(data, offset, TypeAdvertisingInterval, 4)
	if err != nil {
		return nil, err
	}
	return &AdvertisingInterval{
		Length:              r[0],
		AdvertisingInterval: binary.LittleEndian.Uint16(r[2:4]),
	}, nil
}

// Millis returns the interval in milliseconds.
func (a *AdvertisingInterval) Millis() float64 {
	return float64(a.AdvertisingInterval) * advIntervalUnitMillis
}

// TypeTag returns 0x1A.
func (a *AdvertisingInterval) TypeTag() byte { return TypeAdvertisingInterval }

func (a *AdvertisingInterval) Encode() []byte {
	data := make([]byte, 4)
	data[0] = a.Length
	data[1] = a.TypeTag()
	binary.LittleEndian.PutUint16(data[2:4], a.AdvertisingInterval)
	return data
}

// AdvertisingIntervalLong is the Advertising Interval - long structure
// (0x2F). The value occupies either three or four octets; which of the two
// is in use is carried by the record length and kept explicit in
// ValueIs32Bits so a re-encode reproduces the original width.
type AdvertisingIntervalLong struct {
	Length                  uint8
	ValueIs32Bits           bool
	AdvertisingIntervalLong uint32
}

// NewAdvertisingIntervalLong returns an AdvertisingIntervalLong structure.
// With valueIs32Bits false the value must fit in 24 bits.
func NewAdvertisingIntervalLong(valueIs32Bits bool, interval uint32) *AdvertisingIntervalLong {
	length := uint8(4)
	if valueIs32Bits {
		length = 5
	}
	return &AdvertisingIntervalLong{
		Length:                  length,
		ValueIs32Bits:           valueIs32Bits,
		AdvertisingIntervalLong: interval,
	}
}

// DecodeAdvertisingIntervalLong decodes an Advertising Interval - long
// record starting at offset in data.
func DecodeAdvertisingIntervalLong(data []byte, offset int) (*AdvertisingIntervalLong, error) {
	r, err := checkRecord(data, offset, TypeAdvIntervalLong, 5)
	if err != nil {
		return nil, err
	}
	switch r[0] {
	case 4:
		return &AdvertisingIntervalLong{
			Length:                  r[0],
			ValueIs32Bits:           false,
			AdvertisingIntervalLong: uint32(r[2]) | uint32(r[3])<<8 | uint32(r[4])<<16,
		}, nil
	case 5:
		return &AdvertisingIntervalLong{
			Length:                  r[0],
			ValueIs32Bits:           true,
			AdvertisingIntervalLong: binary.LittleEndian.Uint32(r[2:6]),
		}, nil
	default:
		return nil, ErrInvalidEncoding{
			Type:   TypeAdvIntervalLong,
			Reason: "value must occupy 3 or 4 octets",
		}
	}
}

// Millis returns the interval in milliseconds.
func (a *AdvertisingIntervalLong) Millis() float64 {
	return float64(a.AdvertisingIntervalLong) * advIntervalUnitMillis
}

// TypeTag returns 0x2F.
func (a *AdvertisingIntervalLong) TypeTag() byte { return TypeAdvIntervalLong }

func (a *AdvertisingIntervalLong) Encode() []byte {
	data := []byte{
		a.Length,
		a.TypeTag(),
		byte(a.AdvertisingIntervalLong),
		byte(a.AdvertisingIntervalLong >> 8),
		byte(a.AdvertisingIntervalLong >> 16),
	}
	if a.ValueIs32Bits {
		data = append(data, byte(a.AdvertisingIntervalLong>>24))
	}
	return data
}
