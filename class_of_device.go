package bleadv

// Fixed masks over the 24-bit Class of Device value.
const (
	ClassOfDeviceMajorServiceClassesMask uint32 = 0b11111111_11100000_00000000
	ClassOfDeviceMajorDeviceClassMask    uint32 = 0b00000000_00011111_00000000
	ClassOfDeviceMinorDeviceClassMask    uint32 = 0b00000000_00000000_11111100
)

// ClassOfDevice is the Class of Device structure (0x0D): a 24-bit value
// carrying three non-overlapping sub-classes.
type ClassOfDevice struct {
	Length        uint8
	ClassOfDevice uint32
}

// NewClassOfDevice returns a ClassOfDevice structure for the given value.
func NewClassOfDevice(classOfDevice uint32) *ClassOfDevice {
	return &ClassOfDevice{
		Length:        4,
		ClassOfDevice: classOfDevice,
	}
}

// DecodeClassOfDevice decodes a Class of Device record starting at offset
// in data.
func DecodeClassOfDevice(data []byte, offset int) (*ClassOfDevice, error) {
	r, err := checkRecord(data, offset, TypeClassOfDevice, 5)
	if err != nil {
		return nil, err
	}
	return &ClassOfDevice{
		Length:        r[0],
		ClassOfDevice: uint32(r[2]) | uint32(r[3])<<8 | uint32(r[4])<<16,
	}, nil
}

func (c *ClassOfDevice) MajorServiceClasses() uint32 {
	return c.ClassOfDevice & ClassOfDeviceMajorServiceClassesMask
}

func (c *ClassOfDevice) MajorDeviceClass() uint32 {
	return c.ClassOfDevice & ClassOfDeviceMajorDeviceClassMask
}

func (c *ClassOfDevice) MinorDeviceClass() uint32 {
	return c.ClassOfDevice & ClassOfDeviceMinorDeviceClassMask
}

// TypeTag returns 0x0D.
func (c *ClassOfDevice) TypeTag() byte { return TypeClassOfDevice }

func (c *ClassOfDevice) Encode() []byte {
	return []byte{
		c.Length,
		c.TypeTag(),
		byte(c.ClassOfDevice),
		byte(c.ClassOfDevice >> 8),
		byte(c.ClassOfDevice >> 16),
	}
}
