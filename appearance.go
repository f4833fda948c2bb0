package bleadv

import "encoding/binary"

// Appearance is the Appearance structure (0x19): the u16 appearance value
// from the assigned numbers document, split into a category and a
// sub-category by fixed bit ranges.
type Appearance struct {
	Length     uint8
	Appearance uint16
}

// NewAppearance returns an Appearance structure for the given value.
func NewAppearance(appearance uint16) *Appearance {
	return &Appearance{
		Length:     3,
		Appearance: appearance,
	}
}

// DecodeAppearance decodes an Appearance record starting at offset in data.
func DecodeAppearance(data []byte, offset int) (*Appearance, error) {
	r, err := checkRecord(data, offset, TypeAppearance, 4)
	if err != nil {
		return nil, err
	}
	return &Appearance{
		Length:     r[0],
		Appearance: binary.LittleEndian.Uint16(r[2:4]),
	}, nil
}

// Category returns bits 6..15 of the appearance value.
func (a *Appearance) Category() uint16 {
	return (a.Appearance >> 6) & 0b00000011_11111111
}

// SubCategory returns bits 0..5 of the appearance value.
func (a *Appearance) SubCategory() uint16 {
	return a.Appearance & 0b00111111
}

// TypeTag returns 0x19.
func (a *Appearance) TypeTag() byte { return TypeAppearance }

func (a *Appearance) Encode() []byte {
	data := make([]byte, 4)
	data[0] = a.Length
	data[1] = a.TypeTag()
	binary.LittleEndian.PutUint16(data[2:4], a.Appearance)
	return data
}
