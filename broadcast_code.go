package bleadv

// BroadcastCode is the Broadcast_Code structure (0x2D): the code used to
// derive the encryption key of a broadcast isochronous stream, 4 to 16
// bytes, opaque to this library.
type BroadcastCode struct {
	Length        uint8
	BroadcastCode []byte
}

// NewBroadcastCode returns a BroadcastCode structure over the given code.
func NewBroadcastCode(code []byte) *BroadcastCode {
	return &BroadcastCode{
		Length:        uint8(1 + len(code)),
		BroadcastCode: append([]byte(nil), code...),
	}
}

// DecodeBroadcastCode decodes a Broadcast_Code record starting at offset
// in data.
func DecodeBroadcastCode(data []byte, offset int) (*BroadcastCode, error) {
	r, err := checkRecord(data, offset, TypeBroadcastCode, 6)
	if err != nil {
		return nil, err
	}
	return &BroadcastCode{
		Length:        r[0],
		BroadcastCode: append([]byte(nil), r[2:]...),
	}, nil
}

// TypeTag returns 0x2D.
func (b *BroadcastCode) TypeTag() byte { return TypeBroadcastCode }

func (b *BroadcastCode) Encode() []byte {
	return append([]byte{b.Length, b.TypeTag()}, b.BroadcastCode...)
}
