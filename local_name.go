package bleadv

// ShortenedLocalName is the Shortened Local Name structure (0x08): a UTF-8
// prefix of the device name.
type ShortenedLocalName struct {
	Length             uint8
	ShortenedLocalName string
}

// NewShortenedLocalName returns a ShortenedLocalName structure for the given
// name.
func NewShortenedLocalName(name string) *ShortenedLocalName {
	return &ShortenedLocalName{
		Length:             uint8(1 + len(name)),
		ShortenedLocalName: name,
	}
}

// DecodeShortenedLocalName decodes a Shortened Local Name record starting at
// offset in data.
func DecodeShortenedLocalName(data []byte, offset int) (*ShortenedLocalName, error) {
	r, err := checkRecord(data, offset, TypeShortName, 2)
	if err != nil {
		return nil, err
	}
	return &ShortenedLocalName{
		Length:             r[0],
		ShortenedLocalName: string(r[2:]),
	}, nil
}

// TypeTag returns 0x08.
func (n *ShortenedLocalName) TypeTag() byte { return TypeShortName }

func (n *ShortenedLocalName) Encode() []byte {
	return append([]byte{n.Length, n.TypeTag()}, n.ShortenedLocalName...)
}

// CompleteLocalName is the Complete Local Name structure (0x09).
type CompleteLocalName struct {
	Length            uint8
	CompleteLocalName string
}

// NewCompleteLocalName returns a CompleteLocalName structure for the given
// name.
func NewCompleteLocalName(name string) *CompleteLocalName {
	return &CompleteLocalName{
		Length:            uint8(1 + len(name)),
		CompleteLocalName: name,
	}
}

// DecodeCompleteLocalName decodes a Complete Local Name record starting at
// offset in data.
func DecodeCompleteLocalName(data []byte, offset int) (*CompleteLocalName, error) {
	r, err := checkRecord(data, offset, TypeCompleteName, 2)
	if err != nil {
		return nil, err
	}
	return &CompleteLocalName{
		Length:            r[0],
		CompleteLocalName: string(r[2:]),
	}, nil
}

// TypeTag returns 0x09.
func (n *CompleteLocalName) TypeTag() byte { return TypeCompleteName }

func (n *CompleteLocalName) Encode() []byte {
	return append([]byte{n.Length, n.TypeTag()}, n.CompleteLocalName...)
}
