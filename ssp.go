package bleadv

// Secure Simple Pairing OOB values (0x0E, 0x0F, 0x1D, 0x1E). The pairing
// semantics are opaque to this library; the 128-bit values are carried in
// their little-endian wire order.

// SSPHashC192 is the Simple Pairing Hash C-192 structure (0x0E).
type SSPHashC192 struct {
	Length uint8
	Hash   [16]byte
}

// NewSSPHashC192 returns an SSPHashC192 structure over the given hash.
func NewSSPHashC192(hash [16]byte) *SSPHashC192 {
	return &SSPHashC192{Length: 17, Hash: hash}
}

// DecodeSSPHashC192 decodes a Simple Pairing Hash C-192 record starting at
// offset in data.
func DecodeSSPHashC192(data []byte, offset int) (*SSPHashC192, error) {
	r, err := checkRecord(data, offset, TypeSSPHashC192, 18)
	if err != nil {
		return nil, err
	}
	s := &SSPHashC192{Length: r[0]}
	copy(s.Hash[:], r[2:18])
	return s, nil
}

// TypeTag returns 0x0E.
func (s *SSPHashC192) TypeTag() byte { return TypeSSPHashC192 }

func (s *SSPHashC192) Encode() []byte {
	return append([]byte{s.Length, s.TypeTag()}, s.Hash[:]...)
}

// SSPRandomizerR192 is the Simple Pairing Randomizer R-192 structure (0x0F).
type SSPRandomizerR192 struct {
	Length     uint8
	Randomizer [16]byte
}

// NewSSPRandomizerR192 returns an SSPRandomizerR192 structure over the given
// randomizer.
func NewSSPRandomizerR192(randomizer [16]byte) *SSPRandomizerR192 {
	return &SSPRandomizerR192{Length: 17, Randomizer: randomizer}
}

// DecodeSSPRandomizerR192 decodes a Simple Pairing Randomizer R-192 record
// starting at offset in data.
func DecodeSSPRandomizerR192(data []byte, offset int) (*SSPRandomizerR192, error) {
	r, err := checkRecord(data, offset, TypeSSPRandomizerR192, 18)
	if err != nil {
		return nil, err
	}
	s := &SSPRandomizerR192{Length: r[0]}
	copy(s.Randomizer[:], r[2:18])
	return s, nil
}

// TypeTag returns 0x0F.
func (s *SSPRandomizerR192) TypeTag() byte { return TypeSSPRandomizerR192 }

func (s *SSPRandomizerR192) Encode() []byte {
	return append([]byte{s.Length, s.TypeTag()}, s.Randomizer[:]...)
}

// SSPHashC256 is the Simple Pairing Hash C-256 structure (0x1D).
type SSPHashC256 struct {
	Length uint8
	Hash   [16]byte
}

// NewSSPHashC256 returns an SSPHashC256 structure over the given hash.
func NewSSPHashC256(hash [16]byte) *SSPHashC256 {
	return &SSPHashC256{Length: 17, Hash: hash}
}

// DecodeSSPHashC256 decodes a Simple Pairing Hash C-256 record starting at
// offset in data.
func DecodeSSPHashC256(data []byte, offset int) (*SSPHashC256, error) {
	r, err := checkRecord(data, offset, TypeSSPHashC256, 18)
	if err != nil {
		return nil, err
	}
	s := &SSPHashC256{Length: r[0]}
	copy(s.Hash[:], r[2:18])
	return s, nil
}

// TypeTag returns 0x1D.
func (s *SSPHashC256) TypeTag() byte { return TypeSSPHashC256 }

func (s *SSPHashC256) Encode() []byte {
	return append([]byte{s.Length, s.TypeTag()}, s.Hash[:]...)
}

// SSPRandomizerR256 is the Simple Pairing Randomizer R-256 structure (0x1E).
type SSPRandomizerR256 struct {
	Length     uint8
	Randomizer [16]byte
}

// NewSSPRandomizerR256 returns an SSPRandomizerR256 structure over the given
// randomizer.
func NewSSPRandomizerR256(randomizer [16]byte) *SSPRandomizerR256 {
	return &SSPRandomizerR256{Length: 17, Randomizer: randomizer}
}

// DecodeSSPRandomizerR256 decodes a Simple Pairing Randomizer R-256 record
// starting at offset in data.
func DecodeSSPRandomizerR256(data []byte, offset int) (*SSPRandomizerR256, error) {
	r, err := checkRecord(data, offset, TypeSSPRandomizerR256, 18)
	if err != nil {
		return nil, err
	}
	s := &SSPRandomizerR256{Length: r[0]}
	copy(s.Randomizer[:], r[2:18])
	return s, nil
}

// TypeTag returns 0x1E.
func (s *SSPRandomizerR256) TypeTag() byte { return TypeSSPRandomizerR256 }

func (s *SSPRandomizerR256) Encode() []byte {
	return append([]byte{s.Length, s.TypeTag()}, s.Randomizer[:]...)
}
