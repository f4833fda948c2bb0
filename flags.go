package bleadv

// Flags bit positions of the first flags octet.
const (
	FlagLELimitedDiscoverable = 0x01
	FlagLEGeneralDiscoverable = 0x02
	FlagBREDRNotSupported     = 0x04
	FlagSimultaneousLEBREDR   = 0x08
)

// Flags is the Flags structure (0x01). The core spec allows the payload to
// grow beyond one octet; all currently assigned bits live in octet 0 and the
// remaining octets are carried through untouched.
type Flags struct {
	Length uint8
	Flags  []byte
}

// NewFlags returns a Flags structure over the given flag octets.
func NewFlags(flags []byte) *Flags {
	return &Flags{
		Length: uint8(1 + len(flags)),
		Flags:  append([]byte(nil), flags...),
	}
}

// DecodeFlags decodes a Flags record starting at offset in data.
func DecodeFlags(data []byte, offset int) (*Flags, error) {
	r, err := checkRecord(data, offset, TypeFlags, 3)
	if err != nil {
		return nil, err
	}
	return &Flags{
		Length: r[0],
		Flags:  append([]byte(nil), r[2:]...),
	}, nil
}

func (f *Flags) LELimitedDiscoverableMode() bool {
	return f.Flags[0]&FlagLELimitedDiscoverable != 0
}

func (f *Flags) LEGeneralDiscoverableMode() bool {
	return f.Flags[0]&FlagLEGeneralDiscoverable != 0
}

func (f *Flags) BREDRNotSupported() bool {
	return f.Flags[0]&FlagBREDRNotSupported != 0
}

func (f *Flags) SimultaneousLEAndBREDR() bool {
	return f.Flags[0]&FlagSimultaneousLEBREDR != 0
}

// TypeTag returns 0x01.
func (f *Flags) TypeTag() byte { return TypeFlags }

func (f *Flags) Encode() []byte {
	data := make([]byte, 0, 2+len(f.Flags))
	data = append(data, f.Length, f.TypeTag())
	return append(data, f.Flags...)
}
