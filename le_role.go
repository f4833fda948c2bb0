package bleadv

// LE Role values.
const (
	LERoleOnlyPeripheralSupported         = 0x00
	LERoleOnlyCentralSupported            = 0x01
	LERolePeripheralPreferredForConnEstab = 0x02
	LERoleCentralPreferredForConnEstab    = 0x03
)

// LERole is the LE Role structure (0x1C).
type LERole struct {
	Length uint8
	LERole uint8
}

// NewLERole returns an LERole structure for the given role value.
func NewLERole(role uint8) *LERole {
	return &LERole{
		Length: 2,
		LERole: role,
	}
}

// DecodeLERole decodes an LE Role record starting at offset in data.
func DecodeLERole(data []byte, offset int) (*LERole, error) {
	r, err := checkRecord(data, offset, TypeLERole, 3)
	if err != nil {
		return nil, err
	}
	return &LERole{
		Length: r[0],
		LERole: r[2],
	}, nil
}

func (l *LERole) IsOnlyPeripheralRoleSupported() bool {
	return l.LERole == LERoleOnlyPeripheralSupported
}

func (l *LERole) IsOnlyCentralRoleSupported() bool {
	return l.LERole == LERoleOnlyCentralSupported
}

func (l *LERole) IsPeripheralRolePreferredForConnectionEstablishment() bool {
	return l.LERole == LERolePeripheralPreferredForConnEstab
}

func (l *LERole) IsCentralRolePreferredForConnectionEstablishment() bool {
	return l.LERole == LERoleCentralPreferredForConnEstab
}

// TypeTag returns 0x1C.
func (l *LERole) TypeTag() byte { return TypeLERole }

func (l *LERole) Encode() []byte {
	return []byte{l.Length, l.TypeTag(), l.LERole}
}
