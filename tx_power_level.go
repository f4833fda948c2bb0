package bleadv

// TxPowerLevel is the Tx Power Level structure (0x0A): the transmitted power
// in dBm, -127 to +127.
type TxPowerLevel struct {
	Length       uint8
	TxPowerLevel int8
}

// NewTxPowerLevel returns a TxPowerLevel structure for the given dBm value.
func NewTxPowerLevel(level int8) *TxPowerLevel {
	return &TxPowerLevel{
		Length:       2,
		TxPowerLevel: level,
	}
}

// DecodeTxPowerLevel decodes a Tx Power Level record starting at offset
// in data.
func DecodeTxPowerLevel(data []byte, offset int) (*TxPowerLevel, error) {
	r, err := checkRecord(data, offset, TypeTxPower, 3)
	if err != nil {
		return nil, err
	}
	return &TxPowerLevel{
		Length:       r[0],
		TxPowerLevel: int8(r[2]),
	}, nil
}

// TypeTag returns 0x0A.
func (t *TxPowerLevel) TypeTag() byte { return TypeTxPower }

func (t *TxPowerLevel) Encode() []byte {
	return []byte{t.Length, t.TypeTag(), byte(t.TxPowerLevel)}
}
