package bleadv

import "encoding/binary"

// ManufacturerSpecificData is the Manufacturer Specific Data structure
// (0xFF): a little-endian company identifier followed by vendor-defined
// bytes, carried through opaquely.
type ManufacturerSpecificData struct {
	Length    uint8
	CompanyID uint16
	Data      []byte
}

// NewManufacturerSpecificData returns the structure for the given company
// identifier and vendor data.
func NewManufacturerSpecificData(companyID uint16, data []byte) *ManufacturerSpecificData {
	return &ManufacturerSpecificData{
		Length:    uint8(3 + len(data)),
		CompanyID: companyID,
		Data:      append([]byte(nil), data...),
	}
}

// DecodeManufacturerSpecificData decodes a Manufacturer Specific Data record
// starting at offset in data.
func DecodeManufacturerSpecificData(data []byte, offset int) (*ManufacturerSpecificData, error) {
	r, err := checkRecord(data, offset, TypeManufacturerData, 4)
	if err != nil {
		return nil, err
	}
	return &ManufacturerSpecificData{
		Length:    r[0],
		CompanyID: binary.LittleEndian.Uint16(r[2:4]),
		Data:      append([]byte(nil), r[4:]...),
	}, nil
}

// TypeTag returns 0xFF.
func (m *ManufacturerSpecificData) TypeTag() byte { return TypeManufacturerData }

func (m *ManufacturerSpecificData) Encode() []byte {
	data := make([]byte, 0, 4+len(m.Data))
	data = append(data, m.Length, m.TypeTag(), byte(m.CompanyID), byte(m.CompanyID>>8))
	return append(data, m.Data...)
}
