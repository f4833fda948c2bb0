package bleadv

import "github.com/google/uuid"

// Service Data structures (0x16, 0x20, 0x21): a service UUID of fixed width
// followed by arbitrary data belonging to that service.

// ServiceData16BitUUID is the Service Data - 16-bit UUID structure (0x16).
type ServiceData16BitUUID struct {
	Length                uint8
	UUID                  uuid.UUID
	AdditionalServiceData []byte
}

// NewServiceData16BitUUID returns the structure over the given UUID and
// trailing service data.
func NewServiceData16BitUUID(u uuid.UUID, additional []byte) *ServiceData16BitUUID {
	return &ServiceData16BitUUID{
		Length:                uint8(3 + len(additional)),
		UUID:                  u,
		AdditionalServiceData: append([]byte(nil), additional...),
	}
}

// DecodeServiceData16BitUUID decodes a Service Data - 16-bit UUID record
// starting at offset in data.
func DecodeServiceData16BitUUID(data []byte, offset int) (*ServiceData16BitUUID, error) {
	r, err := checkRecord(data, offset, TypeServiceData16, 4)
	if err != nil {
		return nil, err
	}
	return &ServiceData16BitUUID{
		Length:                r[0],
		UUID:                  uuidFromShortLE(r[2:4], 2),
		AdditionalServiceData: append([]byte(nil), r[4:]...),
	}, nil
}

// TypeTag returns 0x16.
func (s *ServiceData16BitUUID) TypeTag() byte { return TypeServiceData16 }

func (s *ServiceData16BitUUID) Encode() []byte {
	data := make([]byte, 0, 4+len(s.AdditionalServiceData))
	data = append(data, s.Length, s.TypeTag())
	data = appendUUIDLE(data, s.UUID, 2)
	return append(data, s.AdditionalServiceData...)
}

// ServiceData32BitUUID is the Service Data - 32-bit UUID structure (0x20).
type ServiceData32BitUUID struct {
	Length                uint8
	UUID                  uuid.UUID
	AdditionalServiceData []byte
}

// NewServiceData32BitUUID returns the structure over the given UUID and
// trailing service data.
func NewServiceData32BitUUID(u uuid.UUID, additional []byte) *ServiceData32BitUUID {
	return &ServiceData32BitUUID{
		Length:                uint8(5 + len(additional)),
		UUID:                  u,
		AdditionalServiceData: append([]byte(nil), additional...),
	}
}

// DecodeServiceData32BitUUID decodes a Service Data - 32-bit UUID record
// starting at offset in data.
func DecodeServiceData32BitUUID(data []byte, offset int) (*ServiceData32BitUUID, error) {
	r, err := checkRecord(data, offset, TypeServiceData32, 6)
	if err != nil {
		return nil, err
	}
	return &ServiceData32BitUUID{
		Length:                r[0],
		UUID:                  uuidFromShortLE(r[2:6], 4),
		AdditionalServiceData: append([]byte(nil), r[6:]...),
	}, nil
}

// TypeTag returns 0x20.
func (s *ServiceData32BitUUID) TypeTag() byte { return TypeServiceData32 }

func (s *ServiceData32BitUUID) Encode() []byte {
	data := make([]byte, 0, 6+len(s.AdditionalServiceData))
	data = append(data, s.Length, s.TypeTag())
	data = appendUUIDLE(data, s.UUID, 4)
	return append(data, s.AdditionalServiceData...)
}

// ServiceData128BitUUID is the Service Data - 128-bit UUID structure (0x21).
type ServiceData128BitUUID struct {
	Length                uint8
	UUID                  uuid.UUID
	AdditionalServiceData []byte
}

// NewServiceData128BitUUID returns the structure over the given UUID and
// trailing service data.
func NewServiceData128BitUUID(u uuid.UUID, additional []byte) *ServiceData128BitUUID {
	return &ServiceData128BitUUID{
		Length:                uint8(17 + len(additional)),
		UUID:                  u,
		AdditionalServiceData: append([]byte(nil), additional...),
	}
}

// DecodeServiceData128BitUUID decodes a Service Data - 128-bit UUID record
// starting at offset in data.
func DecodeServiceData128BitUUID(data []byte, offset int) (*ServiceData128BitUUID, error) {
	r, err := checkRecord(data, offset, TypeServiceData128, 18)
	if err != nil {
		return nil, err
	}
	return &ServiceData128BitUUID{
		Length:                r[0],
		UUID:                  uuidFromLE(r[2:18]),
		AdditionalServiceData: append([]byte(nil), r[18:]...),
	}, nil
}

// TypeTag returns 0x21.
func (s *ServiceData128BitUUID) TypeTag() byte { return TypeServiceData128 }

func (s *ServiceData128BitUUID) Encode() []byte {
	data := make([]byte, 0, 18+len(s.AdditionalServiceData))
	data = append(data, s.Length, s.TypeTag())
	data = appendUUIDLE(data, s.UUID, 16)
	return append(data, s.AdditionalServiceData...)
}
