package bleadv

import (
	"fmt"

	"github.com/google/uuid"
)

// Homogeneous UUID lists (service class and service solicitation lists).
// The payload is a contiguous, non-delimited run of fixed-width elements;
// 16- and 32-bit elements are overlays on BaseUUID, 128-bit elements are
// full little-endian UUIDs.

func decodeUUIDList(data []byte, offset int, typ byte, w, min int) (uint8, []uuid.UUID, error) {
	r, err := checkRecord(data, offset, typ, min)
	if err != nil {
		return 0, nil, err
	}
	payload := r[2:]
	if len(payload)%w != 0 {
		return 0, nil, ErrInvalidEncoding{
			Type:   typ,
			Reason: fmt.Sprintf("%d-byte payload is not a multiple of the %d-byte element width", len(payload), w),
		}
	}
	uuids := make([]uuid.UUID, 0, len(payload)/w)
	for i := 0; i < len(payload); i += w {
		if w == 16 {
			uuids = append(uuids, uuidFromLE(payload[i:i+16]))
		} else {
			uuids = append(uuids, uuidFromShortLE(payload[i:i+w], w))
		}
	}
	return r[0], uuids, nil
}

func encodeUUIDList(length uint8, typ byte, uuids []uuid.UUID, w int) []byte {
	data := make([]byte, 0, 2+len(uuids)*w)
	data = append(data, length, typ)
	for _, u := range uuids {
		data = appendUUIDLE(data, u, w)
	}
	return data
}

// IncompleteListOf16BitServiceUUIDs is the Incomplete List of 16-bit Service
// Class UUIDs structure (0x02).
type IncompleteListOf16BitServiceUUIDs struct {
	Length uint8
	UUIDs  []uuid.UUID
}

// NewIncompleteListOf16BitServiceUUIDs returns the structure over the given
// UUIDs.
func NewIncompleteListOf16BitServiceUUIDs(uuids []uuid.UUID) *IncompleteListOf16BitServiceUUIDs {
	return &IncompleteListOf16BitServiceUUIDs{
		Length: uint8(1 + 2*len(uuids)),
		UUIDs:  append([]uuid.UUID(nil), uuids...),
	}
}

// DecodeIncompleteListOf16BitServiceUUIDs decodes a record starting at
// offset in data.
func DecodeIncompleteListOf16BitServiceUUIDs(data []byte, offset int) (*IncompleteListOf16BitServiceUUIDs, error) {
	length, uuids, err := decodeUUIDList(data, offset, TypeSomeUUID16, 2, 4)
	if err != nil {
		return nil, err
	}
	return &IncompleteListOf16BitServiceUUIDs{Length: length, UUIDs: uuids}, nil
}

// TypeTag returns 0x02.
func (l *IncompleteListOf16BitServiceUUIDs) TypeTag() byte { return TypeSomeUUID16 }

func (l *IncompleteListOf16BitServiceUUIDs) Encode() []byte {
	return encodeUUIDList(l.Length, l.TypeTag(), l.UUIDs, 2)
}

// CompleteListOf16BitServiceUUIDs is the Complete List of 16-bit Service
// Class UUIDs structure (0x03).
type CompleteListOf16BitServiceUUIDs struct {
	Length uint8
	UUIDs  []uuid.UUID
}

// NewCompleteListOf16BitServiceUUIDs returns the structure over the given
// UUIDs.
func NewCompleteListOf16BitServiceUUIDs(uuids []uuid.UUID) *CompleteListOf16BitServiceUUIDs {
	return &CompleteListOf16BitServiceUUIDs{
		Length: uint8(1 + 2*len(uuids)),
		UUIDs:  append([]uuid.UUID(nil), uuids...),
	}
}

// DecodeCompleteListOf16BitServiceUUIDs decodes a record starting at offset
// in data.
func DecodeCompleteListOf16BitServiceUUIDs(data []byte, offset int) (*CompleteListOf16BitServiceUUIDs, error) {
	length, uuids, err := decodeUUIDList(data, offset, TypeAllUUID16, 2, 4)
	if err != nil {
		return nil, err
	}
	return &CompleteListOf16BitServiceUUIDs{Length: length, UUIDs: uuids}, nil
}

// TypeTag returns 0x03.
func (l *CompleteListOf16BitServiceUUIDs) TypeTag() byte { return TypeAllUUID16 }

func (l *CompleteListOf16BitServiceUUIDs) Encode() []byte {
	return encodeUUIDList(l.Length, l.TypeTag(), l.UUIDs, 2)
}

// IncompleteListOf32BitServiceUUIDs is the Incomplete List of 32-bit Service
// Class UUIDs structure (0x04).
type IncompleteListOf32BitServiceUUIDs struct {
	Length uint8
	UUIDs  []uuid.UUID
}

// NewIncompleteListOf32BitServiceUUIDs returns the structure over the given
// UUIDs.
func NewIncompleteListOf32BitServiceUUIDs(uuids []uuid.UUID) *IncompleteListOf32BitServiceUUIDs {
	return &IncompleteListOf32BitServiceUUIDs{
		Length: uint8(1 + 4*len(uuids)),
		UUIDs:  append([]uuid.UUID(nil), uuids...),
	}
}

// DecodeIncompleteListOf32BitServiceUUIDs decodes a record starting at
// offset in data.
func DecodeIncompleteListOf32BitServiceUUIDs(data []byte, offset int) (*IncompleteListOf32BitServiceUUIDs, error) {
	length, uuids, err := decodeUUIDList(data, offset, TypeSomeUUID32, 4, 6)
	if err != nil {
		return nil, err
	}
	return &IncompleteListOf32BitServiceUUIDs{Length: length, UUIDs: uuids}, nil
}

// TypeTag returns 0x04.
func (l *IncompleteListOf32BitServiceUUIDs) TypeTag() byte { return TypeSomeUUID32 }

func (l *IncompleteListOf32BitServiceUUIDs) Encode() []byte {
	return encodeUUIDList(l.Length, l.TypeTag(), l.UUIDs, 4)
}

// CompleteListOf32BitServiceUUIDs is the Complete List of 32-bit Service
// Class UUIDs structure (0x05).
type CompleteListOf32BitServiceUUIDs struct {
	Length uint8
	UUIDs  []uuid.UUID
}

// NewCompleteListOf32BitServiceUUIDs returns the structure over the given
// UUIDs.
func NewCompleteListOf32BitServiceUUIDs(uuids []uuid.UUID) *CompleteListOf32BitServiceUUIDs {
	return &CompleteListOf32BitServiceUUIDs{
		Length: uint8(1 + 4*len(uuids)),
		UUIDs:  append([]uuid.UUID(nil), uuids...),
	}
}

// DecodeCompleteListOf32BitServiceUUIDs decodes a record starting at offset
// in data.
func DecodeCompleteListOf32BitServiceUUIDs(data []byte, offset int) (*CompleteListOf32BitServiceUUIDs, error) {
	length, uuids, err := decodeUUIDList(data, offset, TypeAllUUID32, 4, 6)
	if err != nil {
		return nil, err
	}
	return &CompleteListOf32BitServiceUUIDs{Length: length, UUIDs: uuids}, nil
}

// TypeTag returns 0x05.
func (l *CompleteListOf32BitServiceUUIDs) TypeTag() byte { return TypeAllUUID32 }

func (l *CompleteListOf32BitServiceUUIDs) Encode() []byte {
	return encodeUUIDList(l.Length, l.TypeTag(), l.UUIDs, 4)
}

// IncompleteListOf128BitServiceUUIDs is the Incomplete List of 128-bit
// Service Class UUIDs structure (0x06).
type IncompleteListOf128BitServiceUUIDs struct {
	Length uint8
	UUIDs  []uuid.UUID
}

// NewIncompleteListOf128BitServiceUUIDs returns the structure over the given
// UUIDs.
func NewIncompleteListOf128BitServiceUUIDs(uuids []uuid.UUID) *IncompleteListOf128BitServiceUUIDs {
	return &IncompleteListOf128BitServiceUUIDs{
		Length: uint8(1 + 16*len(uuids)),
		UUIDs:  append([]uuid.UUID(nil), uuids...),
	}
}

// DecodeIncompleteListOf128BitServiceUUIDs decodes a record starting at
// offset in data.
func DecodeIncompleteListOf128BitServiceUUIDs(data []byte, offset int) (*IncompleteListOf128BitServiceUUIDs, error) {
	length, uuids, err := decodeUUIDList(data, offset, TypeSomeUUID128, 16, 17)
	if err != nil {
		return nil, err
	}
	return &IncompleteListOf128BitServiceUUIDs{Length: length, UUIDs: uuids}, nil
}

// TypeTag returns 0x06.
func (l *IncompleteListOf128BitServiceUUIDs) TypeTag() byte { return TypeSomeUUID128 }

func (l *IncompleteListOf128BitServiceUUIDs) Encode() []byte {
	return encodeUUIDList(l.Length, l.TypeTag(), l.UUIDs, 16)
}

// CompleteListOf128BitServiceUUIDs is the Complete List of 128-bit Service
// Class UUIDs structure (0x07).
type CompleteListOf128BitServiceUUIDs struct {
	Length uint8
	UUIDs  []uuid.UUID
}

// NewCompleteListOf128BitServiceUUIDs returns the structure over the given
// UUIDs.
func NewCompleteListOf128BitServiceUUIDs(uuids []uuid.UUID) *CompleteListOf128BitServiceUUIDs {
	return &CompleteListOf128BitServiceUUIDs{
		Length: uint8(1 + 16*len(uuids)),
		UUIDs:  append([]uuid.UUID(nil), uuids...),
	}
}

// DecodeCompleteListOf128BitServiceUUIDs decodes a record starting at offset
// in data.
func DecodeCompleteListOf128BitServiceUUIDs(data []byte, offset int) (*CompleteListOf128BitServiceUUIDs, error) {
	length, uuids, err := decodeUUIDList(data, offset, TypeAllUUID128, 16, 17)
	if err != nil {
		return nil, err
	}
	return &CompleteListOf128BitServiceUUIDs{Length: length, UUIDs: uuids}, nil
}

// TypeTag returns 0x07.
func (l *CompleteListOf128BitServiceUUIDs) TypeTag() byte { return TypeAllUUID128 }

func (l *CompleteListOf128BitServiceUUIDs) Encode() []byte {
	return encodeUUIDList(l.Length, l.TypeTag(), l.UUIDs, 16)
}

// ListOf16BitServiceSolicitationUUIDs is the List of 16-bit Service
// Solicitation UUIDs structure (0x14).
type ListOf16BitServiceSolicitationUUIDs struct {
	Length uint8
	UUIDs  []uuid.UUID
}

// NewListOf16BitServiceSolicitationUUIDs returns the structure over the
// given UUIDs.
func NewListOf16BitServiceSolicitationUUIDs(uuids []uuid.UUID) *ListOf16BitServiceSolicitationUUIDs {
	return &ListOf16BitServiceSolicitationUUIDs{
		Length: uint8(1 + 2*len(uuids)),
		UUIDs:  append([]uuid.UUID(nil), uuids...),
	}
}

// DecodeListOf16BitServiceSolicitationUUIDs decodes a record starting at
// offset in data.
func DecodeListOf16BitServiceSolicitationUUIDs(data []byte, offset int) (*ListOf16BitServiceSolicitationUUIDs, error) {
	length, uuids, err := decodeUUIDList(data, offset, TypeServiceSol16, 2, 4)
	if err != nil {
		return nil, err
	}
	return &ListOf16BitServiceSolicitationUUIDs{Length: length, UUIDs: uuids}, nil
}

// TypeTag returns 0x14.
func (l *ListOf16BitServiceSolicitationUUIDs) TypeTag() byte { return TypeServiceSol16 }

func (l *ListOf16BitServiceSolicitationUUIDs) Encode() []byte {
	return encodeUUIDList(l.Length, l.TypeTag(), l.UUIDs, 2)
}

// ListOf32BitServiceSolicitationUUIDs is the List of 32-bit Service
// Solicitation UUIDs structure (0x1F).
type ListOf32BitServiceSolicitationUUIDs struct {
	Length uint8
	UUIDs  []uuid.UUID
}

// NewListOf32BitServiceSolicitationUUIDs returns the structure over the
// given UUIDs.
func NewListOf32BitServiceSolicitationUUIDs(uuids []uuid.UUID) *ListOf32BitServiceSolicitationUUIDs {
	return &ListOf32BitServiceSolicitationUUIDs{
		Length: uint8(1 + 4*len(uuids)),
		UUIDs:  append([]uuid.UUID(nil), uuids...),
	}
}

// DecodeListOf32BitServiceSolicitationUUIDs decodes a record starting at
// offset in data.
func DecodeListOf32BitServiceSolicitationUUIDs(data []byte, offset int) (*ListOf32BitServiceSolicitationUUIDs, error) {
	length, uuids, err := decodeUUIDList(data, offset, TypeServiceSol32, 4, 6)
	if err != nil {
		return nil, err
	}
	return &ListOf32BitServiceSolicitationUUIDs{Length: length, UUIDs: uuids}, nil
}

// TypeTag returns 0x1F.
func (l *ListOf32BitServiceSolicitationUUIDs) TypeTag() byte { return TypeServiceSol32 }

func (l *ListOf32BitServiceSolicitationUUIDs) Encode() []byte {
	return encodeUUIDList(l.Length, l.TypeTag(), l.UUIDs, 4)
}

// ListOf128BitServiceSolicitationUUIDs is the List of 128-bit Service
// Solicitation UUIDs structure (0x15).
type ListOf128BitServiceSolicitationUUIDs struct {
	Length uint8
	UUIDs  []uuid.UUID
}

// NewListOf128BitServiceSolicitationUUIDs returns the structure over the
// given UUIDs.
func NewListOf128BitServiceSolicitationUUIDs(uuids []uuid.UUID) *ListOf128BitServiceSolicitationUUIDs {
	return &ListOf128BitServiceSolicitationUUIDs{
		Length: uint8(1 + 16*len(uuids)),
		UUIDs:  append([]uuid.UUID(nil), uuids...),
	}
}

// DecodeListOf128BitServiceSolicitationUUIDs decodes a record starting at
// offset in data.
func DecodeListOf128BitServiceSolicitationUUIDs(data []byte, offset int) (*ListOf128BitServiceSolicitationUUIDs, error) {
	length, uuids, err := decodeUUIDList(data, offset, TypeServiceSol128, 16, 17)
	if err != nil {
		return nil, err
	}
	return &ListOf128BitServiceSolicitationUUIDs{Length: length, UUIDs: uuids}, nil
}

// TypeTag returns 0x15.
func (l *ListOf128BitServiceSolicitationUUIDs) TypeTag() byte { return TypeServiceSol128 }

func (l *ListOf128BitServiceSolicitationUUIDs) Encode() []byte {
	return encodeUUIDList(l.Length, l.TypeTag(), l.UUIDs, 16)
}
