package bleadv

import "fmt"

// ErrTooShort is returned when fewer bytes are present than a field or the
// record's declared length requires.
type ErrTooShort struct {
	Type byte // AD type tag, if it could be read
	Got  int  // number of bytes that were present
}

func (e ErrTooShort) Error() string {
	if name, ok := TypeName[e.Type]; ok {
		return fmt.Sprintf("%s: invalid data size: %d", name, e.Got)
	}
	return fmt.Sprintf("invalid data size: %d", e.Got)
}

// ErrUnknownType is returned by the dispatcher for a tag that has no
// registered decoder.
type ErrUnknownType struct {
	Type byte
}

func (e ErrUnknownType) Error() string {
	return fmt.Sprintf("unknown data type: %d", e.Type)
}

// ErrInvalidEncoding is returned when a record is long enough but internally
// inconsistent for its type, e.g. a UUID list whose payload is not a multiple
// of the element width.
type ErrInvalidEncoding struct {
	Type   byte
	Reason string
}

func (e ErrInvalidEncoding) Error() string {
	if name, ok := TypeName[e.Type]; ok {
		return fmt.Sprintf("%s: %s", name, e.Reason)
	}
	return fmt.Sprintf("data type 0x%02x: %s", e.Type, e.Reason)
}
