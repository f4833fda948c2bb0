package bleadv

import "fmt"

// RawRecord is one length/tag/payload advertising-data structure, split off
// a flat buffer but not yet interpreted. The payload is a copy; it keeps no
// reference into the scanned buffer.
type RawRecord struct {
	Length  uint8 // declared length: tag byte plus payload
	Type    byte
	Payload []byte
}

// Bytes returns the wire form of the record: [Length][Type][Payload].
func (r RawRecord) Bytes() []byte {
	b := make([]byte, 0, 2+len(r.Payload))
	b = append(b, r.Length, r.Type)
	return append(b, r.Payload...)
}

// ScannedRecord is one outcome of Scan: either a record or the error that
// made the bytes at Offset unusable.
type ScannedRecord struct {
	Offset int // byte offset of the record's length byte in the buffer
	Record RawRecord
	Err    error
}

// Scan splits buf into its advertising-data records. An empty buffer yields
// no outcomes. A zero declared length cannot carry a tag byte; it is reported
// as an error outcome and scanning resumes at the next byte. A record whose
// declared length runs past the buffer is reported as an error outcome and
// scanning stops, since the remainder cannot be resynchronized.
func Scan(buf []byte) []ScannedRecord {
	var out []ScannedRecord
	for pos := 0; pos < len(buf); {
		length := int(buf[pos])
		if length == 0 {
			out = append(out, ScannedRecord{
				Offset: pos,
				Err:    fmt.Errorf("record at offset %d: %w", pos, ErrTooShort{Got: 1}),
			})
			pos++
			continue
		}
		if pos+1+length > len(buf) {
			out = append(out, ScannedRecord{
				Offset: pos,
				Err:    fmt.Errorf("record at offset %d: %w", pos, ErrTooShort{Got: len(buf) - pos}),
			})
			break
		}
		payload := make([]byte, length-1)
		copy(payload, buf[pos+2:pos+1+length])
		out = append(out, ScannedRecord{
			Offset: pos,
			Record: RawRecord{
				Length:  uint8(length),
				Type:    buf[pos+1],
				Payload: payload,
			},
		})
		pos += 1 + length
	}
	return out
}
