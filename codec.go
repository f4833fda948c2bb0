package bleadv

import (
	"context"
	"fmt"

	"github.com/facebookincubator/go-belt/tool/logger"
)

// DataType is implemented by every decoded advertising-data structure.
type DataType interface {
	// TypeTag returns the AD type tag per the assigned numbers document.
	TypeTag() byte

	// Encode returns the wire form of the structure: [length][tag][payload]
	// with length covering the tag byte and the payload.
	Encode() []byte
}

// DecodeFunc decodes one record starting at offset in data.
type DecodeFunc func(data []byte, offset int) (DataType, error)

// ParseResult is the outcome of dispatching one record.
type ParseResult struct {
	Type  byte // tag of the record, 0 if it could not be read
	Value DataType
	Err   error
}

func decodeAs[T DataType](fn func([]byte, int) (T, error)) DecodeFunc {
	return func(data []byte, offset int) (DataType, error) {
		v, err := fn(data, offset)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// decoders maps each known tag to its decoder. Tags are unique by
// construction, so dispatch is a single lookup.
var decoders = map[byte]DecodeFunc{
	TypeFlags:               decodeAs(DecodeFlags),
	TypeSomeUUID16:          decodeAs(DecodeIncompleteListOf16BitServiceUUIDs),
	TypeAllUUID16:           decodeAs(DecodeCompleteListOf16BitServiceUUIDs),
	TypeSomeUUID32:          decodeAs(DecodeIncompleteListOf32BitServiceUUIDs),
	TypeAllUUID32:           decodeAs(DecodeCompleteListOf32BitServiceUUIDs),
	TypeSomeUUID128:         decodeAs(DecodeIncompleteListOf128BitServiceUUIDs),
	TypeAllUUID128:          decodeAs(DecodeCompleteListOf128BitServiceUUIDs),
	TypeShortName:           decodeAs(DecodeShortenedLocalName),
	TypeCompleteName:        decodeAs(DecodeCompleteLocalName),
	TypeTxPower:             decodeAs(DecodeTxPowerLevel),
	TypeClassOfDevice:       decodeAs(DecodeClassOfDevice),
	TypeSSPHashC192:         decodeAs(DecodeSSPHashC192),
	TypeSSPRandomizerR192:   decodeAs(DecodeSSPRandomizerR192),
	TypeServiceSol16:        decodeAs(DecodeListOf16BitServiceSolicitationUUIDs),
	TypeServiceSol128:       decodeAs(DecodeListOf128BitServiceSolicitationUUIDs),
	TypeServiceData16:       decodeAs(DecodeServiceData16BitUUID),
	TypeAppearance:          decodeAs(DecodeAppearance),
	TypeAdvertisingInterval: decodeAs(DecodeAdvertisingInterval),
	TypeLERole:              decodeAs(DecodeLERole),
	TypeSSPHashC256:         decodeAs(DecodeSSPHashC256),
	TypeSSPRandomizerR256:   decodeAs(DecodeSSPRandomizerR256),
	TypeServiceSol32:        decodeAs(DecodeListOf32BitServiceSolicitationUUIDs),
	TypeServiceData32:       decodeAs(DecodeServiceData32BitUUID),
	TypeServiceData128:      decodeAs(DecodeServiceData128BitUUID),
	TypeChannelMapUpdate:    decodeAs(DecodeChannelMapUpdateIndication),
	TypeBIGInfo:             decodeAs(DecodeBIGInfo),
	TypeBroadcastCode:       decodeAs(DecodeBroadcastCode),
	TypeAdvIntervalLong:     decodeAs(DecodeAdvertisingIntervalLong),
	TypeManufacturerData:    decodeAs(DecodeManufacturerSpecificData),
}

// Register adds (or replaces) a decoder for a tag. It is meant for init-time
// extension as new tags get assigned; it must not race with Dispatch.
func Register(typ byte, fn DecodeFunc) {
	decoders[typ] = fn
}

// Dispatch classifies one record by its tag and decodes it. A record shorter
// than two bytes cannot carry a tag and yields a size error before any
// lookup; a tag without a registered decoder yields ErrUnknownType.
func Dispatch(ctx context.Context, record []byte) ParseResult {
	if len(record) < 2 {
		return ParseResult{Err: ErrTooShort{Got: len(record)}}
	}
	typ := record[1]
	decode, ok := decoders[typ]
	if !ok {
		logger.Tracef(ctx, "no decoder for data type %d", typ)
		return ParseResult{Type: typ, Err: ErrUnknownType{Type: typ}}
	}
	v, err := decode(record, 0)
	return ParseResult{Type: typ, Value: v, Err: err}
}

// DispatchAll scans buf and dispatches every record, yielding exactly one
// result per record in buffer order.
func DispatchAll(ctx context.Context, buf []byte) []ParseResult {
	scanned := Scan(buf)
	out := make([]ParseResult, 0, len(scanned))
	for _, s := range scanned {
		if s.Err != nil {
			logger.Debugf(ctx, "skipping malformed record: %v", s.Err)
			out = append(out, ParseResult{Err: s.Err})
			continue
		}
		r := Dispatch(ctx, s.Record.Bytes())
		if r.Err != nil {
			r.Err = fmt.Errorf("record at offset %d: %w", s.Offset, r.Err)
		}
		out = append(out, r)
	}
	return out
}

// DispatchRecords dispatches an already-split record list, one result per
// record, index for index.
func DispatchRecords(ctx context.Context, records []RawRecord) []ParseResult {
	out := make([]ParseResult, 0, len(records))
	for _, rec := range records {
		out = append(out, Dispatch(ctx, rec.Bytes()))
	}
	return out
}

// checkRecord slices the record starting at offset, verifies that at least
// min bytes are present (counting the length byte) and that the declared
// length fits inside the remaining buffer, then trims the record to its
// declared extent so no field read can cross into a following record.
func checkRecord(data []byte, offset int, typ byte, min int) ([]byte, error) {
	if offset < 0 || offset > len(data) {
		return nil, ErrTooShort{Type: typ, Got: 0}
	}
	r := data[offset:]
	if len(r) < min {
		return nil, ErrTooShort{Type: typ, Got: len(r)}
	}
	declared := 1 + int(r[0])
	if declared < min {
		return nil, ErrTooShort{Type: typ, Got: declared}
	}
	if declared > len(r) {
		return nil, ErrTooShort{Type: typ, Got: len(r)}
	}
	return r[:declared], nil
}
