// Package bleadv encodes and decodes Bluetooth LE advertising data and
// Extended Inquiry Response records.
//
// A buffer is a concatenation of AD structures with no padding or
// terminator:
//
//	[Length(1)][Type(1)][Payload(Length-1)]...
//
// Scan splits such a buffer into raw records, Dispatch classifies a record
// by its type tag into a strongly-typed structure, and every structure
// encodes back to its exact wire form. All decoded structures own their
// bytes by copy; the input buffer may be reused as soon as a call returns.
//
// The library is a pure byte transform: no transport, GATT, or pairing
// logic. Pairing-related values are carried opaquely.
package bleadv
