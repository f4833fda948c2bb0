package bleadv

import "encoding/binary"

// BIGInfo payload sizes: 33 octets of packed fields, plus GIV and GSKD when
// the BIG is encrypted.
const (
	bigInfoLength          = 34
	bigInfoEncryptedLength = 58
)

// BIGInfo is the BIGInfo structure (0x2C): the broadcast isochronous group
// parameters, bit-packed across little-endian groups. GIV and GSKD are only
// present for an encrypted BIG; when absent they are nil, never zero-filled.
type BIGInfo struct {
	Length            uint8
	BIGOffset         uint16 // 14 bits
	BIGOffsetUnits    bool   // 1 bit
	ISOInterval       uint16 // 12 bits
	NumBIS            uint8  // 5 bits
	NSE               uint8  // 5 bits
	BN                uint8  // 3 bits
	SubInterval       uint32 // 20 bits
	PTO               uint8  // 4 bits
	BISSpacing        uint32 // 20 bits
	IRC               uint8  // 4 bits
	MaxPDU            uint8
	RFU               uint8
	SeedAccessAddress uint32
	SDUInterval       uint32 // 20 bits
	MaxSDU            uint16 // 12 bits
	BaseCRCInit       uint16
	ChM               uint64 // 37 bits
	PHY               uint8  // 3 bits
	BISPayloadCount   uint64 // 39 bits
	Framing           bool   // 1 bit
	GIV               *[8]byte
	GSKD              *[16]byte
}

// NewBIGInfo returns a BIGInfo structure over the given parameters. Pass giv
// and gskd together for an encrypted BIG, or both nil otherwise.
func NewBIGInfo(
	bigOffset uint16,
	bigOffsetUnits bool,
	isoInterval uint16,
	numBIS uint8,
	nse uint8,
	bn uint8,
	subInterval uint32,
	pto uint8,
	bisSpacing uint32,
	irc uint8,
	maxPDU uint8,
	rfu uint8,
	seedAccessAddress uint32,
	sduInterval uint32,
	maxSDU uint16,
	baseCRCInit uint16,
	chM uint64,
	phy uint8,
	bisPayloadCount uint64,
	framing bool,
	giv *[8]byte,
	gskd *[16]byte,
) *BIGInfo {
	length := uint8(bigInfoLength)
	if giv != nil && gskd != nil {
		length = bigInfoEncryptedLength
	}
	return &BIGInfo{
		Length:            length,
		BIGOffset:         bigOffset,
		BIGOffsetUnits:    bigOffsetUnits,
		ISOInterval:       isoInterval,
		NumBIS:            numBIS,
		NSE:               nse,
		BN:                bn,
		SubInterval:       subInterval,
		PTO:               pto,
		BISSpacing:        bisSpacing,
		IRC:               irc,
		MaxPDU:            maxPDU,
		RFU:               rfu,
		SeedAccessAddress: seedAccessAddress,
		SDUInterval:       sduInterval,
		MaxSDU:            maxSDU,
		BaseCRCInit:       baseCRCInit,
		ChM:               chM,
		PHY:               phy,
		BISPayloadCount:   bisPayloadCount,
		Framing:           framing,
		GIV:               giv,
		GSKD:              gskd,
	}
}

// DecodeBIGInfo decodes a BIGInfo record starting at offset in data. The
// encrypted variant is selected by the declared length before any tail read.
func DecodeBIGInfo(data []byte, offset int) (*BIGInfo, error) {
	r, err := checkRecord(data, offset, TypeBIGInfo, 1+bigInfoLength)
	if err != nil {
		return nil, err
	}
	if r[0] != bigInfoLength && r[0] != bigInfoEncryptedLength {
		return nil, ErrInvalidEncoding{
			Type:   TypeBIGInfo,
			Reason: "length must be 34 (unencrypted) or 58 (encrypted)",
		}
	}
	p := r[2:]

	g0 := binary.LittleEndian.Uint32(p[0:4])
	g1 := binary.LittleEndian.Uint32(p[4:8])
	g2 := binary.LittleEndian.Uint32(p[8:12])
	g3 := binary.LittleEndian.Uint32(p[17:21])
	g4 := uint40LE(p[23:28])
	g5 := uint40LE(p[28:33])

	b := &BIGInfo{
		Length:            r[0],
		BIGOffset:         uint16(g0 & 0x3FFF),
		BIGOffsetUnits:    g0&(1<<14) != 0,
		ISOInterval:       uint16((g0 >> 15) & 0x0FFF),
		NumBIS:            uint8(g0 >> 27),
		NSE:               uint8(g1 & 0x1F),
		BN:                uint8((g1 >> 5) & 0x07),
		SubInterval:       (g1 >> 8) & 0xFFFFF,
		PTO:               uint8(g1 >> 28),
		BISSpacing:        g2 & 0xFFFFF,
		IRC:               uint8((g2 >> 20) & 0x0F),
		MaxPDU:            uint8(g2 >> 24),
		RFU:               p[12],
		SeedAccessAddress: binary.LittleEndian.Uint32(p[13:17]),
		SDUInterval:       g3 & 0xFFFFF,
		MaxSDU:            uint16(g3 >> 20),
		BaseCRCInit:       binary.LittleEndian.Uint16(p[21:23]),
		ChM:               g4 & 0x1F_FFFF_FFFF,
		PHY:               uint8(g4 >> 37),
		BISPayloadCount:   g5 & 0x7F_FFFF_FFFF,
		Framing:           g5&(1<<39) != 0,
	}
	if r[0] == bigInfoEncryptedLength {
		giv := new([8]byte)
		copy(giv[:], p[33:41])
		gskd := new([16]byte)
		copy(gskd[:], p[41:57])
		b.GIV = giv
		b.GSKD = gskd
	}
	return b, nil
}

// IsEncrypted reports whether the record carries the encrypted-BIG tail.
func (b *BIGInfo) IsEncrypted() bool {
	return b.GIV != nil && b.GSKD != nil
}

// TypeTag returns 0x2C.
func (b *BIGInfo) TypeTag() byte { return TypeBIGInfo }

func (b *BIGInfo) Encode() []byte {
	data := make([]byte, 2+bigInfoLength-1, 2+int(b.Length)-1)
	data[0] = b.Length
	data[1] = b.TypeTag()
	p := data[2:]

	g0 := uint32(b.BIGOffset&0x3FFF) |
		uint32(boolBit(b.BIGOffsetUnits))<<14 |
		uint32(b.ISOInterval&0x0FFF)<<15 |
		uint32(b.NumBIS&0x1F)<<27
	binary.LittleEndian.PutUint32(p[0:4], g0)

	g1 := uint32(b.NSE&0x1F) |
		uint32(b.BN&0x07)<<5 |
		(b.SubInterval&0xFFFFF)<<8 |
		uint32(b.PTO&0x0F)<<28
	binary.LittleEndian.PutUint32(p[4:8], g1)

	g2 := b.BISSpacing&0xFFFFF |
		uint32(b.IRC&0x0F)<<20 |
		uint32(b.MaxPDU)<<24
	binary.LittleEndian.PutUint32(p[8:12], g2)

	p[12] = b.RFU
	binary.LittleEndian.PutUint32(p[13:17], b.SeedAccessAddress)

	g3 := b.SDUInterval&0xFFFFF | uint32(b.MaxSDU&0x0FFF)<<20
	binary.LittleEndian.PutUint32(p[17:21], g3)

	binary.LittleEndian.PutUint16(p[21:23], b.BaseCRCInit)

	g4 := b.ChM&0x1F_FFFF_FFFF | uint64(b.PHY&0x07)<<37
	putUint40LE(p[23:28], g4)

	g5 := b.BISPayloadCount & 0x7F_FFFF_FFFF
	if b.Framing {
		g5 |= 1 << 39
	}
	putUint40LE(p[28:33], g5)

	if b.IsEncrypted() {
		data = append(data, b.GIV[:]...)
		data = append(data, b.GSKD[:]...)
	}
	return data
}

func boolBit(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

func uint40LE(p []byte) uint64 {
	return uint64(p[0]) | uint64(p[1])<<8 | uint64(p[2])<<16 |
		uint64(p[3])<<24 | uint64(p[4])<<32
}

func putUint40LE(p []byte, v uint64) {
	p[0] = byte(v)
	p[1] = byte(v >> 8)
	p[2] = byte(v >> 16)
	p[3] = byte(v >> 24)
	p[4] = byte(v >> 32)
}
