package bleadv

// This file includes constants from the BLE spec (Assigned Numbers,
// Generic Access Profile data types).

const (
	TypeFlags                 = 0x01 // Flags
	TypeSomeUUID16            = 0x02 // Incomplete List of 16-bit Service Class UUIDs
	TypeAllUUID16             = 0x03 // Complete List of 16-bit Service Class UUIDs
	TypeSomeUUID32            = 0x04 // Incomplete List of 32-bit Service Class UUIDs
	TypeAllUUID32             = 0x05 // Complete List of 32-bit Service Class UUIDs
	TypeSomeUUID128           = 0x06 // Incomplete List of 128-bit Service Class UUIDs
	TypeAllUUID128            = 0x07 // Complete List of 128-bit Service Class UUIDs
	TypeShortName             = 0x08 // Shortened Local Name
	TypeCompleteName          = 0x09 // Complete Local Name
	TypeTxPower               = 0x0A // Tx Power Level
	TypeClassOfDevice         = 0x0D // Class of Device
	TypeSSPHashC192           = 0x0E // Simple Pairing Hash C-192
	TypeSSPRandomizerR192     = 0x0F // Simple Pairing Randomizer R-192
	TypeServiceSol16          = 0x14 // List of 16-bit Service Solicitation UUIDs
	TypeServiceSol128         = 0x15 // List of 128-bit Service Solicitation UUIDs
	TypeServiceData16         = 0x16 // Service Data - 16-bit UUID
	TypeAppearance            = 0x19 // Appearance
	TypeAdvertisingInterval   = 0x1A // Advertising Interval
	TypeLERole                = 0x1C // LE Role
	TypeSSPHashC256           = 0x1D // Simple Pairing Hash C-256
	TypeSSPRandomizerR256     = 0x1E // Simple Pairing Randomizer R-256
	TypeServiceSol32          = 0x1F // List of 32-bit Service Solicitation UUIDs
	TypeServiceData32         = 0x20 // Service Data - 32-bit UUID
	TypeServiceData128        = 0x21 // Service Data - 128-bit UUID
	TypeChannelMapUpdate      = 0x28 // Channel Map Update Indication
	TypeBIGInfo               = 0x2C // BIGInfo
	TypeBroadcastCode         = 0x2D // Broadcast_Code
	TypeAdvIntervalLong       = 0x2F // Advertising Interval - long
	TypeManufacturerData      = 0xFF // Manufacturer Specific Data
)

// TypeName maps an AD type tag to its name per the assigned numbers document.
var TypeName = map[byte]string{
	TypeFlags:               "Flags",
	TypeSomeUUID16:          "Incomplete List of 16-bit Service Class UUIDs",
	TypeAllUUID16:           "Complete List of 16-bit Service Class UUIDs",
	TypeSomeUUID32:          "Incomplete List of 32-bit Service Class UUIDs",
	TypeAllUUID32:           "Complete List of 32-bit Service Class UUIDs",
	TypeSomeUUID128:         "Incomplete List of 128-bit Service Class UUIDs",
	TypeAllUUID128:          "Complete List of 128-bit Service Class UUIDs",
	TypeShortName:           "Shortened Local Name",
	TypeCompleteName:        "Complete Local Name",
	TypeTxPower:             "Tx Power Level",
	TypeClassOfDevice:       "Class of Device",
	TypeSSPHashC192:         "Simple Pairing Hash C-192",
	TypeSSPRandomizerR192:   "Simple Pairing Randomizer R-192",
	TypeServiceSol16:        "List of 16-bit Service Solicitation UUIDs",
	TypeServiceSol128:       "List of 128-bit Service Solicitation UUIDs",
	TypeServiceData16:       "Service Data - 16-bit UUID",
	TypeAppearance:          "Appearance",
	TypeAdvertisingInterval: "Advertising Interval",
	TypeLERole:              "LE Role",
	TypeSSPHashC256:         "Simple Pairing Hash C-256",
	TypeSSPRandomizerR256:   "Simple Pairing Randomizer R-256",
	TypeServiceSol32:        "List of 32-bit Service Solicitation UUIDs",
	TypeServiceData32:       "Service Data - 32-bit UUID",
	TypeServiceData128:      "Service Data - 128-bit UUID",
	TypeChannelMapUpdate:    "Channel Map Update Indication",
	TypeBIGInfo:             "BIGInfo",
	TypeBroadcastCode:       "Broadcast_Code",
	TypeAdvIntervalLong:     "Advertising Interval - long",
	TypeManufacturerData:    "Manufacturer Specific Data",
}
