// Package codec implements the binary serialization of mineral sample
// records stored in .samples2 files.
//
// # File Format
//
// All integers are big-endian. A file is a counted list of records:
//
//	File    := count:u32 Record[count]
//	Record  := discriminant:u32 dimension:i32 x:i32 z:i32 Payload
//	Payload(0) := mineral:LString liquid:LString timestamp:u64   (Immersive)
//	Payload(1) := ore:LString                                    (TerraFirmaCraft)
//	Payload(2) := ore:LString                                    (Geolosys)
//	LString := length:u16 bytes:u8[length]                       (UTF-8)
//
// The discriminant selects which of the three sample variants follows the
// fixed dimension/x/z header. Any discriminant outside {0, 1, 2} is a
// decode failure; there is no checksum or version field.
//
// Decoding consumes exactly count records from the reader and ignores
// anything that follows. Existing files written by other tools sometimes
// carry trailing bytes, so this leniency is deliberate.
//
// # Error Handling
//
// Malformed input (truncated stream, unknown discriminant, string length
// overrunning the data, invalid UTF-8) is reported as *FormatError.
// Encoding fails with *FormatError when a value does not fit its wire
// field: a list longer than the u32 count or a string longer than 65535
// bytes. Strings are never silently truncated.
package codec
