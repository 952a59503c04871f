package constants

const (
	// .tap capture container constants
	TapHeaderSize       = 20 // header size for C64-TAPE-RAW v0/v1
	TapSignature        = "C64-TAPE-RAW"
	TapRequiredVersion  = 1 // recovery relies on v1 pulse encoding; v0 fixed-length pauses carry no duration info
	TapSignatureLength  = 12
	TapVersionOffset    = 12
	TapDataLengthOffset = 16

	// tape block geometry: 9-byte countdown preamble, 192-byte payload, 1 checksum byte
	CountdownLength = 9
	PayloadLength   = 192
	BlockLength     = CountdownLength + PayloadLength + 1

	// header payload field offsets (within the 192-byte header block payload)
	HeaderFileTypeOffset  = 0
	HeaderStartAddrOffset = 1
	HeaderEndAddrOffset   = 3
	HeaderFilenameOffset  = 5
	HeaderFilenameLength  = 16

	// canonical basic program start address. vic-20 basic normally links its
	// first line at $1001; recovered captures land near it when decoding is sane.
	CanonicalBasicStart = 0x1001

	// declared program length ceiling. a header whose end-start exceeds this is
	// garbage, not a one-megabyte basic program on cassette.
	MaxDeclaredLength = 1_000_000
)

// countdown preamble byte sequences. every tape block is written twice; the
// first copy counts down $89..$81 and the repeat copy counts down $09..$01.
var (
	CountdownPrimary   = [CountdownLength]byte{0x89, 0x88, 0x87, 0x86, 0x85, 0x84, 0x83, 0x82, 0x81}
	CountdownDuplicate = [CountdownLength]byte{0x09, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}
)
