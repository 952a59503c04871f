// internal/petscii/petscii.go

// package petscii provides best-effort PETSCII to ASCII conversion.
// PETSCII shares the printable ASCII range but everything outside it is
// control codes, graphics glyphs or shifted letters with no clean mapping.
package petscii

const placeholder = '.'

// Printable maps a single byte to displayable text using the strict policy:
// shifted space becomes a space, printable ASCII passes through, everything
// else is a placeholder glyph since it denotes a control/graphics code.
func Printable(b byte) byte {
	switch {
	case b == 0xA0: // shifted space
		return ' '
	case b >= 0x20 && b <= 0x7E:
		return b
	default:
		return placeholder
	}
}

// Text maps a single byte to displayable text with extra folding that makes
// real recovered listings far more readable than the strict policy:
// shifted letters become A-Z, cursor movement codes become spacing, and the
// reverse-video toggle is dropped entirely. returns "" for dropped bytes.
func Text(b byte) string {
	switch {
	case b == 0xA0:
		return " "
	case b == 0x11 || b == 0x1D || b == 0x9D: // cursor down/right/left: layout
		return " "
	case b == 0x90: // reverse-on and friends carry no text
		return ""
	case b >= 0xC1 && b <= 0xDA: // shifted letters
		return string(rune('A' + (b - 0xC1)))
	case b >= 0x20 && b <= 0x7E:
		return string(rune(b))
	default:
		return string(placeholder)
	}
}

// Filename converts a raw header filename field to ASCII. it folds the
// CHR$ 'SAME AS' code ranges down onto their canonical values first, the way
// the kernal aliases them, then applies the strict printable policy.
func Filename(raw []byte) string {
	result := make([]byte, len(raw))
	for i, b := range raw {
		if b == 255 {
			b = 126
		} else if b > 223 && b < 255 { // aliases of 160-190
			b -= 64
		} else if b > 191 && b < 224 { // aliases of 96-127
			b -= 96
		}
		result[i] = Printable(b)
	}
	return string(result)
}
