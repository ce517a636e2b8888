package globals

import (
	"unicode/utf16"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Ustring is a sequence of UTF-16 code units, the in-memory string
// representation used by Poppler. Values are plain slices; conversions
// always allocate and never alias their input.
type Ustring []uint16

var (
	utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	// Poppler narrows unmappable characters when converting to Latin-1
	// instead of failing, so the encoder substitutes, too.
	latin1Enc = encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
)

// FromUTF8 builds a Ustring from a UTF-8 encoded string.
// Malformed byte sequences become replacement characters; no error is
// ever reported, matching poppler::ustring::from_utf8.
func FromUTF8(s string) Ustring {
	return Ustring(utf16.Encode([]rune(s)))
}

// ToUTF8 returns the string's content encoded as UTF-8.
// The conversion is total: unpaired surrogates become replacement
// characters.
func (u Ustring) ToUTF8() string {
	return string(utf16.Decode(u))
}

func (u Ustring) String() string {
	return u.ToUTF8()
}

// FromLatin1 builds a Ustring from ISO 8859-1 encoded bytes.
func FromLatin1(b []byte) Ustring {
	u := make(Ustring, len(b))
	for i, c := range b {
		u[i] = uint16(c)
	}
	return u
}

// ToLatin1 returns the string's content encoded as ISO 8859-1.
// Characters outside the Latin-1 range are substituted.
func (u Ustring) ToLatin1() []byte {
	b, _, _ := transform.Bytes(latin1Enc, []byte(u.ToUTF8()))
	return b
}

// DecodeUTF16LE converts a native UTF-16LE buffer, as returned by
// Poppler and friends across the FFI boundary, to a UTF-8 string.
func DecodeUTF16LE(buf []byte) string {
	out, _, _ := transform.Bytes(utf16LE.NewDecoder(), buf)
	return string(out)
}

// EncodeUTF16LE converts a UTF-8 string to a UTF-16LE buffer suitable
// for handing to native code. No BOM and no terminator are added.
func EncodeUTF16LE(s string) []byte {
	out, _, _ := transform.Bytes(utf16LE.NewEncoder(), []byte(s))
	return out
}
