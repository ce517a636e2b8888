package globals

import (
	"bytes"
	"testing"
	"unicode/utf8"
)

func TestUstringRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "ascii", in: "hello"},
		{name: "latin1", in: "ein Bär"},
		{name: "cjk", in: "Hello, 世界"},
		{name: "mixed", in: "o țesătură 日本語"},
		{name: "astral", in: "clef: \U0001d11e"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := FromUTF8(tt.in)
			if got := u.ToUTF8(); got != tt.in {
				t.Errorf("ToUTF8() = %q, want %q", got, tt.in)
			}
			if got := u.String(); got != tt.in {
				t.Errorf("String() = %q, want %q", got, tt.in)
			}
		})
	}
}

func TestUstringInverseRoundTrip(t *testing.T) {
	// valid UTF-8 byte strings must survive Ustring unchanged
	inputs := []string{"", "a", "Hello, 世界", "éèê"}
	for _, in := range inputs {
		out := FromUTF8(in).ToUTF8()
		if !bytes.Equal([]byte(out), []byte(in)) {
			t.Errorf("round trip changed bytes: %x != %x", out, in)
		}
	}
}

func TestFromUTF8Invalid(t *testing.T) {
	// malformed input is substituted, not rejected
	u := FromUTF8("a\xffb")
	out := u.ToUTF8()
	if !utf8.ValidString(out) {
		t.Errorf("ToUTF8() produced invalid UTF-8: %x", out)
	}
	if out != "a�b" {
		t.Errorf("ToUTF8() = %q, want replacement for the bad byte", out)
	}
}

func TestUstringNoAliasing(t *testing.T) {
	u := FromUTF8("abc")
	u[0] = 'x'
	v := FromUTF8("abc")
	if v.ToUTF8() != "abc" {
		t.Error("conversions must not share state")
	}
}

func TestLatin1(t *testing.T) {
	in := []byte("caf\xe9") // café in ISO 8859-1
	u := FromLatin1(in)
	if got := u.ToUTF8(); got != "café" {
		t.Errorf("FromLatin1().ToUTF8() = %q, want %q", got, "café")
	}
	if got := u.ToLatin1(); !bytes.Equal(got, in) {
		t.Errorf("ToLatin1() = %x, want %x", got, in)
	}
	// out of range characters are substituted, not dropped
	sub := FromUTF8("世").ToLatin1()
	if len(sub) != 1 {
		t.Errorf("ToLatin1() of a CJK rune = %x, want a single substitute byte", sub)
	}
}

func TestUTF16LECodec(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "empty", in: ""},
		{name: "ascii", in: "PDF"},
		{name: "cjk", in: "Hello, 世界"},
		{name: "astral", in: "\U0001f4c4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := EncodeUTF16LE(tt.in)
			if len(buf)%2 != 0 {
				t.Fatalf("EncodeUTF16LE() returned odd length %d", len(buf))
			}
			if got := DecodeUTF16LE(buf); got != tt.in {
				t.Errorf("DecodeUTF16LE() = %q, want %q", got, tt.in)
			}
		})
	}
}
