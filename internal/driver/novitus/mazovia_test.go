// internal/driver/novitus/mazovia_test.go
package novitus

import (
	"bytes"
	"testing"
)

func TestToMazoviaAsciiPassthrough(t *testing.T) {
	in := "Receipt 42 / $1.00;OK"
	if got := ToMazovia(in); string(got) != in {
		t.Errorf("ToMazovia(%q) = %q", in, got)
	}
}

func TestToMazoviaPolishLetters(t *testing.T) {
	cases := []struct {
		in   string
		want []byte
	}{
		{"Ó", []byte{0xa3}},
		{"ó", []byte{0xa2}},
		{"Ą", []byte{0x8f}},
		{"Ć", []byte{0x95}},
		{"Ę", []byte{0x90}},
		{"ą", []byte{0x86}},
		{"ć", []byte{0x8d}},
		{"ę", []byte{0x91}},
		{"Ł", []byte{0x9c}},
		{"Ń", []byte{0xa5}},
		{"Ś", []byte{0x98}},
		{"Ź", []byte{0xa0}},
		{"Ż", []byte{0xa1}},
		{"ł", []byte{0x92}},
		{"ń", []byte{0xa4}},
		{"ś", []byte{0x9e}},
		{"ź", []byte{0xa6}},
		{"ż", []byte{0xa7}},
		{"żółć", []byte{0xa7, 0xa2, 0x92, 0x8d}},
	}

	for _, tc := range cases {
		if got := ToMazovia(tc.in); !bytes.Equal(got, tc.want) {
			t.Errorf("ToMazovia(%q) = % x, want % x", tc.in, got, tc.want)
		}
	}
}

func TestToMazoviaNSecondByte(t *testing.T) {
	// ń is the UTF-8 sequence C5 84; the transcoder keys on the second
	// byte under the C5 prefix and must not confuse it with Ą (C4 84).
	if got := ToMazovia("\xc5\x84"); !bytes.Equal(got, []byte{0xa4}) {
		t.Errorf("ToMazovia(C5 84) = % x, want A4", got)
	}
	if got := ToMazovia("\xc4\x84"); !bytes.Equal(got, []byte{0x8f}) {
		t.Errorf("ToMazovia(C4 84) = % x, want 8F", got)
	}
}

func TestToMazoviaDropsUnknown(t *testing.T) {
	// Characters outside the table and outside ASCII vanish.
	cases := []struct {
		in   string
		want string
	}{
		{"über", "ber"},
		{"a€b", "ab"},
		{"Čas", "as"},
	}

	for _, tc := range cases {
		if got := ToMazovia(tc.in); string(got) != tc.want {
			t.Errorf("ToMazovia(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMazoviaRoundTrip(t *testing.T) {
	// Strings built from ASCII plus the mapped Polish letters survive the
	// round trip unchanged.
	cases := []string{
		"",
		"chleb",
		"żółta łódź",
		"ZAŻÓŁĆ GĘŚLĄ JAŹŃ",
		"zażółć gęślą jaźń 123 /;",
	}

	for _, s := range cases {
		if got := FromMazovia(ToMazovia(s)); got != s {
			t.Errorf("round trip of %q = %q", s, got)
		}
	}
}
