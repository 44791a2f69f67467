// internal/driver/novitus/frame_test.go
package novitus

import (
	"bytes"
	"context"
	"strconv"
	"testing"
)

func TestCtrlByteZeroPadded(t *testing.T) {
	// Bodies whose checksum falls below 0x10 must still produce two digits.
	cases := []struct {
		body string
		want string
	}{
		{"2#e", "8B"},
		{"#v", "AA"},
		{"", "FF"},
		{"\xfa", "05"},
	}

	for _, tc := range cases {
		got := string(ctrlByte([]byte(tc.body)))
		if len(got) != 2 {
			t.Fatalf("ctrlByte(%q) = %q, want two digits", tc.body, got)
		}
		if got != tc.want {
			t.Errorf("ctrlByte(%q) = %q, want %q", tc.body, got, tc.want)
		}
	}
}

func TestChecksumRoundTrip(t *testing.T) {
	// xor of the body and its reparsed control byte is always 0xFF.
	bodies := []string{"", "a", "2#e", "1$lchleb\r1.000\rA/3.50/3.50/", "\x00\xff\x10"}

	for _, body := range bodies {
		ctrl := ctrlByte([]byte(body))
		parsed, err := strconv.ParseUint(string(ctrl), 16, 8)
		if err != nil {
			t.Fatalf("control byte %q does not parse as hex: %v", ctrl, err)
		}

		// xor_all(body) ^ ctrl == 0xFF by construction.
		x := byte(parsed)
		for _, b := range []byte(body) {
			x ^= b
		}
		if x != 0xff {
			t.Errorf("checksum round trip failed for %q: got %#x", body, x)
		}
	}
}

func TestFrameRoundTrip(t *testing.T) {
	for _, withCtrl := range []bool{false, true} {
		body := []byte("12;7#sabc")
		framed := frame(body, withCtrl)

		if !bytes.HasPrefix(framed, []byte{0x1b, 'P'}) {
			t.Fatalf("frame missing ESC P prefix: % x", framed)
		}
		if !bytes.HasSuffix(framed, []byte{0x1b, '\\'}) {
			t.Fatalf("frame missing ESC \\ suffix: % x", framed)
		}

		payload, err := unframe(framed)
		if err != nil {
			t.Fatalf("unframe: %v", err)
		}

		want := body
		if withCtrl {
			want = append(append([]byte{}, body...), ctrlByte(body)...)
		}
		if !bytes.Equal(payload, want) {
			t.Errorf("unframe(frame(%q, %v)) = %q, want %q", body, withCtrl, payload, want)
		}
	}
}

func TestUnframeErrors(t *testing.T) {
	if _, err := unframe([]byte("no markers here")); err == nil {
		t.Error("expected framing error without ESC P")
	}
	if _, err := unframe([]byte{0x1b, 'P', 'x'}); err == nil {
		t.Error("expected framing error without terminator")
	}
}

func TestReadFrameDiscardsNoise(t *testing.T) {
	stream := append([]byte("garbage"), framedReply("1#E21")...)
	conn := newMockConn(stream...)

	payload, err := readFrame(context.Background(), conn)
	if err != nil {
		t.Fatalf("readFrame: %v", err)
	}
	if string(payload) != "1#E21" {
		t.Errorf("payload = %q, want %q", payload, "1#E21")
	}
}

func TestReadFrameTimeout(t *testing.T) {
	conn := newMockConn([]byte("half a fra")...)

	_, err := readFrame(context.Background(), conn)
	if err == nil {
		t.Fatal("expected error on incomplete frame")
	}
	if _, ok := err.(*FramingError); !ok {
		t.Errorf("got %T, want *FramingError", err)
	}
}
