// internal/driver/novitus/command_test.go
package novitus

import (
	"regexp"
	"testing"
)

func TestCommandEncode(t *testing.T) {
	cases := []struct {
		name string
		cmd  Command
		want string
	}{
		{
			name: "opcode only",
			cmd:  Command{Opcode: "#v"},
			want: "#v",
		},
		{
			name: "single int",
			cmd:  Command{IntParams: []int{2}, Opcode: "#e"},
			want: "2#e",
		},
		{
			name: "ints joined by semicolons",
			cmd:  Command{IntParams: []int{25, 14, 3, 1, 0, 0, 0}, Opcode: "#s"},
			want: "25;14;3;1;0;0;0#s",
		},
		{
			name: "text params keep their terminators",
			cmd: Command{
				IntParams:  []int{1},
				Opcode:     "$l",
				TextParams: []string{"chleb\r", "1.000\r", "A/", "3.50/", "3.50/"},
			},
			want: "1$lchleb\r1.000\rA/3.50/3.50/",
		},
		{
			name: "opcode with embedded selector",
			cmd:  Command{Opcode: "10$d", TextParams: []string{"4.00/"}},
			want: "10$d4.00/",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := string(tc.cmd.encode()); got != tc.want {
				t.Errorf("encode() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCommandBodyShape(t *testing.T) {
	// Every encoded body is: optional decimal list, opcode sigil, opcode
	// character, then the text block.
	shape := regexp.MustCompile(`^([0-9]+;)*[0-9]*[\$\#\@\^][!-~]`)

	cmds := []Command{
		{Opcode: "#v"},
		{IntParams: []int{2}, Opcode: "#e"},
		{IntParams: []int{1, 0, 16}, Opcode: "^l", TextParams: []string{"x\r"}},
		{IntParams: []int{20, 5}, Opcode: "$z", TextParams: []string{"abc\r"}},
		{IntParams: []int{0}, Opcode: "@c"},
	}

	for _, cmd := range cmds {
		body := cmd.encode()
		if !shape.Match(body) {
			t.Errorf("body %q does not match the command grammar", body)
		}
	}
}

func TestCommandEncodeTranscodesText(t *testing.T) {
	cmd := Command{
		IntParams:  []int{1},
		Opcode:     "$l",
		TextParams: []string{"żółć\r"},
	}

	want := "1$l\xa7\xa2\x92\x8d\r"
	if got := string(cmd.encode()); got != want {
		t.Errorf("encode() = % x, want % x", got, want)
	}
}

func TestFromFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{3.5, "3.50"},
		{3.50, "3.50"},
		{23, "23.00"},
		{0.1, "0.10"},
		{1234567.89, "1234567.89"},
		{4.1234, "4.1234"},
		{-12.3, "-12.30"},
	}

	for _, tc := range cases {
		if got := fromFloat(tc.in); got != tc.want {
			t.Errorf("fromFloat(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFromIntFromLong(t *testing.T) {
	if got := fromInt(-7); got != "-7" {
		t.Errorf("fromInt(-7) = %q", got)
	}
	if got := fromLong(4294967296); got != "4294967296" {
		t.Errorf("fromLong(2^32) = %q", got)
	}
}
