// internal/driver/novitus/mazovia.go
package novitus

// The firmware speaks the Mazovia single-byte code page. Outbound text is
// UTF-8 in, one Mazovia byte per logical character out. The dispatch is over
// raw UTF-8 bytes keyed by the lead byte (0xC3/0xC4/0xC5) and then the
// continuation byte, so the ń mapping stays keyed by its second byte exactly
// like the reference transcoder. Plain ASCII passes through unchanged;
// anything else is dropped, the firmware rejects unknown bytes anyway.

// ToMazovia transcodes a UTF-8 string to Mazovia bytes.
func ToMazovia(text string) []byte {
	result := make([]byte, 0, len(text))

	for i := 0; i < len(text); i++ {
		switch text[i] {

		case 0xc3:
			if i+1 < len(text) {
				switch text[i+1] {
				case 0x93:
					result = append(result, 0xa3) // Ó
				case 0xb3:
					result = append(result, 0xa2) // ó
				}
				i++
			}

		case 0xc4:
			if i+1 < len(text) {
				switch text[i+1] {
				case 0x84:
					result = append(result, 0x8f) // Ą
				case 0x86:
					result = append(result, 0x95) // Ć
				case 0x98:
					result = append(result, 0x90) // Ę
				case 0x85:
					result = append(result, 0x86) // ą
				case 0x87:
					result = append(result, 0x8d) // ć
				case 0x99:
					result = append(result, 0x91) // ę
				}
				i++
			}

		case 0xc5:
			if i+1 < len(text) {
				switch text[i+1] {
				case 0x81:
					result = append(result, 0x9c) // Ł
				case 0x83:
					result = append(result, 0xa5) // Ń
				case 0x9a:
					result = append(result, 0x98) // Ś
				case 0xb9:
					result = append(result, 0xa0) // Ź
				case 0xbb:
					result = append(result, 0xa1) // Ż
				case 0x82:
					result = append(result, 0x92) // ł
				case 0x84:
					result = append(result, 0xa4) // ń
				case 0x9b:
					result = append(result, 0x9e) // ś
				case 0xba:
					result = append(result, 0xa6) // ź
				case 0xbc:
					result = append(result, 0xa7) // ż
				}
				i++
			}

		default:
			if text[i] < 0x80 {
				result = append(result, text[i])
			}
		}
	}

	return result
}

// mazoviaToRune maps the Polish Mazovia bytes back to their code points.
var mazoviaToRune = map[byte]rune{
	0xa3: 'Ó',
	0xa2: 'ó',
	0x8f: 'Ą',
	0x95: 'Ć',
	0x90: 'Ę',
	0x86: 'ą',
	0x8d: 'ć',
	0x91: 'ę',
	0x9c: 'Ł',
	0xa5: 'Ń',
	0x98: 'Ś',
	0xa0: 'Ź',
	0xa1: 'Ż',
	0x92: 'ł',
	0xa4: 'ń',
	0x9e: 'ś',
	0xa6: 'ź',
	0xa7: 'ż',
}

// FromMazovia renders Mazovia bytes as UTF-8. The driver leaves inbound
// text raw; this is a convenience for application layers that display it.
func FromMazovia(data []byte) string {
	result := make([]rune, 0, len(data))

	for _, b := range data {
		if r, ok := mazoviaToRune[b]; ok {
			result = append(result, r)
			continue
		}
		if b < 0x80 {
			result = append(result, rune(b))
		}
	}

	return string(result)
}
