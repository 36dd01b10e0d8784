// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package assuan

import "strings"

// DecodeDescription turns the percent-encoded SETDESC payload into the
// prompt and message shown by the launcher. The decoded payload is one
// or two newline-separated lines: line one is the prompt label, the
// optional line two a longer description, possibly wrapped in double
// quotes by the sender.
//
// The prompt gets a trailing colon appended — a labelling convention
// the menu launchers expect, not part of the payload. The message
// loses one surrounding quote pair (only when both quotes are present)
// and one trailing colon, which the sender uses as a visual separator
// and would look wrong restated inside a menu body.
func DecodeDescription(raw string) (prompt, message string) {
	decoded := percentDecode(strings.ReplaceAll(raw, "+", " "))

	lines := strings.SplitN(decoded, "\n", 3)
	prompt = lines[0] + ":"

	if len(lines) > 1 {
		message = lines[1]
		if len(message) >= 2 && strings.HasPrefix(message, `"`) && strings.HasSuffix(message, `"`) {
			message = message[1 : len(message)-1]
		}
		message = strings.TrimSuffix(message, ":")
	}

	return prompt, message
}

// percentDecode replaces each %XY triplet with the byte it encodes.
// Malformed escapes (a % without two following hex digits) pass
// through literally — the payload comes from a well-behaved peer, and
// an imprecise decode beats rejecting the whole description.
func percentDecode(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			hi, okHi := hexValue(s[i+1])
			lo, okLo := hexValue(s[i+2])
			if okHi && okLo {
				b.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		b.WriteByte(s[i])
	}

	return b.String()
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
