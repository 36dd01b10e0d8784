// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package assuan

import "testing"

func TestDecodeDescription(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		prompt  string
		message string
	}{
		{
			name:    "gpg-agent passphrase request",
			raw:     "Enter%20PIN%0A%22Please%20enter%20your%20PIN%3A%22",
			prompt:  "Enter PIN:",
			message: "Please enter your PIN",
		},
		{
			name:   "single line",
			raw:    "Passphrase",
			prompt: "Passphrase:",
		},
		{
			name:   "plus decodes to space",
			raw:    "Enter+PIN",
			prompt: "Enter PIN:",
		},
		{
			name:   "encoded plus survives",
			raw:    "a%2Bb",
			prompt: "a+b:",
		},
		{
			name:    "unquoted message with trailing colon",
			raw:     "Unlock%0APlease%20confirm%3A",
			prompt:  "Unlock:",
			message: "Please confirm",
		},
		{
			name:    "quote pair stripped only when both present",
			raw:     "Unlock%0Ahalf%22",
			prompt:  "Unlock:",
			message: `half"`,
		},
		{
			name:    "colon inside quotes kept",
			raw:     "Unlock%0A%22key%3A%20id%22",
			prompt:  "Unlock:",
			message: "key: id",
		},
		{
			name:    "third line ignored",
			raw:     "One%0ATwo%0AThree",
			prompt:  "One:",
			message: "Two",
		},
		{
			name:   "empty payload",
			raw:    "",
			prompt: ":",
		},
		{
			name:   "trailing percent passes through",
			raw:    "50%",
			prompt: "50%:",
		},
		{
			name:   "truncated escape passes through",
			raw:    "bad%2",
			prompt: "bad%2:",
		},
		{
			name:   "non-hex escape passes through",
			raw:    "odd%zzend",
			prompt: "odd%zzend:",
		},
		{
			name:    "mixed valid and malformed escapes",
			raw:     "a%41%%0Ab%",
			prompt:  "aA%:",
			message: "b%",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			prompt, message := DecodeDescription(test.raw)
			if prompt != test.prompt {
				t.Errorf("prompt = %q, want %q", prompt, test.prompt)
			}
			if message != test.message {
				t.Errorf("message = %q, want %q", message, test.message)
			}
		})
	}
}

func TestPercentDecodeCase(t *testing.T) {
	if got := percentDecode("%2f%2F"); got != "//" {
		t.Errorf("percentDecode hex case = %q, want %q", got, "//")
	}
}
