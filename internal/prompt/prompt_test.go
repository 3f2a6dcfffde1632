package prompt

import (
	"io"
	"strings"
	"testing"
)

func TestReadLine(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Secr3t!@#\n", "Secr3t!@#"},
		{"Secr3t!@#\r\n", "Secr3t!@#"},
		{"with trailing spaces  \n", "with trailing spaces  "},
		{"no trailing newline", "no trailing newline"},
		{"first\nsecond\n", "first"},
		{"\n", ""},
	}

	for _, test := range tests {
		var out strings.Builder
		r := NewReader(strings.NewReader(test.input), &out)

		got, err := r.ReadLine("password: ")
		if err != nil {
			t.Fatalf("got an error while testing: %v", err)
		}
		if got != test.want {
			t.Fatalf("got %q, want %q", got, test.want)
		}
		if out.String() != "password: " {
			t.Fatalf("prompt not written, got %q", out.String())
		}
	}
}

func TestReadLineExhaustedInput(t *testing.T) {
	var out strings.Builder
	r := NewReader(strings.NewReader(""), &out)

	_, err := r.ReadLine("password: ")
	if err != io.EOF {
		t.Fatalf("got %v, want io.EOF", err)
	}
}
