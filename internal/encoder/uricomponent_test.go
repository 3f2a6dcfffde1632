package encoder

import (
	"testing"
)

func TestURIComponentEncode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"abcXYZ019-_.~", "abcXYZ019-_.~"},
		{"p@ss/w:rd!", "p%40ss%2Fw%3Ard%21"},
		{"héllo", "h%C3%A9llo"},
		{"Secr3t!@#", "Secr3t%21%40%23"},
		{"with space", "with%20space"},
		{"a+b", "a%2Bb"},
		{"100%", "100%25"},
		{":/?#[]@!$&'()*+,;=", "%3A%2F%3F%23%5B%5D%40%21%24%26%27%28%29%2A%2B%2C%3B%3D"},
		{"new\nline\ttab", "new%0Aline%09tab"},
		{"пароль", "%D0%BF%D0%B0%D1%80%D0%BE%D0%BB%D1%8C"},
	}

	for _, test := range tests {
		got, err := DefaultURIComponentEncoder.Encode(test.input)
		if err != nil {
			t.Fatalf("got an error while testing: %v", err)
		}
		if got != test.want {
			t.Fatalf("got %s, want %s", got, test.want)
		}
	}
}

func TestURIComponentDecode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"p%40ss%2Fw%3Ard%21", "p@ss/w:rd!"},
		{"h%C3%A9llo", "héllo"},
		{"with%20space", "with space"},
	}

	for _, test := range tests {
		got, err := DefaultURIComponentEncoder.Decode(test.input)
		if err != nil {
			t.Fatalf("got an error while testing: %v", err)
		}
		if got != test.want {
			t.Fatalf("got %s, want %s", got, test.want)
		}
	}
}
