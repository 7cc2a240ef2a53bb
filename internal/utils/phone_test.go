package utils

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already normalized", in: "+79261234567", want: "+79261234567"},
		{name: "domestic leading eight", in: "89261234567", want: "+79261234567"},
		{name: "spaces and dashes", in: "8 926 123-45-67", want: "+79261234567"},
		{name: "parentheses", in: "+7 (926) 123-45-67", want: "+79261234567"},
		{name: "bare digits", in: "79261234567", want: "+79261234567"},
		{name: "short number kept as is", in: "123", want: "+123"},
		{name: "empty", in: "", want: ""},
		{name: "no digits at all", in: "call me", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.in); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
