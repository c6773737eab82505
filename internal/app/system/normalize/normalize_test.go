package normalize

import "testing"

func TestEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"pastor@example.com", "pastor@example.com"},
		{"PASTOR@EXAMPLE.COM", "pastor@example.com"},
		{"  Pastor@Example.Com  ", "pastor@example.com"},
		{"", ""},
		{"   ", ""},
		{"Mixed.Case@Church.ORG", "mixed.case@church.org"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Email(tt.input)
			if got != tt.want {
				t.Errorf("Email(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Grace Cathedral", "Grace Cathedral"},
		{"  Grace Cathedral  ", "Grace Cathedral"},
		{"", ""},
		{"   ", ""},
		{"UPPERCASE NAME", "UPPERCASE NAME"}, // case is preserved
		{"lowercase name", "lowercase name"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Name(tt.input)
			if got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
