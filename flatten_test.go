package tqa

import "testing"

func TestFlattenMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "Save file", "Save file"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"single inline tag", "Click <g id=\"1\">here</g>", "Click here"},
		{"self-closing placeholder", "Hello <x id=\"1\"/> world", "Hello  world"},
		{"nested bpt/ept", "<bpt i=\"1\">*</bpt>bold<ept i=\"1\">*</ept>", "*bold*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flattenMarkup(tt.input)
			if got != tt.want {
				t.Errorf("flattenMarkup(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
