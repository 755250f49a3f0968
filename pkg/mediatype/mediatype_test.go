package mediatype

import "testing"

// TestParse verifies parsing of well-formed media types, including
// parameter stripping, case folding, and suffix extraction.
func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  MediaType
	}{
		{
			name:  "plain json",
			input: "application/json",
			want:  MediaType{Type: "application", Subtype: "json"},
		},
		{
			name:  "parameters stripped",
			input: "application/json; charset=utf-8",
			want:  MediaType{Type: "application", Subtype: "json"},
		},
		{
			name:  "case folded",
			input: "Application/JSON",
			want:  MediaType{Type: "application", Subtype: "json"},
		},
		{
			name:  "structured syntax suffix",
			input: "application/vnd.api+json",
			want:  MediaType{Type: "application", Subtype: "vnd.api+json", Suffix: "json"},
		},
		{
			name:  "last plus wins",
			input: "application/vnd.a+b+json",
			want:  MediaType{Type: "application", Subtype: "vnd.a+b+json", Suffix: "json"},
		},
		{
			name:  "form urlencoded",
			input: "application/x-www-form-urlencoded",
			want:  MediaType{Type: "application", Subtype: "x-www-form-urlencoded"},
		},
		{
			name:  "image type",
			input: "image/png",
			want:  MediaType{Type: "image", Subtype: "png"},
		},
		{
			name:  "trailing plus is not a suffix",
			input: "application/foo+",
			want:  MediaType{Type: "application", Subtype: "foo+"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if !ok {
				t.Fatalf("Parse(%q) not ok, want %v", tt.input, tt.want)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestParseMalformed verifies that malformed input is reported as such
// rather than producing a partial result.
func TestParseMalformed(t *testing.T) {
	inputs := []string{
		"",
		"json",
		"application/",
		"/json",
		"application/json; charset",
		"application json",
	}

	for _, input := range inputs {
		if got, ok := Parse(input); ok {
			t.Errorf("Parse(%q) = %v, want not ok", input, got)
		}
	}
}

// TestString verifies the canonical rendering round-trips the parsed
// type and subtype without parameters.
func TestString(t *testing.T) {
	m, ok := Parse("Application/VND.API+JSON; charset=utf-8")
	if !ok {
		t.Fatal("Parse returned not ok")
	}
	if got, want := m.String(), "application/vnd.api+json"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
