package core

import "testing"

func TestParseFilename(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   ParsedFilename
		wantOK bool
	}{
		{
			name:   "current format",
			input:  "Invoice_2024_01_#3.pdf",
			want:   ParsedFilename{Year: 2024, Month: 1, Number: 3},
			wantOK: true,
		},
		{
			name:   "legacy format",
			input:  "Invoice_01_2025_#7.pdf",
			want:   ParsedFilename{Year: 2025, Month: 1, Number: 7},
			wantOK: true,
		},
		{
			name:   "multi digit number",
			input:  "Invoice_2026_12_#120.pdf",
			want:   ParsedFilename{Year: 2026, Month: 12, Number: 120},
			wantOK: true,
		},
		{name: "not an invoice", input: "not_an_invoice.pdf"},
		{name: "wrong extension", input: "Invoice_2024_01_#3.html"},
		{name: "missing hash", input: "Invoice_2024_01_3.pdf"},
		{name: "three digit month", input: "Invoice_2024_013_#3.pdf"},
		{name: "trailing garbage", input: "Invoice_2024_01_#3.pdf.bak"},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseFilename(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseFilename(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Fatalf("ParseFilename(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

// Equivalent field values must parse the same regardless of which pattern
// carried them.
func TestParseFilename_FormatEquivalence(t *testing.T) {
	current, ok := ParseFilename("Invoice_2024_05_#11.pdf")
	if !ok {
		t.Fatal("current format did not parse")
	}
	legacy, ok := ParseFilename("Invoice_05_2024_#11.pdf")
	if !ok {
		t.Fatal("legacy format did not parse")
	}
	if current != legacy {
		t.Fatalf("formats disagree: current=%+v legacy=%+v", current, legacy)
	}
}

func TestParseFilename_Pure(t *testing.T) {
	const name = "Invoice_2024_01_#3.pdf"
	first, _ := ParseFilename(name)
	for i := 0; i < 5; i++ {
		got, _ := ParseFilename(name)
		if got != first {
			t.Fatalf("ParseFilename not stable: run %d got %+v, first %+v", i, got, first)
		}
	}
}

func TestTarget_FilenameRoundTrip(t *testing.T) {
	target := Target{Month: 9, Year: 2025}
	parsed, ok := ParseFilename(target.Filename(42))
	if !ok {
		t.Fatal("generated filename did not parse")
	}
	want := ParsedFilename{Year: 2025, Month: 9, Number: 42}
	if parsed != want {
		t.Fatalf("round trip = %+v, want %+v", parsed, want)
	}
}
