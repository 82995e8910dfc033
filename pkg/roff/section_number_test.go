package roff

import "testing"

func TestSectionNumber(t *testing.T) {
	tests := []struct {
		n        SectionNumber
		numeral  string
		category string
	}{
		{GeneralCommands, "1", "General Commands Manual"},
		{SystemCalls, "2", "System Calls Manual"},
		{LibraryCalls, "3", "Library Functions Manual"},
		{FileFormats, "5", "File Formats Manual"},
		{Miscellaneous, "7", "Miscellaneous Information Manual"},
		{AdminCommands, "8", "System Manager's Manual"},
		{KernelInterfaces, "9", "Kernel Developer's Manual"},
		{SectionNumber(42), "42", "Section 42 Manual"},
	}

	for _, tt := range tests {
		t.Run(tt.numeral, func(t *testing.T) {
			if got := tt.n.Numeral(); got != tt.numeral {
				t.Errorf("Numeral() = %q, want %q", got, tt.numeral)
			}
			if got := tt.n.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
		})
	}
}

func TestParseSectionNumber(t *testing.T) {
	tests := []struct {
		in      string
		want    SectionNumber
		wantErr bool
	}{
		{"1", GeneralCommands, false},
		{" 7 ", Miscellaneous, false},
		{"12", SectionNumber(12), false},
		{"0", 0, true},
		{"256", 0, true},
		{"3p", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseSectionNumber(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSectionNumber(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSectionNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
