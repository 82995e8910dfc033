package roff

import (
	"fmt"
	"strconv"
	"strings"
)

// SectionNumber is the manual section a page belongs to. The named
// constants cover the conventional sections; any other non-zero value is
// accepted as a custom numeral.
type SectionNumber uint8

const (
	GeneralCommands SectionNumber = iota + 1
	SystemCalls
	LibraryCalls
	SpecialFiles
	FileFormats
	Games
	Miscellaneous
	AdminCommands
	KernelInterfaces
)

var categories = map[SectionNumber]string{
	GeneralCommands:  "General Commands Manual",
	SystemCalls:      "System Calls Manual",
	LibraryCalls:     "Library Functions Manual",
	SpecialFiles:     "Special Files Manual",
	FileFormats:      "File Formats Manual",
	Games:            "Games Manual",
	Miscellaneous:    "Miscellaneous Information Manual",
	AdminCommands:    "System Manager's Manual",
	KernelInterfaces: "Kernel Developer's Manual",
}

// Numeral returns the numeral written in the page header.
func (n SectionNumber) Numeral() string {
	return strconv.Itoa(int(n))
}

// Category returns the human-readable manual name shown in page footers.
func (n SectionNumber) Category() string {
	if c, ok := categories[n]; ok {
		return c
	}
	return fmt.Sprintf("Section %d Manual", n)
}

// String implements fmt.Stringer.
func (n SectionNumber) String() string {
	return n.Numeral()
}

// ParseSectionNumber parses a decimal numeral in the range 1-255.
func ParseSectionNumber(s string) (SectionNumber, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid section number %q: %w", s, err)
	}
	if v == 0 {
		return 0, fmt.Errorf("invalid section number %q: must be positive", s)
	}
	return SectionNumber(v), nil
}
