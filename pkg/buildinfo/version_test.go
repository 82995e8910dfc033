package buildinfo

import (
	"strings"
	"testing"
)

func TestGetUsesVariables(t *testing.T) {
	oldV, oldC, oldD := Version, Commit, Date
	defer func() { Version, Commit, Date = oldV, oldC, oldD }()

	Version, Commit, Date = "v1.2.3", "abc123", "2024-05-01"
	want := Info{Version: "v1.2.3", Commit: "abc123", Date: "2024-05-01"}
	if got := Get(); got != want {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
	if got := String(); got != "version: v1.2.3\ncommit: abc123\nbuilt: 2024-05-01" {
		t.Errorf("String() = %q", got)
	}
	if got := Template(); !strings.HasPrefix(got, "{{.Name}} version v1.2.3\n") {
		t.Errorf("Template() = %q", got)
	}
}
