package build

import (
	"strings"
	"testing"
)

func TestVersionFromEmbeddedFile(t *testing.T) {
	if got := Version(); got == "" || strings.ContainsAny(got, " \n") {
		t.Errorf("Version() = %q, want trimmed non-empty version", got)
	}
}

func TestSetBuildInfo(t *testing.T) {
	SetBuildInfo("abc123", "2024-01-02")
	info := Current()
	if info.GitCommit != "abc123" {
		t.Errorf("GitCommit = %q, want %q", info.GitCommit, "abc123")
	}
	if info.BuildDate != "2024-01-02" {
		t.Errorf("BuildDate = %q, want %q", info.BuildDate, "2024-01-02")
	}

	SetBuildInfo("", "")
	if got := Current().GitCommit; got != "abc123" {
		t.Errorf("empty commit should keep previous value, got %q", got)
	}
	if !strings.Contains(Current().Platform, "/") {
		t.Errorf("Platform = %q, want os/arch", Current().Platform)
	}
}
