package buildinfo

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })

	Version = "v9.9.9"
	info := Get()
	if info.Version != "v9.9.9" {
		t.Errorf("Version = %q, want %q", info.Version, "v9.9.9")
	}
	if info.Commit != Commit || info.Date != Date {
		t.Errorf("Get() = %+v, want commit %q date %q", info, Commit, Date)
	}
}

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version ") {
		t.Errorf("Template() = %q, want cobra name placeholder prefix", tmpl)
	}
	if !strings.Contains(String(), "commit: "+Commit) {
		t.Errorf("String() = %q, missing commit", String())
	}
}
