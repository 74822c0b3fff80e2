package version

import (
	"regexp"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionIsSemver(t *testing.T) {
	if !semverRegex.MatchString(Version) {
		t.Errorf("Version %q is not a valid semantic version", Version)
	}
	if Short() != Version {
		t.Errorf("Short() = %q; want %q", Short(), Version)
	}
}

func TestInfoContainsVersion(t *testing.T) {
	info := Info()
	if !strings.Contains(info, Version) {
		t.Errorf("Info() does not contain version %q: %q", Version, info)
	}
	if !strings.Contains(info, "Go Version") {
		t.Errorf("Info() does not contain Go version line: %q", info)
	}
}
