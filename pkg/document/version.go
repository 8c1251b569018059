package document

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// CurrentVersion is the format version written by Encode.
const CurrentVersion = "v1.0.0"

// CheckVersion returns the canonical form of v, or an error when v is not a
// semantic version or its major version is newer than CurrentVersion. The
// leading "v" is optional.
func CheckVersion(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("missing document version")
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", fmt.Errorf("invalid document version %q", v)
	}
	if semver.Compare(semver.Major(v), semver.Major(CurrentVersion)) > 0 {
		return "", fmt.Errorf("document version %s is newer than supported %s", v, CurrentVersion)
	}
	return semver.Canonical(v), nil
}
