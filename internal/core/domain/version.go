package domain

import (
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// PythonVersion is an interpreter version triple.
type PythonVersion struct {
	Major int
	Minor int
	Patch int
}

// ParsePythonVersion parses "3.11.2" or "3.11" into a PythonVersion.
func ParsePythonVersion(s string) (PythonVersion, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 2 || len(parts) > 3 {
		return PythonVersion{}, zerr.With(zerr.New("malformed python version"), "version", s)
	}

	var v PythonVersion
	fields := []*int{&v.Major, &v.Minor, &v.Patch}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return PythonVersion{}, zerr.With(zerr.Wrap(err, "malformed python version"), "version", s)
		}
		*fields[i] = n
	}
	return v, nil
}

// AtLeast reports whether v is min or newer. Patch is ignored, matching the
// original major/minor gate.
func (v PythonVersion) AtLeast(min PythonVersion) bool {
	if v.Major != min.Major {
		return v.Major > min.Major
	}
	return v.Minor >= min.Minor
}

// String renders the version as "3.11.2".
func (v PythonVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
