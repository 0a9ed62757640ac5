package orchestrator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Version of the target system
type Version struct {
	Major, Minor, Patch int
}

// Parse "major[.minor[.patch]]". Missing parts are 0.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Version{}, errors.New("orchestrator: empty version for target system")
	}
	parts := strings.SplitN(s, ".", 3)
	var v Version
	fields := []*int{&v.Major, &v.Minor, &v.Patch}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, errors.Wrapf(err, "orchestrator: invalid version %q", s)
		}
		*fields[i] = n
	}
	return v, nil
}

// Returns true if v is at least major.minor.patch
func (v Version) AtLeast(major, minor, patch int) bool {
	if v.Major != major {
		return v.Major > major
	}
	if v.Minor != minor {
		return v.Minor > minor
	}
	return v.Patch >= patch
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
