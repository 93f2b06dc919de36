package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parse failures.
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNonNumeric        = errors.New("version component is not numeric")
	ErrNegativeComponent = errors.New("version component cannot be negative")
)

// Version is a semantic version with flexible precision. Plan documents
// record the generator that produced them; comparing those stamps against
// the running binary decides whether a document can still be trusted.
//
// Precision tracks how many components were actually written: "1.2" keeps
// precision 2 and matches any 1.2.x during comparisons. Build suffixes
// ("1.2.3-rc.1") survive in Extras but never influence ordering.
type Version struct {
	Major int `json:"major,omitempty" yaml:"major,omitempty"`
	Minor int `json:"minor,omitempty" yaml:"minor,omitempty"`
	Patch int `json:"patch,omitempty" yaml:"patch,omitempty"`

	// Precision is the number of significant components (1, 2, or 3).
	Precision int `json:"precision,omitempty" yaml:"precision,omitempty"`

	// Extras preserves any suffix after the numeric components.
	Extras string `json:"extras,omitempty" yaml:"extras,omitempty"`
}

// New creates a full-precision Version.
func New(major, minor, patch int) Version {
	return Version{
		Major:     major,
		Minor:     minor,
		Patch:     patch,
		Precision: 3,
	}
}

// String renders the version up to its precision. Extras are not included.
func (v Version) String() string {
	switch v.Precision {
	case 1:
		return strconv.Itoa(v.Major)
	case 2:
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	default:
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
}

// Parse parses strings like "1", "1.2", "v1.2.3", or "1.2.3-rc.1". The "v"
// prefix is optional; anything after a '-' or '+' that follows a digit is
// kept as Extras.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	s = strings.TrimPrefix(s, "v")
	var v Version

	// Split off the suffix before the dots: "1.2.3-rc.1" carries dots in
	// its extras, so splitting on '.' first would miscount components.
	mainPart := s
	for i, ch := range s {
		if (ch == '-' || ch == '+') && i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
			mainPart = s[:i]
			v.Extras = s[i:]
			break
		}
	}

	parts := strings.Split(mainPart, ".")
	if len(parts) > 3 {
		return Version{}, ErrTooManyComponents
	}

	for i, part := range parts {
		if part == "" {
			return Version{}, fmt.Errorf("%w: empty component", ErrNonNumeric)
		}
		num, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}
		if num < 0 {
			return Version{}, fmt.Errorf("%w: %d", ErrNegativeComponent, num)
		}

		switch i {
		case 0:
			v.Major = num
		case 1:
			v.Minor = num
		case 2:
			v.Patch = num
		}
	}

	v.Precision = len(parts)
	return v, nil
}

// MustParse parses a version string and panics on failure. For hardcoded
// strings and tests only.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("version.MustParse: %v", err))
	}
	return v
}

// EqualsOrNewer reports whether v is at least other, compared up to v's
// precision: Version{1, 2, Precision: 2} accepts any 1.2.x.
func (v Version) EqualsOrNewer(other Version) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	if v.Precision == 1 {
		return true
	}
	if v.Minor != other.Minor {
		return v.Minor > other.Minor
	}
	if v.Precision == 2 {
		return true
	}
	return v.Patch >= other.Patch
}

// IsNewer reports whether v is strictly newer than other, respecting v's
// precision.
func (v Version) IsNewer(other Version) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	if v.Precision == 1 {
		return false
	}
	if v.Minor != other.Minor {
		return v.Minor > other.Minor
	}
	if v.Precision == 2 {
		return false
	}
	return v.Patch > other.Patch
}

// Equals reports exact component equality, ignoring precision and extras.
func (v Version) Equals(other Version) bool {
	return v.Major == other.Major && v.Minor == other.Minor && v.Patch == other.Patch
}

// Compare orders two versions: -1 when v < other, 0 when equal, 1 when
// v > other. Comparison stops at the lower of the two precisions, which
// makes "1.2" and "1.2.9" equal for sorting purposes.
func (v Version) Compare(other Version) int {
	precision := v.Precision
	if other.Precision < precision {
		precision = other.Precision
	}

	if v.Major != other.Major {
		return sign(v.Major - other.Major)
	}
	if precision == 1 {
		return 0
	}
	if v.Minor != other.Minor {
		return sign(v.Minor - other.Minor)
	}
	if precision == 2 {
		return 0
	}
	return sign(v.Patch - other.Patch)
}

// IsValid reports whether all components are non-negative and the
// precision is in range.
func (v Version) IsValid() bool {
	if v.Major < 0 || v.Minor < 0 || v.Patch < 0 {
		return false
	}
	return v.Precision >= 1 && v.Precision <= 3
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
