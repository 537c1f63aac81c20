package update

import (
	"fmt"
	"strings"

	rpmversion "github.com/knqyf263/go-rpm-version"
)

// Build is an immutable, NVR-identified artifact from the build system.
type Build struct {
	ID         uint        `gorm:"primaryKey;column:id" json:"id"`
	NVR        string      `gorm:"size:255;uniqueIndex;not null;column:nvr" json:"nvr"`
	Package    string      `gorm:"size:255;index;not null" json:"package"`
	Type       ContentType `gorm:"size:20;not null;default:rpm" json:"type"`
	Signed     bool        `gorm:"not null;default:false" json:"signed"`
	UpdateID   *uint       `gorm:"index;column:update_id" json:"update_id,omitempty"`
	OverrideID *uint       `gorm:"column:override_id" json:"override_id,omitempty"`
}

func (Build) TableName() string {
	return "builds"
}

// SplitNVR splits name-version-release. The name may itself contain dashes.
func SplitNVR(nvr string) (name, version, rel string, err error) {
	last := strings.LastIndex(nvr, "-")
	if last <= 0 {
		return "", "", "", fmt.Errorf("malformed nvr %q", nvr)
	}
	mid := strings.LastIndex(nvr[:last], "-")
	if mid <= 0 {
		return "", "", "", fmt.Errorf("malformed nvr %q", nvr)
	}
	return nvr[:mid], nvr[mid+1 : last], nvr[last+1:], nil
}

// NewBuild builds a Build from its NVR, deriving the package name.
func NewBuild(nvr string, ct ContentType) (Build, error) {
	name, _, _, err := SplitNVR(nvr)
	if err != nil {
		return Build{}, err
	}
	if ct == "" {
		ct = ContentRPM
	}
	return Build{NVR: nvr, Package: name, Type: ct}, nil
}

// CompareNVR compares the version-release of two builds with RPM label
// semantics. It returns -1, 0 or 1.
func CompareNVR(a, b string) (int, error) {
	_, va, ra, err := SplitNVR(a)
	if err != nil {
		return 0, err
	}
	_, vb, rb, err := SplitNVR(b)
	if err != nil {
		return 0, err
	}
	left := rpmversion.NewVersion(va + "-" + ra)
	right := rpmversion.NewVersion(vb + "-" + rb)
	return left.Compare(right), nil
}

// ValidateBuildTypes checks that every build carries the same content type.
func ValidateBuildTypes(builds []Build) error {
	if len(builds) == 0 {
		return ErrNoBuilds
	}
	first := builds[0].Type
	for _, b := range builds[1:] {
		if b.Type != first {
			return fmt.Errorf("%w: %s is %s, %s is %s", ErrMixedContentTypes, builds[0].NVR, first, b.NVR, b.Type)
		}
	}
	return nil
}
