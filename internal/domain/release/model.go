package release

import (
	"strings"
	"time"
)

// ReleaseState is the lifecycle state of a release.
type ReleaseState string

const (
	StateDisabled ReleaseState = "disabled" // Not yet open for updates
	StatePending  ReleaseState = "pending"  // Branched, stable pushes go to the dist tag
	StateFrozen   ReleaseState = "frozen"   // Stable pushes held until the freeze ends
	StateCurrent  ReleaseState = "current"  // Supported release
	StateArchived ReleaseState = "archived" // End of life, no request changes
)

// Release is a distribution release and the build system tags it owns.
type Release struct {
	ID                uint         `gorm:"primaryKey;column:id" json:"id"`
	Name              string       `gorm:"size:40;uniqueIndex;not null" json:"name"`
	LongName          string       `gorm:"size:100;not null" json:"long_name"`
	Version           string       `gorm:"size:20" json:"version"`
	IDPrefix          string       `gorm:"size:40;not null;column:id_prefix" json:"id_prefix"`
	Branch            string       `gorm:"size:40" json:"branch"`
	DistTag           string       `gorm:"size:100;not null" json:"dist_tag"`
	StableTag         string       `gorm:"size:100" json:"stable_tag"`
	TestingTag        string       `gorm:"size:100" json:"testing_tag"`
	CandidateTag      string       `gorm:"size:100" json:"candidate_tag"`
	PendingSigningTag string       `gorm:"size:100" json:"pending_signing_tag"`
	PendingTestingTag string       `gorm:"size:100" json:"pending_testing_tag"`
	PendingStableTag  string       `gorm:"size:100" json:"pending_stable_tag"`
	OverrideTag       string       `gorm:"size:100" json:"override_tag"`
	State             ReleaseState `gorm:"size:20;not null;default:disabled" json:"state"`
	ComposedByBodhi   bool         `gorm:"not null;default:true" json:"composed_by_bodhi"`
	CreatedAt         time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Release) TableName() string {
	return "releases"
}

// SettingPrefix is the key under which per-release policy is looked up, e.g. "f40".
func (r *Release) SettingPrefix() string {
	return strings.ReplaceAll(strings.ToLower(r.Name), "-", "")
}

// IDPrefixKey is the policy key used for defaults shared by a release family,
// e.g. "fedora_epel" for FEDORA-EPEL.
func (r *Release) IDPrefixKey() string {
	return strings.ReplaceAll(strings.ToLower(r.IDPrefix), "-", "_")
}

func (r *Release) IsArchived() bool {
	return r.State == StateArchived
}

func (r *Release) IsEPEL() bool {
	return r.IDPrefix == "FEDORA-EPEL"
}

// Tags returns every non-empty tag name the release owns.
func (r *Release) Tags() []string {
	all := []string{
		r.DistTag, r.StableTag, r.TestingTag, r.CandidateTag,
		r.PendingSigningTag, r.PendingTestingTag, r.PendingStableTag, r.OverrideTag,
	}
	tags := make([]string, 0, len(all))
	for _, t := range all {
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
