package update

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/bodhi-go/internal/domain/release"
)

// Update is a set of builds released together through the testing workflow.
type Update struct {
	ID               uint             `gorm:"primaryKey;column:id" json:"id"`
	Alias            string           `gorm:"size:64;uniqueIndex;not null" json:"alias"`
	Title            string           `gorm:"type:text" json:"title"`
	Status           UpdateStatus     `gorm:"size:20;index;not null;default:pending" json:"status"`
	Request          UpdateRequest    `gorm:"size:20;index" json:"request"`
	Type             UpdateType       `gorm:"size:20;not null;default:bugfix" json:"type"`
	Severity         UpdateSeverity   `gorm:"size:20;not null;default:unspecified" json:"severity"`
	Notes            string           `gorm:"type:text" json:"notes"`
	Submitter        string           `gorm:"size:64;index;not null" json:"user"`
	Autokarma        bool             `gorm:"not null;default:true" json:"autokarma"`
	Autotime         bool             `gorm:"not null;default:false" json:"autotime"`
	StableKarma      *int             `json:"stable_karma"`
	UnstableKarma    *int             `json:"unstable_karma"`
	StableDays       int              `gorm:"not null;default:0" json:"stable_days"`
	Critpath         bool             `gorm:"not null;default:false" json:"critpath"`
	Locked           bool             `gorm:"not null;default:false;index" json:"locked"`
	ComposeID        *uint            `gorm:"index;column:compose_id" json:"compose_id,omitempty"`
	Pushed           bool             `gorm:"not null;default:false" json:"pushed"`
	FromTag          string           `gorm:"size:255" json:"from_tag,omitempty"`
	TestGatingStatus TestGatingStatus `gorm:"size:20" json:"test_gating_status"`
	ReleaseID        uint             `gorm:"index;not null;column:release_id" json:"release_id"`
	Release          release.Release  `gorm:"foreignKey:ReleaseID" json:"release"`
	Builds           []Build          `gorm:"foreignKey:UpdateID" json:"builds"`
	Comments         []Comment        `gorm:"foreignKey:UpdateID" json:"comments"`
	Bugs             []Bug            `gorm:"many2many:update_bugs;joinForeignKey:UpdateID;joinReferences:BugID" json:"bugs"`
	DateSubmitted    time.Time        `gorm:"not null" json:"date_submitted"`
	DateTesting      *time.Time       `json:"date_testing"`
	DateApproved     *time.Time       `json:"date_approved"`
	DateStable       *time.Time       `json:"date_stable"`
	DatePushed       *time.Time       `json:"date_pushed"`
	DateModified     *time.Time       `json:"date_modified"`
}

func (Update) TableName() string {
	return "updates"
}

// NewAlias returns a fresh public identifier such as FEDORA-2024-1a2b3c4d5e.
func NewAlias(prefix string, now time.Time) string {
	sum := sha1.Sum([]byte(uuid.NewString()))
	return fmt.Sprintf("%s-%d-%s", prefix, now.Year(), hex.EncodeToString(sum[:])[:10])
}

// Karma is the net composite karma since the last reset.
func (u *Update) Karma() int {
	p, n := CompositeKarma(u.Comments)
	return p + n
}

func (u *Update) CompositeKarma() (int, int) {
	return CompositeKarma(u.Comments)
}

func (u *Update) CommentsSinceKarmaReset() []Comment {
	return CommentsSinceKarmaReset(u.Comments)
}

func (u *Update) NVRs() []string {
	nvrs := make([]string, 0, len(u.Builds))
	for _, b := range u.Builds {
		nvrs = append(nvrs, b.NVR)
	}
	return nvrs
}

// BuildTitle derives the title from the sorted build NVRs.
func (u *Update) BuildTitle() string {
	nvrs := u.NVRs()
	sort.Strings(nvrs)
	return strings.Join(nvrs, " ")
}

// PackageNames returns the distinct package names of the update's builds.
func (u *Update) PackageNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, b := range u.Builds {
		if !seen[b.Package] {
			seen[b.Package] = true
			names = append(names, b.Package)
		}
	}
	return names
}

func (u *Update) HasPackage(name string) bool {
	for _, b := range u.Builds {
		if b.Package == name {
			return true
		}
	}
	return false
}

func (u *Update) ContentType() ContentType {
	if len(u.Builds) == 0 {
		return ""
	}
	return u.Builds[0].Type
}

func (u *Update) BuildByNVR(nvr string) *Build {
	for i := range u.Builds {
		if u.Builds[i].NVR == nvr {
			return &u.Builds[i]
		}
	}
	return nil
}

func (u *Update) TestGatingPassed() bool {
	return u.TestGatingStatus.Passed()
}

func (u *Update) SideTagLocked() bool {
	return u.Status == StatusSideTagActive && u.Request != RequestNone
}

func (u *Update) StableKarmaValue() int {
	if u.StableKarma == nil {
		return 0
	}
	return *u.StableKarma
}

func (u *Update) UnstableKarmaValue() int {
	if u.UnstableKarma == nil {
		return 0
	}
	return *u.UnstableKarma
}

// AddComment appends a comment stamped with now.
func (u *Update) AddComment(c Comment, now time.Time) *Comment {
	c.UpdateID = u.ID
	if c.Timestamp.IsZero() {
		c.Timestamp = now
	}
	u.Comments = append(u.Comments, c)
	return &u.Comments[len(u.Comments)-1]
}

// AddBugs appends bugs not already attached.
func (u *Update) AddBugs(bugs []Bug) {
	have := make(map[int]bool, len(u.Bugs))
	for _, b := range u.Bugs {
		have[b.BugID] = true
	}
	for _, b := range bugs {
		if !have[b.BugID] {
			have[b.BugID] = true
			u.Bugs = append(u.Bugs, b)
		}
	}
}

// URL is the public link to the update below base.
func (u *Update) URL(base string) string {
	return strings.TrimRight(base, "/") + "/updates/" + u.Alias
}
