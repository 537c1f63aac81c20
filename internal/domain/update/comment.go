package update

import (
	"strings"
	"time"

	"github.com/linskybing/bodhi-go/internal/domain/user"
)

// SystemUser authors every comment the service writes itself.
const SystemUser = "bodhi"

// Comment is one piece of feedback on an update. Comments are append-only.
type Comment struct {
	ID               uint            `gorm:"primaryKey;column:id" json:"id"`
	UpdateID         uint            `gorm:"index;not null;column:update_id" json:"update_id"`
	Author           string          `gorm:"size:64;index;not null" json:"author"`
	User             *user.User      `gorm:"foreignKey:Author;references:Name" json:"-"`
	Text             string          `gorm:"type:text" json:"text"`
	Karma            int             `gorm:"not null;default:0" json:"karma"`
	KarmaCritpath    int             `gorm:"not null;default:0" json:"karma_critpath"`
	Anonymous        bool            `gorm:"not null;default:false" json:"anonymous"`
	Timestamp        time.Time       `gorm:"not null;index" json:"timestamp"`
	BugFeedback      []BugKarma      `gorm:"foreignKey:CommentID" json:"bug_feedback,omitempty"`
	TestCaseFeedback []TestCaseKarma `gorm:"foreignKey:CommentID" json:"testcase_feedback,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}

// IsKarmaReset reports whether the comment invalidates all karma before it.
func (c *Comment) IsKarmaReset() bool {
	if c.Author != SystemUser {
		return false
	}
	return strings.Contains(c.Text, "New build") || strings.Contains(c.Text, "Removed build")
}

// Groups returns the author's groups when the user row is loaded.
func (c *Comment) Groups() []string {
	if c.User == nil {
		return nil
	}
	return c.User.Groups
}

// BugKarma is feedback on whether a specific bug is fixed.
type BugKarma struct {
	ID        uint `gorm:"primaryKey;column:id" json:"-"`
	CommentID uint `gorm:"index;not null;column:comment_id" json:"-"`
	BugID     int  `gorm:"not null;column:bug_id" json:"bug_id"`
	Karma     int  `gorm:"not null;default:0" json:"karma"`
}

func (BugKarma) TableName() string {
	return "comment_bug_feedback"
}

// TestCaseKarma is feedback on a named test case.
type TestCaseKarma struct {
	ID        uint   `gorm:"primaryKey;column:id" json:"-"`
	CommentID uint   `gorm:"index;not null;column:comment_id" json:"-"`
	TestCase  string `gorm:"size:255;not null;column:testcase" json:"testcase"`
	Karma     int    `gorm:"not null;default:0" json:"karma"`
}

func (TestCaseKarma) TableName() string {
	return "comment_testcase_feedback"
}

// Bug is a bug tracker entry. Bugs are shared between updates.
type Bug struct {
	BugID    int    `gorm:"primaryKey;autoIncrement:false;column:bug_id" json:"bug_id"`
	Title    string `gorm:"size:255" json:"title,omitempty"`
	Security bool   `gorm:"not null;default:false" json:"security"`
}

func (Bug) TableName() string {
	return "bugs"
}
