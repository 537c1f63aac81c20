package user

import (
	"time"

	"github.com/lib/pq"
)

// User is an account that submits updates or leaves feedback.
type User struct {
	ID        uint           `gorm:"primaryKey;column:id" json:"id"`
	Name      string         `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Email     string         `gorm:"size:255" json:"email,omitempty"`
	Groups    pq.StringArray `gorm:"type:text[]" json:"groups"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// InAnyGroup reports whether the user belongs to one of groups.
func (u *User) InAnyGroup(groups []string) bool {
	for _, g := range u.Groups {
		for _, want := range groups {
			if g == want {
				return true
			}
		}
	}
	return false
}
