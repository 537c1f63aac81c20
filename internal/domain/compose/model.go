package compose

import (
	"time"

	"gorm.io/datatypes"
)

// ComposeState tracks a repository composition run.
type ComposeState string

const (
	StateRequested    ComposeState = "requested"
	StatePending      ComposeState = "pending"
	StateInitializing ComposeState = "initializing"
	StateUpdateinfo   ComposeState = "updateinfo"
	StatePunging      ComposeState = "punging"
	StateSyncingRepo  ComposeState = "syncing_repo"
	StateNotifying    ComposeState = "notifying"
	StateSigningRepo  ComposeState = "signing_repo"
	StateCleaning     ComposeState = "cleaning"
	StateSuccess      ComposeState = "success"
	StateFailed       ComposeState = "failed"
)

// Terminal reports whether the compose has finished.
func (s ComposeState) Terminal() bool {
	return s == StateSuccess || s == StateFailed
}

// Valid reports whether s names a known state.
func (s ComposeState) Valid() bool {
	switch s {
	case StateRequested, StatePending, StateInitializing, StateUpdateinfo, StatePunging,
		StateSyncingRepo, StateNotifying, StateSigningRepo, StateCleaning, StateSuccess, StateFailed:
		return true
	}
	return false
}

// Compose is one composition run for a (release, request) pair. It owns the
// updates it has locked.
type Compose struct {
	ID           uint              `gorm:"primaryKey;column:id" json:"id"`
	ReleaseID    uint              `gorm:"not null;uniqueIndex:idx_compose_release_request;column:release_id" json:"release_id"`
	Request      string            `gorm:"size:20;not null;uniqueIndex:idx_compose_release_request" json:"request"`
	State        ComposeState      `gorm:"size:20;not null;default:requested" json:"state"`
	Checkpoints  datatypes.JSONMap `gorm:"type:jsonb" json:"checkpoints"`
	ErrorMessage string            `gorm:"type:text" json:"error_message,omitempty"`
	DateCreated  time.Time         `gorm:"column:date_created;autoCreateTime" json:"date_created"`
	StateDate    time.Time         `gorm:"column:state_date" json:"state_date"`
}

func (Compose) TableName() string {
	return "composes"
}

// Checkpoint reads a named boolean checkpoint.
func (c *Compose) Checkpoint(name string) bool {
	v, ok := c.Checkpoints[name].(bool)
	return ok && v
}

func (c *Compose) SetCheckpoint(name string, done bool) {
	if c.Checkpoints == nil {
		c.Checkpoints = datatypes.JSONMap{}
	}
	c.Checkpoints[name] = done
}
