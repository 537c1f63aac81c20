package override

import "time"

// BuildrootOverride makes a build available in the buildroot before it is stable.
type BuildrootOverride struct {
	ID             uint       `gorm:"primaryKey;column:id" json:"id"`
	BuildNVR       string     `gorm:"size:255;uniqueIndex;not null;column:build_nvr" json:"nvr"`
	ReleaseID      uint       `gorm:"index;not null;column:release_id" json:"release_id"`
	Submitter      string     `gorm:"size:64;not null" json:"submitter"`
	Notes          string     `gorm:"type:text" json:"notes"`
	SubmissionDate time.Time  `gorm:"not null" json:"submission_date"`
	ExpirationDate time.Time  `gorm:"not null;index" json:"expiration_date"`
	ExpiredDate    *time.Time `json:"expired_date"`
}

func (BuildrootOverride) TableName() string {
	return "buildroot_overrides"
}

func (o *BuildrootOverride) Expired() bool {
	return o.ExpiredDate != nil
}

// CreateOverrideDTO is the payload for a new override.
type CreateOverrideDTO struct {
	NVR            string    `json:"nvr" binding:"required" example:"bash-5.2.26-1.fc40"`
	Notes          string    `json:"notes"`
	ExpirationDate time.Time `json:"expiration_date" binding:"required"`
}
