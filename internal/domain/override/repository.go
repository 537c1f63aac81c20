package override

import "time"

// Repository defines data access interface for buildroot overrides
type Repository interface {
	Create(o *BuildrootOverride) error
	GetByNVR(nvr string) (*BuildrootOverride, error)
	FindExpiring(now time.Time) ([]BuildrootOverride, error) // Active overrides past their expiration date
	Update(o *BuildrootOverride) error
}
