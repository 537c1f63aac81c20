package user

// Repository defines data access interface for users
type Repository interface {
	GetByName(name string) (*User, error)
	// EnsureUser returns the named user, creating it when missing. Groups are
	// replaced when non-nil so token claims stay authoritative.
	EnsureUser(name string, groups []string) (*User, error)
}
