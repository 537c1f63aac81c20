package release

// Repository defines data access interface for releases
type Repository interface {
	Create(r *Release) error
	GetByID(id uint) (*Release, error)
	GetByName(name string) (*Release, error)
	List() ([]Release, error)
	Update(r *Release) error
	KnownTags() (map[string]bool, error) // Every tag owned by any release
}
