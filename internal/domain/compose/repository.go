package compose

// Repository defines data access interface for composes
type Repository interface {
	Create(c *Compose) error
	Get(releaseID uint, request string) (*Compose, error)
	List() ([]Compose, error)
	Update(c *Compose) error
	Delete(id uint) error
}
