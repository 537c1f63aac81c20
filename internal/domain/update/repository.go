package update

// Repository defines data access interface for updates
type Repository interface {
	Create(u *Update) error
	// Save writes the update's columns and inserts any new comments, builds and bugs.
	Save(u *Update) error
	GetByAlias(alias string) (*Update, error)
	GetByAliasForUpdate(alias string) (*Update, error) // Row-locked for the current transaction
	GetByID(id uint) (*Update, error)
	FindByStatusAndRequest(status UpdateStatus, request UpdateRequest) ([]Update, error)
	FindByRequest(request UpdateRequest) ([]Update, error)
	FindByReleaseAndRequest(releaseID uint, request UpdateRequest) ([]Update, error)
	FindByComposeID(composeID uint) ([]Update, error)
	// FindObsoletionCandidates returns pending/testing updates of the release
	// that contain a build of one of the packages, excluding excludeID.
	FindObsoletionCandidates(releaseID uint, packages []string, excludeID uint) ([]Update, error)
	GetBuildByNVR(nvr string) (*Build, error)
	DetachBuild(b *Build) error
	DeleteBuild(b *Build) error
	GetOrCreateBugs(ids []int) ([]Bug, error)
	ReplaceBugs(u *Update, bugs []Bug) error
}
