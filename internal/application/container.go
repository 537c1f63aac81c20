package application

import (
	"github.com/linskybing/bodhi-go/internal/application/lifecycle"
	"github.com/linskybing/bodhi-go/internal/notify"
	"github.com/linskybing/bodhi-go/internal/repository"
)

type Services struct {
	Update   *UpdateService
	Compose  *ComposeService
	Override *OverrideService
	Release  *ReleaseService
	User     *UserService
}

// New wires the services. machine is the template every transaction binds
// its own store and event buffer to.
func New(repos *repository.Repos, machine *lifecycle.Machine, pub notify.Publisher) *Services {
	return &Services{
		Update:   NewUpdateService(repos, machine, pub),
		Compose:  NewComposeService(repos, machine, pub),
		Override: NewOverrideService(repos, machine, pub),
		Release:  NewReleaseService(repos),
		User:     NewUserService(repos),
	}
}
