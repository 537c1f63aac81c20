package handlers

import (
	"github.com/linskybing/bodhi-go/internal/application"
	"github.com/linskybing/bodhi-go/internal/notify"
)

type Handlers struct {
	Update   *UpdateHandler
	Compose  *ComposeHandler
	Override *OverrideHandler
	Release  *ReleaseHandler
	User     *UserHandler
	Event    *EventHandler
}

func New(svc *application.Services, hub *notify.Hub, events EventLog) *Handlers {
	return &Handlers{
		Update:   NewUpdateHandler(svc.Update),
		Compose:  NewComposeHandler(svc.Compose),
		Override: NewOverrideHandler(svc.Override),
		Release:  NewReleaseHandler(svc.Release),
		User:     NewUserHandler(svc.User),
		Event:    NewEventHandler(hub, events),
	}
}
