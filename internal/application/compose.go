package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/linskybing/bodhi-go/internal/application/lifecycle"
	"github.com/linskybing/bodhi-go/internal/domain/compose"
	"github.com/linskybing/bodhi-go/internal/domain/update"
	"github.com/linskybing/bodhi-go/internal/notify"
	"github.com/linskybing/bodhi-go/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrComposeExists    = errors.New("compose already running for this release and request")
	ErrComposeNotFound  = errors.New("compose not found")
	ErrNothingToCompose = errors.New("no updates to compose")
)

type ComposeService struct {
	Repos *repository.Repos
	flow  workflow
	now   func() time.Time
}

func NewComposeService(repos *repository.Repos, machine *lifecycle.Machine, pub notify.Publisher) *ComposeService {
	return &ComposeService{
		Repos: repos,
		flow:  workflow{repos: repos, machine: machine, pub: pub},
		now:   time.Now,
	}
}

func composeEvent(topic string, rel string, c *compose.Compose, aliases []string, at time.Time) notify.Event {
	body := map[string]any{
		"release": rel,
		"request": c.Request,
		"updates": aliases,
	}
	if c.State.Terminal() {
		body["success"] = c.State == compose.StateSuccess
	}
	return notify.Event{Topic: topic, Agent: "bodhi", Body: body, At: at}
}

func aliasesOf(updates []update.Update) []string {
	out := make([]string, 0, len(updates))
	for _, u := range updates {
		out = append(out, u.Alias)
	}
	return out
}

func (s *ComposeService) List() ([]compose.View, error) {
	composes, err := s.Repos.Compose.List()
	if err != nil {
		return nil, err
	}
	views := make([]compose.View, 0, len(composes))
	for _, c := range composes {
		updates, err := s.Repos.Update.FindByComposeID(c.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, compose.View{Compose: c, Updates: aliasesOf(updates)})
	}
	return views, nil
}

func (s *ComposeService) Get(releaseName, request string) (*compose.View, error) {
	rel, err := getRelease(s.Repos, releaseName)
	if err != nil {
		return nil, err
	}
	c, err := s.Repos.Compose.Get(rel.ID, request)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrComposeNotFound
	}
	if err != nil {
		return nil, err
	}
	updates, err := s.Repos.Update.FindByComposeID(c.ID)
	if err != nil {
		return nil, err
	}
	return &compose.View{Compose: *c, Updates: aliasesOf(updates)}, nil
}

// Start creates a compose for every unlocked update of the release with the
// given request and locks those updates to it.
func (s *ComposeService) Start(ctx context.Context, input compose.StartComposeDTO) (*compose.View, error) {
	req, err := update.ParseRequest(input.Request)
	if err != nil || (req != update.RequestTesting && req != update.RequestStable) {
		return nil, update.Invalid(fmt.Sprintf("Cannot compose updates with a %q request", input.Request))
	}

	var view *compose.View
	err = s.flow.run(ctx, func(tx *repository.Repos, _ *lifecycle.Machine, events notify.Publisher) error {
		rel, err := getRelease(tx, input.Release)
		if err != nil {
			return err
		}
		if _, err := tx.Compose.Get(rel.ID, string(req)); err == nil {
			return ErrComposeExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		candidates, err := tx.Update.FindByReleaseAndRequest(rel.ID, req)
		if err != nil {
			return err
		}
		var updates []update.Update
		for _, u := range candidates {
			if !u.Locked {
				updates = append(updates, u)
			}
		}
		if len(updates) == 0 {
			return ErrNothingToCompose
		}

		now := s.now()
		c := &compose.Compose{
			ReleaseID: rel.ID,
			Request:   string(req),
			State:     compose.StateRequested,
			StateDate: now,
		}
		if err := tx.Compose.Create(c); err != nil {
			return fmt.Errorf("create compose: %w", err)
		}
		for i := range updates {
			lifecycle.Lock(&updates[i], c.ID)
			if err := tx.Update.Save(&updates[i]); err != nil {
				return fmt.Errorf("lock %s: %w", updates[i].Alias, err)
			}
		}
		aliases := aliasesOf(updates)
		view = &compose.View{Compose: *c, Updates: aliases}
		return events.Publish(ctx, composeEvent(notify.TopicComposeStart, rel.Name, c, aliases, now))
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[compose] started %s/%s with %d updates", input.Release, req, len(view.Updates))
	return view, nil
}

// UpdateState records progress. A success marks every update pushed and
// removes the compose; a failure keeps the compose and its locks so it can
// be resumed or aborted.
func (s *ComposeService) UpdateState(ctx context.Context, releaseName, request string, input compose.StateDTO) (*compose.View, error) {
	if !input.State.Valid() {
		return nil, update.Invalid(fmt.Sprintf("Unknown compose state %q", input.State))
	}

	var view *compose.View
	err := s.flow.run(ctx, func(tx *repository.Repos, m *lifecycle.Machine, events notify.Publisher) error {
		rel, err := getRelease(tx, releaseName)
		if err != nil {
			return err
		}
		c, err := tx.Compose.Get(rel.ID, request)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrComposeNotFound
		}
		if err != nil {
			return err
		}

		now := s.now()
		c.State = input.State
		c.StateDate = now
		for name, done := range input.Checkpoints {
			c.SetCheckpoint(name, done)
		}
		if input.ErrorMessage != "" {
			c.ErrorMessage = input.ErrorMessage
		}

		updates, err := tx.Update.FindByComposeID(c.ID)
		if err != nil {
			return err
		}
		aliases := aliasesOf(updates)
		view = &compose.View{Compose: *c, Updates: aliases}

		if c.State != compose.StateSuccess {
			if err := tx.Compose.Update(c); err != nil {
				return err
			}
			if c.State == compose.StateFailed {
				return events.Publish(ctx, composeEvent(notify.TopicComposeComplete, rel.Name, c, aliases, now))
			}
			return nil
		}

		for i := range updates {
			if err := m.MarkPushed(ctx, &updates[i]); err != nil {
				return fmt.Errorf("mark %s pushed: %w", updates[i].Alias, err)
			}
			if err := tx.Update.Save(&updates[i]); err != nil {
				return err
			}
		}
		if err := tx.Compose.Delete(c.ID); err != nil {
			return err
		}
		return events.Publish(ctx, composeEvent(notify.TopicComposeComplete, rel.Name, c, aliases, now))
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// Abort unlocks the updates held by a compose and deletes it.
func (s *ComposeService) Abort(ctx context.Context, releaseName, request string) error {
	return s.flow.run(ctx, func(tx *repository.Repos, _ *lifecycle.Machine, _ notify.Publisher) error {
		rel, err := getRelease(tx, releaseName)
		if err != nil {
			return err
		}
		c, err := tx.Compose.Get(rel.ID, request)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrComposeNotFound
		}
		if err != nil {
			return err
		}
		updates, err := tx.Update.FindByComposeID(c.ID)
		if err != nil {
			return err
		}
		for i := range updates {
			lifecycle.Unlock(&updates[i])
			if err := tx.Update.Save(&updates[i]); err != nil {
				return err
			}
		}
		log.Printf("[compose] aborted %s/%s, unlocked %d updates", releaseName, request, len(updates))
		return tx.Compose.Delete(c.ID)
	})
}
