package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/linskybing/bodhi-go/internal/application/lifecycle"
	"github.com/linskybing/bodhi-go/internal/buildsys"
	"github.com/linskybing/bodhi-go/internal/domain/override"
	"github.com/linskybing/bodhi-go/internal/domain/release"
	"github.com/linskybing/bodhi-go/internal/domain/update"
	"github.com/linskybing/bodhi-go/internal/notify"
	"github.com/linskybing/bodhi-go/internal/repository"
	"gorm.io/gorm"
)

const maxOverrideDays = 31

var ErrOverrideNotFound = errors.New("buildroot override not found")

type OverrideService struct {
	Repos *repository.Repos
	flow  workflow
	now   func() time.Time
}

func NewOverrideService(repos *repository.Repos, machine *lifecycle.Machine, pub notify.Publisher) *OverrideService {
	return &OverrideService{
		Repos: repos,
		flow:  workflow{repos: repos, machine: machine, pub: pub},
		now:   time.Now,
	}
}

func (s *OverrideService) Get(nvr string) (*override.BuildrootOverride, error) {
	o, err := s.Repos.Override.GetByNVR(nvr)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOverrideNotFound
	}
	return o, err
}

// releaseForTags finds the release owning one of the given build tags.
func releaseForTags(releases []release.Release, tags []buildsys.Tag) *release.Release {
	for i := range releases {
		for _, owned := range releases[i].Tags() {
			if buildsys.HasTag(tags, owned) {
				return &releases[i]
			}
		}
	}
	return nil
}

func overrideEvent(topic string, o *override.BuildrootOverride, agent string, at time.Time) notify.Event {
	return notify.Event{
		Topic: topic,
		Agent: agent,
		Body: map[string]any{
			"override": map[string]any{
				"nvr":             o.BuildNVR,
				"submitter":       o.Submitter,
				"expiration_date": o.ExpirationDate,
			},
		},
		At: at,
	}
}

// Create adds a buildroot override, or refreshes and re-activates an
// existing one for the same build.
func (s *OverrideService) Create(ctx context.Context, input override.CreateOverrideDTO, actor Actor) (*override.BuildrootOverride, error) {
	now := s.now()
	if !input.ExpirationDate.After(now) {
		return nil, update.Invalid("Expiration date must be in the future")
	}
	if input.ExpirationDate.After(now.AddDate(0, 0, maxOverrideDays)) {
		return nil, update.Invalid(fmt.Sprintf("Expiration date may not be longer than %d days from now", maxOverrideDays))
	}

	var result *override.BuildrootOverride
	err := s.flow.run(ctx, func(tx *repository.Repos, m *lifecycle.Machine, events notify.Publisher) error {
		client := m.Tags().Client()
		if _, err := client.GetBuild(ctx, input.NVR); err != nil {
			if errors.Is(err, buildsys.ErrBuildNotFound) {
				return update.Invalid(fmt.Sprintf("Build does not exist: %s", input.NVR))
			}
			return err
		}
		tags, err := client.ListTags(ctx, input.NVR)
		if err != nil {
			return err
		}
		releases, err := tx.Release.List()
		if err != nil {
			return err
		}
		rel := releaseForTags(releases, tags)
		if rel == nil {
			return update.Invalid(fmt.Sprintf("Cannot find release associated with build: %s", input.NVR))
		}
		if rel.IsArchived() {
			return update.Invalid(fmt.Sprintf("Cannot create a buildroot override for an archived release: %s", rel.Name))
		}

		o, err := tx.Override.GetByNVR(input.NVR)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			o = &override.BuildrootOverride{
				BuildNVR:       input.NVR,
				ReleaseID:      rel.ID,
				Submitter:      actor.Name,
				Notes:          input.Notes,
				SubmissionDate: now,
				ExpirationDate: input.ExpirationDate,
			}
			if err := tx.Override.Create(o); err != nil {
				return fmt.Errorf("create override: %w", err)
			}
		case err != nil:
			return err
		default:
			o.Notes = input.Notes
			o.ExpirationDate = input.ExpirationDate
			o.Submitter = actor.Name
			o.ExpiredDate = nil
			if err := tx.Override.Update(o); err != nil {
				return fmt.Errorf("update override: %w", err)
			}
		}

		if err := m.Tags().TagBuild(ctx, rel.OverrideTag, input.NVR); err != nil {
			return err
		}
		result = o
		return events.Publish(ctx, overrideEvent(notify.TopicOverrideTag, o, actor.Name, now))
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[override] %s submitted override for %s", actor.Name, input.NVR)
	return result, nil
}

// expireOverrideByNVR untags an active override from the buildroot. Missing
// or already expired overrides are ignored.
func expireOverrideByNVR(ctx context.Context, tx *repository.Repos, m *lifecycle.Machine, events notify.Publisher, nvr string, now time.Time) error {
	o, err := tx.Override.GetByNVR(nvr)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if o.Expired() {
		return nil
	}
	rel, err := tx.Release.GetByID(o.ReleaseID)
	if err != nil {
		return fmt.Errorf("release of override %s: %w", nvr, err)
	}
	if err := m.Tags().UntagBuild(ctx, rel.OverrideTag, nvr); err != nil {
		return err
	}
	o.ExpiredDate = &now
	if err := tx.Override.Update(o); err != nil {
		return fmt.Errorf("expire override: %w", err)
	}
	return events.Publish(ctx, overrideEvent(notify.TopicOverrideUntag, o, "bodhi", now))
}

func (s *OverrideService) Expire(ctx context.Context, nvr string) error {
	if _, err := s.Get(nvr); err != nil {
		return err
	}
	return s.flow.run(ctx, func(tx *repository.Repos, m *lifecycle.Machine, events notify.Publisher) error {
		return expireOverrideByNVR(ctx, tx, m, events, nvr, s.now())
	})
}

// ExpireDue expires every active override past its expiration date.
func (s *OverrideService) ExpireDue(ctx context.Context) error {
	due, err := s.Repos.Override.FindExpiring(s.now())
	if err != nil {
		return err
	}
	for i := range due {
		nvr := due[i].BuildNVR
		err := s.flow.run(ctx, func(tx *repository.Repos, m *lifecycle.Machine, events notify.Publisher) error {
			return expireOverrideByNVR(ctx, tx, m, events, nvr, s.now())
		})
		if err != nil {
			log.Printf("[override] expire %s: %v", nvr, err)
			continue
		}
		log.Printf("[override] expired %s", nvr)
	}
	return nil
}
