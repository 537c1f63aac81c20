package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/linskybing/bodhi-go/internal/application/lifecycle"
	"github.com/linskybing/bodhi-go/internal/buildsys"
	"github.com/linskybing/bodhi-go/internal/config"
	"github.com/linskybing/bodhi-go/internal/domain/release"
	"github.com/linskybing/bodhi-go/internal/domain/update"
	"github.com/linskybing/bodhi-go/internal/notify"
	"github.com/linskybing/bodhi-go/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrReleaseNotFound = errors.New("release not found")
	ErrForbidden       = errors.New("only the submitter or an admin may change this update")
)

// Actor is the authenticated caller of a service operation.
type Actor struct {
	Name   string
	Groups []string
}

// authorize allows the submitter and members of the admin groups.
func authorize(policy *config.Policy, u *update.Update, actor Actor) error {
	if u.Submitter == actor.Name {
		return nil
	}
	for _, g := range actor.Groups {
		for _, admin := range policy.AdminGroups {
			if g == admin {
				return nil
			}
		}
	}
	return ErrForbidden
}

type UpdateService struct {
	Repos *repository.Repos
	flow  workflow
	now   func() time.Time
}

func NewUpdateService(repos *repository.Repos, machine *lifecycle.Machine, pub notify.Publisher) *UpdateService {
	return &UpdateService{
		Repos: repos,
		flow:  workflow{repos: repos, machine: machine, pub: pub},
		now:   time.Now,
	}
}

func (s *UpdateService) Get(alias string) (update.UpdateView, error) {
	u, err := s.Repos.Update.GetByAlias(alias)
	if err != nil {
		return update.UpdateView{}, err
	}
	return s.flow.machine.View(u), nil
}

func getRelease(repos *repository.Repos, name string) (*release.Release, error) {
	rel, err := repos.Release.GetByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrReleaseNotFound, name)
	}
	return rel, err
}

// resolveBuild looks nvr up in the build system and checks that it is tagged
// where an update of rel may pick it up.
func resolveBuild(ctx context.Context, tx *repository.Repos, client buildsys.Client, rel *release.Release, fromTag, nvr string) (update.Build, error) {
	if existing, err := tx.Update.GetBuildByNVR(nvr); err == nil {
		if existing.UpdateID != nil {
			return update.Build{}, update.Invalid(fmt.Sprintf("Update for %s already exists", nvr))
		}
		return *existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return update.Build{}, err
	}

	info, err := client.GetBuild(ctx, nvr)
	if errors.Is(err, buildsys.ErrBuildNotFound) {
		return update.Build{}, update.Invalid(fmt.Sprintf("Build does not exist: %s", nvr))
	}
	if err != nil {
		return update.Build{}, fmt.Errorf("get build %s: %w", nvr, err)
	}
	tags, err := client.ListTags(ctx, nvr)
	if err != nil {
		return update.Build{}, fmt.Errorf("list tags of %s: %w", nvr, err)
	}
	allowed := []string{rel.CandidateTag, rel.TestingTag}
	if fromTag != "" {
		allowed = []string{fromTag}
	}
	ok := false
	for _, t := range allowed {
		if buildsys.HasTag(tags, t) {
			ok = true
			break
		}
	}
	if !ok {
		return update.Build{}, update.Invalid(fmt.Sprintf("Invalid tag: %s not tagged with any of the following tags %v", nvr, allowed))
	}

	b, err := update.NewBuild(nvr, update.ContentTypeFromExtra(info.Extra))
	if err != nil {
		return update.Build{}, update.Invalid(err.Error())
	}
	if o, err := tx.Override.GetByNVR(nvr); err == nil && !o.Expired() {
		b.OverrideID = &o.ID
	}
	return b, nil
}

func (s *UpdateService) Create(ctx context.Context, input update.CreateUpdateDTO, actor Actor) (*update.Result, error) {
	var req update.UpdateRequest
	if input.Request != "" {
		r, err := update.ParseRequest(input.Request)
		if err != nil {
			return nil, update.Invalid(err.Error())
		}
		req = r
	}

	var result *update.Result
	err := s.flow.run(ctx, func(tx *repository.Repos, m *lifecycle.Machine, _ notify.Publisher) error {
		if _, err := tx.User.EnsureUser(actor.Name, actor.Groups); err != nil {
			return err
		}
		rel, err := getRelease(tx, input.Release)
		if err != nil {
			return err
		}

		builds := make([]update.Build, 0, len(input.Builds))
		for _, nvr := range input.Builds {
			b, err := resolveBuild(ctx, tx, m.Tags().Client(), rel, input.FromTag, nvr)
			if err != nil {
				return err
			}
			builds = append(builds, b)
		}
		bugs, err := tx.Update.GetOrCreateBugs(input.Bugs)
		if err != nil {
			return err
		}

		in := lifecycle.NewUpdateInput{
			Release:       rel,
			Builds:        builds,
			Submitter:     actor.Name,
			Type:          input.Type,
			Severity:      input.Severity,
			Notes:         input.Notes,
			Bugs:          bugs,
			Autokarma:     true,
			StableKarma:   input.StableKarma,
			UnstableKarma: input.UnstableKarma,
			Request:       req,
			FromTag:       input.FromTag,
		}
		if input.Autokarma != nil {
			in.Autokarma = *input.Autokarma
		}
		if input.Autotime != nil {
			in.Autotime = *input.Autotime
		}
		if input.StableDays != nil {
			in.StableDays = *input.StableDays
		}

		u, caveats, err := m.NewUpdate(ctx, in)
		if err != nil {
			return err
		}
		if err := tx.Update.Create(u); err != nil {
			return fmt.Errorf("create update: %w", err)
		}
		result = &update.Result{Update: u, Caveats: caveats, At: s.now()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Printf("[update] %s created %s", actor.Name, result.Update.Alias)
	return result, nil
}

func (s *UpdateService) Edit(ctx context.Context, alias string, input update.EditUpdateDTO, actor Actor) (*update.Result, error) {
	var result *update.Result
	err := s.flow.run(ctx, func(tx *repository.Repos, m *lifecycle.Machine, events notify.Publisher) error {
		u, err := tx.Update.GetByAliasForUpdate(alias)
		if err != nil {
			return err
		}
		if err := authorize(m.Policy(), u, actor); err != nil {
			return err
		}

		builds := make([]update.Build, 0, len(input.Builds))
		for _, nvr := range input.Builds {
			if b := u.BuildByNVR(nvr); b != nil {
				builds = append(builds, *b)
				continue
			}
			b, err := resolveBuild(ctx, tx, m.Tags().Client(), &u.Release, u.FromTag, nvr)
			if err != nil {
				return err
			}
			builds = append(builds, b)
		}

		in := lifecycle.EditInput{
			Builds:        builds,
			Type:          input.Type,
			Severity:      input.Severity,
			Notes:         input.Notes,
			Autokarma:     input.Autokarma,
			Autotime:      input.Autotime,
			StableKarma:   input.StableKarma,
			UnstableKarma: input.UnstableKarma,
			StableDays:    input.StableDays,
		}
		if input.Bugs != nil {
			bugs, err := tx.Update.GetOrCreateBugs(input.Bugs)
			if err != nil {
				return err
			}
			in.Bugs = bugs
		}

		res, err := m.Edit(ctx, u, in, actor.Name)
		if err != nil {
			return err
		}
		for i := range res.Removed {
			b := &res.Removed[i]
			if b.OverrideID != nil {
				if err := expireOverrideByNVR(ctx, tx, m, events, b.NVR, s.now()); err != nil {
					return err
				}
				if err := tx.Update.DetachBuild(b); err != nil {
					return err
				}
				continue
			}
			if err := tx.Update.DeleteBuild(b); err != nil {
				return err
			}
		}
		if in.Bugs != nil {
			if err := tx.Update.ReplaceBugs(u, in.Bugs); err != nil {
				return err
			}
		}
		if err := tx.Update.Save(u); err != nil {
			return fmt.Errorf("save update: %w", err)
		}
		result = &update.Result{Update: u, Caveats: res.Caveats, At: s.now()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SetRequest changes the request of the update, checking automated test
// requirements first for stable pushes.
func (s *UpdateService) SetRequest(ctx context.Context, alias string, request update.UpdateRequest, actor Actor) (*update.Result, error) {
	var result *update.Result
	err := s.flow.run(ctx, func(tx *repository.Repos, m *lifecycle.Machine, _ notify.Publisher) error {
		u, err := tx.Update.GetByAliasForUpdate(alias)
		if err != nil {
			return err
		}
		if err := authorize(m.Policy(), u, actor); err != nil {
			return err
		}
		if request == update.RequestStable {
			if ok, reason := m.Evaluator().CheckRequirements(u); !ok {
				return update.Invalid(reason)
			}
		}
		if err := m.SetRequest(ctx, u, request, actor.Name); err != nil {
			return err
		}
		if err := tx.Update.Save(u); err != nil {
			return fmt.Errorf("save update: %w", err)
		}
		result = &update.Result{Update: u, At: s.now()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *UpdateService) Comment(ctx context.Context, alias string, input update.CommentDTO, actor Actor) (*update.Comment, []update.Caveat, error) {
	var (
		comment *update.Comment
		caveats []update.Caveat
	)
	err := s.flow.run(ctx, func(tx *repository.Repos, m *lifecycle.Machine, _ notify.Publisher) error {
		u, err := tx.Update.GetByAliasForUpdate(alias)
		if err != nil {
			return err
		}
		in := lifecycle.CommentInput{
			Author:        actor.Name,
			Text:          input.Text,
			Karma:         input.Karma,
			KarmaCritpath: input.KarmaCritpath,
			Anonymous:     input.Anonymous,
		}
		if !input.Anonymous {
			usr, err := tx.User.EnsureUser(actor.Name, actor.Groups)
			if err != nil {
				return err
			}
			in.User = usr
		}
		for _, fb := range input.BugFeedback {
			in.BugFeedback = append(in.BugFeedback, update.BugKarma{BugID: fb.BugID, Karma: fb.Karma})
		}
		for _, fb := range input.TestCaseFeedback {
			in.TestCaseFeedback = append(in.TestCaseFeedback, update.TestCaseKarma{TestCase: fb.TestCase, Karma: fb.Karma})
		}

		c, cv, err := m.Comment(ctx, u, in)
		if err != nil {
			return err
		}
		if err := tx.Update.Save(u); err != nil {
			return fmt.Errorf("save update: %w", err)
		}
		comment, caveats = c, cv
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return comment, caveats, nil
}

// ApproveTestingUpdates runs the approval check on every testing update
// without a request, one transaction per update.
func (s *UpdateService) ApproveTestingUpdates(ctx context.Context) error {
	updates, err := s.Repos.Update.FindByStatusAndRequest(update.StatusTesting, update.RequestNone)
	if err != nil {
		return err
	}
	for i := range updates {
		alias := updates[i].Alias
		err := s.flow.run(ctx, func(tx *repository.Repos, m *lifecycle.Machine, _ notify.Publisher) error {
			u, err := tx.Update.GetByAliasForUpdate(alias)
			if err != nil {
				return err
			}
			if u.Locked || u.Status != update.StatusTesting {
				return nil
			}
			if err := m.ApproveTesting(ctx, u); err != nil {
				return err
			}
			return tx.Update.Save(u)
		})
		if err != nil {
			log.Printf("[update] approve testing %s: %v", alias, err)
		}
	}
	return nil
}

// DequeueBatchedUpdates moves every batched update to a stable request.
func (s *UpdateService) DequeueBatchedUpdates(ctx context.Context) error {
	updates, err := s.Repos.Update.FindByRequest(update.RequestBatched)
	if err != nil {
		return err
	}
	for i := range updates {
		alias := updates[i].Alias
		err := s.flow.run(ctx, func(tx *repository.Repos, m *lifecycle.Machine, _ notify.Publisher) error {
			u, err := tx.Update.GetByAliasForUpdate(alias)
			if err != nil {
				return err
			}
			if err := m.DequeueBatched(ctx, u); err != nil {
				return err
			}
			return tx.Update.Save(u)
		})
		if err != nil {
			log.Printf("[update] dequeue batched %s: %v", alias, err)
		}
	}
	return nil
}
