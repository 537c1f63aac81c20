package lifecycle

import (
	"context"
	"fmt"

	"github.com/linskybing/bodhi-go/internal/domain/release"
	"github.com/linskybing/bodhi-go/internal/domain/update"
	"github.com/linskybing/bodhi-go/internal/notify"
)

// NewUpdateInput carries a submission after builds have been resolved
// against the build system.
type NewUpdateInput struct {
	Release       *release.Release
	Builds        []update.Build
	Submitter     string
	Type          update.UpdateType
	Severity      update.UpdateSeverity
	Notes         string
	Bugs          []update.Bug
	Autokarma     bool
	Autotime      bool
	StableKarma   *int
	UnstableKarma *int
	StableDays    int
	Request       update.UpdateRequest
	FromTag       string
}

// NewUpdate builds a fresh update, submits it and obsoletes what it supersedes.
// The caller persists the returned update.
func (m *Machine) NewUpdate(ctx context.Context, in NewUpdateInput) (*update.Update, []update.Caveat, error) {
	if len(in.Builds) == 0 {
		return nil, nil, update.ErrNoBuilds
	}
	if err := update.ValidateBuildTypes(in.Builds); err != nil {
		return nil, nil, update.Invalid(err.Error())
	}
	if in.Release.IsArchived() {
		return nil, nil, update.Invalid("Can't change request for an archived release")
	}

	now := m.now()
	u := &update.Update{
		Alias:         update.NewAlias(in.Release.IDPrefix, now),
		Status:        update.StatusPending,
		Type:          in.Type,
		Severity:      in.Severity,
		Notes:         in.Notes,
		Submitter:     in.Submitter,
		Autokarma:     in.Autokarma,
		Autotime:      in.Autotime,
		StableKarma:   in.StableKarma,
		UnstableKarma: in.UnstableKarma,
		StableDays:    in.StableDays,
		FromTag:       in.FromTag,
		ReleaseID:     in.Release.ID,
		Release:       *in.Release,
		Builds:        in.Builds,
		Bugs:          in.Bugs,
		DateSubmitted: now,
	}
	if u.Type == "" {
		u.Type = update.TypeBugfix
	}
	if u.Severity == "" {
		u.Severity = update.SeverityUnspecified
	}
	u.Title = u.BuildTitle()
	u.Critpath = m.isCritpath(u)

	var caveats []update.Caveat
	if mandatory := m.eval.MandatoryDaysInTesting(u); u.StableDays < mandatory {
		u.StableDays = mandatory
		caveats = append(caveats, update.Caveat{
			Name:        "stable days",
			Description: fmt.Sprintf("The number of stable days required was set to the mandatory release value of %d days", mandatory),
		})
	}
	if m.policy.TestGatingRequired {
		u.TestGatingStatus = update.GatingWaiting
	}

	if u.FromTag != "" {
		if err := m.tags.HandleSideTags(ctx, u); err != nil {
			return nil, caveats, err
		}
	}
	if u.FromTag != "" && !u.Release.ComposedByBodhi {
		u.Status = update.StatusSideTagActive
	} else {
		req := in.Request
		if req == update.RequestNone {
			req = update.RequestTesting
		}
		if err := m.SetRequest(ctx, u, req, in.Submitter); err != nil {
			return nil, caveats, err
		}
	}

	obsoleted, err := m.ObsoleteOlderUpdates(ctx, u)
	caveats = append(caveats, obsoleted...)
	if err != nil {
		return nil, caveats, err
	}
	m.publish(ctx, notify.TopicCreate, u, in.Submitter, nil)
	return u, caveats, nil
}

func (m *Machine) isCritpath(u *update.Update) bool {
	for _, pkg := range u.PackageNames() {
		if m.policy.IsCritpathPackage(pkg) {
			return true
		}
	}
	return false
}
