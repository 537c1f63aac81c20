package lifecycle

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/linskybing/bodhi-go/internal/domain/update"
	"github.com/linskybing/bodhi-go/internal/notify"
)

// EditInput holds the requested changes. Builds is the complete new build
// list; nil pointers and a nil Bugs slice leave the field untouched.
type EditInput struct {
	Builds        []update.Build
	Type          *update.UpdateType
	Severity      *update.UpdateSeverity
	Notes         *string
	Bugs          []update.Bug
	Autokarma     *bool
	Autotime      *bool
	StableKarma   *int
	UnstableKarma *int
	StableDays    *int
}

type EditResult struct {
	Caveats []update.Caveat
	// Removed are the builds dropped from the update, for the caller to
	// detach or delete.
	Removed []update.Build
}

func diffBuilds(current []update.Build, next []update.Build) (added, removed []update.Build) {
	have := make(map[string]bool, len(current))
	for _, b := range current {
		have[b.NVR] = true
	}
	want := make(map[string]bool, len(next))
	for _, b := range next {
		want[b.NVR] = true
		if !have[b.NVR] {
			added = append(added, b)
		}
	}
	for _, b := range current {
		if !want[b.NVR] {
			removed = append(removed, b)
		}
	}
	return added, removed
}

// Edit applies in to u on behalf of actor. A change to the build list resets
// karma and sends the update back through testing.
func (m *Machine) Edit(ctx context.Context, u *update.Update, in EditInput, actor string) (*EditResult, error) {
	next := in.Builds
	if next == nil {
		next = u.Builds
	}
	added, removed := diffBuilds(u.Builds, next)
	buildsChanged := len(added) > 0 || len(removed) > 0

	if u.Locked {
		if len(added) > 0 {
			return nil, update.Locked("Can't add builds to a locked update")
		}
		if len(removed) > 0 {
			return nil, update.Locked("Can't remove builds from a locked update")
		}
	}
	if buildsChanged {
		if err := update.ValidateBuildTypes(next); err != nil {
			return nil, update.Invalid(err.Error())
		}
		switch u.Status {
		case update.StatusPending, update.StatusTesting, update.StatusUnpushed:
		default:
			return nil, update.Invalid(fmt.Sprintf("Can't unpush a %s update", u.Status))
		}
	}

	res := &EditResult{Removed: removed}
	if in.StableDays != nil {
		u.StableDays = *in.StableDays
	}
	if mandatory := m.eval.MandatoryDaysInTesting(u); u.StableDays < mandatory {
		u.StableDays = mandatory
		res.Caveats = append(res.Caveats, update.Caveat{
			Name:        "stable days",
			Description: fmt.Sprintf("The number of stable days required was raised to the mandatory release value of %d days", mandatory),
		})
	}

	for _, b := range removed {
		if err := m.tags.UnpushBuild(ctx, &u.Release, b.NVR); err != nil {
			return nil, err
		}
	}

	if buildsChanged {
		kept := make([]update.Build, 0, len(u.Builds))
		gone := make(map[string]bool, len(removed))
		for _, b := range removed {
			gone[b.NVR] = true
		}
		for _, b := range u.Builds {
			if !gone[b.NVR] {
				kept = append(kept, b)
			}
		}
		u.Builds = append(kept, added...)
		u.Critpath = m.isCritpath(u)

		var text strings.Builder
		fmt.Fprintf(&text, "%s edited this update.", actor)
		if len(added) > 0 {
			text.WriteString("\n\nNew build(s):\n")
			for _, b := range added {
				text.WriteString("\n- " + b.NVR)
			}
		}
		if len(removed) > 0 {
			text.WriteString("\n\nRemoved build(s):\n")
			for _, b := range removed {
				text.WriteString("\n- " + b.NVR)
			}
		}
		text.WriteString("\n\nKarma has been reset.")
		m.systemComment(u, text.String())
		res.Caveats = append(res.Caveats, update.Caveat{Name: "builds", Description: text.String()})

		if u.Status != update.StatusPending {
			if err := m.Unpush(ctx, u); err != nil {
				return nil, err
			}
			res.Caveats = append(res.Caveats, update.Caveat{
				Name:        "update",
				Description: "Builds changed.  Your update is being sent back to testing.",
			})
		}

		tag, err := m.tags.PendingSigningTag(ctx, u)
		if err != nil {
			return nil, err
		}
		if tag == "" {
			log.Printf("[lifecycle] %s has no pending signing tag, new builds left untagged", u.Release.Name)
		}
		for _, b := range added {
			if tag == "" {
				break
			}
			if err := m.tags.TagBuild(ctx, tag, b.NVR); err != nil {
				return nil, err
			}
		}
		if u.FromTag == "" {
			if err := m.SetRequest(ctx, u, update.RequestTesting, actor); err != nil {
				return nil, err
			}
		}
	}

	if in.Type != nil {
		u.Type = *in.Type
	}
	if in.Severity != nil {
		u.Severity = *in.Severity
	}
	if in.Notes != nil {
		u.Notes = *in.Notes
	}
	if in.Bugs != nil {
		u.Bugs = in.Bugs
	}
	if in.Autokarma != nil {
		u.Autokarma = *in.Autokarma
	}
	if in.Autotime != nil {
		u.Autotime = *in.Autotime
	}
	if in.StableKarma != nil {
		u.StableKarma = in.StableKarma
	}
	if in.UnstableKarma != nil {
		u.UnstableKarma = in.UnstableKarma
	}
	u.Title = u.BuildTitle()
	now := m.now()
	u.DateModified = &now

	m.publish(ctx, notify.TopicEdit, u, actor, nil)
	return res, nil
}
