package lifecycle

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/linskybing/bodhi-go/internal/domain/update"
	"github.com/linskybing/bodhi-go/internal/notify"
)

// ApproveTesting is the periodic check of a testing update: it records when
// the update met its requirements and either pushes it to stable
// automatically or tells the maintainer it may do so.
func (m *Machine) ApproveTesting(ctx context.Context, u *update.Update) error {
	if m.eval.MandatoryDaysInTesting(u) == 0 && !u.Autotime {
		return nil
	}
	if !m.eval.MeetsTestingRequirements(u) {
		return nil
	}
	now := m.now()
	if u.DateApproved == nil {
		u.DateApproved = &now
	}

	if u.Autotime && m.eval.DaysInTesting(u) >= u.StableDays {
		if u.Release.ComposedByBodhi {
			log.Printf("[lifecycle] automatically marking %s as stable", u.Alias)
			return m.SetRequest(ctx, u, update.RequestStable, update.SystemUser)
		}
		return m.pushSideTagStable(ctx, u)
	}

	if !m.eval.HasStableComment(u) {
		text := m.policy.Messages.TestingApproval
		if strings.Contains(text, "%d") {
			text = fmt.Sprintf(text, m.eval.MandatoryDaysInTesting(u))
		}
		m.systemComment(u, text)
		m.publish(ctx, notify.TopicRequirementsMet, u, update.SystemUser, nil)
	}
	return nil
}

// conflictingBuilds returns the builds of u that are older than the latest
// build of their package already in the release's stable tag.
func (m *Machine) conflictingBuilds(ctx context.Context, u *update.Update) ([]string, error) {
	var conflicts []string
	for _, b := range u.Builds {
		latest, err := m.tags.Client().GetLatestBuilds(ctx, u.Release.StableTag, b.Package)
		if err != nil {
			return nil, err
		}
		for _, l := range latest {
			cmp, err := update.CompareNVR(b.NVR, l.NVR)
			if err != nil {
				return nil, err
			}
			if cmp < 0 {
				conflicts = append(conflicts, b.NVR)
				break
			}
		}
	}
	return conflicts, nil
}

// pushSideTagStable moves an update of a release Bodhi does not compose
// straight to stable by tagging, since no compose will do it.
func (m *Machine) pushSideTagStable(ctx context.Context, u *update.Update) error {
	conflicts, err := m.conflictingBuilds(ctx, u)
	if err != nil {
		return err
	}
	if len(conflicts) > 0 {
		m.systemComment(u, fmt.Sprintf("This update cannot be pushed to stable. These builds %s have a more "+
			"recent build in koji's %s tag.", strings.Join(conflicts, ", "), u.Release.StableTag))
		u.Request = update.RequestNone
		if u.FromTag != "" {
			u.Status = update.StatusPending
			_, testingSide := m.policy.SideTagNames(&u.Release, u.FromTag)
			return m.tags.RemoveTag(ctx, u, testingSide)
		}
		u.Status = update.StatusObsolete
		for _, tag := range []string{u.Release.PendingTestingTag, u.Release.CandidateTag} {
			if err := m.tags.RemoveTag(ctx, u, tag); err != nil {
				return err
			}
		}
		return nil
	}

	if err := m.tags.AddTag(ctx, u, u.Release.StableTag); err != nil {
		return err
	}
	now := m.now()
	u.Status = update.StatusStable
	u.Request = update.RequestNone
	u.Pushed = true
	u.DateStable = &now
	u.DatePushed = &now
	m.systemComment(u, "This update has been submitted for stable by bodhi. ")
	if u.FromTag != "" {
		if err := m.tags.CleanupSideTags(ctx, u); err != nil {
			return err
		}
	} else {
		for _, tag := range []string{u.Release.PendingTestingTag, u.Release.PendingStableTag,
			u.Release.PendingSigningTag, u.Release.CandidateTag} {
			if err := m.tags.RemoveTag(ctx, u, tag); err != nil {
				return err
			}
		}
	}
	m.publish(ctx, notify.TopicRequestStable, u, update.SystemUser, nil)
	return nil
}

// DequeueBatched promotes a batched update to a stable request.
func (m *Machine) DequeueBatched(ctx context.Context, u *update.Update) error {
	if u.Request != update.RequestBatched {
		return nil
	}
	if err := m.SetRequest(ctx, u, update.RequestStable, update.SystemUser); err != nil {
		return err
	}
	m.systemComment(u, m.policy.Messages.StableFromBatched)
	return nil
}
