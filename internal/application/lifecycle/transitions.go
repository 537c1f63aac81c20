package lifecycle

import (
	"context"
	"fmt"

	"github.com/linskybing/bodhi-go/internal/domain/update"
)

// Unpush moves a testing update back out of the repositories: its builds lose
// every release tag and return to the candidate tag.
func (m *Machine) Unpush(ctx context.Context, u *update.Update) error {
	if u.Status == update.StatusUnpushed {
		return nil
	}
	if u.Status != update.StatusTesting {
		return update.Invalid(fmt.Sprintf("Can't unpush a %s update", u.Status))
	}
	known, err := m.store.KnownTags()
	if err != nil {
		return fmt.Errorf("load known tags: %w", err)
	}
	if err := m.tags.Untag(ctx, u, known); err != nil {
		return err
	}
	for _, b := range u.Builds {
		if err := m.tags.TagBuild(ctx, u.Release.CandidateTag, b.NVR); err != nil {
			return err
		}
	}
	u.Pushed = false
	u.Status = update.StatusUnpushed
	u.Request = update.RequestNone
	return nil
}

// Revoke cancels the pending request and pulls builds out of the pending tag
// that request put them in.
func (m *Machine) Revoke(ctx context.Context, u *update.Update) error {
	if u.Request == update.RequestNone {
		return update.Invalid("Can only revoke an update with an existing request")
	}
	switch u.Status {
	case update.StatusPending, update.StatusTesting, update.StatusUnpushed, update.StatusObsolete:
	default:
		return update.Invalid(fmt.Sprintf(
			"Can only revoke a pending, testing, unpushed, or obsolete update, not one that is %s", u.Status))
	}

	switch u.Request {
	case update.RequestTesting:
		for _, tag := range []string{u.Release.PendingSigningTag, u.Release.PendingTestingTag} {
			if err := m.tags.RemoveTag(ctx, u, tag); err != nil {
				return err
			}
		}
	case update.RequestStable:
		if err := m.tags.RemoveTag(ctx, u, u.Release.PendingStableTag); err != nil {
			return err
		}
	}
	u.Request = update.RequestNone
	return nil
}

// Obsolete retires u. When newer is given the comment links to it.
func (m *Machine) Obsolete(ctx context.Context, u *update.Update, newer *update.Update, newerNVR string) error {
	known, err := m.store.KnownTags()
	if err != nil {
		return fmt.Errorf("load known tags: %w", err)
	}
	if err := m.tags.Untag(ctx, u, known); err != nil {
		return err
	}
	u.Pushed = false
	u.Status = update.StatusObsolete
	u.Request = update.RequestNone

	text := "This update has been obsoleted."
	if newer != nil {
		if newerNVR == "" {
			newerNVR = newer.Title
		}
		text = fmt.Sprintf("This update has been obsoleted by [%s](%s).", newerNVR, newer.URL(m.policy.BaseURL))
	}
	m.systemComment(u, text)
	return nil
}

// Lock marks u as part of the compose with id composeID.
func Lock(u *update.Update, composeID uint) {
	u.Locked = true
	u.ComposeID = &composeID
}

// Unlock releases u from its compose.
func Unlock(u *update.Update) {
	u.Locked = false
	u.ComposeID = nil
}
