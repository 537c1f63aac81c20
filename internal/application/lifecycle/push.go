package lifecycle

import (
	"context"
	"fmt"

	"github.com/linskybing/bodhi-go/internal/domain/update"
)

// MarkPushed finishes a successful compose for u: its builds land in the
// requested tag, the pending tags are dropped and the request is fulfilled.
func (m *Machine) MarkPushed(ctx context.Context, u *update.Update) error {
	var stale []string
	switch u.Request {
	case update.RequestTesting:
		stale = []string{u.Release.PendingSigningTag, u.Release.PendingTestingTag, u.Release.CandidateTag}
	case update.RequestStable:
		stale = []string{u.Release.PendingStableTag, u.Release.PendingTestingTag, u.Release.TestingTag}
	default:
		return update.Invalid(fmt.Sprintf("Can't push %s with a %s request", u.Alias, u.Request))
	}
	target, err := m.RequestedTag(u)
	if err != nil {
		return err
	}
	if err := m.tags.AddTag(ctx, u, target); err != nil {
		return err
	}

	now := m.now()
	if u.Request == update.RequestTesting {
		u.Status = update.StatusTesting
		u.DateTesting = &now
	} else {
		u.Status = update.StatusStable
		u.DateStable = &now
	}
	for _, tag := range stale {
		if tag == target {
			continue
		}
		if err := m.tags.RemoveTag(ctx, u, tag); err != nil {
			return err
		}
	}
	if u.Status == update.StatusStable && u.FromTag != "" {
		if err := m.tags.CleanupSideTags(ctx, u); err != nil {
			return err
		}
	}

	pushedTo := u.Request
	u.Request = update.RequestNone
	u.Pushed = true
	u.DatePushed = &now
	Unlock(u)
	m.systemComment(u, fmt.Sprintf("This update has been pushed to %s.", pushedTo))
	return nil
}
