package requirements

import (
	"strings"
	"time"

	"github.com/linskybing/bodhi-go/internal/config"
	"github.com/linskybing/bodhi-go/internal/domain/update"
)

const (
	stableCommentPrefix = "This update "
	stableCommentMarker = "can be pushed to stable now if the maintainer wishes"

	ReasonGatingFailed = "Required tests did not pass on this update"
	ReasonNoChecks     = "No checks required."
)

// Evaluator decides whether an update is eligible for a stable push.
type Evaluator struct {
	policy *config.Policy
	now    func() time.Time
}

func New(policy *config.Policy, now func() time.Time) *Evaluator {
	if now == nil {
		now = time.Now
	}
	return &Evaluator{policy: policy, now: now}
}

func (e *Evaluator) Policy() *config.Policy {
	return e.policy
}

// GatingBlocks reports whether required test gating vetoes a stable push.
func (e *Evaluator) GatingBlocks(u *update.Update) bool {
	return e.policy.TestGatingRequired && !u.TestGatingPassed()
}

// MandatoryDaysInTesting is the soak time the update needs before stable.
func (e *Evaluator) MandatoryDaysInTesting(u *update.Update) int {
	if u.Critpath {
		return e.policy.CritpathStableAfterDays
	}
	return e.policy.MandatoryDaysInTesting(&u.Release)
}

// DaysInTesting counts whole days since the update reached testing.
func (e *Evaluator) DaysInTesting(u *update.Update) int {
	if u.DateTesting == nil {
		return 0
	}
	d := e.now().Sub(*u.DateTesting)
	if d < 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}

func (e *Evaluator) MeetsTestingRequirements(u *update.Update) bool {
	if e.GatingBlocks(u) {
		return false
	}
	mandatory := e.MandatoryDaysInTesting(u)
	karma := u.Karma()

	if u.Critpath {
		if karma >= e.policy.CritpathMinKarmaFor(&u.Release) {
			return true
		}
		if _, negative := u.CompositeKarma(); negative < 0 {
			return false
		}
		return e.DaysInTesting(u) >= mandatory
	}

	if mandatory == 0 {
		return true
	}
	if !u.Autokarma && u.StableKarmaValue() > 0 && karma >= u.StableKarmaValue() {
		return true
	}
	return e.DaysInTesting(u) >= mandatory
}

// HasStableComment reports whether the service already announced eligibility
// in the current karma window.
func (e *Evaluator) HasStableComment(u *update.Update) bool {
	for _, c := range u.CommentsSinceKarmaReset() {
		if c.Author == update.SystemUser &&
			strings.HasPrefix(c.Text, stableCommentPrefix) &&
			strings.Contains(c.Text, stableCommentMarker) {
			return true
		}
	}
	return false
}

func (e *Evaluator) MetTestingRequirements(u *update.Update) bool {
	return e.MeetsTestingRequirements(u) && e.HasStableComment(u)
}

// DaysToStable is never negative.
func (e *Evaluator) DaysToStable(u *update.Update) int {
	if e.MeetsTestingRequirements(u) {
		return 0
	}
	remaining := e.MandatoryDaysInTesting(u) - e.DaysInTesting(u)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// NumAdminApprovals counts +1 votes from admin group members since the last reset.
func (e *Evaluator) NumAdminApprovals(u *update.Update) int {
	approvals := 0
	for _, c := range u.CommentsSinceKarmaReset() {
		if c.Karma != 1 {
			continue
		}
		if c.User != nil && c.User.InAnyGroup(e.policy.AdminGroups) {
			approvals++
		}
	}
	return approvals
}

func (e *Evaluator) CritpathApproved(u *update.Update) bool {
	if e.MeetsTestingRequirements(u) {
		return true
	}
	required, ok := e.policy.CritpathNumAdminApprovalsFor(&u.Release)
	if !ok {
		return false
	}
	return e.NumAdminApprovals(u) >= required && u.Karma() >= e.policy.CritpathMinKarmaFor(&u.Release)
}

// CheckRequirements is the gate applied before a manual stable request.
func (e *Evaluator) CheckRequirements(u *update.Update) (bool, string) {
	if e.GatingBlocks(u) {
		return false, ReasonGatingFailed
	}
	return true, ReasonNoChecks
}

// View decorates u with its derived testing state.
func (e *Evaluator) View(u *update.Update) update.UpdateView {
	return update.UpdateView{
		Update:                   u,
		Karma:                    u.Karma(),
		DaysInTesting:            e.DaysInTesting(u),
		DaysToStable:             e.DaysToStable(u),
		MeetsTestingRequirements: e.MeetsTestingRequirements(u),
		MetTestingRequirements:   e.MetTestingRequirements(u),
		BugFeedback:              u.BugFeedback(),
		TestCaseFeedback:         u.TestCaseFeedback(),
	}
}
