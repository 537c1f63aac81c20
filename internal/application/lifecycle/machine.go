// Package lifecycle moves updates through their request and status workflow.
// It works on loaded updates in memory; callers own the transaction and
// persist the update afterwards.
package lifecycle

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/linskybing/bodhi-go/internal/application/requirements"
	"github.com/linskybing/bodhi-go/internal/application/tags"
	"github.com/linskybing/bodhi-go/internal/buildsys"
	"github.com/linskybing/bodhi-go/internal/config"
	"github.com/linskybing/bodhi-go/internal/domain/release"
	"github.com/linskybing/bodhi-go/internal/domain/update"
	"github.com/linskybing/bodhi-go/internal/notify"
)

// Store is the persistence the workflow needs beyond the update being changed.
type Store interface {
	// KnownTags returns every tag name owned by any release.
	KnownTags() (map[string]bool, error)
	// ObsoletionCandidates returns pending or testing updates of u's release
	// sharing a package with u, excluding u itself.
	ObsoletionCandidates(u *update.Update) ([]update.Update, error)
	SaveUpdate(u *update.Update) error
}

type Machine struct {
	policy *config.Policy
	eval   *requirements.Evaluator
	tags   *tags.Synchronizer
	store  Store
	pub    notify.Publisher
	now    func() time.Time
}

type Option func(*Machine)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Machine) {
		m.now = now
	}
}

func NewMachine(policy *config.Policy, client buildsys.Client, store Store, pub notify.Publisher, opts ...Option) *Machine {
	m := &Machine{
		policy: policy,
		store:  store,
		pub:    pub,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.eval = requirements.New(policy, m.now)
	m.tags = tags.New(client, policy)
	return m
}

// With returns a copy bound to another store and publisher, typically the
// ones of a single transaction.
func (m *Machine) With(store Store, pub notify.Publisher) *Machine {
	c := *m
	c.store = store
	c.pub = pub
	return &c
}

func (m *Machine) Evaluator() *requirements.Evaluator {
	return m.eval
}

func (m *Machine) Tags() *tags.Synchronizer {
	return m.tags
}

func (m *Machine) Policy() *config.Policy {
	return m.policy
}

func (m *Machine) systemComment(u *update.Update, text string) {
	u.AddComment(update.Comment{Author: update.SystemUser, Text: text}, m.now())
}

func summary(u *update.Update) map[string]any {
	return map[string]any{
		"alias":    u.Alias,
		"title":    u.Title,
		"status":   u.Status,
		"request":  u.Request,
		"user":     u.Submitter,
		"release":  u.Release.Name,
		"critpath": u.Critpath,
		"karma":    u.Karma(),
	}
}

func (m *Machine) publish(ctx context.Context, topic string, u *update.Update, agent string, extra map[string]any) {
	body := map[string]any{"update": summary(u)}
	for k, v := range extra {
		body[k] = v
	}
	e := notify.Event{Topic: topic, Agent: agent, Body: body, At: m.now()}
	if err := m.pub.Publish(ctx, e); err != nil {
		log.Printf("[lifecycle] publish %s for %s: %v", topic, u.Alias, err)
	}
}

func requestTopic(r update.UpdateRequest) string {
	return "update.request." + string(r)
}

func (m *Machine) notYetTestedMessage(rel *release.Release) string {
	if rel.IsEPEL() {
		return m.policy.Messages.NotYetTestedEPEL
	}
	return m.policy.Messages.NotYetTested
}

func (m *Machine) critpathNote(rel *release.Release, approvals int) string {
	minKarma := m.policy.CritpathMinKarmaFor(rel)
	note := fmt.Sprintf("This critical path update has not yet been approved for pushing to the "+
		"stable repository.  It must first reach a karma of %d, consisting of %d "+
		"positive karma from proventesters, along with %d additional karma from "+
		"the community. Or, it must spend %d days in testing without any negative "+
		"feedback", minKarma, approvals, minKarma-approvals, m.policy.CritpathStableAfterDays)
	if m.policy.TestGatingRequired {
		note += " Additionally, it must pass automated tests."
	}
	return note
}

// SetRequest performs action on u on behalf of actor, or rejects it with a
// *update.LockedUpdateError or *update.ValidationError. Every rejection is
// decided before anything on u or in the build system changes.
func (m *Machine) SetRequest(ctx context.Context, u *update.Update, action update.UpdateRequest, actor string) error {
	if action == u.Request {
		log.Printf("[lifecycle] %s has already been submitted to %s", u.Alias, action)
		return nil
	}
	if string(action) == string(u.Status) && u.Status != update.StatusStable {
		log.Printf("[lifecycle] %s already %s", u.Alias, action)
		return nil
	}
	if u.Locked {
		return update.Locked("Can't change the request on a locked update")
	}
	if u.Release.IsArchived() {
		return update.Invalid("Can't change request for an archived release")
	}
	if u.Status == update.StatusStable {
		switch action {
		case update.RequestTesting, update.RequestBatched, update.RequestStable:
			return update.Invalid("Update is already stable")
		}
	}

	switch action {
	case update.RequestUnpush:
		if err := m.Unpush(ctx, u); err != nil {
			return err
		}
		u.AddComment(update.Comment{Author: actor, Text: "This update has been unpushed."}, m.now())
		m.publish(ctx, notify.TopicRequestUnpush, u, actor, nil)
		return nil
	case update.RequestObsolete:
		if err := m.Obsolete(ctx, u, nil, ""); err != nil {
			return err
		}
		m.publish(ctx, notify.TopicRequestObsolete, u, actor, nil)
		return nil
	case update.RequestRevoke:
		pendingToTesting := u.Status == update.StatusPending && u.Request == update.RequestTesting
		if err := m.Revoke(ctx, u); err != nil {
			return err
		}
		if pendingToTesting {
			u.Status = update.StatusUnpushed
		}
		m.publish(ctx, notify.TopicRequestRevoke, u, actor, nil)
		return nil
	}

	if action == update.RequestBatched && u.Status != update.StatusTesting {
		return update.Invalid("Can't batch an update that is not yet in testing")
	}

	var notes []string
	flash := ""
	toStable := action == update.RequestStable || action == update.RequestBatched

	if toStable && m.eval.GatingBlocks(u) {
		flash = requirements.ReasonGatingFailed
		if u.Status == update.StatusTesting || u.Request == update.RequestTesting {
			return update.Invalid(flash)
		}
		action = update.RequestTesting
	}

	if toStable && u.Critpath && action != update.RequestTesting {
		if approvals, ok := m.policy.CritpathNumAdminApprovalsFor(&u.Release); ok && !m.eval.CritpathApproved(u) {
			notes = append(notes, m.critpathNote(&u.Release, approvals))
			if u.Status == update.StatusTesting {
				return update.Invalid(strings.Join(notes, ". "))
			}
			log.Printf("[lifecycle] forcing critical path update %s into testing", u.Alias)
			action = update.RequestTesting
		}
	}

	if toStable && !u.Critpath && action != update.RequestTesting {
		karmaMet := u.StableKarma != nil && u.Karma() >= *u.StableKarma
		if !karmaMet && !m.eval.CritpathApproved(u) &&
			m.eval.MandatoryDaysInTesting(u) > 0 &&
			!m.eval.HasStableComment(u) && !m.eval.MeetsTestingRequirements(u) {
			flash = m.notYetTestedMessage(&u.Release)
			if u.Status == update.StatusTesting || u.Request == update.RequestTesting {
				return update.Invalid(flash)
			}
			action = update.RequestTesting
		}
	}

	if action == u.Request {
		if flash != "" {
			notes = append(notes, flash)
		}
		return update.Invalid(strings.Join(notes, ". "))
	}

	switch action {
	case update.RequestTesting:
		tag, err := m.tags.PendingSigningTag(ctx, u)
		if err != nil {
			return err
		}
		if err := m.tags.AddTag(ctx, u, tag); err != nil {
			return err
		}
	case update.RequestStable:
		if err := m.tags.AddTag(ctx, u, u.Release.PendingStableTag); err != nil {
			return err
		}
	}

	if u.Status == update.StatusObsolete || u.Status == update.StatusUnpushed {
		u.Status = update.StatusPending
		if err := m.tags.AddTag(ctx, u, u.Release.CandidateTag); err != nil {
			return err
		}
	}

	u.Request = action

	noteText := ""
	if len(notes) > 0 {
		noteText = strings.Join(notes, ". ") + "."
	}
	if flash != "" {
		log.Printf("[lifecycle] %s has been submitted for %s. %s", u.Alias, action, flash)
	}
	text := fmt.Sprintf("This update has been submitted for %s by %s. %s", action, actor, noteText)
	if u.Release.State == release.StateFrozen && action == update.RequestStable {
		text += "\n\nThere is an ongoing freeze; this will be pushed to stable after the freeze is over. "
	}
	m.systemComment(u, text)
	m.publish(ctx, requestTopic(action), u, actor, nil)
	return nil
}

// RequestedTag is the tag the update's current request moves its builds to.
func (m *Machine) RequestedTag(u *update.Update) (string, error) {
	tag := ""
	switch u.Request {
	case update.RequestStable:
		tag = u.Release.StableTag
		if u.Release.State == release.StatePending {
			tag = u.Release.DistTag
		}
	case update.RequestTesting:
		tag = u.Release.TestingTag
	case update.RequestObsolete:
		tag = u.Release.CandidateTag
	}
	if tag == "" {
		return "", fmt.Errorf("Unable to determine requested tag for %s.", u.Alias)
	}
	return tag, nil
}

// View is the evaluator's view of u plus the tag its request targets.
func (m *Machine) View(u *update.Update) update.UpdateView {
	v := m.eval.View(u)
	if tag, err := m.RequestedTag(u); err == nil {
		v.RequestedTag = tag
	}
	return v
}
