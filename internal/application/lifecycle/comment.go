package lifecycle

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/linskybing/bodhi-go/internal/domain/update"
	"github.com/linskybing/bodhi-go/internal/domain/user"
	"github.com/linskybing/bodhi-go/internal/notify"
)

type CommentInput struct {
	Author           string
	User             *user.User
	Text             string
	Karma            int
	KarmaCritpath    int
	Anonymous        bool
	BugFeedback      []update.BugKarma
	TestCaseFeedback []update.TestCaseKarma
}

func (in CommentInput) empty() bool {
	return strings.TrimSpace(in.Text) == "" && in.Karma == 0 && in.KarmaCritpath == 0 &&
		len(in.BugFeedback) == 0 && len(in.TestCaseFeedback) == 0
}

// previousVote is the author's latest non-zero karma since the last reset.
func previousVote(u *update.Update, author string) int {
	for _, c := range u.CommentsSinceKarmaReset() {
		if c.Author == author && !c.Anonymous && c.Karma != 0 {
			return c.Karma
		}
	}
	return 0
}

// Comment records feedback on u and reacts to any karma it carries.
func (m *Machine) Comment(ctx context.Context, u *update.Update, in CommentInput) (*update.Comment, []update.Caveat, error) {
	if in.Author == "" {
		return nil, nil, update.ErrCommentAuthorRequired
	}
	if in.empty() {
		return nil, nil, update.ErrCommentEmpty
	}

	var caveats []update.Caveat
	if in.Karma != 0 && in.Author == u.Submitter {
		in.Karma = 0
		caveats = append(caveats, update.Caveat{Name: "karma", Description: "You may not give karma to your own updates."})
	}

	previous := 0
	if in.Karma != 0 && !in.Anonymous {
		previous = previousVote(u, in.Author)
	}

	u.AddComment(update.Comment{
		Author:           in.Author,
		User:             in.User,
		Text:             in.Text,
		Karma:            in.Karma,
		KarmaCritpath:    in.KarmaCritpath,
		Anonymous:        in.Anonymous,
		BugFeedback:      in.BugFeedback,
		TestCaseFeedback: in.TestCaseFeedback,
	}, m.now())
	idx := len(u.Comments) - 1

	if in.Karma != 0 {
		if previous != 0 && previous != in.Karma {
			caveats = append(caveats, update.Caveat{Name: "karma", Description: "Your karma standing was reversed."})
		}
		if !m.policy.IsSystemUser(in.Author) {
			err := m.CheckKarmaThresholds(ctx, u, update.SystemUser)
			switch {
			case err == nil:
			case update.IsLocked(err):
				log.Printf("[lifecycle] %s is locked, skipping karma thresholds", u.Alias)
			case update.IsValidation(err):
				caveats = append(caveats, update.Caveat{Name: "karma", Description: err.Error()})
			default:
				return nil, caveats, err
			}
		}
		if err := m.obsoleteIfUnstable(ctx, u); err != nil {
			return nil, caveats, err
		}
	}

	c := u.Comments[idx]
	if !m.policy.IsSystemUser(in.Author) {
		m.publish(ctx, notify.TopicComment, u, in.Author, map[string]any{
			"comment": map[string]any{"author": c.Author, "text": c.Text, "karma": c.Karma},
		})
	}
	return &c, caveats, nil
}

// obsoleteIfUnstable retires an autokarma update still waiting for testing
// once it drops to its unstable threshold. Locked updates belong to a compose
// and are left alone.
func (m *Machine) obsoleteIfUnstable(ctx context.Context, u *update.Update) error {
	if u.Locked || !u.Autokarma || u.Status != update.StatusPending || u.Request != update.RequestTesting {
		return nil
	}
	if u.UnstableKarma == nil || u.Karma() > *u.UnstableKarma {
		return nil
	}
	log.Printf("[lifecycle] %s reached its unstable karma threshold", u.Alias)
	return m.Obsolete(ctx, u, nil, "")
}

// CheckKarmaThresholds applies the automatic reactions to u's current karma:
// disabling automatic pushes on negative feedback, requesting stable at the
// stable threshold, and obsoleting at the unstable threshold.
func (m *Machine) CheckKarmaThresholds(ctx context.Context, u *update.Update, agent string) error {
	if u.Locked {
		return update.Locked(fmt.Sprintf("Update %s is locked", u.Alias))
	}
	if u.Status != update.StatusPending && u.Status != update.StatusTesting {
		return nil
	}

	karma := u.Karma()
	if _, negative := u.CompositeKarma(); negative < 0 &&
		(u.Autokarma || u.Autotime) && u.Status == update.StatusTesting && u.Request != update.RequestStable {
		log.Printf("[lifecycle] disabling automatic push for %s", u.Alias)
		u.Autokarma = false
		u.Autotime = false
		m.systemComment(u, m.policy.Messages.DisableAutomaticPush)
	}

	switch {
	case u.StableKarma != nil && *u.StableKarma != 0 && karma >= *u.StableKarma:
		if !u.Autokarma {
			if !m.eval.HasStableComment(u) {
				m.systemComment(u, m.policy.Messages.TestingApprovalKarma)
			}
			return nil
		}
		target := update.RequestStable
		if m.policy.BatchedPromotion && u.Status == update.StatusTesting &&
			u.Severity != update.SeverityUrgent && u.Type != update.TypeSecurity &&
			u.Request != update.RequestStable {
			target = update.RequestBatched
		}
		if u.Request == update.RequestStable || u.Request == target {
			return nil
		}
		log.Printf("[lifecycle] automatically marking %s as %s", u.Alias, target)
		if err := m.SetRequest(ctx, u, target, agent); err != nil {
			return err
		}
		u.DatePushed = nil
		m.publish(ctx, notify.TopicKarmaThreshold, u, agent, map[string]any{"status": "stable"})
	case u.UnstableKarma != nil && *u.UnstableKarma != 0 && karma <= *u.UnstableKarma:
		if u.Status == update.StatusPending && !u.Autokarma {
			return nil
		}
		log.Printf("[lifecycle] automatically unpushing %s", u.Alias)
		if err := m.Obsolete(ctx, u, nil, ""); err != nil {
			return err
		}
		m.publish(ctx, notify.TopicKarmaThreshold, u, agent, map[string]any{"status": "unstable"})
	}
	return nil
}
