package lifecycle_test

import (
	"context"
	"testing"

	"github.com/linskybing/bodhi-go/internal/application/lifecycle"
	"github.com/linskybing/bodhi-go/internal/config"
	"github.com/linskybing/bodhi-go/internal/domain/update"
	"github.com/linskybing/bodhi-go/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComment_Validation(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	u := f.newUpdate(update.StatusTesting, update.RequestNone, 1, "bash-5.2.26-1.fc40")

	_, _, err := f.m.Comment(ctx, u, lifecycle.CommentInput{Text: "works"})
	assert.ErrorIs(t, err, update.ErrCommentAuthorRequired)

	_, _, err = f.m.Comment(ctx, u, lifecycle.CommentInput{Author: "tester", Text: "   "})
	assert.ErrorIs(t, err, update.ErrCommentEmpty)
	assert.Empty(t, u.Comments)
}

func TestComment_SelfKarmaIgnored(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	u := f.newUpdate(update.StatusTesting, update.RequestNone, 1, "bash-5.2.26-1.fc40")

	c, caveats, err := f.m.Comment(ctx, u, lifecycle.CommentInput{Author: "packager", Text: "ship it", Karma: 1})
	require.NoError(t, err)
	assert.Equal(t, 0, c.Karma)
	assert.Equal(t, 0, u.Karma())
	require.Len(t, caveats, 1)
	assert.Equal(t, "You may not give karma to your own updates.", caveats[0].Description)
	assert.Equal(t, []string{notify.TopicComment}, f.events.Topics())
}

func TestComment_ReversalDisablesAutopush(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	u := f.newUpdate(update.StatusTesting, update.RequestNone, 1, "bash-5.2.26-1.fc40")
	u.Autotime = true

	_, caveats, err := f.m.Comment(ctx, u, lifecycle.CommentInput{Author: "tester", Karma: 1})
	require.NoError(t, err)
	assert.Empty(t, caveats)

	_, caveats, err = f.m.Comment(ctx, u, lifecycle.CommentInput{Author: "tester", Text: "broke", Karma: -1})
	require.NoError(t, err)
	require.Len(t, caveats, 1)
	assert.Equal(t, "Your karma standing was reversed.", caveats[0].Description)
	assert.Equal(t, -1, u.Karma())
	assert.False(t, u.Autokarma)
	assert.False(t, u.Autotime)
	assert.Equal(t, f.policy.Messages.DisableAutomaticPush, lastComment(u).Text)
}

func TestComment_StableKarmaPushesOnce(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	u := f.newUpdate(update.StatusTesting, update.RequestNone, 1, "bash-5.2.26-1.fc40")
	u.StableKarma = intPtr(2)

	for _, author := range []string{"t1", "t2", "t3"} {
		_, _, err := f.m.Comment(ctx, u, lifecycle.CommentInput{Author: author, Karma: 1})
		require.NoError(t, err)
	}
	assert.Equal(t, update.RequestStable, u.Request)
	assert.Contains(t, f.dev.TagsOf("bash-5.2.26-1.fc40"), "f40-updates-pending")
	topics := f.events.Topics()
	assert.Equal(t, 1, count(topics, notify.TopicRequestStable))
	assert.Equal(t, 1, count(topics, notify.TopicKarmaThreshold))
	assert.Equal(t, 3, count(topics, notify.TopicComment))
}

func TestComment_BatchedPromotion(t *testing.T) {
	ctx := context.Background()
	f := setup(t, func(p *config.Policy) { p.BatchedPromotion = true })
	u := f.newUpdate(update.StatusTesting, update.RequestNone, 1, "bash-5.2.26-1.fc40")
	u.StableKarma = intPtr(2)

	for _, author := range []string{"t1", "t2", "t3"} {
		_, _, err := f.m.Comment(ctx, u, lifecycle.CommentInput{Author: author, Karma: 1})
		require.NoError(t, err)
	}
	assert.Equal(t, update.RequestBatched, u.Request)
	assert.Equal(t, 1, count(f.events.Topics(), notify.TopicRequestBatched))

	require.NoError(t, f.m.DequeueBatched(ctx, u))
	assert.Equal(t, update.RequestStable, u.Request)
	assert.Equal(t, f.policy.Messages.StableFromBatched, lastComment(u).Text)

	// a stable request is never pulled back to batched by more karma
	_, _, err := f.m.Comment(ctx, u, lifecycle.CommentInput{Author: "t4", Karma: 1})
	require.NoError(t, err)
	assert.Equal(t, update.RequestStable, u.Request)
	assert.Equal(t, 1, count(f.events.Topics(), notify.TopicRequestBatched))
}

func TestComment_UnstableKarmaObsoletes(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	u := f.newUpdate(update.StatusPending, update.RequestTesting, -1, "bash-5.2.26-1.fc40")
	u.UnstableKarma = intPtr(-2)

	_, _, err := f.m.Comment(ctx, u, lifecycle.CommentInput{Author: "t1", Karma: -1})
	require.NoError(t, err)
	assert.Equal(t, update.StatusPending, u.Status)

	_, _, err = f.m.Comment(ctx, u, lifecycle.CommentInput{Author: "t2", Karma: -1})
	require.NoError(t, err)
	assert.Equal(t, update.StatusObsolete, u.Status)
	assert.Equal(t, update.RequestNone, u.Request)
	assert.Equal(t, 1, count(f.events.Topics(), notify.TopicKarmaThreshold))
}

func TestComment_LockedUpdateKeepsRequest(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	u := f.newUpdate(update.StatusTesting, update.RequestNone, 1, "bash-5.2.26-1.fc40")
	u.Locked = true
	u.StableKarma = intPtr(1)

	_, caveats, err := f.m.Comment(ctx, u, lifecycle.CommentInput{Author: "t1", Karma: 1})
	require.NoError(t, err)
	assert.Empty(t, caveats)
	assert.Equal(t, update.RequestNone, u.Request)
	assert.Equal(t, 1, u.Karma())
}

func TestComment_LockedUpdateIgnoresUnstableThreshold(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	u := f.newUpdate(update.StatusPending, update.RequestTesting, -1, "bash-5.2.26-1.fc40")
	f.dev.AddBuild("bash-5.2.26-1.fc40", nil, "f40-updates-candidate", "f40-updates-testing-pending")
	u.UnstableKarma = intPtr(-1)
	lifecycle.Lock(u, 3)

	_, _, err := f.m.Comment(ctx, u, lifecycle.CommentInput{Author: "t1", Karma: -1})
	require.NoError(t, err)
	assert.Equal(t, update.StatusPending, u.Status)
	assert.Equal(t, update.RequestTesting, u.Request)
	assert.True(t, u.Locked)
	assert.Equal(t, 0, count(f.events.Topics(), notify.TopicKarmaThreshold))

	// the compose that holds the lock can still finish the push
	require.NoError(t, f.m.MarkPushed(ctx, u))
	assert.Equal(t, update.StatusTesting, u.Status)
	assert.False(t, u.Locked)
	assert.Equal(t, []string{"f40-updates-testing"}, f.dev.TagsOf("bash-5.2.26-1.fc40"))
}

func TestComment_SystemUserSkipsThresholds(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	u := f.newUpdate(update.StatusTesting, update.RequestNone, 1, "bash-5.2.26-1.fc40")
	u.StableKarma = intPtr(1)

	_, _, err := f.m.Comment(ctx, u, lifecycle.CommentInput{Author: "autoqa", Text: "tests passed", Karma: 1})
	require.NoError(t, err)
	assert.Equal(t, update.RequestNone, u.Request)
	assert.Empty(t, f.events.Events())
}
