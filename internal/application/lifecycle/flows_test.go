package lifecycle_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/bodhi-go/internal/application/lifecycle"
	"github.com/linskybing/bodhi-go/internal/config"
	"github.com/linskybing/bodhi-go/internal/domain/update"
	"github.com/linskybing/bodhi-go/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, nvr string) update.Build {
	t.Helper()
	b, err := update.NewBuild(nvr, update.ContentRPM)
	require.NoError(t, err)
	return b
}

func descriptions(caveats []update.Caveat) []string {
	out := make([]string, 0, len(caveats))
	for _, c := range caveats {
		out = append(out, c.Description)
	}
	return out
}

func TestNewUpdate_ObsoletesOlderTestingUpdate(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	old := f.newUpdate(update.StatusTesting, update.RequestNone, 3, "pkg-2.0-1.fc40")
	old.ID = 1
	old.Alias = "FEDORA-2024-old"
	old.Notes = "old notes"
	old.Bugs = []update.Bug{{BugID: 100}}
	f.dev.AddBuild("pkg-2.0-2.fc40", nil, "f40-updates-candidate")

	var saved *update.Update
	f.store.EXPECT().ObsoletionCandidates(gomock.Any()).Return([]update.Update{*old}, nil)
	f.store.EXPECT().SaveUpdate(gomock.Any()).DoAndReturn(func(u *update.Update) error {
		saved = u
		return nil
	})

	rel := f40()
	u, caveats, err := f.m.NewUpdate(ctx, lifecycle.NewUpdateInput{
		Release:   &rel,
		Builds:    []update.Build{build(t, "pkg-2.0-2.fc40")},
		Submitter: "packager",
		Notes:     "new notes",
		Autokarma: true,
	})
	require.NoError(t, err)

	assert.Equal(t, update.StatusPending, u.Status)
	assert.Equal(t, update.RequestTesting, u.Request)
	assert.Equal(t, "pkg-2.0-2.fc40", u.Title)
	assert.Equal(t, update.TypeBugfix, u.Type)
	assert.Equal(t, 7, u.StableDays)
	assert.Contains(t, u.Notes, "old notes")
	require.Len(t, u.Bugs, 1)
	assert.Equal(t, 100, u.Bugs[0].BugID)
	assert.Contains(t, f.dev.TagsOf("pkg-2.0-2.fc40"), "f40-signing-pending")
	assert.Contains(t, descriptions(caveats), "This update has obsoleted pkg-2.0-1.fc40, and has inherited its bugs and notes.")
	assert.Contains(t, descriptions(caveats), "The number of stable days required was set to the mandatory release value of 7 days")

	require.NotNil(t, saved)
	assert.Equal(t, update.StatusObsolete, saved.Status)
	assert.Equal(t, update.RequestNone, saved.Request)
	assert.Contains(t, lastComment(saved).Text, "pkg-2.0-2.fc40")
	assert.Contains(t, lastComment(saved).Text, u.URL(f.policy.BaseURL))
	assert.Empty(t, f.dev.TagsOf("pkg-2.0-1.fc40"))

	topics := f.events.Topics()
	assert.Equal(t, notify.TopicCreate, topics[len(topics)-1])
	assert.Contains(t, topics, notify.TopicRequestObsolete)
}

func TestObsoleteOlderUpdates_SkipsLockedAndStable(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	locked := f.newUpdate(update.StatusTesting, update.RequestNone, 3, "pkg-2.0-0.fc40")
	locked.ID, locked.Alias, locked.Locked = 1, "FEDORA-2024-locked", true
	stable := f.newUpdate(update.StatusTesting, update.RequestStable, 9, "pkg-2.0-1.fc40")
	stable.ID, stable.Alias = 2, "FEDORA-2024-stable"
	u := f.newUpdate(update.StatusPending, update.RequestTesting, -1, "pkg-2.0-2.fc40")

	f.store.EXPECT().ObsoletionCandidates(u).Return([]update.Update{*locked, *stable}, nil)

	caveats, err := f.m.ObsoleteOlderUpdates(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Unable to obsolete update FEDORA-2024-locked, since it is locked.",
		"Unable to obsolete update FEDORA-2024-stable, since it has a pending stable request.",
	}, descriptions(caveats))
	assert.Empty(t, u.Comments)
	assert.Empty(t, f.dev.Calls())
}

func TestObsoleteOlderUpdates_NewerOldUpdateKept(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	newer := f.newUpdate(update.StatusTesting, update.RequestNone, 3, "pkg-2.0-3.fc40")
	newer.ID, newer.Alias, newer.Submitter = 1, "FEDORA-2024-newer", "someone"
	newer.Builds = append(newer.Builds, build(t, "lib-1.0-1.fc40"))
	u := f.newUpdate(update.StatusPending, update.RequestTesting, -1, "pkg-2.0-2.fc40")

	f.store.EXPECT().ObsoletionCandidates(u).Return([]update.Update{*newer}, nil)

	caveats, err := f.m.ObsoleteOlderUpdates(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Please be aware that there is another update in flight owned by someone, containing " +
			"pkg-2.0-3.fc40. Are you coordinating with them?",
	}, descriptions(caveats))
	assert.Empty(t, u.Comments)
}

func TestObsoleteOlderUpdates_InheritsSecurityType(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	old := f.newUpdate(update.StatusTesting, update.RequestNone, 3, "pkg-2.0-1.fc40")
	old.ID, old.Alias, old.Type = 1, "FEDORA-2024-old", update.TypeSecurity
	u := f.newUpdate(update.StatusPending, update.RequestTesting, -1, "pkg-2.0-2.fc40")
	u.Type = update.TypeBugfix

	f.store.EXPECT().ObsoletionCandidates(u).Return([]update.Update{*old}, nil)
	f.store.EXPECT().SaveUpdate(gomock.Any()).Return(nil)

	caveats, err := f.m.ObsoleteOlderUpdates(ctx, u)
	require.NoError(t, err)
	assert.Equal(t, update.TypeSecurity, u.Type)
	assert.Contains(t, descriptions(caveats), "Adjusting type of this update to security, since it obsoletes another security update")
}

func TestObsoleteOlderUpdates_StoreError(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	u := f.newUpdate(update.StatusPending, update.RequestTesting, -1, "pkg-2.0-2.fc40")
	f.store.EXPECT().ObsoletionCandidates(u).Return(nil, errors.New("db down"))

	_, err := f.m.ObsoleteOlderUpdates(ctx, u)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestNewUpdate_Rejections(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	rel := f40()

	_, _, err := f.m.NewUpdate(ctx, lifecycle.NewUpdateInput{Release: &rel, Submitter: "packager"})
	assert.ErrorIs(t, err, update.ErrNoBuilds)

	mod, _ := update.NewBuild("nodejs-20-4020.fc40", update.ContentModule)
	_, _, err = f.m.NewUpdate(ctx, lifecycle.NewUpdateInput{
		Release:   &rel,
		Builds:    []update.Build{build(t, "bash-5.2.26-1.fc40"), mod},
		Submitter: "packager",
	})
	require.Error(t, err)
	assert.True(t, update.IsValidation(err))
}

func TestNewUpdate_SideTagBeforeActivation(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	rel := f40()
	rel.ComposedByBodhi = false
	f.dev.AddBuild("bash-5.2.26-1.fc40", nil, "f40-build-side-1234")
	f.store.EXPECT().ObsoletionCandidates(gomock.Any()).Return(nil, nil)

	u, _, err := f.m.NewUpdate(ctx, lifecycle.NewUpdateInput{
		Release:   &rel,
		Builds:    []update.Build{build(t, "bash-5.2.26-1.fc40")},
		Submitter: "packager",
		FromTag:   "f40-build-side-1234",
	})
	require.NoError(t, err)
	assert.Equal(t, update.StatusSideTagActive, u.Status)
	assert.Equal(t, update.RequestNone, u.Request)
	assert.Contains(t, f.dev.TagsOf("bash-5.2.26-1.fc40"), "f40-build-side-1234-signing-pending")
}

func TestNewUpdate_GatingWaits(t *testing.T) {
	ctx := context.Background()
	f := setup(t, func(p *config.Policy) { p.TestGatingRequired = true })
	rel := f40()
	f.dev.AddBuild("bash-5.2.26-1.fc40", nil, "f40-updates-candidate")
	f.store.EXPECT().ObsoletionCandidates(gomock.Any()).Return(nil, nil)

	u, _, err := f.m.NewUpdate(ctx, lifecycle.NewUpdateInput{
		Release:   &rel,
		Builds:    []update.Build{build(t, "bash-5.2.26-1.fc40")},
		Submitter: "packager",
	})
	require.NoError(t, err)
	assert.Equal(t, update.GatingWaiting, u.TestGatingStatus)
	assert.Equal(t, update.RequestTesting, u.Request)
}

func TestEdit_BuildsChanged(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	u := f.newUpdate(update.StatusTesting, update.RequestNone, 3, "bash-5.2.26-1.fc40")
	u.StableDays = 7
	u.AddComment(update.Comment{Author: "t1", Karma: 1}, now)
	f.dev.AddBuild("bash-5.2.26-2.fc40", nil, "f40-updates-candidate")

	res, err := f.m.Edit(ctx, u, lifecycle.EditInput{
		Builds: []update.Build{build(t, "bash-5.2.26-2.fc40")},
	}, "packager")
	require.NoError(t, err)

	require.Len(t, res.Removed, 1)
	assert.Equal(t, "bash-5.2.26-1.fc40", res.Removed[0].NVR)
	assert.Equal(t, []string{"bash-5.2.26-2.fc40"}, u.NVRs())
	assert.Equal(t, "bash-5.2.26-2.fc40", u.Title)
	assert.Equal(t, 0, u.Karma())
	assert.Equal(t, update.StatusPending, u.Status)
	assert.Equal(t, update.RequestTesting, u.Request)
	assert.Equal(t, []string{"f40-updates-candidate"}, f.dev.TagsOf("bash-5.2.26-1.fc40"))
	assert.Contains(t, f.dev.TagsOf("bash-5.2.26-2.fc40"), "f40-signing-pending")
	assert.Contains(t, descriptions(res.Caveats), "Builds changed.  Your update is being sent back to testing.")
	assert.Contains(t, descriptions(res.Caveats),
		"packager edited this update.\n\nNew build(s):\n\n- bash-5.2.26-2.fc40"+
			"\n\nRemoved build(s):\n\n- bash-5.2.26-1.fc40\n\nKarma has been reset.")
	assert.NotNil(t, u.DateModified)
	topics := f.events.Topics()
	assert.Equal(t, notify.TopicEdit, topics[len(topics)-1])
}

func TestEdit_MetadataOnly(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	u := f.newUpdate(update.StatusTesting, update.RequestNone, 3, "bash-5.2.26-1.fc40")
	u.StableDays = 10
	u.Locked = true
	notes := "better notes"
	sec := update.TypeSecurity

	res, err := f.m.Edit(ctx, u, lifecycle.EditInput{Notes: &notes, Type: &sec, StableKarma: intPtr(5)}, "packager")
	require.NoError(t, err)
	assert.Empty(t, res.Caveats)
	assert.Empty(t, res.Removed)
	assert.Equal(t, "better notes", u.Notes)
	assert.Equal(t, update.TypeSecurity, u.Type)
	assert.Equal(t, 5, *u.StableKarma)
	assert.Equal(t, update.StatusTesting, u.Status)
	assert.Empty(t, f.dev.Calls())
}

func TestEdit_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("locked update", func(t *testing.T) {
		f := setup(t)
		u := f.newUpdate(update.StatusTesting, update.RequestNone, 3, "bash-5.2.26-1.fc40")
		u.Locked = true

		_, err := f.m.Edit(ctx, u, lifecycle.EditInput{
			Builds: []update.Build{u.Builds[0], build(t, "zsh-5.9-1.fc40")},
		}, "packager")
		require.Error(t, err)
		assert.True(t, update.IsLocked(err))
		assert.Equal(t, "Can't add builds to a locked update", err.Error())

		_, err = f.m.Edit(ctx, u, lifecycle.EditInput{Builds: []update.Build{build(t, "zsh-5.9-1.fc40")}}, "packager")
		require.Error(t, err)
		assert.Equal(t, "Can't add builds to a locked update", err.Error())
		assert.Len(t, u.Builds, 1)
	})

	t.Run("stable update", func(t *testing.T) {
		f := setup(t)
		u := f.newUpdate(update.StatusStable, update.RequestNone, 20, "bash-5.2.26-1.fc40")

		_, err := f.m.Edit(ctx, u, lifecycle.EditInput{Builds: []update.Build{build(t, "bash-5.2.26-2.fc40")}}, "packager")
		require.Error(t, err)
		assert.Equal(t, "Can't unpush a stable update", err.Error())
	})
}

func TestApproveTesting(t *testing.T) {
	ctx := context.Background()

	t.Run("too early", func(t *testing.T) {
		f := setup(t)
		u := f.newUpdate(update.StatusTesting, update.RequestNone, 3, "bash-5.2.26-1.fc40")

		require.NoError(t, f.m.ApproveTesting(ctx, u))
		assert.Nil(t, u.DateApproved)
		assert.Empty(t, u.Comments)
	})

	t.Run("comments once", func(t *testing.T) {
		f := setup(t)
		u := f.newUpdate(update.StatusTesting, update.RequestNone, 8, "bash-5.2.26-1.fc40")

		require.NoError(t, f.m.ApproveTesting(ctx, u))
		require.NoError(t, f.m.ApproveTesting(ctx, u))
		require.Len(t, u.Comments, 1)
		assert.Equal(t, "This update has reached 7 days in testing and can be pushed to stable now if the maintainer wishes",
			u.Comments[0].Text)
		assert.Equal(t, now, *u.DateApproved)
		assert.Equal(t, []string{notify.TopicRequirementsMet}, f.events.Topics())
		assert.True(t, f.m.Evaluator().MetTestingRequirements(u))
	})

	t.Run("autotime requests stable", func(t *testing.T) {
		f := setup(t)
		u := f.newUpdate(update.StatusTesting, update.RequestNone, 8, "bash-5.2.26-1.fc40")
		u.Autotime = true
		u.StableDays = 7

		require.NoError(t, f.m.ApproveTesting(ctx, u))
		assert.Equal(t, update.RequestStable, u.Request)
		assert.Equal(t, update.SystemUser, lastComment(u).Author)
	})

	t.Run("autotime pushes side tag release directly", func(t *testing.T) {
		f := setup(t)
		u := f.newUpdate(update.StatusTesting, update.RequestNone, 8, "bash-5.2.26-1.fc40")
		u.Release.ComposedByBodhi = false
		u.Autotime = true
		u.StableDays = 7

		require.NoError(t, f.m.ApproveTesting(ctx, u))
		assert.Equal(t, update.StatusStable, u.Status)
		assert.True(t, u.Pushed)
		assert.NotNil(t, u.DateStable)
		assert.Contains(t, f.dev.TagsOf("bash-5.2.26-1.fc40"), "f40-updates")
	})

	t.Run("newer build already stable", func(t *testing.T) {
		f := setup(t)
		u := f.newUpdate(update.StatusTesting, update.RequestNone, 8, "bash-5.2.26-1.fc40")
		u.Release.ComposedByBodhi = false
		u.Autotime = true
		u.StableDays = 7
		f.dev.AddBuild("bash-5.2.27-1.fc40", nil, "f40-updates")

		require.NoError(t, f.m.ApproveTesting(ctx, u))
		assert.Equal(t, update.StatusObsolete, u.Status)
		assert.Contains(t, lastComment(u).Text, "bash-5.2.26-1.fc40 have a more recent build in koji's f40-updates tag")
		assert.NotContains(t, f.dev.TagsOf("bash-5.2.26-1.fc40"), "f40-updates")
	})
}

func TestMarkPushed(t *testing.T) {
	ctx := context.Background()

	t.Run("testing", func(t *testing.T) {
		f := setup(t)
		u := f.newUpdate(update.StatusPending, update.RequestTesting, -1, "bash-5.2.26-1.fc40")
		f.dev.AddBuild("bash-5.2.26-1.fc40", nil, "f40-updates-candidate", "f40-updates-testing-pending")
		lifecycle.Lock(u, 3)

		require.NoError(t, f.m.MarkPushed(ctx, u))
		assert.Equal(t, update.StatusTesting, u.Status)
		assert.Equal(t, update.RequestNone, u.Request)
		assert.Equal(t, now, *u.DateTesting)
		assert.True(t, u.Pushed)
		assert.False(t, u.Locked)
		assert.Nil(t, u.ComposeID)
		assert.Equal(t, []string{"f40-updates-testing"}, f.dev.TagsOf("bash-5.2.26-1.fc40"))
		assert.Equal(t, "This update has been pushed to testing.", lastComment(u).Text)
	})

	t.Run("stable", func(t *testing.T) {
		f := setup(t)
		u := f.newUpdate(update.StatusTesting, update.RequestStable, 8, "bash-5.2.26-1.fc40")
		f.dev.AddBuild("bash-5.2.26-1.fc40", nil, "f40-updates-testing", "f40-updates-pending")

		require.NoError(t, f.m.MarkPushed(ctx, u))
		assert.Equal(t, update.StatusStable, u.Status)
		assert.NotNil(t, u.DateStable)
		assert.Equal(t, []string{"f40-updates"}, f.dev.TagsOf("bash-5.2.26-1.fc40"))
	})

	t.Run("no request", func(t *testing.T) {
		f := setup(t)
		u := f.newUpdate(update.StatusTesting, update.RequestNone, 8, "bash-5.2.26-1.fc40")

		require.Error(t, f.m.MarkPushed(ctx, u))
		assert.Empty(t, f.dev.Calls())
	})

	t.Run("obsolete request leaves tags alone", func(t *testing.T) {
		f := setup(t)
		u := f.newUpdate(update.StatusTesting, update.RequestObsolete, 8, "bash-5.2.26-1.fc40")

		err := f.m.MarkPushed(ctx, u)
		require.Error(t, err)
		assert.True(t, update.IsValidation(err))
		assert.Empty(t, f.dev.Calls())
		assert.Equal(t, update.StatusTesting, u.Status)
		assert.Equal(t, []string{"f40-updates-testing"}, f.dev.TagsOf("bash-5.2.26-1.fc40"))
	})
}
