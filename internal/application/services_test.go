package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/bodhi-go/internal/application/lifecycle"
	"github.com/linskybing/bodhi-go/internal/buildsys"
	"github.com/linskybing/bodhi-go/internal/config"
	"github.com/linskybing/bodhi-go/internal/domain/compose"
	"github.com/linskybing/bodhi-go/internal/domain/override"
	"github.com/linskybing/bodhi-go/internal/domain/release"
	"github.com/linskybing/bodhi-go/internal/domain/update"
	"github.com/linskybing/bodhi-go/internal/domain/user"
	"github.com/linskybing/bodhi-go/internal/notify"
	"github.com/linskybing/bodhi-go/internal/repository"
	"github.com/linskybing/bodhi-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testNow = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

func testRelease() *release.Release {
	return &release.Release{
		ID:                1,
		Name:              "F40",
		IDPrefix:          "FEDORA",
		DistTag:           "f40",
		StableTag:         "f40-updates",
		TestingTag:        "f40-updates-testing",
		CandidateTag:      "f40-updates-candidate",
		PendingSigningTag: "f40-signing-pending",
		PendingTestingTag: "f40-updates-testing-pending",
		PendingStableTag:  "f40-updates-pending",
		OverrideTag:       "f40-override",
		State:             release.StateCurrent,
		ComposedByBodhi:   true,
	}
}

// --------------------- Setup ---------------------
type harness struct {
	updates   *mock.MockUpdateRepo
	releases  *mock.MockReleaseRepo
	users     *mock.MockUserRepo
	composes  *mock.MockComposeRepo
	overrides *mock.MockOverrideRepo
	dev       *buildsys.Dev
	events    *notify.Buffer
	svc       *Services
}

func setupServices(t *testing.T) *harness {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	h := &harness{
		updates:   mock.NewMockUpdateRepo(ctrl),
		releases:  mock.NewMockReleaseRepo(ctrl),
		users:     mock.NewMockUserRepo(ctrl),
		composes:  mock.NewMockComposeRepo(ctrl),
		overrides: mock.NewMockOverrideRepo(ctrl),
		dev:       buildsys.NewDev(),
		events:    notify.NewBuffer(),
	}
	known := map[string]bool{}
	for _, tag := range testRelease().Tags() {
		known[tag] = true
	}
	h.releases.EXPECT().KnownTags().Return(known, nil).AnyTimes()

	repos := &repository.Repos{
		Update:   h.updates,
		Release:  h.releases,
		User:     h.users,
		Compose:  h.composes,
		Override: h.overrides,
	}
	clock := func() time.Time { return testNow }
	machine := lifecycle.NewMachine(config.DefaultPolicy(), h.dev, nil, notify.Discard{}, lifecycle.WithClock(clock))
	h.svc = New(repos, machine, h.events)
	h.svc.Update.now = clock
	h.svc.Compose.now = clock
	h.svc.Override.now = clock
	return h
}

// testingUpdate is a testing update of F40 whose builds sit in the testing tag.
func (h *harness) testingUpdate(alias string, days int, nvrs ...string) *update.Update {
	tested := testNow.AddDate(0, 0, -days)
	u := &update.Update{
		ID:          10,
		Alias:       alias,
		Status:      update.StatusTesting,
		Submitter:   "packager",
		Autokarma:   true,
		ReleaseID:   1,
		Release:     *testRelease(),
		DateTesting: &tested,
	}
	for _, nvr := range nvrs {
		b, _ := update.NewBuild(nvr, update.ContentRPM)
		u.Builds = append(u.Builds, b)
		h.dev.AddBuild(nvr, nil, "f40-updates-testing")
	}
	u.Title = u.BuildTitle()
	return u
}

func topics(events []notify.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Topic)
	}
	return out
}

var packager = Actor{Name: "packager", Groups: []string{"packager"}}

// --------------------- UpdateService ---------------------
func TestUpdateService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("submits to testing and publishes after commit", func(t *testing.T) {
		h := setupServices(t)
		nvr := "bash-5.2.26-1.fc40"
		h.dev.AddBuild(nvr, nil, "f40-updates-candidate")

		h.users.EXPECT().EnsureUser("packager", []string{"packager"}).Return(&user.User{Name: "packager"}, nil)
		h.releases.EXPECT().GetByName("F40").Return(testRelease(), nil)
		h.updates.EXPECT().GetBuildByNVR(nvr).Return(nil, gorm.ErrRecordNotFound)
		h.overrides.EXPECT().GetByNVR(nvr).Return(nil, gorm.ErrRecordNotFound)
		h.updates.EXPECT().GetOrCreateBugs([]int{1234}).Return([]update.Bug{{BugID: 1234}}, nil)
		h.updates.EXPECT().FindObsoletionCandidates(uint(1), []string{"bash"}, uint(0)).Return(nil, nil)
		h.updates.EXPECT().Create(gomock.Any()).Return(nil)

		res, err := h.svc.Update.Create(ctx, update.CreateUpdateDTO{
			Builds:  []string{nvr},
			Release: "F40",
			Notes:   "fixes a crash",
			Bugs:    []int{1234},
		}, packager)
		require.NoError(t, err)

		u := res.Update
		assert.Equal(t, update.StatusPending, u.Status)
		assert.Equal(t, update.RequestTesting, u.Request)
		assert.Equal(t, update.TypeBugfix, u.Type)
		assert.True(t, u.Autokarma)
		assert.Equal(t, 7, u.StableDays)
		assert.Len(t, u.Bugs, 1)
		assert.Contains(t, h.dev.TagsOf(nvr), "f40-signing-pending")
		assert.Equal(t, []string{notify.TopicRequestTesting, notify.TopicCreate}, topics(h.events.Events()))
	})

	t.Run("unknown release", func(t *testing.T) {
		h := setupServices(t)
		h.users.EXPECT().EnsureUser("packager", gomock.Any()).Return(&user.User{Name: "packager"}, nil)
		h.releases.EXPECT().GetByName("F99").Return(nil, gorm.ErrRecordNotFound)

		_, err := h.svc.Update.Create(ctx, update.CreateUpdateDTO{Builds: []string{"bash-5.2.26-1.fc99"}, Release: "F99"}, packager)
		assert.ErrorIs(t, err, ErrReleaseNotFound)
	})

	t.Run("build already in an update", func(t *testing.T) {
		h := setupServices(t)
		owner := uint(3)
		nvr := "bash-5.2.26-1.fc40"
		h.users.EXPECT().EnsureUser("packager", gomock.Any()).Return(&user.User{Name: "packager"}, nil)
		h.releases.EXPECT().GetByName("F40").Return(testRelease(), nil)
		h.updates.EXPECT().GetBuildByNVR(nvr).Return(&update.Build{NVR: nvr, UpdateID: &owner}, nil)

		_, err := h.svc.Update.Create(ctx, update.CreateUpdateDTO{Builds: []string{nvr}, Release: "F40"}, packager)
		require.Error(t, err)
		assert.True(t, update.IsValidation(err))
		assert.Contains(t, err.Error(), "Update for bash-5.2.26-1.fc40 already exists")
	})

	t.Run("build not in the candidate tag", func(t *testing.T) {
		h := setupServices(t)
		nvr := "bash-5.2.26-1.fc40"
		h.dev.AddBuild(nvr, nil, "f40-updates")
		h.users.EXPECT().EnsureUser("packager", gomock.Any()).Return(&user.User{Name: "packager"}, nil)
		h.releases.EXPECT().GetByName("F40").Return(testRelease(), nil)
		h.updates.EXPECT().GetBuildByNVR(nvr).Return(nil, gorm.ErrRecordNotFound)

		_, err := h.svc.Update.Create(ctx, update.CreateUpdateDTO{Builds: []string{nvr}, Release: "F40"}, packager)
		require.Error(t, err)
		assert.True(t, update.IsValidation(err))
	})

	t.Run("failed insert drops events", func(t *testing.T) {
		h := setupServices(t)
		nvr := "bash-5.2.26-1.fc40"
		h.dev.AddBuild(nvr, nil, "f40-updates-candidate")
		h.users.EXPECT().EnsureUser("packager", gomock.Any()).Return(&user.User{Name: "packager"}, nil)
		h.releases.EXPECT().GetByName("F40").Return(testRelease(), nil)
		h.updates.EXPECT().GetBuildByNVR(nvr).Return(nil, gorm.ErrRecordNotFound)
		h.overrides.EXPECT().GetByNVR(nvr).Return(nil, gorm.ErrRecordNotFound)
		h.updates.EXPECT().GetOrCreateBugs(gomock.Any()).Return(nil, nil)
		h.updates.EXPECT().FindObsoletionCandidates(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
		h.updates.EXPECT().Create(gomock.Any()).Return(errors.New("db down"))

		_, err := h.svc.Update.Create(ctx, update.CreateUpdateDTO{Builds: []string{nvr}, Release: "F40"}, packager)
		assert.ErrorContains(t, err, "db down")
		assert.Empty(t, h.events.Events())
	})
}

func TestUpdateService_SetRequest(t *testing.T) {
	ctx := context.Background()
	h := setupServices(t)
	nvr := "bash-5.2.26-1.fc40"
	h.dev.AddBuild(nvr, nil, "f40-updates-candidate", "f40-signing-pending")
	b, _ := update.NewBuild(nvr, update.ContentRPM)
	u := &update.Update{
		Alias:     "FEDORA-2024-abc",
		Status:    update.StatusPending,
		Request:   update.RequestTesting,
		Submitter: "packager",
		ReleaseID: 1,
		Release:   *testRelease(),
		Builds:    []update.Build{b},
	}

	h.updates.EXPECT().GetByAliasForUpdate("FEDORA-2024-abc").Return(u, nil)
	h.updates.EXPECT().Save(u).Return(nil)

	res, err := h.svc.Update.SetRequest(ctx, "FEDORA-2024-abc", update.RequestRevoke, packager)
	require.NoError(t, err)
	assert.Equal(t, update.RequestNone, res.Update.Request)
	assert.Equal(t, update.StatusUnpushed, res.Update.Status)
	assert.NotContains(t, h.dev.TagsOf(nvr), "f40-signing-pending")
	assert.Equal(t, []string{notify.TopicRequestRevoke}, topics(h.events.Events()))
}

func TestUpdateService_Comment(t *testing.T) {
	ctx := context.Background()
	h := setupServices(t)
	u := h.testingUpdate("FEDORA-2024-abc", 1, "bash-5.2.26-1.fc40")
	tester := Actor{Name: "tester"}

	h.updates.EXPECT().GetByAliasForUpdate("FEDORA-2024-abc").Return(u, nil)
	h.users.EXPECT().EnsureUser("tester", nil).Return(&user.User{ID: 4, Name: "tester"}, nil)
	h.updates.EXPECT().Save(u).Return(nil)

	c, caveats, err := h.svc.Update.Comment(ctx, "FEDORA-2024-abc", update.CommentDTO{
		Text:        "works for me",
		Karma:       1,
		BugFeedback: []update.FeedbackInput{{BugID: 1234, Karma: 1}},
	}, tester)
	require.NoError(t, err)
	assert.Empty(t, caveats)
	assert.Equal(t, "tester", c.Author)
	assert.Equal(t, 1, c.Karma)
	assert.Equal(t, 1, u.Karma())
	assert.Equal(t, []string{notify.TopicComment}, topics(h.events.Events()))
}

func TestUpdateService_ApproveTestingUpdates(t *testing.T) {
	ctx := context.Background()
	h := setupServices(t)
	ready := h.testingUpdate("FEDORA-2024-ready", 8, "bash-5.2.26-1.fc40")

	h.updates.EXPECT().FindByStatusAndRequest(update.StatusTesting, update.RequestNone).
		Return([]update.Update{{Alias: "FEDORA-2024-gone"}, {Alias: "FEDORA-2024-ready"}}, nil)
	h.updates.EXPECT().GetByAliasForUpdate("FEDORA-2024-gone").Return(nil, gorm.ErrRecordNotFound)
	h.updates.EXPECT().GetByAliasForUpdate("FEDORA-2024-ready").Return(ready, nil)
	h.updates.EXPECT().Save(ready).Return(nil)

	require.NoError(t, h.svc.Update.ApproveTestingUpdates(ctx))
	require.NotNil(t, ready.DateApproved)
	require.NotEmpty(t, ready.Comments)
	assert.Contains(t, ready.Comments[len(ready.Comments)-1].Text, "reached 7 days in testing")
	assert.Equal(t, []string{notify.TopicRequirementsMet}, topics(h.events.Events()))
}

func TestUpdateService_DequeueBatchedUpdates(t *testing.T) {
	ctx := context.Background()
	h := setupServices(t)
	u := h.testingUpdate("FEDORA-2024-batch", 8, "bash-5.2.26-1.fc40")
	u.Request = update.RequestBatched

	h.updates.EXPECT().FindByRequest(update.RequestBatched).Return([]update.Update{{Alias: u.Alias}}, nil)
	h.updates.EXPECT().GetByAliasForUpdate(u.Alias).Return(u, nil)
	h.updates.EXPECT().Save(u).Return(nil)

	require.NoError(t, h.svc.Update.DequeueBatchedUpdates(ctx))
	assert.Equal(t, update.RequestStable, u.Request)
	assert.Contains(t, h.dev.TagsOf("bash-5.2.26-1.fc40"), "f40-updates-pending")
	assert.Equal(t, []string{notify.TopicRequestStable}, topics(h.events.Events()))
}

// --------------------- OverrideService ---------------------
func TestOverrideService_Create(t *testing.T) {
	ctx := context.Background()
	nvr := "glibc-2.39-5.fc40"

	t.Run("tags the build into the buildroot", func(t *testing.T) {
		h := setupServices(t)
		h.dev.AddBuild(nvr, nil, "f40-updates-candidate")
		h.releases.EXPECT().List().Return([]release.Release{*testRelease()}, nil)
		h.overrides.EXPECT().GetByNVR(nvr).Return(nil, gorm.ErrRecordNotFound)
		h.overrides.EXPECT().Create(gomock.Any()).Return(nil)

		o, err := h.svc.Override.Create(ctx, override.CreateOverrideDTO{
			NVR:            nvr,
			Notes:          "needed for the mass rebuild",
			ExpirationDate: testNow.AddDate(0, 0, 7),
		}, packager)
		require.NoError(t, err)
		assert.Equal(t, uint(1), o.ReleaseID)
		assert.Equal(t, "packager", o.Submitter)
		assert.Contains(t, h.dev.TagsOf(nvr), "f40-override")
		assert.Equal(t, []string{notify.TopicOverrideTag}, topics(h.events.Events()))
	})

	t.Run("re-activates an expired override", func(t *testing.T) {
		h := setupServices(t)
		h.dev.AddBuild(nvr, nil, "f40-updates-candidate")
		expired := testNow.AddDate(0, 0, -1)
		existing := &override.BuildrootOverride{ID: 2, BuildNVR: nvr, ReleaseID: 1, ExpiredDate: &expired}
		h.releases.EXPECT().List().Return([]release.Release{*testRelease()}, nil)
		h.overrides.EXPECT().GetByNVR(nvr).Return(existing, nil)
		h.overrides.EXPECT().Update(existing).Return(nil)

		o, err := h.svc.Override.Create(ctx, override.CreateOverrideDTO{NVR: nvr, ExpirationDate: testNow.AddDate(0, 0, 3)}, packager)
		require.NoError(t, err)
		assert.False(t, o.Expired())
		assert.Contains(t, h.dev.TagsOf(nvr), "f40-override")
	})

	t.Run("expiration out of range", func(t *testing.T) {
		h := setupServices(t)
		_, err := h.svc.Override.Create(ctx, override.CreateOverrideDTO{NVR: nvr, ExpirationDate: testNow.AddDate(0, 0, 40)}, packager)
		assert.True(t, update.IsValidation(err))

		_, err = h.svc.Override.Create(ctx, override.CreateOverrideDTO{NVR: nvr, ExpirationDate: testNow.Add(-time.Hour)}, packager)
		assert.True(t, update.IsValidation(err))
	})

	t.Run("build without a release tag", func(t *testing.T) {
		h := setupServices(t)
		h.dev.AddBuild(nvr, nil, "rawhide")
		h.releases.EXPECT().List().Return([]release.Release{*testRelease()}, nil)

		_, err := h.svc.Override.Create(ctx, override.CreateOverrideDTO{NVR: nvr, ExpirationDate: testNow.AddDate(0, 0, 3)}, packager)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Cannot find release associated with build: glibc-2.39-5.fc40")
	})
}

func TestOverrideService_ExpireDue(t *testing.T) {
	ctx := context.Background()
	h := setupServices(t)
	nvr := "glibc-2.39-5.fc40"
	h.dev.AddBuild(nvr, nil, "f40-updates-candidate", "f40-override")
	o := &override.BuildrootOverride{ID: 2, BuildNVR: nvr, ReleaseID: 1, ExpirationDate: testNow.AddDate(0, 0, -1)}

	h.overrides.EXPECT().FindExpiring(testNow).Return([]override.BuildrootOverride{*o}, nil)
	h.overrides.EXPECT().GetByNVR(nvr).Return(o, nil)
	h.releases.EXPECT().GetByID(uint(1)).Return(testRelease(), nil)
	h.overrides.EXPECT().Update(o).Return(nil)

	require.NoError(t, h.svc.Override.ExpireDue(ctx))
	assert.True(t, o.Expired())
	assert.Equal(t, []string{"f40-updates-candidate"}, h.dev.TagsOf(nvr))
	assert.Equal(t, []string{notify.TopicOverrideUntag}, topics(h.events.Events()))
}

// --------------------- ComposeService ---------------------
func TestComposeService_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("locks unlocked updates", func(t *testing.T) {
		h := setupServices(t)
		h.releases.EXPECT().GetByName("F40").Return(testRelease(), nil)
		h.composes.EXPECT().Get(uint(1), "stable").Return(nil, gorm.ErrRecordNotFound)
		h.updates.EXPECT().FindByReleaseAndRequest(uint(1), update.RequestStable).Return([]update.Update{
			{Alias: "FEDORA-2024-a", Request: update.RequestStable},
			{Alias: "FEDORA-2024-b", Request: update.RequestStable, Locked: true},
		}, nil)
		h.composes.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *compose.Compose) error {
			c.ID = 5
			return nil
		})
		var locked *update.Update
		h.updates.EXPECT().Save(gomock.Any()).DoAndReturn(func(u *update.Update) error {
			locked = u
			return nil
		})

		view, err := h.svc.Compose.Start(ctx, compose.StartComposeDTO{Release: "F40", Request: "stable"})
		require.NoError(t, err)
		assert.Equal(t, []string{"FEDORA-2024-a"}, view.Updates)
		assert.Equal(t, compose.StateRequested, view.State)
		require.NotNil(t, locked)
		assert.True(t, locked.Locked)
		require.NotNil(t, locked.ComposeID)
		assert.Equal(t, uint(5), *locked.ComposeID)
		assert.Equal(t, []string{notify.TopicComposeStart}, topics(h.events.Events()))
	})

	t.Run("already running", func(t *testing.T) {
		h := setupServices(t)
		h.releases.EXPECT().GetByName("F40").Return(testRelease(), nil)
		h.composes.EXPECT().Get(uint(1), "testing").Return(&compose.Compose{ID: 5}, nil)

		_, err := h.svc.Compose.Start(ctx, compose.StartComposeDTO{Release: "F40", Request: "testing"})
		assert.ErrorIs(t, err, ErrComposeExists)
	})

	t.Run("bad request", func(t *testing.T) {
		h := setupServices(t)
		_, err := h.svc.Compose.Start(ctx, compose.StartComposeDTO{Release: "F40", Request: "revoke"})
		assert.True(t, update.IsValidation(err))
	})
}

func TestComposeService_UpdateState(t *testing.T) {
	ctx := context.Background()

	t.Run("success marks updates pushed", func(t *testing.T) {
		h := setupServices(t)
		nvr := "bash-5.2.26-1.fc40"
		u := h.testingUpdate("FEDORA-2024-abc", 8, nvr)
		u.Request = update.RequestStable
		lifecycle.Lock(u, 5)
		h.dev.AddBuild(nvr, nil, "f40-updates-testing", "f40-updates-pending")

		h.releases.EXPECT().GetByName("F40").Return(testRelease(), nil)
		h.composes.EXPECT().Get(uint(1), "stable").Return(&compose.Compose{ID: 5, ReleaseID: 1, Request: "stable"}, nil)
		h.updates.EXPECT().FindByComposeID(uint(5)).Return([]update.Update{*u}, nil)
		var saved *update.Update
		h.updates.EXPECT().Save(gomock.Any()).DoAndReturn(func(x *update.Update) error {
			saved = x
			return nil
		})
		h.composes.EXPECT().Delete(uint(5)).Return(nil)

		_, err := h.svc.Compose.UpdateState(ctx, "F40", "stable", compose.StateDTO{State: compose.StateSuccess})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, update.StatusStable, saved.Status)
		assert.Equal(t, update.RequestNone, saved.Request)
		assert.False(t, saved.Locked)
		assert.Equal(t, []string{"f40-updates"}, h.dev.TagsOf(nvr))

		events := h.events.Events()
		require.Len(t, events, 1)
		assert.Equal(t, notify.TopicComposeComplete, events[0].Topic)
		assert.Equal(t, true, events[0].Body["success"])
	})

	t.Run("negative karma during the compose does not break the push", func(t *testing.T) {
		h := setupServices(t)
		nvr := "bash-5.2.26-1.fc40"
		u := h.testingUpdate("FEDORA-2024-abc", 0, nvr)
		u.Status = update.StatusPending
		u.Request = update.RequestTesting
		u.DateTesting = nil
		unstable := -1
		u.UnstableKarma = &unstable
		lifecycle.Lock(u, 5)
		h.dev.AddBuild(nvr, nil, "f40-updates-candidate", "f40-updates-testing-pending")

		h.updates.EXPECT().GetByAliasForUpdate("FEDORA-2024-abc").Return(u, nil)
		h.users.EXPECT().EnsureUser("tester", nil).Return(&user.User{ID: 4, Name: "tester"}, nil)
		h.updates.EXPECT().Save(u).Return(nil)

		_, _, err := h.svc.Update.Comment(ctx, "FEDORA-2024-abc", update.CommentDTO{Text: "crashes", Karma: -1}, Actor{Name: "tester"})
		require.NoError(t, err)
		assert.Equal(t, update.StatusPending, u.Status)
		assert.Equal(t, update.RequestTesting, u.Request)
		assert.True(t, u.Locked)

		h.releases.EXPECT().GetByName("F40").Return(testRelease(), nil)
		h.composes.EXPECT().Get(uint(1), "testing").Return(&compose.Compose{ID: 5, ReleaseID: 1, Request: "testing"}, nil)
		h.updates.EXPECT().FindByComposeID(uint(5)).Return([]update.Update{*u}, nil)
		var saved *update.Update
		h.updates.EXPECT().Save(gomock.Any()).DoAndReturn(func(x *update.Update) error {
			saved = x
			return nil
		})
		h.composes.EXPECT().Delete(uint(5)).Return(nil)

		_, err = h.svc.Compose.UpdateState(ctx, "F40", "testing", compose.StateDTO{State: compose.StateSuccess})
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, update.StatusTesting, saved.Status)
		assert.Equal(t, update.RequestNone, saved.Request)
		assert.False(t, saved.Locked)
		assert.Equal(t, []string{"f40-updates-testing"}, h.dev.TagsOf(nvr))
		assert.Equal(t, []string{notify.TopicComment, notify.TopicComposeComplete}, topics(h.events.Events()))
	})

	t.Run("failure keeps the compose", func(t *testing.T) {
		h := setupServices(t)
		c := &compose.Compose{ID: 5, ReleaseID: 1, Request: "testing"}
		h.releases.EXPECT().GetByName("F40").Return(testRelease(), nil)
		h.composes.EXPECT().Get(uint(1), "testing").Return(c, nil)
		h.updates.EXPECT().FindByComposeID(uint(5)).Return([]update.Update{{Alias: "FEDORA-2024-abc", Locked: true}}, nil)
		h.composes.EXPECT().Update(c).Return(nil)

		view, err := h.svc.Compose.UpdateState(ctx, "F40", "testing", compose.StateDTO{
			State:        compose.StateFailed,
			Checkpoints:  map[string]bool{"determine_and_perform_tag_actions": true},
			ErrorMessage: "pungi exited 1",
		})
		require.NoError(t, err)
		assert.Equal(t, compose.StateFailed, view.State)
		assert.Equal(t, "pungi exited 1", c.ErrorMessage)
		assert.True(t, c.Checkpoint("determine_and_perform_tag_actions"))
		assert.Equal(t, false, h.events.Events()[0].Body["success"])
	})

	t.Run("progress only", func(t *testing.T) {
		h := setupServices(t)
		c := &compose.Compose{ID: 5, ReleaseID: 1, Request: "testing"}
		h.releases.EXPECT().GetByName("F40").Return(testRelease(), nil)
		h.composes.EXPECT().Get(uint(1), "testing").Return(c, nil)
		h.updates.EXPECT().FindByComposeID(uint(5)).Return(nil, nil)
		h.composes.EXPECT().Update(c).Return(nil)

		_, err := h.svc.Compose.UpdateState(ctx, "F40", "testing", compose.StateDTO{State: compose.StatePunging})
		require.NoError(t, err)
		assert.Empty(t, h.events.Events())
	})

	t.Run("unknown state", func(t *testing.T) {
		h := setupServices(t)
		_, err := h.svc.Compose.UpdateState(ctx, "F40", "testing", compose.StateDTO{State: "exploded"})
		assert.True(t, update.IsValidation(err))
	})
}

func TestComposeService_Abort(t *testing.T) {
	h := setupServices(t)
	h.releases.EXPECT().GetByName("F40").Return(testRelease(), nil)
	h.composes.EXPECT().Get(uint(1), "stable").Return(&compose.Compose{ID: 5}, nil)
	id := uint(5)
	h.updates.EXPECT().FindByComposeID(uint(5)).Return([]update.Update{{Alias: "FEDORA-2024-abc", Locked: true, ComposeID: &id}}, nil)
	h.updates.EXPECT().Save(gomock.Any()).DoAndReturn(func(u *update.Update) error {
		assert.False(t, u.Locked)
		assert.Nil(t, u.ComposeID)
		return nil
	})
	h.composes.EXPECT().Delete(uint(5)).Return(nil)

	require.NoError(t, h.svc.Compose.Abort(context.Background(), "F40", "stable"))
}

// --------------------- UserService ---------------------
func TestUserService_Identify(t *testing.T) {
	h := setupServices(t)

	_, err := h.svc.User.Identify(Actor{})
	assert.ErrorIs(t, err, ErrUserRequired)

	h.users.EXPECT().EnsureUser("tester", []string{"proventesters"}).Return(&user.User{Name: "tester"}, nil)
	u, err := h.svc.User.Identify(Actor{Name: "tester", Groups: []string{"proventesters"}})
	require.NoError(t, err)
	assert.Equal(t, "tester", u.Name)

	h.users.EXPECT().GetByName("ghost").Return(nil, gorm.ErrRecordNotFound)
	_, err = h.svc.User.Get("ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateService_SetRequestForbidden(t *testing.T) {
	h := setupServices(t)
	u := h.testingUpdate("FEDORA-2024-abc", 1, "bash-5.2.26-1.fc40")
	h.updates.EXPECT().GetByAliasForUpdate("FEDORA-2024-abc").Return(u, nil).Times(2)
	h.updates.EXPECT().Save(u).Return(nil)

	_, err := h.svc.Update.SetRequest(context.Background(), u.Alias, update.RequestUnpush, Actor{Name: "someone", Groups: []string{"packager"}})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, update.StatusTesting, u.Status)

	admin := Actor{Name: "admin", Groups: []string{"proventesters"}}
	_, err = h.svc.Update.SetRequest(context.Background(), u.Alias, update.RequestUnpush, admin)
	require.NoError(t, err)
	assert.Equal(t, update.StatusUnpushed, u.Status)
}
