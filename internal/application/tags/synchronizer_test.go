package tags

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/bodhi-go/internal/buildsys"
	"github.com/linskybing/bodhi-go/internal/buildsys/mock"
	"github.com/linskybing/bodhi-go/internal/config"
	"github.com/linskybing/bodhi-go/internal/domain/release"
	"github.com/linskybing/bodhi-go/internal/domain/update"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f40() release.Release {
	return release.Release{
		Name:              "F40",
		IDPrefix:          "FEDORA",
		DistTag:           "f40",
		StableTag:         "f40-updates",
		TestingTag:        "f40-updates-testing",
		CandidateTag:      "f40-updates-candidate",
		PendingSigningTag: "f40-signing-pending",
		PendingTestingTag: "f40-updates-testing-pending",
		PendingStableTag:  "f40-updates-pending",
		State:             release.StateCurrent,
		ComposedByBodhi:   true,
	}
}

func withBuilds(nvrs ...string) *update.Update {
	u := &update.Update{Alias: "FEDORA-2024-1", Release: f40()}
	for _, nvr := range nvrs {
		b, _ := update.NewBuild(nvr, update.ContentRPM)
		u.Builds = append(u.Builds, b)
	}
	return u
}

func TestAddRemoveTag_Idempotent(t *testing.T) {
	ctx := context.Background()
	dev := buildsys.NewDev()
	dev.AddBuild("bash-5.2.26-1.fc40", nil, "f40-updates-candidate", "f40-signing-pending")
	s := New(dev, config.DefaultPolicy())
	u := withBuilds("bash-5.2.26-1.fc40")

	require.NoError(t, s.AddTag(ctx, u, "f40-signing-pending"))
	require.NoError(t, s.AddTag(ctx, u, ""))
	assert.Empty(t, dev.Calls())

	require.NoError(t, s.RemoveTag(ctx, u, "f40-updates-testing"))
	require.NoError(t, s.RemoveTag(ctx, u, ""))
	assert.Empty(t, dev.Calls())

	require.NoError(t, s.RemoveTag(ctx, u, "f40-signing-pending"))
	require.NoError(t, s.RemoveTag(ctx, u, "f40-signing-pending"))
	assert.Equal(t, []string{"untagBuild f40-signing-pending bash-5.2.26-1.fc40"}, dev.Calls())
}

func TestUnpushBuild(t *testing.T) {
	ctx := context.Background()
	dev := buildsys.NewDev()
	dev.AddBuild("bash-5.2.26-1.fc40", nil, "f40-updates-testing", "f40-updates-pending", "f40-signing-pending")
	s := New(dev, config.DefaultPolicy())
	rel := f40()

	require.NoError(t, s.UnpushBuild(ctx, &rel, "bash-5.2.26-1.fc40"))
	assert.Equal(t, []string{"f40-updates-candidate"}, dev.TagsOf("bash-5.2.26-1.fc40"))

	calls := len(dev.Calls())
	require.NoError(t, s.UnpushBuild(ctx, &rel, "bash-5.2.26-1.fc40"))
	assert.Len(t, dev.Calls(), calls)
}

func TestUntag_OnlyKnownTags(t *testing.T) {
	ctx := context.Background()
	dev := buildsys.NewDev()
	dev.AddBuild("bash-5.2.26-1.fc40", nil, "f40-updates-testing", "some-private-tag")
	s := New(dev, config.DefaultPolicy())
	rel := f40()
	known := make(map[string]bool)
	for _, tag := range rel.Tags() {
		known[tag] = true
	}

	require.NoError(t, s.Untag(ctx, withBuilds("bash-5.2.26-1.fc40"), known))
	assert.Equal(t, []string{"some-private-tag"}, dev.TagsOf("bash-5.2.26-1.fc40"))
}

func TestPendingSigningTag(t *testing.T) {
	ctx := context.Background()

	t.Run("release tag", func(t *testing.T) {
		s := New(buildsys.NewDev(), config.DefaultPolicy())
		tag, err := s.PendingSigningTag(ctx, withBuilds("bash-5.2.26-1.fc40"))
		require.NoError(t, err)
		assert.Equal(t, "f40-signing-pending", tag)
	})

	t.Run("side tag before activation", func(t *testing.T) {
		dev := buildsys.NewDev()
		s := New(dev, config.DefaultPolicy())
		u := withBuilds("bash-5.2.26-1.fc40")
		u.FromTag = "f40-build-side-42"
		u.Release.ComposedByBodhi = false

		tag, err := s.PendingSigningTag(ctx, u)
		require.NoError(t, err)
		assert.Equal(t, "f40-build-side-42-signing-pending", tag)
		assert.Equal(t, []string{"createTag f40-build-side-42-signing-pending f40-build-side-42"}, dev.Calls())

		_, err = s.PendingSigningTag(ctx, u)
		require.NoError(t, err)
		assert.Len(t, dev.Calls(), 1)
	})
}

func TestHandleSideTags(t *testing.T) {
	ctx := context.Background()

	t.Run("before activation", func(t *testing.T) {
		dev := buildsys.NewDev()
		dev.AddBuild("bash-5.2.26-1.fc40", nil, "f40-build-side-42")
		s := New(dev, config.DefaultPolicy())
		u := withBuilds("bash-5.2.26-1.fc40")
		u.FromTag = "f40-build-side-42"
		u.Release.ComposedByBodhi = false

		require.NoError(t, s.HandleSideTags(ctx, u))
		assert.Equal(t, []string{
			"createTag f40-build-side-42-signing-pending f40-build-side-42",
			"createTag f40-build-side-42-testing-pending f40-build-side-42",
			"tagBuild f40-build-side-42-signing-pending bash-5.2.26-1.fc40",
		}, dev.Calls())
	})

	t.Run("after activation", func(t *testing.T) {
		dev := buildsys.NewDev()
		dev.AddBuild("bash-5.2.26-1.fc40", nil, "f40-build-side-42")
		s := New(dev, config.DefaultPolicy())
		u := withBuilds("bash-5.2.26-1.fc40")
		u.FromTag = "f40-build-side-42"

		require.NoError(t, s.HandleSideTags(ctx, u))
		assert.Equal(t, []string{
			"tagBuild f40-signing-pending bash-5.2.26-1.fc40",
			"removeSideTag f40-build-side-42",
		}, dev.Calls())
	})
}

func TestCleanupSideTags(t *testing.T) {
	ctx := context.Background()
	dev := buildsys.NewDev()
	dev.AddBuild("bash-5.2.26-1.fc40", nil, "f40-build-side-42", "f40-build-side-42-signing-pending", "f40-updates")
	s := New(dev, config.DefaultPolicy())
	u := withBuilds("bash-5.2.26-1.fc40")
	u.FromTag = "f40-build-side-42"

	require.NoError(t, s.CleanupSideTags(ctx, u))
	assert.Equal(t, []string{"f40-updates"}, dev.TagsOf("bash-5.2.26-1.fc40"))
	tag, err := dev.GetTag(ctx, "f40-build-side-42-signing-pending")
	require.NoError(t, err)
	assert.Nil(t, tag)
}

func TestBuildSystemErrorsPropagate(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	ctx := context.Background()

	client := mock.NewMockClient(ctrl)
	s := New(client, config.DefaultPolicy())
	u := withBuilds("bash-5.2.26-1.fc40")
	boom := errors.New("hub unavailable")

	client.EXPECT().ListTags(ctx, "bash-5.2.26-1.fc40").Return(nil, nil)
	client.EXPECT().TagBuild(ctx, "f40-signing-pending", "bash-5.2.26-1.fc40").Return(boom)
	assert.ErrorIs(t, s.AddTag(ctx, u, "f40-signing-pending"), boom)

	client.EXPECT().ListTags(ctx, "bash-5.2.26-1.fc40").Return([]buildsys.Tag{{Name: "f40-signing-pending"}}, nil)
	client.EXPECT().UntagBuild(ctx, "f40-signing-pending", "bash-5.2.26-1.fc40").Return(buildsys.ErrTagNotFound)
	assert.NoError(t, s.RemoveTag(ctx, u, "f40-signing-pending"))

	client.EXPECT().ListTags(ctx, "bash-5.2.26-1.fc40").Return(nil, boom)
	assert.ErrorIs(t, s.RemoveTag(ctx, u, "f40-signing-pending"), boom)
}
