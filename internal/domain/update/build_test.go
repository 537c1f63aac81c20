package update

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitNVR(t *testing.T) {
	name, version, rel, err := SplitNVR("python-requests-2.31.0-4.fc40")
	require.NoError(t, err)
	assert.Equal(t, "python-requests", name)
	assert.Equal(t, "2.31.0", version)
	assert.Equal(t, "4.fc40", rel)

	_, _, _, err = SplitNVR("bash")
	assert.Error(t, err)
	_, _, _, err = SplitNVR("bash-5.2")
	assert.Error(t, err)
}

func TestCompareNVR(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"pkg-2.0-1.fc40", "pkg-2.0-2.fc40", -1},
		{"pkg-2.0-10.fc40", "pkg-2.0-9.fc40", 1},
		{"pkg-1.10-1.fc40", "pkg-1.9-1.fc40", 1},
		{"pkg-2.0-1.fc40", "pkg-2.0-1.fc40", 0},
	}
	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			got, err := CompareNVR(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateBuildTypes(t *testing.T) {
	rpm, _ := NewBuild("bash-5.2.26-1.fc40", "")
	assert.Equal(t, ContentRPM, rpm.Type)
	assert.Equal(t, "bash", rpm.Package)
	mod, _ := NewBuild("nodejs-20-4020.fc40", ContentModule)

	assert.NoError(t, ValidateBuildTypes([]Build{rpm}))
	assert.ErrorIs(t, ValidateBuildTypes(nil), ErrNoBuilds)
	assert.ErrorIs(t, ValidateBuildTypes([]Build{rpm, mod}), ErrMixedContentTypes)
}

func TestContentTypeFromExtra(t *testing.T) {
	assert.Equal(t, ContentRPM, ContentTypeFromExtra(nil))
	assert.Equal(t, ContentModule, ContentTypeFromExtra(map[string]any{"typeinfo": map[string]any{"module": map[string]any{}}}))
	assert.Equal(t, ContentFlatpak, ContentTypeFromExtra(map[string]any{"image": map[string]any{"flatpak": true}}))
	assert.Equal(t, ContentContainer, ContentTypeFromExtra(map[string]any{"container_koji_task_id": 1}))
}

func TestNewAliasAndTitle(t *testing.T) {
	alias := NewAlias("FEDORA-EPEL", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	assert.Regexp(t, `^FEDORA-EPEL-2024-[0-9a-f]{10}$`, alias)

	u := &Update{}
	for _, nvr := range []string{"zsh-5.9-1.fc40", "bash-5.2.26-1.fc40", "zsh-5.9-2.fc40"} {
		b, _ := NewBuild(nvr, ContentRPM)
		u.Builds = append(u.Builds, b)
	}
	assert.Equal(t, "bash-5.2.26-1.fc40 zsh-5.9-1.fc40 zsh-5.9-2.fc40", u.BuildTitle())
	assert.Equal(t, []string{"zsh", "bash"}, u.PackageNames())
	assert.True(t, u.HasPackage("bash"))
	assert.NotNil(t, u.BuildByNVR("zsh-5.9-2.fc40"))
}

func TestGatingStatusPassed(t *testing.T) {
	for _, s := range []TestGatingStatus{GatingNone, GatingPassed, GatingIgnored} {
		assert.True(t, s.Passed(), s)
	}
	for _, s := range []TestGatingStatus{GatingFailed, GatingQueued, GatingRunning, GatingWaiting} {
		assert.False(t, s.Passed(), s)
	}
}

func TestParseRequest(t *testing.T) {
	r, err := ParseRequest("batched")
	require.NoError(t, err)
	assert.Equal(t, RequestBatched, r)
	_, err = ParseRequest("frozen")
	assert.Error(t, err)
}
