package buildsys

import (
	"context"
	"errors"
)

var (
	ErrTagNotFound   = errors.New("tag not found")
	ErrBuildNotFound = errors.New("build not found")
)

type Tag struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Parent string `json:"parent,omitempty"`
}

// BuildInfo is what the build system knows about a finished build.
type BuildInfo struct {
	ID      int            `json:"id"`
	NVR     string         `json:"nvr"`
	Name    string         `json:"name"`
	Version string         `json:"version"`
	Release string         `json:"release"`
	Extra   map[string]any `json:"extra,omitempty"`
}

// Client is the subset of the build system API the update lifecycle drives.
// Calls are synchronous; errors are returned unchanged to the caller.
type Client interface {
	GetBuild(ctx context.Context, nvr string) (*BuildInfo, error)
	ListTags(ctx context.Context, nvr string) ([]Tag, error)
	TagBuild(ctx context.Context, tag, nvr string) error
	UntagBuild(ctx context.Context, tag, nvr string) error
	MoveBuild(ctx context.Context, from, to, nvr string) error
	// GetTag returns nil without error when the tag does not exist.
	GetTag(ctx context.Context, name string) (*Tag, error)
	CreateTag(ctx context.Context, name, parent string) error
	DeleteTag(ctx context.Context, name string) error
	RemoveSideTag(ctx context.Context, name string) error
	GetLatestBuilds(ctx context.Context, tag, pkg string) ([]BuildInfo, error)
}

// HasTag reports whether tag is among tags.
func HasTag(tags []Tag, tag string) bool {
	for _, t := range tags {
		if t.Name == tag {
			return true
		}
	}
	return false
}
