package buildsys

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Dev is an in-memory build system for local runs and tests. It keeps tag
// membership per build and records every mutating call.
type Dev struct {
	mu     sync.Mutex
	builds map[string]BuildInfo
	tags   map[string]map[string]bool // nvr -> tag set
	known  map[string]Tag
	nextID int
	calls  []string
}

func NewDev() *Dev {
	return &Dev{
		builds: make(map[string]BuildInfo),
		tags:   make(map[string]map[string]bool),
		known:  make(map[string]Tag),
		nextID: 1,
	}
}

// AddBuild registers nvr and tags it into tags.
func (d *Dev) AddBuild(nvr string, extra map[string]any, tags ...string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	info := BuildInfo{ID: len(d.builds) + 1, NVR: nvr, Extra: extra}
	if parts := strings.Split(nvr, "-"); len(parts) >= 3 {
		info.Name = strings.Join(parts[:len(parts)-2], "-")
		info.Version = parts[len(parts)-2]
		info.Release = parts[len(parts)-1]
	}
	d.builds[nvr] = info
	for _, t := range tags {
		d.tagLocked(t, nvr)
	}
}

// Calls returns the mutating calls made so far, e.g. "tagBuild f40-updates-testing bash-5.2-1.fc40".
func (d *Dev) Calls() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.calls...)
}

// TagsOf returns the sorted tag names of nvr.
func (d *Dev) TagsOf(nvr string) []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []string
	for t := range d.tags[nvr] {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (d *Dev) record(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *Dev) tagLocked(tag, nvr string) {
	if d.tags[nvr] == nil {
		d.tags[nvr] = make(map[string]bool)
	}
	d.tags[nvr][tag] = true
	if _, ok := d.known[tag]; !ok {
		d.known[tag] = Tag{ID: d.nextID, Name: tag}
		d.nextID++
	}
}

func (d *Dev) GetBuild(_ context.Context, nvr string) (*BuildInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, ok := d.builds[nvr]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBuildNotFound, nvr)
	}
	return &b, nil
}

func (d *Dev) ListTags(_ context.Context, nvr string) ([]Tag, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []Tag
	for name := range d.tags[nvr] {
		out = append(out, d.known[name])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (d *Dev) TagBuild(_ context.Context, tag, nvr string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("tagBuild %s %s", tag, nvr)
	d.tagLocked(tag, nvr)
	return nil
}

func (d *Dev) UntagBuild(_ context.Context, tag, nvr string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("untagBuild %s %s", tag, nvr)
	delete(d.tags[nvr], tag)
	return nil
}

func (d *Dev) MoveBuild(_ context.Context, from, to, nvr string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("moveBuild %s %s %s", from, to, nvr)
	delete(d.tags[nvr], from)
	d.tagLocked(to, nvr)
	return nil
}

func (d *Dev) GetTag(_ context.Context, name string) (*Tag, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	t, ok := d.known[name]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (d *Dev) CreateTag(_ context.Context, name, parent string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("createTag %s %s", name, parent)
	if _, ok := d.known[name]; ok {
		return fmt.Errorf("tag %s already exists", name)
	}
	d.known[name] = Tag{ID: d.nextID, Name: name, Parent: parent}
	d.nextID++
	return nil
}

func (d *Dev) DeleteTag(_ context.Context, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("deleteTag %s", name)
	return d.dropTagLocked(name)
}

func (d *Dev) RemoveSideTag(_ context.Context, name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("removeSideTag %s", name)
	return d.dropTagLocked(name)
}

func (d *Dev) dropTagLocked(name string) error {
	if _, ok := d.known[name]; !ok {
		return fmt.Errorf("%w: %s", ErrTagNotFound, name)
	}
	delete(d.known, name)
	for _, set := range d.tags {
		delete(set, name)
	}
	return nil
}

func (d *Dev) GetLatestBuilds(_ context.Context, tag, pkg string) ([]BuildInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []BuildInfo
	for nvr, set := range d.tags {
		if !set[tag] {
			continue
		}
		if b, ok := d.builds[nvr]; ok && b.Name == pkg {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NVR > out[j].NVR })
	if len(out) > 1 {
		out = out[:1]
	}
	return out, nil
}
