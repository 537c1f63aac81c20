package tags

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/linskybing/bodhi-go/internal/buildsys"
	"github.com/linskybing/bodhi-go/internal/config"
	"github.com/linskybing/bodhi-go/internal/domain/release"
	"github.com/linskybing/bodhi-go/internal/domain/update"
)

// Synchronizer applies tag changes for an update's builds. Every operation
// reads the current tags first, so repeating one is harmless.
type Synchronizer struct {
	client buildsys.Client
	policy *config.Policy
}

func New(client buildsys.Client, policy *config.Policy) *Synchronizer {
	return &Synchronizer{client: client, policy: policy}
}

func (s *Synchronizer) Client() buildsys.Client {
	return s.client
}

// AddTag tags every build of u into tag unless it is already there.
func (s *Synchronizer) AddTag(ctx context.Context, u *update.Update, tag string) error {
	if tag == "" {
		log.Printf("[tags] not adding builds of %s to empty tag", u.Alias)
		return nil
	}
	for _, b := range u.Builds {
		if err := s.TagBuild(ctx, tag, b.NVR); err != nil {
			return err
		}
	}
	return nil
}

// RemoveTag untags every build of u from tag when present.
func (s *Synchronizer) RemoveTag(ctx context.Context, u *update.Update, tag string) error {
	if tag == "" {
		log.Printf("[tags] not removing builds of %s from empty tag", u.Alias)
		return nil
	}
	for _, b := range u.Builds {
		if err := s.UntagBuild(ctx, tag, b.NVR); err != nil {
			return err
		}
	}
	return nil
}

func (s *Synchronizer) TagBuild(ctx context.Context, tag, nvr string) error {
	current, err := s.client.ListTags(ctx, nvr)
	if err != nil {
		return fmt.Errorf("list tags of %s: %w", nvr, err)
	}
	if buildsys.HasTag(current, tag) {
		return nil
	}
	if err := s.client.TagBuild(ctx, tag, nvr); err != nil {
		return fmt.Errorf("tag %s into %s: %w", nvr, tag, err)
	}
	return nil
}

func (s *Synchronizer) UntagBuild(ctx context.Context, tag, nvr string) error {
	current, err := s.client.ListTags(ctx, nvr)
	if err != nil {
		return fmt.Errorf("list tags of %s: %w", nvr, err)
	}
	if !buildsys.HasTag(current, tag) {
		return nil
	}
	if err := s.client.UntagBuild(ctx, tag, nvr); err != nil {
		if errors.Is(err, buildsys.ErrTagNotFound) {
			return nil
		}
		return fmt.Errorf("untag %s from %s: %w", nvr, tag, err)
	}
	return nil
}

// Tags returns the union of tags across u's builds.
func (s *Synchronizer) Tags(ctx context.Context, u *update.Update) (map[string]bool, error) {
	out := make(map[string]bool)
	for _, b := range u.Builds {
		current, err := s.client.ListTags(ctx, b.NVR)
		if err != nil {
			return nil, fmt.Errorf("list tags of %s: %w", b.NVR, err)
		}
		for _, t := range current {
			out[t.Name] = true
		}
	}
	return out, nil
}

// UnpushBuild drops the pending tags of one build and moves it from the
// testing tag back to the candidate tag.
func (s *Synchronizer) UnpushBuild(ctx context.Context, rel *release.Release, nvr string) error {
	current, err := s.client.ListTags(ctx, nvr)
	if err != nil {
		return fmt.Errorf("list tags of %s: %w", nvr, err)
	}
	for _, t := range current {
		switch t.Name {
		case rel.PendingSigningTag, rel.PendingTestingTag, rel.PendingStableTag:
			log.Printf("[tags] removing %s tag from %s", t.Name, nvr)
			if err := s.client.UntagBuild(ctx, t.Name, nvr); err != nil && !errors.Is(err, buildsys.ErrTagNotFound) {
				return fmt.Errorf("untag %s from %s: %w", nvr, t.Name, err)
			}
		case rel.TestingTag:
			log.Printf("[tags] moving %s from %s to %s", nvr, t.Name, rel.CandidateTag)
			if err := s.client.MoveBuild(ctx, t.Name, rel.CandidateTag, nvr); err != nil {
				return fmt.Errorf("move %s to %s: %w", nvr, rel.CandidateTag, err)
			}
		}
	}
	return nil
}

// Untag removes every tag of u's builds that belongs to a known release.
func (s *Synchronizer) Untag(ctx context.Context, u *update.Update, known map[string]bool) error {
	log.Printf("[tags] untagging %s", u.Alias)
	for _, b := range u.Builds {
		current, err := s.client.ListTags(ctx, b.NVR)
		if err != nil {
			return fmt.Errorf("list tags of %s: %w", b.NVR, err)
		}
		for _, t := range current {
			if !known[t.Name] {
				log.Printf("[tags] skipping tag that we don't know about: %s", t.Name)
				continue
			}
			if err := s.client.UntagBuild(ctx, t.Name, b.NVR); err != nil && !errors.Is(err, buildsys.ErrTagNotFound) {
				return fmt.Errorf("untag %s from %s: %w", b.NVR, t.Name, err)
			}
		}
	}
	return nil
}

func (s *Synchronizer) ensureTag(ctx context.Context, name, parent string) error {
	tag, err := s.client.GetTag(ctx, name)
	if err != nil {
		return fmt.Errorf("get tag %s: %w", name, err)
	}
	if tag != nil {
		return nil
	}
	log.Printf("[tags] creating side tag %s under %s", name, parent)
	if err := s.client.CreateTag(ctx, name, parent); err != nil {
		return fmt.Errorf("create tag %s: %w", name, err)
	}
	return nil
}

func (s *Synchronizer) usesSideTags(u *update.Update) bool {
	return u.FromTag != "" && !u.Release.ComposedByBodhi
}

// PendingSigningTag is where builds wait for signing before testing. Side tag
// updates on releases not yet composed by the service use their own side tag.
func (s *Synchronizer) PendingSigningTag(ctx context.Context, u *update.Update) (string, error) {
	if !s.usesSideTags(u) {
		return u.Release.PendingSigningTag, nil
	}
	signing, _ := s.policy.SideTagNames(&u.Release, u.FromTag)
	if err := s.ensureTag(ctx, signing, u.FromTag); err != nil {
		return "", err
	}
	return signing, nil
}

// HandleSideTags routes a side tag update into the signing workflow.
func (s *Synchronizer) HandleSideTags(ctx context.Context, u *update.Update) error {
	if u.FromTag == "" {
		return nil
	}
	if !u.Release.ComposedByBodhi {
		signing, testing := s.policy.SideTagNames(&u.Release, u.FromTag)
		if err := s.ensureTag(ctx, signing, u.FromTag); err != nil {
			return err
		}
		if err := s.ensureTag(ctx, testing, u.FromTag); err != nil {
			return err
		}
		return s.AddTag(ctx, u, signing)
	}
	if err := s.AddTag(ctx, u, u.Release.PendingSigningTag); err != nil {
		return err
	}
	if err := s.client.RemoveSideTag(ctx, u.FromTag); err != nil && !errors.Is(err, buildsys.ErrTagNotFound) {
		return fmt.Errorf("remove side tag %s: %w", u.FromTag, err)
	}
	return nil
}

// CleanupSideTags removes u's builds from its side tags and deletes them.
func (s *Synchronizer) CleanupSideTags(ctx context.Context, u *update.Update) error {
	if u.FromTag == "" {
		return nil
	}
	signing, testing := s.policy.SideTagNames(&u.Release, u.FromTag)
	for _, tag := range []string{signing, testing, u.FromTag} {
		if err := s.RemoveTag(ctx, u, tag); err != nil {
			return err
		}
	}
	for _, tag := range []string{signing, testing} {
		if err := s.client.DeleteTag(ctx, tag); err != nil && !errors.Is(err, buildsys.ErrTagNotFound) {
			return fmt.Errorf("delete tag %s: %w", tag, err)
		}
	}
	return nil
}
