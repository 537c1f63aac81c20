package lifecycle

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/linskybing/bodhi-go/internal/domain/update"
	"github.com/linskybing/bodhi-go/internal/notify"
)

func containsAllPackages(newer, older *update.Update) bool {
	for _, pkg := range older.PackageNames() {
		if !newer.HasPackage(pkg) {
			return false
		}
	}
	return true
}

// ObsoleteOlderUpdates retires the in-flight updates of u's release that u
// supersedes. Older updates u cannot take over are reported as caveats.
func (m *Machine) ObsoleteOlderUpdates(ctx context.Context, u *update.Update) ([]update.Caveat, error) {
	candidates, err := m.store.ObsoletionCandidates(u)
	if err != nil {
		return nil, fmt.Errorf("find obsoletion candidates: %w", err)
	}

	var caveats []update.Caveat
	done := make(map[uint]bool)
	for i := range candidates {
		old := &candidates[i]
		if old.ID == u.ID || done[old.ID] {
			continue
		}
		for _, b := range u.Builds {
			oldBuild := findPackageBuild(old, b.Package, b.NVR)
			if oldBuild == nil || done[old.ID] {
				continue
			}
			log.Printf("[lifecycle] %s has another update in flight: %s", b.NVR, old.Alias)

			if old.Locked || (old.Request != update.RequestNone && old.Request != update.RequestTesting) {
				reason := "it is locked"
				if !old.Locked {
					reason = fmt.Sprintf("it has a pending %s request", old.Request)
				}
				caveats = append(caveats, update.Caveat{
					Name:        "update",
					Description: fmt.Sprintf("Unable to obsolete update %s, since %s.", old.Alias, reason),
				})
				done[old.ID] = true
				continue
			}

			cmp, err := update.CompareNVR(oldBuild.NVR, b.NVR)
			if err != nil {
				return caveats, err
			}
			obsoletable := cmp < 0 && containsAllPackages(u, old)

			if len(old.Builds) != len(u.Builds) && old.Submitter != u.Submitter {
				caveats = append(caveats, update.Caveat{
					Name: "update",
					Description: fmt.Sprintf("Please be aware that there is another update in flight owned by %s, "+
						"containing %s. Are you coordinating with them?", old.Submitter, oldBuild.NVR),
				})
			}

			if obsoletable {
				if old.Type == update.TypeSecurity && u.Type != update.TypeSecurity {
					caveats = append(caveats, update.Caveat{
						Name:        "update",
						Description: "Adjusting type of this update to security, since it obsoletes another security update",
					})
					u.Type = update.TypeSecurity
				}
				u.AddBugs(old.Bugs)
				if strings.TrimSpace(old.Notes) != "" {
					u.Notes += "\n\n----\n\n" + old.Notes
				}
				if err := m.Obsolete(ctx, old, u, b.NVR); err != nil {
					return caveats, err
				}
				if err := m.store.SaveUpdate(old); err != nil {
					return caveats, fmt.Errorf("save obsoleted update %s: %w", old.Alias, err)
				}
				m.publish(ctx, notify.TopicRequestObsolete, old, update.SystemUser, nil)
				m.systemComment(u, fmt.Sprintf("This update has obsoleted [%s](%s), and has inherited its bugs and notes.",
					oldBuild.NVR, old.URL(m.policy.BaseURL)))
				caveats = append(caveats, update.Caveat{
					Name:        "update",
					Description: fmt.Sprintf("This update has obsoleted %s, and has inherited its bugs and notes.", oldBuild.NVR),
				})
				done[old.ID] = true
			}
		}
	}
	return caveats, nil
}

// findPackageBuild returns old's build of pkg unless it is nvr itself.
func findPackageBuild(old *update.Update, pkg, nvr string) *update.Build {
	for i := range old.Builds {
		if old.Builds[i].Package == pkg && old.Builds[i].NVR != nvr {
			return &old.Builds[i]
		}
	}
	return nil
}
