package config

import (
	"fmt"
	"log"
	"os"

	"github.com/linskybing/bodhi-go/internal/domain/release"
	"gopkg.in/yaml.v2"
)

// Messages are the templated texts the service posts as comments or returns as errors.
type Messages struct {
	NotYetTested         string `yaml:"not_yet_tested"`
	NotYetTestedEPEL     string `yaml:"not_yet_tested_epel"`
	TestingApproval      string `yaml:"testing_approval"` // %d is the number of days
	TestingApprovalKarma string `yaml:"testing_approval_karma"`
	DisableAutomaticPush string `yaml:"disable_automatic_push_to_stable"`
	StableFromBatched    string `yaml:"stable_from_batched"`
}

// StatusPolicy holds thresholds for a release while it is in one configured status.
type StatusPolicy struct {
	MandatoryDaysInTesting    *int `yaml:"mandatory_days_in_testing"`
	CritpathMinKarma          *int `yaml:"critpath_min_karma"`
	CritpathNumAdminApprovals *int `yaml:"critpath_num_admin_approvals"`
}

// ReleasePolicy is the per-release section of the policy file, keyed by the
// release setting prefix (e.g. "f40").
type ReleasePolicy struct {
	Status                string                  `yaml:"status"`
	Statuses              map[string]StatusPolicy `yaml:"statuses"`
	SigningSideTagPostfix string                  `yaml:"signing_side_tag_postfix"`
	TestingSideTagPostfix string                  `yaml:"testing_side_tag_postfix"`
}

// Policy is every threshold and message the update lifecycle consults.
type Policy struct {
	BaseURL                   string                   `yaml:"base_url"`
	SystemUsers               []string                 `yaml:"system_users"`
	AdminGroups               []string                 `yaml:"admin_groups"`
	CritpathPackages          []string                 `yaml:"critpath_packages"`
	CritpathMinKarma          int                      `yaml:"critpath_min_karma"`
	CritpathNumAdminApprovals *int                     `yaml:"critpath_num_admin_approvals"` // nil disables the approval gate
	CritpathStableAfterDays   int                      `yaml:"critpath_stable_after_days_without_negative_karma"`
	TestGatingRequired        bool                     `yaml:"test_gating_required"`
	BatchedPromotion          bool                     `yaml:"batched_promotion"`
	MandatoryDaysDefaults     map[string]int           `yaml:"mandatory_days_in_testing"` // keyed by id prefix, e.g. "fedora_epel"
	Releases                  map[string]ReleasePolicy `yaml:"releases"`
	Messages                  Messages                 `yaml:"messages"`
}

const (
	defaultSigningSideTagPostfix = "-signing-pending"
	defaultTestingSideTagPostfix = "-testing-pending"
)

func intPtr(n int) *int { return &n }

// DefaultPolicy mirrors the production defaults.
func DefaultPolicy() *Policy {
	return &Policy{
		BaseURL:                   "https://bodhi.fedoraproject.org",
		SystemUsers:               []string{"bodhi", "autoqa", "taskotron"},
		AdminGroups:               []string{"proventesters", "security_respons", "bodhiadmin", "sysadmin-main"},
		CritpathMinKarma:          2,
		CritpathNumAdminApprovals: intPtr(2),
		CritpathStableAfterDays:   14,
		MandatoryDaysDefaults:     map[string]int{"fedora": 7, "fedora_epel": 14},
		Releases:                  map[string]ReleasePolicy{},
		Messages: Messages{
			NotYetTested: "This update has not yet met the minimum testing requirements defined in the " +
				"<a href=\"https://fedoraproject.org/wiki/Package_update_acceptance_criteria\">" +
				"Package Update Acceptance Criteria</a>",
			NotYetTestedEPEL: "This update has not yet met the minimum testing requirements defined in the " +
				"<a href=\"https://fedoraproject.org/wiki/EPEL_Updates_Policy\">EPEL Update Policy</a>",
			TestingApproval: "This update has reached %d days in testing and can be pushed to stable now " +
				"if the maintainer wishes",
			TestingApprovalKarma: "This update has reached the stable karma threshold and can be pushed to " +
				"stable now if the maintainer wishes.",
			DisableAutomaticPush: "Bodhi is disabling automatic push to stable due to negative karma. The " +
				"maintainer may push manually if they determine that the issue is not severe.",
			StableFromBatched: "This update has been dequeued from batched and is now entering stable.",
		},
	}
}

// LoadPolicy starts from DefaultPolicy, applies the YAML policy file when
// PolicyFile is set, then environment overrides.
func LoadPolicy() (*Policy, error) {
	p := DefaultPolicy()
	if PolicyFile != "" {
		raw, err := os.ReadFile(PolicyFile)
		if err != nil {
			return nil, fmt.Errorf("read policy file: %w", err)
		}
		if err := p.Merge(raw); err != nil {
			return nil, err
		}
	}
	if BaseURL != "" {
		p.BaseURL = BaseURL
	}
	p.SystemUsers = getList("SYSTEM_USERS", p.SystemUsers)
	p.AdminGroups = getList("ADMIN_GROUPS", p.AdminGroups)
	p.CritpathPackages = getList("CRITPATH_PKGS", p.CritpathPackages)
	p.CritpathMinKarma = getInt("CRITPATH_MIN_KARMA", p.CritpathMinKarma)
	p.CritpathStableAfterDays = getInt("CRITPATH_STABLE_AFTER_DAYS", p.CritpathStableAfterDays)
	if _, ok := os.LookupEnv("CRITPATH_NUM_ADMIN_APPROVALS"); ok {
		n := getInt("CRITPATH_NUM_ADMIN_APPROVALS", -1)
		if n < 0 {
			p.CritpathNumAdminApprovals = nil
		} else {
			p.CritpathNumAdminApprovals = &n
		}
	}
	p.TestGatingRequired = getBool("TEST_GATING_REQUIRED", p.TestGatingRequired)
	p.BatchedPromotion = getBool("BATCHED_PROMOTION", p.BatchedPromotion)
	return p, nil
}

// Merge merges a policy document into p. Keys absent from the
// document keep their current values.
func (p *Policy) Merge(raw []byte) error {
	if err := yaml.Unmarshal(raw, p); err != nil {
		return fmt.Errorf("parse policy: %w", err)
	}
	if p.Releases == nil {
		p.Releases = map[string]ReleasePolicy{}
	}
	return nil
}

func (p *Policy) statusPolicy(rel *release.Release) (StatusPolicy, bool) {
	rp, ok := p.Releases[rel.SettingPrefix()]
	if !ok || rp.Status == "" {
		return StatusPolicy{}, false
	}
	sp, ok := rp.Statuses[rp.Status]
	return sp, ok
}

// MandatoryDaysInTesting resolves the release's minimum days in testing:
// the value for its configured status, then the id-prefix default, then 0.
func (p *Policy) MandatoryDaysInTesting(rel *release.Release) int {
	if sp, ok := p.statusPolicy(rel); ok && sp.MandatoryDaysInTesting != nil {
		return *sp.MandatoryDaysInTesting
	}
	if days, ok := p.MandatoryDaysDefaults[rel.IDPrefixKey()]; ok {
		return days
	}
	log.Printf("[config] no mandatory days in testing defined for %s, defaulting to 0", rel.Name)
	return 0
}

func (p *Policy) CritpathMinKarmaFor(rel *release.Release) int {
	if sp, ok := p.statusPolicy(rel); ok && sp.CritpathMinKarma != nil && *sp.CritpathMinKarma > 0 {
		return *sp.CritpathMinKarma
	}
	return p.CritpathMinKarma
}

// CritpathNumAdminApprovalsFor returns the admin approvals a critpath update
// needs; ok is false when the approval gate is disabled.
func (p *Policy) CritpathNumAdminApprovalsFor(rel *release.Release) (n int, ok bool) {
	if sp, found := p.statusPolicy(rel); found && sp.CritpathNumAdminApprovals != nil {
		return *sp.CritpathNumAdminApprovals, true
	}
	if p.CritpathNumAdminApprovals == nil {
		return 0, false
	}
	return *p.CritpathNumAdminApprovals, true
}

// SideTagNames returns the pending-signing and pending-testing side tags for fromTag.
func (p *Policy) SideTagNames(rel *release.Release, fromTag string) (signing, testing string) {
	signingPostfix, testingPostfix := defaultSigningSideTagPostfix, defaultTestingSideTagPostfix
	if rp, ok := p.Releases[rel.SettingPrefix()]; ok {
		if rp.SigningSideTagPostfix != "" {
			signingPostfix = rp.SigningSideTagPostfix
		}
		if rp.TestingSideTagPostfix != "" {
			testingPostfix = rp.TestingSideTagPostfix
		}
	}
	return fromTag + signingPostfix, fromTag + testingPostfix
}

func (p *Policy) IsSystemUser(name string) bool {
	return contains(p.SystemUsers, name)
}

func (p *Policy) IsCritpathPackage(name string) bool {
	return contains(p.CritpathPackages, name)
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
