package update

import (
	"database/sql/driver"
	"fmt"
)

// UpdateStatus is where an update currently sits in the workflow.
type UpdateStatus string

const (
	StatusPending        UpdateStatus = "pending"
	StatusTesting        UpdateStatus = "testing"
	StatusStable         UpdateStatus = "stable"
	StatusUnpushed       UpdateStatus = "unpushed"
	StatusObsolete       UpdateStatus = "obsolete"
	StatusProcessing     UpdateStatus = "processing"
	StatusSideTagActive  UpdateStatus = "side_tag_active"
	StatusSideTagExpired UpdateStatus = "side_tag_expired"
)

// UpdateRequest is a pending workflow transition. The zero value means no request.
type UpdateRequest string

const (
	RequestNone     UpdateRequest = ""
	RequestTesting  UpdateRequest = "testing"
	RequestBatched  UpdateRequest = "batched"
	RequestStable   UpdateRequest = "stable"
	RequestObsolete UpdateRequest = "obsolete"
	RequestUnpush   UpdateRequest = "unpush"
	RequestRevoke   UpdateRequest = "revoke"
)

// ParseRequest converts an API value into an UpdateRequest.
func ParseRequest(s string) (UpdateRequest, error) {
	switch r := UpdateRequest(s); r {
	case RequestTesting, RequestBatched, RequestStable, RequestObsolete, RequestUnpush, RequestRevoke:
		return r, nil
	}
	return RequestNone, fmt.Errorf("unknown request %q", s)
}

// Value stores RequestNone as NULL.
func (r UpdateRequest) Value() (driver.Value, error) {
	if r == RequestNone {
		return nil, nil
	}
	return string(r), nil
}

func (r *UpdateRequest) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*r = RequestNone
	case string:
		*r = UpdateRequest(v)
	case []byte:
		*r = UpdateRequest(v)
	default:
		return fmt.Errorf("cannot scan %T into UpdateRequest", src)
	}
	return nil
}

// UpdateType classifies the change an update carries.
type UpdateType string

const (
	TypeBugfix      UpdateType = "bugfix"
	TypeSecurity    UpdateType = "security"
	TypeNewPackage  UpdateType = "newpackage"
	TypeEnhancement UpdateType = "enhancement"
	TypeUnspecified UpdateType = "unspecified"
)

type UpdateSeverity string

const (
	SeverityUnspecified UpdateSeverity = "unspecified"
	SeverityUrgent      UpdateSeverity = "urgent"
	SeverityHigh        UpdateSeverity = "high"
	SeverityMedium      UpdateSeverity = "medium"
	SeverityLow         UpdateSeverity = "low"
)

// TestGatingStatus is the automated test verdict. The zero value means not yet evaluated.
type TestGatingStatus string

const (
	GatingNone            TestGatingStatus = ""
	GatingWaiting         TestGatingStatus = "waiting"
	GatingIgnored         TestGatingStatus = "ignored"
	GatingQueued          TestGatingStatus = "queued"
	GatingRunning         TestGatingStatus = "running"
	GatingPassed          TestGatingStatus = "passed"
	GatingFailed          TestGatingStatus = "failed"
	GatingGreenwaveFailed TestGatingStatus = "greenwave_failed"
)

// Passed reports whether the status lets an update through the gate.
func (s TestGatingStatus) Passed() bool {
	switch s {
	case GatingNone, GatingPassed, GatingIgnored, GatingGreenwaveFailed:
		return true
	}
	return false
}

func (s TestGatingStatus) Value() (driver.Value, error) {
	if s == GatingNone {
		return nil, nil
	}
	return string(s), nil
}

func (s *TestGatingStatus) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = GatingNone
	case string:
		*s = TestGatingStatus(v)
	case []byte:
		*s = TestGatingStatus(v)
	default:
		return fmt.Errorf("cannot scan %T into TestGatingStatus", src)
	}
	return nil
}

// ContentType is the kind of artifact a build produces.
type ContentType string

const (
	ContentRPM       ContentType = "rpm"
	ContentModule    ContentType = "module"
	ContentContainer ContentType = "container"
	ContentFlatpak   ContentType = "flatpak"
)

// ContentTypeFromExtra infers the content type from build system extra info.
func ContentTypeFromExtra(extra map[string]any) ContentType {
	if extra == nil {
		return ContentRPM
	}
	if ti, ok := extra["typeinfo"].(map[string]any); ok {
		if _, ok := ti["module"]; ok {
			return ContentModule
		}
	}
	if img, ok := extra["image"].(map[string]any); ok {
		if _, ok := img["flatpak"]; ok {
			return ContentFlatpak
		}
		return ContentContainer
	}
	if _, ok := extra["container_koji_task_id"]; ok {
		return ContentContainer
	}
	return ContentRPM
}
