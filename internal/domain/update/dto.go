package update

import "time"

// FeedbackInput is karma on a single bug or test case.
type FeedbackInput struct {
	BugID    int    `json:"bug_id,omitempty" example:"123456"`
	TestCase string `json:"testcase,omitempty" example:"QA:Testcase_boot"`
	Karma    int    `json:"karma" binding:"oneof=-1 0 1" example:"1"`
}

// CreateUpdateDTO is the payload for submitting a new update.
type CreateUpdateDTO struct {
	Builds        []string       `json:"builds" binding:"required,min=1" example:"bash-5.2.26-1.fc40"`
	Release       string         `json:"release" binding:"required" example:"F40"`
	Type          UpdateType     `json:"type" binding:"omitempty,oneof=bugfix security newpackage enhancement unspecified"`
	Severity      UpdateSeverity `json:"severity" binding:"omitempty,oneof=unspecified urgent high medium low"`
	Notes         string         `json:"notes"`
	Bugs          []int          `json:"bugs"`
	Autokarma     *bool          `json:"autokarma"`
	Autotime      *bool          `json:"autotime"`
	StableKarma   *int           `json:"stable_karma"`
	UnstableKarma *int           `json:"unstable_karma"`
	StableDays    *int           `json:"stable_days"`
	Request       string         `json:"request" binding:"omitempty,oneof=testing stable"`
	FromTag       string         `json:"from_tag"`
}

// EditUpdateDTO is the payload for editing an update. Builds is the full new list.
type EditUpdateDTO struct {
	Builds        []string        `json:"builds" binding:"required,min=1"`
	Type          *UpdateType     `json:"type"`
	Severity      *UpdateSeverity `json:"severity"`
	Notes         *string         `json:"notes"`
	Bugs          []int           `json:"bugs"`
	Autokarma     *bool           `json:"autokarma"`
	Autotime      *bool           `json:"autotime"`
	StableKarma   *int            `json:"stable_karma"`
	UnstableKarma *int            `json:"unstable_karma"`
	StableDays    *int            `json:"stable_days"`
}

// RequestDTO asks for a request change.
type RequestDTO struct {
	Request string `json:"request" binding:"required,oneof=testing batched stable obsolete unpush revoke" example:"stable"`
}

// CommentDTO is the payload for leaving feedback.
type CommentDTO struct {
	Text             string          `json:"text"`
	Karma            int             `json:"karma" binding:"oneof=-1 0 1"`
	KarmaCritpath    int             `json:"karma_critpath" binding:"oneof=-1 0 1"`
	Anonymous        bool            `json:"anonymous"`
	BugFeedback      []FeedbackInput `json:"bug_feedback"`
	TestCaseFeedback []FeedbackInput `json:"testcase_feedback"`
}

// Caveat is a non-fatal note returned alongside a successful operation.
type Caveat struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateView is an update plus its derived testing state.
type UpdateView struct {
	*Update
	Karma                    int             `json:"karma"`
	DaysInTesting            int             `json:"days_in_testing"`
	DaysToStable             int             `json:"days_to_stable"`
	MeetsTestingRequirements bool            `json:"meets_testing_requirements"`
	MetTestingRequirements   bool            `json:"met_testing_requirements"`
	RequestedTag             string          `json:"requested_tag,omitempty"`
	BugFeedback              []FeedbackTally `json:"bug_feedback"`
	TestCaseFeedback         []FeedbackTally `json:"testcase_feedback"`
}

// Result is the response for mutations: the update and any caveats.
type Result struct {
	Update  *Update   `json:"update"`
	Caveats []Caveat  `json:"caveats"`
	At      time.Time `json:"at"`
}
