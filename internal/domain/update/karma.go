package update

// CommentsSinceKarmaReset returns the comments after the most recent karma
// reset marker, newest first. The marker itself is excluded.
func CommentsSinceKarmaReset(comments []Comment) []Comment {
	window := make([]Comment, 0, len(comments))
	for i := len(comments) - 1; i >= 0; i-- {
		if comments[i].IsKarmaReset() {
			break
		}
		window = append(window, comments[i])
	}
	return window
}

// CompositeKarma returns (positive, negative) karma. Each author counts once,
// with the latest non-zero vote since the last reset; anonymous votes never count.
func CompositeKarma(comments []Comment) (positive, negative int) {
	counted := make(map[string]bool)
	for _, c := range CommentsSinceKarmaReset(comments) {
		if c.Anonymous || c.Karma == 0 || counted[c.Author] {
			continue
		}
		counted[c.Author] = true
		if c.Karma > 0 {
			positive += c.Karma
		} else {
			negative += c.Karma
		}
	}
	return positive, negative
}

// BugFeedbackKarma returns (positive, negative) karma scoped to one bug.
func BugFeedbackKarma(comments []Comment, bugID int) (positive, negative int) {
	return feedbackKarma(comments, func(c *Comment) int {
		for _, fb := range c.BugFeedback {
			if fb.BugID == bugID {
				return fb.Karma
			}
		}
		return 0
	})
}

// TestCaseFeedbackKarma returns (positive, negative) karma scoped to one test case.
func TestCaseFeedbackKarma(comments []Comment, testcase string) (positive, negative int) {
	return feedbackKarma(comments, func(c *Comment) int {
		for _, fb := range c.TestCaseFeedback {
			if fb.TestCase == testcase {
				return fb.Karma
			}
		}
		return 0
	})
}

// FeedbackTally is the karma left on one bug or test case since the last reset.
type FeedbackTally struct {
	BugID    int    `json:"bug_id,omitempty"`
	TestCase string `json:"testcase,omitempty"`
	Positive int    `json:"positive"`
	Negative int    `json:"negative"`
}

// BugFeedback tallies feedback for every bug attached to u.
func (u *Update) BugFeedback() []FeedbackTally {
	out := make([]FeedbackTally, 0, len(u.Bugs))
	for _, b := range u.Bugs {
		pos, neg := BugFeedbackKarma(u.Comments, b.BugID)
		out = append(out, FeedbackTally{BugID: b.BugID, Positive: pos, Negative: neg})
	}
	return out
}

// TestCaseFeedback tallies feedback for every test case mentioned since the
// last reset, in order of first mention.
func (u *Update) TestCaseFeedback() []FeedbackTally {
	window := CommentsSinceKarmaReset(u.Comments)
	seen := make(map[string]bool)
	var out []FeedbackTally
	for i := len(window) - 1; i >= 0; i-- {
		for _, fb := range window[i].TestCaseFeedback {
			if seen[fb.TestCase] {
				continue
			}
			seen[fb.TestCase] = true
			pos, neg := TestCaseFeedbackKarma(u.Comments, fb.TestCase)
			out = append(out, FeedbackTally{TestCase: fb.TestCase, Positive: pos, Negative: neg})
		}
	}
	return out
}

func feedbackKarma(comments []Comment, karmaOf func(*Comment) int) (positive, negative int) {
	counted := make(map[string]bool)
	for _, c := range CommentsSinceKarmaReset(comments) {
		k := karmaOf(&c)
		if c.Anonymous || k == 0 || counted[c.Author] {
			continue
		}
		counted[c.Author] = true
		if k > 0 {
			positive += k
		} else {
			negative += k
		}
	}
	return positive, negative
}
