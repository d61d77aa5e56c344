// Package trivia supplies riddle content for the morning riddle game,
// either from a remote model endpoint or from a built-in fallback bank.
package trivia

import (
	"fmt"

	"github.com/kingrea/riseshine/internal/i18n"
)

// OptionCount is the number of answer options a riddle must carry.
const OptionCount = 4

// Question is one multiple-choice riddle.
type Question struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// Validate rejects questions that cannot be played: wrong option count,
// duplicate options, or an answer that is not among the options.
func (q Question) Validate() error {
	if q.Question == "" {
		return fmt.Errorf("trivia: empty question")
	}
	if len(q.Options) != OptionCount {
		return fmt.Errorf("trivia: got %d options, want %d", len(q.Options), OptionCount)
	}
	seen := map[string]struct{}{}
	answerFound := false
	for _, opt := range q.Options {
		if opt == "" {
			return fmt.Errorf("trivia: empty option")
		}
		if _, dup := seen[opt]; dup {
			return fmt.Errorf("trivia: duplicate option %q", opt)
		}
		seen[opt] = struct{}{}
		if opt == q.Answer {
			answerFound = true
		}
	}
	if !answerFound {
		return fmt.Errorf("trivia: answer %q not among options", q.Answer)
	}
	return nil
}

// languageName spells the language out for the generation prompt.
func languageName(lang i18n.Language) string {
	if lang == i18n.LangZH {
		return "Chinese (Simplified)"
	}
	return "English"
}
