package converse

import "strings"

// Completion is one candidate offered to the user.
type Completion struct {
	// Display is the text shown when candidates are listed.
	Display string

	// Replacement is the text inserted when the candidate is chosen.
	Replacement string

	// Final marks a completion that finishes its token; readers append a
	// space after inserting it.
	Final bool
}

// CompletionFunc produces completion candidates for the current input. It
// receives the text left and right of the cursor and returns the part of the
// left text to keep plus the candidates; choosing a candidate replaces the
// left text with prefix + Replacement.
type CompletionFunc func(left, right string) (prefix string, candidates []Completion)

// noCompletion is the sentinel at the bottom of every session's completion
// stack. It offers nothing, so completion keypresses are inert.
func noCompletion(left, right string) (string, []Completion) {
	return "", nil
}

// PushCompletion makes fn the session's active completion function until the
// matching PopCompletion. A nil fn pushes the inert sentinel behavior.
func (s *Session) PushCompletion(fn CompletionFunc) {
	if fn == nil {
		fn = noCompletion
	}
	s.completions = append(s.completions, fn)
	s.reader.SetCompletion(fn)
}

// PopCompletion restores the completion function that was active before the
// most recent PushCompletion. Popping with nothing pushed is a no-op; the
// sentinel at the bottom of the stack never pops.
func (s *Session) PopCompletion() {
	if len(s.completions) <= 1 {
		return
	}
	s.completions = s.completions[:len(s.completions)-1]
	s.reader.SetCompletion(s.completions[len(s.completions)-1])
}

// WithCompletion runs action with fn installed as the active completion
// function. The previous function is restored on every exit path, error
// returns included.
func (s *Session) WithCompletion(fn CompletionFunc, action func() error) error {
	s.PushCompletion(fn)
	defer s.PopCompletion()
	return action()
}

// completionActive reports whether anything beyond the sentinel is installed.
func (s *Session) completionActive() bool {
	return len(s.completions) > 1
}

// CompleteStrings returns a CompletionFunc that completes the whole line
// against a fixed set of options, offering those the typed text is a prefix
// of.
func CompleteStrings(options ...string) CompletionFunc {
	opts := make([]string, len(options))
	copy(opts, options)
	return func(left, right string) (string, []Completion) {
		var cands []Completion
		for _, o := range opts {
			if strings.HasPrefix(o, left) {
				cands = append(cands, Completion{Display: o, Replacement: o})
			}
		}
		return "", cands
	}
}

// CompleteWords returns a CompletionFunc that completes the last
// space-separated word of the line against a fixed dictionary. Text before
// the word being typed is kept as-is, and completed words are Final, so a
// space follows them.
func CompleteWords(words ...string) CompletionFunc {
	dict := make([]string, len(words))
	copy(dict, words)
	return func(left, right string) (string, []Completion) {
		head, last := "", left
		if i := strings.LastIndexAny(left, " \t"); i >= 0 {
			head, last = left[:i+1], left[i+1:]
		}
		var cands []Completion
		for _, w := range dict {
			if strings.HasPrefix(w, last) {
				cands = append(cands, Completion{Display: w, Replacement: w, Final: true})
			}
		}
		return head, cands
	}
}
