package converse

import (
	"fmt"
	"strings"

	"github.com/runger/converse/styled"
)

// Menu presents an ordered list of items for selection. Build one with
// NewMenu, refine it with the With methods (each returns a modified copy, so
// menus can be shared and reused), and run it with AskWithMenu or
// AskWithMenuRepeatedly.
type Menu[T any] struct {
	items   []T
	display func(T) styled.Text
	banner  styled.Texter
	prefix  func(n int) styled.Text
	suffix  styled.Texter
	before  styled.Texter
	matcher Matcher[T]
}

// Choice is the result of interpreting menu input: either a matched item or
// the user's text as typed.
type Choice[T any] struct {
	// Item is the matched item; valid when Matched is true.
	Item T

	// Input is the raw input; set when Matched is false.
	Input string

	// Matched reports whether the input selected an item.
	Matched bool
}

// Matcher interprets raw input against a menu. prefixes maps each trimmed
// rendered item prefix (for the default generator: "1", "2", ...) to its
// item, exactly as printed by the most recent display of the menu. A Matcher
// must be pure: the engine may call it with derived menu copies.
type Matcher[T any] func(menu Menu[T], prefixes map[string]T, input string) Choice[T]

// NewMenu builds a menu over items, displayed via display. Defaults: no
// banner, two-digit right-aligned numbering, ") " suffix, DefaultMatcher.
func NewMenu[T any](items []T, display func(T) styled.Text) Menu[T] {
	return Menu[T]{
		items:   items,
		display: display,
		prefix:  numberedPrefix,
		suffix:  styled.String(") "),
		matcher: DefaultMatcher[T],
	}
}

// numberedPrefix is the default prefix generator.
func numberedPrefix(n int) styled.Text {
	return styled.String(fmt.Sprintf("%2d", n))
}

// WithBanner returns a copy of m that prints v above the items.
func (m Menu[T]) WithBanner(v styled.Texter) Menu[T] {
	m.banner = v
	return m
}

// WithPrefix returns a copy of m using fn to generate item prefixes. fn
// receives the 1-based item number; its trimmed plain rendering becomes the
// item's key in the prefix mapping.
func (m Menu[T]) WithPrefix(fn func(n int) styled.Text) Menu[T] {
	m.prefix = fn
	return m
}

// WithSuffix returns a copy of m printing v between each prefix and item.
func (m Menu[T]) WithSuffix(v styled.Texter) Menu[T] {
	m.suffix = v
	return m
}

// WithBeforePrompt returns a copy of m that prints v after the items, just
// above the prompt. AskWithMenuRepeatedly uses this slot for its error
// message.
func (m Menu[T]) WithBeforePrompt(v styled.Texter) Menu[T] {
	m.before = v
	return m
}

// WithMatcher returns a copy of m interpreting input through fn.
func (m Menu[T]) WithMatcher(fn Matcher[T]) Menu[T] {
	m.matcher = fn
	return m
}

// Items returns the menu's items in display order.
func (m Menu[T]) Items() []T {
	return m.items
}

// DisplayText returns the styled text the menu shows for item.
func (m Menu[T]) DisplayText(item T) styled.Text {
	return m.display(item)
}

// DefaultMatcher resolves input in two steps: if the input is a prefix of
// exactly one item's displayed text, that item matches; otherwise the input
// is looked up verbatim among the generated prefixes. Anything else is
// returned as free text. The unique-prefix step deliberately wins over the
// prefix lookup, and an input that prefixes several items falls through to
// the lookup even when it equals one item's text exactly.
func DefaultMatcher[T any](menu Menu[T], prefixes map[string]T, input string) Choice[T] {
	var matched []T
	for _, item := range menu.items {
		if strings.HasPrefix(menu.display(item).Plain(), input) {
			matched = append(matched, item)
		}
	}
	if len(matched) == 1 {
		return Choice[T]{Item: matched[0], Matched: true}
	}
	if item, ok := prefixes[input]; ok {
		return Choice[T]{Item: item, Matched: true}
	}
	return Choice[T]{Input: input}
}

// AskWithMenu displays the menu, asks for a selection, and interprets the
// answer with the menu's matcher. Free text comes back as an unmatched
// Choice, never an error; end of input propagates from Ask. While the
// prompt is open, and unless the session already has a completion function
// installed, the menu's items are offered as completions.
func AskWithMenu[T any](s *Session, menu Menu[T], prompt styled.Texter) (Choice[T], error) {
	prefixes, err := displayMenu(s, menu)
	if err != nil {
		return Choice[T]{}, err
	}

	var input string
	ask := func() error {
		var aerr error
		input, aerr = s.Ask(prompt, "")
		return aerr
	}
	if s.completionActive() {
		err = ask()
	} else {
		err = s.WithCompletion(menuCompletion(menu), ask)
	}
	if err != nil {
		return Choice[T]{}, err
	}

	matcher := menu.matcher
	if matcher == nil {
		matcher = DefaultMatcher[T]
	}
	return matcher(menu, prefixes, input), nil
}

// AskWithMenuRepeatedly runs AskWithMenu until an item matches. Free text
// re-displays the menu with errMessage above the prompt; the original menu
// value is never modified. Only end of input breaks the loop early.
func AskWithMenuRepeatedly[T any](s *Session, menu Menu[T], prompt, errMessage styled.Texter) (T, error) {
	current := menu
	for {
		choice, err := AskWithMenu(s, current, prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		if choice.Matched {
			return choice.Item, nil
		}
		current = menu.WithBeforePrompt(errMessage)
	}
}

// displayMenu prints the banner and items and returns the prefix mapping
// rebuilt for this display.
func displayMenu[T any](s *Session, menu Menu[T]) (map[string]T, error) {
	if menu.banner != nil {
		if err := s.SayLn(menu.banner); err != nil {
			return nil, err
		}
		if err := s.SayLn(styled.Str("")); err != nil {
			return nil, err
		}
	}

	prefixes := make(map[string]T, len(menu.items))
	for i, item := range menu.items {
		prefix := menu.prefix(i + 1)
		prefixes[strings.TrimSpace(prefix.Plain())] = item

		line := styled.Join(styled.Str("  "), prefix, menu.suffix, menu.display(item))
		if err := s.SayLn(line); err != nil {
			return nil, err
		}
	}

	if err := s.SayLn(styled.Str("")); err != nil {
		return nil, err
	}
	if menu.before != nil {
		if err := s.SayLn(menu.before); err != nil {
			return nil, err
		}
	}
	return prefixes, nil
}

// menuCompletion offers the menu's items while its prompt is open: all of
// them on an empty line, otherwise those whose displayed text extends what
// has been typed. Candidates never finish the token.
func menuCompletion[T any](menu Menu[T]) CompletionFunc {
	displays := make([]string, len(menu.items))
	for i, item := range menu.items {
		displays[i] = menu.display(item).Plain()
	}
	return func(left, right string) (string, []Completion) {
		var cands []Completion
		for _, d := range displays {
			if left == "" || strings.HasPrefix(d, left) {
				cands = append(cands, Completion{Display: d, Replacement: d})
			}
		}
		return "", cands
	}
}
