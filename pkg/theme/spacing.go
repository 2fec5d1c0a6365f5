package theme

import "fmt"

// Rule controls the blank lines emitted before one component kind.
// Before is the default count; Overrides keys on the kind of the
// immediately preceding component.
type Rule struct {
	Before    int
	Overrides map[Kind]int
}

// Spacing is the rule table consulted by the spacing engine. The table
// must be total over the closed kind set; Validate enforces this before
// a theme is accepted.
type Spacing struct {
	Rules map[Kind]Rule
}

// Resolve returns the blank-line count to emit before next when prev was
// the last rendered component. The lookup is total for any validated
// table; a missing rule means the theme bypassed validation and is an
// internal consistency fault.
func (s Spacing) Resolve(prev, next Kind) int {
	rule, ok := s.Rules[next]
	if !ok {
		panic(fmt.Sprintf("theme: no spacing rule for kind %q", next))
	}
	if n, ok := rule.Overrides[prev]; ok {
		return n
	}
	return rule.Before
}

// Validate checks that every kind has a rule and that no count is
// negative. A theme with an invalid spacing table is rejected at
// configure time rather than at render time.
func (s Spacing) Validate() error {
	for _, k := range AllKinds() {
		rule, ok := s.Rules[k]
		if !ok {
			return fmt.Errorf("theme: spacing table missing rule for kind %q", k)
		}
		if rule.Before < 0 {
			return fmt.Errorf("theme: negative spacing %d for kind %q", rule.Before, k)
		}
		for prev, n := range rule.Overrides {
			if prev < 0 || prev >= kindCount {
				return fmt.Errorf("theme: spacing override for kind %q keyed on unknown kind", k)
			}
			if n < 0 {
				return fmt.Errorf("theme: negative spacing override %d for %q after %q", n, k, prev)
			}
		}
	}
	return nil
}

// DefaultSpacing returns the stock rule table. Headers and sections get
// generous leading room; messages sit one line apart; consecutive list
// items pack together.
func DefaultSpacing() Spacing {
	rules := map[Kind]Rule{
		KindHeader:  {Before: 2},
		KindSection: {Before: 2, Overrides: map[Kind]int{KindHeader: 1}},
		KindInfo:    {Before: 1},
		KindSuccess: {Before: 1},
		KindWarning: {Before: 1},
		KindError:   {Before: 1},
		KindDebug:   {Before: 1},
		KindListItem: {Before: 1, Overrides: map[Kind]int{
			KindListItem: 0,
		}},
		KindTable:       {Before: 1},
		KindCode:        {Before: 1},
		KindJSON:        {Before: 1},
		KindSummary:     {Before: 1},
		KindProgress:    {Before: 1},
		KindSpinner:     {Before: 1},
		KindPrompt:      {Before: 1},
		KindConfirm:     {Before: 1, Overrides: map[Kind]int{KindPrompt: 0}},
		KindDivider:     {Before: 1},
		KindSuggestions: {Before: 1},
	}
	return Spacing{Rules: rules}
}
