package patterns

import (
	"regexp"
	"strings"
)

// Rule pairs a failure signature with its remediation message.
// Parametric rules substitute the first capture group into the message
// at the placeholder position.
type Rule struct {
	Name        string
	Expr        string
	Message     string
	Parametric  bool
	Placeholder string

	re *regexp.Regexp
}

// Pattern returns the rule's source expression.
func (r *Rule) Pattern() string {
	if r == nil {
		return ""
	}
	return r.Expr
}

// Table is a fixed, ordered set of rules. Iteration order is insertion
// order and is significant for report ordering. A Table is immutable
// after construction and safe for concurrent readers.
type Table struct {
	rules []Rule
}

// NewTable compiles the given rules into a Table. Rules with empty or
// invalid expressions are dropped. Matching is case-insensitive.
func NewTable(rules []Rule) *Table {
	t := &Table{rules: make([]Rule, 0, len(rules))}
	for _, r := range rules {
		expr := strings.TrimSpace(r.Expr)
		if expr == "" {
			continue
		}
		re, err := regexp.Compile("(?i)" + expr)
		if err != nil {
			continue
		}
		r.re = re
		t.rules = append(t.rules, r)
	}
	return t
}

// Rules returns a copy of the table's rules in table order.
func (t *Table) Rules() []Rule {
	if t == nil {
		return nil
	}
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Len returns the number of rules in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rules)
}

// Match tests every rule against the log text and returns the messages
// of the rules that matched, in table order. Each rule contributes at
// most one message regardless of how often its signature occurs. A
// parametric rule that matches but yields no capture group is skipped.
func (t *Table) Match(log string) []string {
	if t == nil || log == "" {
		return nil
	}

	var out []string
	for i := range t.rules {
		r := &t.rules[i]
		if r.re == nil || !r.re.MatchString(log) {
			continue
		}
		if !r.Parametric {
			out = append(out, r.Message)
			continue
		}

		groups := r.re.FindStringSubmatch(log)
		if len(groups) < 2 || groups[1] == "" {
			// Matched but the code could not be re-extracted; skip
			// rather than emit a template with a dangling placeholder.
			continue
		}
		placeholder := r.Placeholder
		if placeholder == "" {
			placeholder = DefaultPlaceholder
		}
		out = append(out, strings.Replace(r.Message, placeholder, groups[1], 1))
	}
	return out
}
