// Package classify maps a normalized transaction description to the
// canonical summary label used in the books.
package classify

import (
	"regexp"
	"strings"
)

// Input is everything a rule may look at.
type Input struct {
	Description string
	Account     string // 勘定科目 of the row
	Creditor    string // 貸方取引先名
	Debtor      string // 借方取引先名
}

// Rule is one (predicate, result) pair in the classification chain.
type Rule struct {
	Name   string
	Match  func(in Input) bool
	Result func(in Input) string
}

// Label returns a Result that always yields label.
func Label(label string) func(Input) string {
	return func(Input) string { return label }
}

// Classifier evaluates its rules in order and stops at the first match.
// When nothing matches the cleaned description is returned unchanged.
type Classifier struct {
	rules []Rule
}

// New returns a Classifier over rules. The slice is copied.
func New(rules []Rule) *Classifier {
	return &Classifier{rules: append([]Rule(nil), rules...)}
}

// Default returns a Classifier with DefaultRules.
func Default() *Classifier {
	return New(DefaultRules())
}

// Rules returns the rule names in evaluation order.
func (c *Classifier) Rules() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.Name
	}
	return names
}

// Classify returns the summary label for in.
func (c *Classifier) Classify(in Input) string {
	label, _ := c.Match(in)
	return label
}

// Match is Classify that also reports which rule fired. The rule name is
// empty when the identity fallback was used.
func (c *Classifier) Match(in Input) (label, rule string) {
	in.Description = Clean(in.Description)
	for _, r := range c.rules {
		if r.Match(in) {
			return r.Result(in), r.Name
		}
	}
	return in.Description, ""
}

var invoicePattern = regexp.MustCompile(`\s*\[インボイス:.*?\]`)

var bracketStripper = strings.NewReplacer("「", "", "」", "", "(", "", ")", "")

// Clean removes invoice annotations and the 「」() characters.
func Clean(description string) string {
	return bracketStripper.Replace(invoicePattern.ReplaceAllString(description, ""))
}
