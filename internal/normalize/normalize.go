// Package normalize cleans free-text transaction descriptions from bank
// exports so the same counterparty always reads the same way.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Alias rewrites a known misspelled or abbreviated name to its canonical form.
type Alias struct {
	From string
	To   string
}

// DefaultAliases returns the built-in company-name alias table.
func DefaultAliases() []Alias {
	return []Alias{
		{From: "ゲノメデイア(カ", To: "genomedia株式会社"},
		{From: "株式会社ミユープ", To: "株式会社 miup"},
	}
}

// cardPattern matches a card payment line with its terminal or branch suffix.
var cardPattern = regexp.MustCompile(`カード[\s\x{3000}]+.*`)

// Normalizer is safe for concurrent use; its alias table never changes after New.
type Normalizer struct {
	aliases []Alias
}

// New returns a Normalizer that applies aliases in order.
func New(aliases []Alias) *Normalizer {
	a := make([]Alias, 0, len(aliases))
	for _, al := range aliases {
		if al.From == "" {
			continue
		}
		a = append(a, al)
	}
	return &Normalizer{aliases: a}
}

// Default returns a Normalizer with DefaultAliases.
func Default() *Normalizer {
	return New(DefaultAliases())
}

// Normalize returns the canonical form of raw. Normalizing an already
// normalized string returns it unchanged.
func (n *Normalizer) Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	s := WidenKana(raw)
	s = strings.ReplaceAll(s, "-", "ー")
	s = strings.ReplaceAll(s, "カ)", "株式会社")
	s = cardPattern.ReplaceAllString(s, "カード")

	for _, a := range n.aliases {
		if strings.Contains(s, a.From) {
			s = strings.ReplaceAll(s, a.From, a.To)
		}
	}
	return s
}

const (
	halfwidthKanaFirst = '｡'
	halfwidthKanaLast  = 'ﾟ'
	halfwidthVoiced    = 'ﾞ'
	halfwidthSemi      = 'ﾟ'

	combiningVoiced = '\u3099'
	combiningSemi   = '\u309A'
	spacingVoiced   = '゛'
	spacingSemi     = '゜'
)

// WidenKana converts half-width katakana and kana punctuation to full width.
// Voiced and semi-voiced marks are folded into the preceding kana where a
// precomposed character exists. Digits and Latin letters are left alone.
func WidenKana(s string) string {
	if !strings.ContainsFunc(s, isHalfwidthKana) {
		return s
	}

	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r == halfwidthVoiced || r == halfwidthSemi:
			combining, spacing := combiningVoiced, spacingVoiced
			if r == halfwidthSemi {
				combining, spacing = combiningSemi, spacingSemi
			}
			if n := len(out); n > 0 {
				if c, ok := compose(out[n-1], combining); ok {
					out[n-1] = c
					continue
				}
			}
			out = append(out, spacing)
		case isHalfwidthKana(r):
			out = append(out, []rune(width.Widen.String(string(r)))...)
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

func isHalfwidthKana(r rune) bool {
	return r >= halfwidthKanaFirst && r <= halfwidthKanaLast
}

func compose(base, mark rune) (rune, bool) {
	rs := []rune(norm.NFC.String(string([]rune{base, mark})))
	if len(rs) != 1 {
		return 0, false
	}
	return rs[0], true
}
