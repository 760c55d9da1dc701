package journal

import (
	"strings"
	"unicode/utf8"
)

// Widths of the free-text Yayoi columns, in runes.
const (
	SummaryWidth      = 30
	CounterpartyWidth = 15

	// minDescription is how much of the description survives when an
	// invoice annotation has to be squeezed in.
	minDescription = 10
)

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// InvoiceAnnotation returns the 摘要 suffix for an invoice registration
// number, or "" when the number should not be shown.
func InvoiceAnnotation(number string) string {
	n := strings.TrimSpace(number)
	if utf8.RuneCountInString(n) <= 1 || strings.EqualFold(n, "なし") {
		return ""
	}
	return "[インボイス:" + n + "]"
}

// Summary builds the 摘要 column: the description with its invoice
// annotation appended, cut to width runes.
func Summary(description, invoice string, width int) string {
	annotation := InvoiceAnnotation(invoice)
	if annotation == "" {
		return Truncate(description, width)
	}

	alen := utf8.RuneCountInString(annotation)
	if utf8.RuneCountInString(description)+alen+1 > width {
		description = Truncate(description, max(minDescription, width-alen-1))
	}

	s := annotation
	if description != "" {
		s = description + " " + annotation
	}
	return Truncate(s, width)
}
