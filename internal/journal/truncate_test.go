package journal

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "株式会", Truncate("株式会社", 3))
}

func TestInvoiceAnnotation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"なし", ""},
		{" なし ", ""},
		{"-", ""},
		{"T1234567890123", "[インボイス:T1234567890123]"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, InvoiceAnnotation(tt.in))
		})
	}
}

func TestSummary_NoInvoice(t *testing.T) {
	long := strings.Repeat("あ", 40)
	assert.Equal(t, strings.Repeat("あ", 30), Summary(long, "", 30))
	assert.Equal(t, "会議費", Summary("会議費", "なし", 30))
}

func TestSummary_AppendsAnnotation(t *testing.T) {
	assert.Equal(t, "接待飲食費 [インボイス:T1234567890123]", Summary("接待飲食費", "T1234567890123", 30))
}

func TestSummary_AnnotationOnly(t *testing.T) {
	assert.Equal(t, "[インボイス:T1234567890123]", Summary("", "T1234567890123", 30))
}

func TestSummary_KeepsTenRunesOfDescription(t *testing.T) {
	got := Summary(strings.Repeat("あ", 25), "T1234567890123", 30)

	assert.Equal(t, 30, utf8.RuneCountInString(got))
	assert.True(t, strings.HasPrefix(got, strings.Repeat("あ", 10)+" [インボイス:T"), got)
	assert.False(t, strings.HasPrefix(got, strings.Repeat("あ", 11)))
}

func TestSummary_ShortensDescriptionToFit(t *testing.T) {
	// 4-rune number: annotation is 12 runes, so the description gets 17.
	got := Summary(strings.Repeat("い", 25), "T123", 30)
	assert.Equal(t, strings.Repeat("い", 17)+" [インボイス:T123]", got)
}
