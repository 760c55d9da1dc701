package charset

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Charset
	}{
		{"", UTF8},
		{"UTF-8", UTF8},
		{"utf-8-sig", UTF8},
		{"Shift_JIS", ShiftJIS},
		{"sjis", ShiftJIS},
		{"cp932", ShiftJIS},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, "Parse(%q)", tt.in)
		assert.Equal(t, tt.want, got, "Parse(%q)", tt.in)
	}

	_, err := Parse("euc-jp")
	require.Error(t, err)
}

func TestNewReader_StripsBOM(t *testing.T) {
	data, err := io.ReadAll(NewReader(strings.NewReader("\ufeff発生日,取引先\n"), UTF8))
	require.NoError(t, err)
	assert.Equal(t, "発生日,取引先\n", string(data))
}

func TestShiftJISRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, ShiftJIS)
	_, err := io.WriteString(w, "普通預金,売掛金\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.NotEqual(t, "普通預金,売掛金\n", buf.String(), "output should not be UTF-8")

	data, err := io.ReadAll(NewReader(&buf, ShiftJIS))
	require.NoError(t, err)
	assert.Equal(t, "普通預金,売掛金\n", string(data))
}

func TestShiftJISReplacesUnsupported(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, ShiftJIS)
	_, err := io.WriteString(w, "会議🍣")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := io.ReadAll(NewReader(&buf, ShiftJIS))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "会議"))
	assert.NotContains(t, string(data), "🍣")
}
