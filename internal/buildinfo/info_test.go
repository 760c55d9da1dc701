package buildinfo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString_UsesLdflags(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	Version, Commit, Date = "v1.2.0", "abc1234", "2024-04-01"

	assert.Equal(t, "v1.2.0 (commit: abc1234, built: 2024-04-01)", String())
}

func TestString_Format(t *testing.T) {
	s := String()
	assert.True(t, strings.Contains(s, "(commit: ") && strings.Contains(s, ", built: "), s)
}
