package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "shiwake-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "shiwake")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/shiwake")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runShiwake(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// stdoutOf runs the binary and returns stdout only, so log lines on stderr
// do not get in the way of exact comparisons.
func stdoutOf(t *testing.T, args ...string) string {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.Output()
	require.NoError(t, err, "shiwake %v", args)
	return string(out)
}

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

// newRepo initializes a books repo without git and returns its path.
func newRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	out, err := runShiwake(t, "init", dir, "--name", "Test Biz", "--no-git")
	require.NoError(t, err, out)
	return dir
}

func testdata(name string) string {
	return filepath.Join("..", "..", "testdata", name)
}
