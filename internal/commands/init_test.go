package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountsCSV "github.com/cleared-dev/shiwake/internal/accounts"
	"github.com/cleared-dev/shiwake/internal/config"
)

func TestInit_CreatesStructure(t *testing.T) {
	dir := newRepo(t)

	for _, d := range []string{"accounts", "import", "output", "logs"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, "directory %s should exist", d)
		assert.True(t, info.IsDir(), "%s should be a directory", d)
	}
	_, err := os.Stat(filepath.Join(dir, ".git"))
	assert.True(t, os.IsNotExist(err), "--no-git should not create .git")
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	_, err := runShiwake(t, "init", dir, "--name", "My Company", "--no-git")
	require.NoError(t, err)

	cfg, err := config.Load(filepath.Join(dir, "shiwake.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "My Company", cfg.Business.Name)
	assert.Equal(t, "sole_proprietor", cfg.Business.EntityType)
	assert.Equal(t, "abort", cfg.Validation.Policy)
	assert.False(t, cfg.Git.AutoCommit)
}

func TestInit_Accounts(t *testing.T) {
	dir := newRepo(t)

	f, err := os.Open(filepath.Join(dir, "accounts", "chart-of-accounts.csv"))
	require.NoError(t, err)
	defer f.Close()

	accts, err := accountsCSV.ReadAccounts(f)
	require.NoError(t, err)
	assert.Len(t, accts, len(accountsCSV.DefaultChart("sole_proprietor")))
}

func TestInit_GitRepo(t *testing.T) {
	requireGit(t)
	dir := t.TempDir()
	_, err := runShiwake(t, "init", dir, "--name", "Test Biz")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git should exist")

	log := exec.Command("git", "log", "--format=%s|%an <%ae>", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "init: Initialize Test Biz|shiwake <shiwake@localhost>")

	cfg, err := config.Load(filepath.Join(dir, "shiwake.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.Git.AutoCommit)
}

func TestInit_Gitignore(t *testing.T) {
	dir := newRepo(t)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "import/")
}

func TestInit_RequiresName(t *testing.T) {
	_, err := runShiwake(t, "init", t.TempDir(), "--no-git")
	require.Error(t, err, "init without --name should fail")
}

func TestInit_RefusesExistingRepo(t *testing.T) {
	dir := newRepo(t)

	out, err := runShiwake(t, "init", dir, "--name", "Again", "--no-git")
	require.Error(t, err)
	assert.Contains(t, out, "already exists")
}
