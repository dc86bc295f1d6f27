package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallybook-dev/tallybook/internal/accounts"
	"github.com/tallybook-dev/tallybook/internal/config"
	"github.com/tallybook-dev/tallybook/internal/gitops"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Acme Consulting"))

	// Directory structure.
	for _, d := range []string{"accounts", "logs", "import", "import/processed"} {
		info, err := os.Stat(filepath.Join(dir, d))
		require.NoError(t, err, d)
		assert.True(t, info.IsDir(), d)
	}

	// Config.
	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, "Acme Consulting", cfg.Business.Name)
	assert.Equal(t, "csv", cfg.Storage.Backend)

	// Chart of accounts with the standard chart.
	svc, err := accounts.Load(dir)
	require.NoError(t, err)
	assert.Len(t, svc.All(), 14)
	assert.True(t, svc.Exists("1000"))

	// Git repo with an initial commit.
	assert.True(t, gitops.IsRepo(dir))

	// .gitignore.
	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "exports/")
}

func TestRunInitTwiceKeepsWorking(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "Acme"))

	// Re-running over an existing directory re-scaffolds without error
	// only if git can commit; a clean tree makes the commit fail, which is
	// surfaced rather than swallowed.
	err := runInit(dir, "Acme")
	assert.Error(t, err)
}
