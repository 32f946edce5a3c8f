package flatfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"deliverymanager/internal/adapters/out/flatfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var defaultAgents = []string{"Jean", "Hery", "Mamy", "Rado", "External Courier"}

func TestAgentsManager_Load(t *testing.T) {
	t.Run("should fall back to defaults when the file is absent", func(t *testing.T) {
		m := flatfile.NewAgentsManager(zap.NewNop(), filepath.Join(t.TempDir(), "agents.txt"), defaultAgents)

		require.NoError(t, m.Load())

		assert.Equal(t, defaultAgents, m.List())
	})

	t.Run("should read one name per line skipping blanks", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "agents.txt")
		require.NoError(t, os.WriteFile(path, []byte("Jean\n\n  Hery  \n"), 0o644))
		m := flatfile.NewAgentsManager(zap.NewNop(), path, defaultAgents)

		require.NoError(t, m.Load())

		assert.Equal(t, []string{"Jean", "Hery"}, m.List())
	})
}

func TestAgentsManager_Add(t *testing.T) {
	t.Run("should persist a new agent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "agents.txt")
		m := flatfile.NewAgentsManager(zap.NewNop(), path, nil)
		require.NoError(t, m.Load())

		require.NoError(t, m.Add("Naina"))

		assert.Equal(t, []string{"Naina"}, m.List())
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Naina\n", string(content))
	})

	t.Run("should be idempotent for an existing agent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "agents.txt")
		m := flatfile.NewAgentsManager(zap.NewNop(), path, defaultAgents)
		require.NoError(t, m.Load())

		require.NoError(t, m.Add("hery"))

		assert.Equal(t, defaultAgents, m.List())
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err), "nothing changed, nothing written")
	})

	t.Run("should reject an empty name", func(t *testing.T) {
		m := flatfile.NewAgentsManager(zap.NewNop(), filepath.Join(t.TempDir(), "agents.txt"), nil)
		require.NoError(t, m.Load())

		assert.Error(t, m.Add("   "))
	})
}

func TestAgentsManager_Remove(t *testing.T) {
	t.Run("should remove and persist", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "agents.txt")
		m := flatfile.NewAgentsManager(zap.NewNop(), path, defaultAgents)
		require.NoError(t, m.Load())

		require.NoError(t, m.Remove("Hery"))

		assert.NotContains(t, m.List(), "Hery")

		reloaded := flatfile.NewAgentsManager(zap.NewNop(), path, nil)
		require.NoError(t, reloaded.Load())
		assert.Equal(t, m.List(), reloaded.List())
	})

	t.Run("should ignore an unknown name", func(t *testing.T) {
		m := flatfile.NewAgentsManager(zap.NewNop(), filepath.Join(t.TempDir(), "agents.txt"), defaultAgents)
		require.NoError(t, m.Load())

		require.NoError(t, m.Remove("Nobody"))

		assert.Equal(t, defaultAgents, m.List())
	})
}
