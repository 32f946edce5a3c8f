package flatfile_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"deliverymanager/internal/adapters/out/flatfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAddressHistory_Record(t *testing.T) {
	t.Run("should keep most recent first", func(t *testing.T) {
		h := flatfile.NewAddressHistory(zap.NewNop(), filepath.Join(t.TempDir(), "addresses.txt"), 10)
		require.NoError(t, h.Load())

		require.NoError(t, h.Record("Lot II A 23 Andoharanofotsy"))
		require.NoError(t, h.Record("Ivandry, near the pharmacy"))

		assert.Equal(t, []string{"Ivandry, near the pharmacy", "Lot II A 23 Andoharanofotsy"}, h.List())
	})

	t.Run("should promote a repeated address instead of duplicating it", func(t *testing.T) {
		h := flatfile.NewAddressHistory(zap.NewNop(), filepath.Join(t.TempDir(), "addresses.txt"), 10)
		require.NoError(t, h.Load())
		require.NoError(t, h.Record("First"))
		require.NoError(t, h.Record("Second"))

		require.NoError(t, h.Record("first"))

		assert.Equal(t, []string{"first", "Second"}, h.List())
	})

	t.Run("should ignore a blank address", func(t *testing.T) {
		h := flatfile.NewAddressHistory(zap.NewNop(), filepath.Join(t.TempDir(), "addresses.txt"), 10)
		require.NoError(t, h.Load())

		require.NoError(t, h.Record("   "))

		assert.Empty(t, h.List())
	})

	t.Run("should drop the oldest entry past the cap", func(t *testing.T) {
		h := flatfile.NewAddressHistory(zap.NewNop(), filepath.Join(t.TempDir(), "addresses.txt"), 3)
		require.NoError(t, h.Load())

		for i := 1; i <= 4; i++ {
			require.NoError(t, h.Record(fmt.Sprintf("Address %d", i)))
		}

		assert.Equal(t, []string{"Address 4", "Address 3", "Address 2"}, h.List())
	})

	t.Run("should persist across reloads", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "addresses.txt")
		h := flatfile.NewAddressHistory(zap.NewNop(), path, 10)
		require.NoError(t, h.Load())
		require.NoError(t, h.Record("Ankorondrano"))

		reloaded := flatfile.NewAddressHistory(zap.NewNop(), path, 10)
		require.NoError(t, reloaded.Load())

		assert.Equal(t, []string{"Ankorondrano"}, reloaded.List())
	})
}

func TestAddressHistory_Load(t *testing.T) {
	t.Run("should start empty when the file is absent", func(t *testing.T) {
		h := flatfile.NewAddressHistory(zap.NewNop(), filepath.Join(t.TempDir(), "addresses.txt"), 10)

		require.NoError(t, h.Load())

		assert.Empty(t, h.List())
	})

	t.Run("should truncate a file longer than the cap", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "addresses.txt")
		require.NoError(t, os.WriteFile(path, []byte("A\nB\nC\nD\n"), 0o644))
		h := flatfile.NewAddressHistory(zap.NewNop(), path, 2)

		require.NoError(t, h.Load())

		assert.Equal(t, []string{"A", "B"}, h.List())
	})
}
