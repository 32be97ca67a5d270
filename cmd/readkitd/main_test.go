package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/readkit/pkg/sentencizer"
)

func TestLoadTerminators(t *testing.T) {
	t.Parallel()

	t.Run("default", func(t *testing.T) {
		t.Parallel()
		terms, err := loadTerminators("")
		require.NoError(t, err)
		assert.Equal(t, sentencizer.DefaultTerminators().Len(), terms.Len())
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "terminators.yaml")
		require.NoError(t, os.WriteFile(path, []byte("replace: true\nterminators: [\".\", \"!\"]\n"), 0o600))

		terms, err := loadTerminators(path)
		require.NoError(t, err)
		assert.Equal(t, 2, terms.Len())
		assert.True(t, terms.Contains("!"))
		assert.False(t, terms.Contains("?"))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := loadTerminators(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("unknown: 1\n"), 0o600))
		_, err := loadTerminators(path)
		assert.ErrorIs(t, err, sentencizer.ErrInvalidTerminators)
	})
}
