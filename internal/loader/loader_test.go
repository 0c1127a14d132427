package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/irqbind/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestLoad(t *testing.T) {
	t.Run("no script configured", func(t *testing.T) {
		s, err := New().Load(options.Program{})
		assert.NoError(t, err)
		assert.True(t, s == nil)
	})

	t.Run("load script file", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte("name: boot\nsteps:\n  - irq: USB\n    repeat: 2\n  - irq: SPI1\n"))

		opts := options.Program{
			Parameters: options.Parameters{Script: tmpFile},
		}
		s, err := New().Load(opts)
		assert.NoError(t, err)
		assert.Equal(t, "boot", s.Name)
		assert.Equal(t, []string{"USB", "USB", "SPI1"}, s.Sequence())
	})

	t.Run("error on non-existent file", func(t *testing.T) {
		opts := options.Program{
			Parameters: options.Parameters{Script: "/nonexistent/script.yaml"},
		}
		_, err := New().Load(opts)
		assert.ErrorContains(t, err, "reading script")
	})

	t.Run("error on invalid script", func(t *testing.T) {
		tmpFile := createTempFile(t, []byte("name: broken\n"))

		opts := options.Program{
			Parameters: options.Parameters{Script: tmpFile},
		}
		_, err := New().Load(opts)
		assert.ErrorContains(t, err, "parsing script")
	})
}

func createTempFile(t *testing.T, data []byte) string {
	t.Helper()
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "script.yaml")
	if err := os.WriteFile(tmpFile, data, 0600); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return tmpFile
}
