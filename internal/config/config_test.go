package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/haversack/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "./puzzle_input.txt", cfg.Input)
	assert.Equal(t, "shiny gold", cfg.Target)
	assert.Equal(t, 1024, cfg.CacheSize)
	assert.False(t, cfg.Lenient)
	assert.False(t, cfg.Explain)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("HAVERSACK_INPUT", "/tmp/rules.txt")
	t.Setenv("HAVERSACK_TARGET", "  dark olive ")
	t.Setenv("HAVERSACK_CACHE_SIZE", "8")
	t.Setenv("HAVERSACK_LENIENT", "true")
	t.Setenv("HAVERSACK_EXPLAIN", "true")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/rules.txt", cfg.Input)
	assert.Equal(t, "dark olive", cfg.Target)
	assert.Equal(t, 8, cfg.CacheSize)
	assert.True(t, cfg.Lenient)
	assert.True(t, cfg.Explain)
}

func TestLoad_DotEnvFile(t *testing.T) {
	// registered first so cleanup restores the unset state after Load writes it
	t.Setenv("HAVERSACK_TARGET", "")
	require.NoError(t, os.Unsetenv("HAVERSACK_TARGET"))
	t.Setenv("HAVERSACK_CACHE_SIZE", "16")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("HAVERSACK_TARGET=faded blue\nHAVERSACK_CACHE_SIZE=2\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "faded blue", cfg.Target)
	// the process environment wins over the file
	assert.Equal(t, 16, cfg.CacheSize)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name, key, value string
		invalid          bool
	}{
		{"non-numeric cache size", "HAVERSACK_CACHE_SIZE", "lots", false},
		{"non-boolean lenient", "HAVERSACK_LENIENT", "maybe", false},
		{"zero cache size", "HAVERSACK_CACHE_SIZE", "0", true},
		{"blank target", "HAVERSACK_TARGET", "   ", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
			require.Error(t, err)
			if tc.invalid {
				assert.ErrorIs(t, err, config.ErrInvalid)
			} else {
				assert.Contains(t, err.Error(), "parse env:")
			}
		})
	}
}
