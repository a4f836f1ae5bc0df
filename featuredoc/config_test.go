package featuredoc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featuredoc/featuredoc/featuredoc"
)

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := featuredoc.NewConfig()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	require.NoError(t, flags.Parse(nil))

	assert.Equal(t, "-", cfg.Output)
	assert.Equal(t, featuredoc.DefaultFeatureLabel, cfg.Label)
	assert.Equal(t, featuredoc.FormatMarkdown, cfg.Format)
}

func TestConfigNewExtractor(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		label   string
		format  string
		wantErr bool
	}{
		"defaults": {
			label:  featuredoc.DefaultFeatureLabel,
			format: featuredoc.FormatMarkdown,
		},
		"custom label": {
			label:  "`{feature}`",
			format: featuredoc.FormatHTML,
		},
		"label without placeholder": {
			label:   "**bold**",
			format:  featuredoc.FormatMarkdown,
			wantErr: true,
		},
		"unknown format": {
			label:   featuredoc.DefaultFeatureLabel,
			format:  "asciidoc",
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := featuredoc.NewConfig()
			cfg.Label = tc.label
			cfg.Format = tc.format

			ext, err := cfg.NewExtractor()
			if tc.wantErr {
				require.ErrorIs(t, err, featuredoc.ErrInvalidOption)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, ext)
		})
	}
}

func TestConfigLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("applies non-empty values", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "featuredoc.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output: FEATURES.md\nformat: html\n"), 0o644))

		cfg := featuredoc.NewConfig()
		cfg.Output = "-"
		cfg.Label = featuredoc.DefaultFeatureLabel

		require.NoError(t, cfg.LoadFile(path))

		assert.Equal(t, "FEATURES.md", cfg.Output)
		assert.Equal(t, "html", cfg.Format)
		// Unset fields leave existing values untouched.
		assert.Equal(t, featuredoc.DefaultFeatureLabel, cfg.Label)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		cfg := featuredoc.NewConfig()

		err := cfg.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, featuredoc.ErrInvalidOption)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "featuredoc.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output: [unclosed\n"), 0o644))

		cfg := featuredoc.NewConfig()

		err := cfg.LoadFile(path)
		require.ErrorIs(t, err, featuredoc.ErrInvalidOption)
	})
}
