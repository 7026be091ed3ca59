package yaml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/webml"
	"github.com/fwojciec/webml/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfiles(t *testing.T) {
	t.Parallel()

	t.Run("decodes profiles", func(t *testing.T) {
		t.Parallel()

		input := `
profiles:
  - name: docs
    hosts: [docs.example.com]
    content: [".doc-body", "main"]
    noise: [".edit-link"]
  - name: sphinx-custom
    framework: sphinx
    content: ["div.document"]
`
		cfg, err := yaml.ParseProfiles(strings.NewReader(input))

		require.NoError(t, err)
		require.Len(t, cfg.Profiles, 2)
		assert.Equal(t, webml.SiteProfile{
			Name:             "docs",
			Hosts:            []string{"docs.example.com"},
			ContentSelectors: []string{".doc-body", "main"},
			NoiseSelectors:   []string{".edit-link"},
		}, cfg.Profiles[0])
		assert.Equal(t, webml.FrameworkSphinx, cfg.Profiles[1].Framework)
		require.NotNil(t, cfg.IncludeDefaults)
		assert.True(t, *cfg.IncludeDefaults)
	})

	t.Run("accepts empty document", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.ParseProfiles(strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, cfg.Profiles)
		assert.True(t, *cfg.IncludeDefaults)
	})

	t.Run("rejects invalid documents", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name  string
			input string
			want  string
		}{
			{"malformed yaml", "profiles: [", "parse profiles"},
			{"unknown field", "profile: []", "parse profiles"},
			{"missing name", "profiles:\n  - hosts: [a.com]\n    content: [main]", "name required"},
			{"missing hosts", "profiles:\n  - name: a\n    content: [main]", "host"},
			{"missing content", "profiles:\n  - name: a\n    hosts: [a.com]", "content selector"},
			{"bad selector", "profiles:\n  - name: a\n    hosts: [a.com]\n    content: [\"div[\"]", "invalid selector"},
			{"bad noise selector", "profiles:\n  - name: a\n    hosts: [a.com]\n    content: [main]\n    noise: [\"#\"]", "invalid selector"},
			{"unknown framework", "profiles:\n  - name: a\n    framework: hugo\n    content: [main]", "unknown framework"},
			{"duplicate name", "profiles:\n  - name: a\n    hosts: [a.com]\n    content: [main]\n  - name: a\n    hosts: [b.com]\n    content: [main]", "defined twice"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				_, err := yaml.ParseProfiles(strings.NewReader(tt.input))

				require.Error(t, err)
				assert.Equal(t, webml.EINVALID, webml.ErrorCode(err))
				assert.Contains(t, webml.ErrorMessage(err), tt.want)
			})
		}
	})
}

func TestProfileConfig_Merge(t *testing.T) {
	t.Parallel()

	defaults := []webml.SiteProfile{
		{Name: "wikipedia", Hosts: []string{"wikipedia.org"}, ContentSelectors: []string{"#mw-content-text"}},
		{Name: "github", Hosts: []string{"github.com"}, ContentSelectors: []string{".markdown-body"}},
	}

	t.Run("configured profiles come first and replace defaults by name", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.ParseProfiles(strings.NewReader(`
profiles:
  - name: github
    hosts: [github.com]
    content: ["#readme"]
  - name: docs
    hosts: [docs.example.com]
    content: [main]
`))
		require.NoError(t, err)

		got := cfg.Merge(defaults)

		require.Len(t, got, 3)
		assert.Equal(t, "github", got[0].Name)
		assert.Equal(t, []string{"#readme"}, got[0].ContentSelectors)
		assert.Equal(t, "docs", got[1].Name)
		assert.Equal(t, "wikipedia", got[2].Name)
	})

	t.Run("drops defaults when disabled", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.ParseProfiles(strings.NewReader(`
include_defaults: false
profiles:
  - name: docs
    hosts: [docs.example.com]
    content: [main]
`))
		require.NoError(t, err)

		got := cfg.Merge(defaults)

		require.Len(t, got, 1)
		assert.Equal(t, "docs", got[0].Name)
	})
}

func TestLoadProfiles(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "profiles.yaml")
		require.NoError(t, os.WriteFile(path, []byte("profiles:\n  - name: a\n    hosts: [a.com]\n    content: [main]\n"), 0o600))

		cfg, err := yaml.LoadProfiles(path)

		require.NoError(t, err)
		require.Len(t, cfg.Profiles, 1)
		assert.Equal(t, "a", cfg.Profiles[0].Name)
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadProfiles(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
	})
}
