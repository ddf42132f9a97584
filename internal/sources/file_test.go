package sources

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	t.Run("missing file is not an error", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		srcs, err := LoadFile(fs, "/etc/pipctl/sources")
		require.NoError(t, err)
		assert.Nil(t, srcs)
	})

	t.Run("parses entries in order", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		content := `# corporate mirrors
internal = https://pypi.corp.example/simple

backup=https://backup.corp.example/simple
`
		require.NoError(t, afero.WriteFile(fs, "/etc/pipctl/sources", []byte(content), 0o644))

		srcs, err := LoadFile(fs, "/etc/pipctl/sources")
		require.NoError(t, err)
		assert.Equal(t, []Source{
			{Name: "internal", URL: "https://pypi.corp.example/simple"},
			{Name: "backup", URL: "https://backup.corp.example/simple"},
		}, srcs)
	})

	t.Run("malformed line", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/s", []byte("not-a-pair\n"), 0o644))

		_, err := LoadFile(fs, "/s")
		assert.ErrorContains(t, err, "expected \"name = url\"")
	})

	t.Run("empty name or url", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/s", []byte("= https://x/simple\n"), 0o644))

		_, err := LoadFile(fs, "/s")
		assert.ErrorContains(t, err, "empty name or url")
	})

	t.Run("extra sources extend the registry", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/s", []byte("corp = https://pypi.corp.example/simple\n"), 0o644))

		extra, err := LoadFile(fs, "/s")
		require.NoError(t, err)

		r, err := New(append(Defaults(), extra...))
		require.NoError(t, err)

		url, err := r.Resolve("corp")
		require.NoError(t, err)
		assert.Equal(t, "https://pypi.corp.example/simple", url)
		// Built-ins keep their positions; default is unchanged
		assert.Equal(t, "pypi", r.Default().Name)
	})
}
