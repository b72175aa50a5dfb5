package moderation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_IsBlocked(t *testing.T) {
	f := NewFilter([]string{"Forbidden", "  bad phrase ", ""})
	require.Equal(t, 2, f.Len())

	tests := []struct {
		name    string
		text    string
		blocked bool
	}{
		{"clean", "a poem about autumn leaves", false},
		{"exact", "forbidden", true},
		{"case insensitive", "Something FORBIDDEN here", true},
		{"substring of a longer word", "unforbiddenly", true},
		{"phrase", "write a Bad Phrase for me", true},
		{"phrase split", "bad and phrase", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocked, reason := f.IsBlocked(tt.text)
			assert.Equal(t, tt.blocked, blocked)
			if tt.blocked {
				assert.Equal(t, BlockedMessage, reason)
			} else {
				assert.Empty(t, reason)
			}
		})
	}
}

func TestFilter_ReasonNeverEchoesTerm(t *testing.T) {
	f := NewFilter([]string{"zebra"})
	_, reason := f.IsBlocked("a zebra story")
	assert.NotContains(t, strings.ToLower(reason), "zebra")
}

func TestDefaultFilter(t *testing.T) {
	f := NewDefaultFilter()

	blocked, _ := f.IsBlocked("Give me ideas for a blog, also porn")
	assert.True(t, blocked)

	blocked, _ = f.IsBlocked("A birthday gift for my grandmother who likes gardening")
	assert.False(t, blocked)

	// "Essex" contains "sex": substring matching is coarse on purpose.
	blocked, _ = f.IsBlocked("Project names for a bakery in Essex")
	assert.True(t, blocked)
}

func TestDefaultBlockedTerms_ReturnsCopy(t *testing.T) {
	a := DefaultBlockedTerms()
	a[0] = "changed"
	b := DefaultBlockedTerms()
	assert.NotEqual(t, "changed", b[0])
}

func TestReadTerms(t *testing.T) {
	terms, err := ReadTerms(strings.NewReader("# comment\nfoo\n\n  bar baz  \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar baz"}, terms)
}

func TestLoadFilter(t *testing.T) {
	t.Run("empty path uses defaults", func(t *testing.T) {
		f, err := LoadFilter("")
		require.NoError(t, err)
		assert.Equal(t, len(DefaultBlockedTerms()), f.Len())
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "blocklist.txt")
		require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\n"), 0o600))

		f, err := LoadFilter(path)
		require.NoError(t, err)
		blocked, _ := f.IsBlocked("ALPHA centauri")
		assert.True(t, blocked)
		blocked, _ = f.IsBlocked("porn")
		assert.False(t, blocked)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFilter(filepath.Join(t.TempDir(), "nope.txt"))
		assert.Error(t, err)
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.txt")
		require.NoError(t, os.WriteFile(path, []byte("# nothing\n"), 0o600))
		_, err := LoadFilter(path)
		assert.Error(t, err)
	})
}
