package check

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputs(t *testing.T) {
	tests := []struct {
		name        string
		original    string
		replacement string
		want        error
	}{
		{"valid", "ORIG", "NEW", nil},
		{"empty replacement is valid", "aa", "", nil},
		{"replacement containing original is valid", "a", "aa", nil},
		{"empty original", "", "NEW", ErrEmptyOriginal},
		{"both empty", "", "", ErrEmptyOriginal},
		{"identical", "same", "same", ErrSameStrings},
		{"forbidden in original", "a/b", "c", ErrForbiddenInput},
		{"forbidden in replacement", "a", "b*", ErrForbiddenInput},
		// Identical strings are reported before forbidden characters.
		{"identical and forbidden", "a?", "a?", ErrSameStrings},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Inputs(tt.original, tt.replacement)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestInputs_Message(t *testing.T) {
	err := Inputs("a", "b|c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "replacement must not contain any of")
}

func TestTarget(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/work", 0o755))
	require.NoError(t, afero.WriteFile(fs, "/work/file.txt", []byte("x"), 0o644))

	assert.NoError(t, Target(fs, "/work"))
	assert.ErrorIs(t, Target(fs, "/missing"), ErrTargetNotFound)
	assert.ErrorIs(t, Target(fs, "/work/file.txt"), ErrNotDirectory)
}

func TestRequest(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/work", 0o755))

	assert.NoError(t, Request(fs, "ORIG", "NEW", "/work"))
	assert.ErrorIs(t, Request(fs, "", "NEW", "/work"), ErrEmptyOriginal)
	assert.ErrorIs(t, Request(fs, "ORIG", "NEW", "/nope"), ErrTargetNotFound)
}
