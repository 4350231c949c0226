package wordlist

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passwordStrengthChecker/internal/core/domain"
)

func TestRead_TrimsAndSkipsBlanks(t *testing.T) {
	words, err := Read(strings.NewReader("alpha\n\n  Bravo  \r\ncharlie\n   \n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "Bravo", "charlie"}, words)
}

func TestRead_DropsInvalidUTF8(t *testing.T) {
	words, err := Read(strings.NewReader("caf\xffe\nzoo\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"cafe", "zoo"}, words)
}

func TestRead_NormalizesToNFC(t *testing.T) {
	words, err := Read(strings.NewReader("cafe\u0301\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"caf\u00e9"}, words)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("dragon\nfalcon\n"), 0o644))

	words, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"dragon", "falcon"}, words)
}

func TestLoad_Missing(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, domain.ErrDictionaryUnavailable)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
