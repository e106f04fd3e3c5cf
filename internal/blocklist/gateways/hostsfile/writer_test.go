package hostsfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/rr-blocklist/internal/blocklist/common/log"
	"github.com/haukened/rr-blocklist/internal/blocklist/domain"
)

const testHeader = "# Title: test\n# generated\n"

func TestWriter_Write(t *testing.T) {
	p := filepath.Join(t.TempDir(), "block_list.pi_hosts")
	doc := domain.NewDocument(testHeader, "0.0.0.0", []string{"foo.com", "bar.net "})

	require.NoError(t, NewWriter(log.NewNoopLogger()).Write(p, doc))

	got, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, testHeader+"\n0.0.0.0 foo.com\n0.0.0.0 bar.net ", string(got))
}

func TestWriter_Write_Overwrites(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.hosts")
	require.NoError(t, os.WriteFile(p, []byte("stale content that is much longer than the new file\n"), 0o644))

	doc := domain.NewDocument(testHeader, "0.0.0.0", []string{"a.com"})
	require.NoError(t, NewWriter(log.NewNoopLogger()).Write(p, doc))

	got, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, testHeader+"\n0.0.0.0 a.com", string(got))
}

func TestWriter_Write_EmptyDocument(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.hosts")

	require.NoError(t, NewWriter(log.NewNoopLogger()).Write(p, domain.NewDocument(testHeader, "", nil)))

	got, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, testHeader+"\n", string(got))
}

func TestWriter_Write_MissingDirectory(t *testing.T) {
	p := filepath.Join(t.TempDir(), "does", "not", "exist", "out.hosts")

	err := NewWriter(log.NewNoopLogger()).Write(p, domain.NewDocument(testHeader, "", []string{"a.com"}))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOutputWrite))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), p)
	_, statErr := os.Stat(p)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriter_Write_PathIsDirectory(t *testing.T) {
	dir := t.TempDir()

	err := NewWriter(log.NewNoopLogger()).Write(dir, domain.NewDocument(testHeader, "", nil))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOutputWrite))
}

func TestWriter_Write_EmptyPath(t *testing.T) {
	err := NewWriter(log.NewNoopLogger()).Write("", domain.NewDocument(testHeader, "", []string{"a.com"}))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrOutputWrite))
}
