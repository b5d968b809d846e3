// pkg/testutil/memoryfs_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test MemoryFS implementation

package testutil

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFS_BasicOperations(t *testing.T) {
	mfs := NewMemoryFS()

	t.Run("WriteAndRead", func(t *testing.T) {
		require.NoError(t, mfs.WriteFile("/runner/env", []byte("A=1\n"), 0644))

		got, err := mfs.ReadFile("/runner/env")
		require.NoError(t, err)
		assert.Equal(t, "A=1\n", string(got))

		info, err := mfs.Stat("/runner")
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("Append", func(t *testing.T) {
		require.NoError(t, mfs.AppendFile("/runner/env", []byte("B=2\n")))

		got, err := mfs.ReadFile("/runner/env")
		require.NoError(t, err)
		assert.Equal(t, "A=1\nB=2\n", string(got))
	})

	t.Run("AppendMissing", func(t *testing.T) {
		err := mfs.AppendFile("/runner/missing", []byte("x"))
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("RemoveNonEmptyDir", func(t *testing.T) {
		assert.Error(t, mfs.Remove("/runner"))
		require.NoError(t, mfs.Remove("/runner/env"))
		require.NoError(t, mfs.Remove("/runner"))
		_, err := mfs.Stat("/runner")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	reads, writes := mfs.Stats()
	assert.Equal(t, 2, reads)
	assert.Equal(t, 3, writes)
}

func TestMemoryFS_ErrorInjection(t *testing.T) {
	denied := errors.New("permission denied")
	mfs := NewMemoryFS()
	require.NoError(t, mfs.WriteFile("/summary.md", nil, 0644))
	mfs.WithError("/summary.md", denied)

	assert.ErrorIs(t, mfs.AppendFile("/summary.md", []byte("x")), denied)
	assert.ErrorIs(t, mfs.WriteFile("/summary.md", []byte("x"), 0644), denied)
	_, err := mfs.Stat("/summary.md")
	assert.ErrorIs(t, err, denied)
}

func TestWriteRecorder(t *testing.T) {
	var rec WriteRecorder
	_, _ = rec.Write([]byte("\n"))
	_, _ = rec.Write([]byte("::set-output name=a::b\n"))

	assert.Equal(t, []string{"\n", "::set-output name=a::b\n"}, rec.Calls())
	assert.Equal(t, "\n::set-output name=a::b\n", rec.String())

	rec.Reset()
	assert.Empty(t, rec.Calls())
}
