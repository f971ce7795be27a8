package turnlock

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLock_AcquireRelease(t *testing.T) {
	lock := New(t.TempDir(), "game-1")

	require.NoError(t, lock.Acquire())
	assert.FileExists(t, lock.Path())
	pid, ok := lock.holder()
	require.True(t, ok)
	assert.Equal(t, os.Getpid(), pid)

	require.NoError(t, lock.Release())
	assert.NoFileExists(t, lock.Path())
	assert.NoError(t, lock.Release(), "releasing twice is harmless")
}

func TestLock_HeldByLiveProcess(t *testing.T) {
	dir := t.TempDir()
	first := New(dir, "game-1")
	require.NoError(t, first.Acquire())
	t.Cleanup(func() { _ = first.Release() })

	err := New(dir, "game-1").Acquire()

	assert.ErrorIs(t, err, ErrTurnInProgress)
	assert.NoError(t, New(dir, "game-2").Acquire(), "locks are per game")
}

func TestLock_ReclaimsStaleFile(t *testing.T) {
	lock := New(t.TempDir(), "game-1")
	require.NoError(t, os.WriteFile(lock.Path(), []byte("999999999\n"), 0644))

	require.NoError(t, lock.Acquire())

	pid, ok := lock.holder()
	require.True(t, ok)
	assert.Equal(t, os.Getpid(), pid)
}

func TestLock_ReclaimsGarbageFile(t *testing.T) {
	lock := New(t.TempDir(), "game-1")
	require.NoError(t, os.WriteFile(lock.Path(), []byte("not a pid"), 0644))

	assert.NoError(t, lock.Acquire())
}
