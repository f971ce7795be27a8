package turnlock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// ErrTurnInProgress is returned when another live process holds the game's lock
var ErrTurnInProgress = errors.New("turn already in progress")

// Lock serialises end-turn runs of one game across CLI processes. The lock file
// holds the PID of the holder; a file left behind by a dead process is reclaimed.
type Lock struct {
	path string
}

// New returns the lock for gameID, stored under dir
func New(dir, gameID string) *Lock {
	return &Lock{path: filepath.Join(dir, gameID+".lock")}
}

// Path returns the lock file location
func (l *Lock) Path() string {
	return l.path
}

// Acquire takes the lock or fails with ErrTurnInProgress
func (l *Lock) Acquire() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return fmt.Errorf("failed to create lock directory: %w", err)
	}

	for attempt := 0; attempt < 2; attempt++ {
		file, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		if err == nil {
			_, werr := fmt.Fprintf(file, "%d\n", os.Getpid())
			cerr := file.Close()
			if werr != nil {
				return fmt.Errorf("failed to write lock file: %w", werr)
			}
			return cerr
		}
		if !os.IsExist(err) {
			return fmt.Errorf("failed to create lock file: %w", err)
		}

		holder, ok := l.holder()
		if ok && processAlive(holder) {
			return fmt.Errorf("%w (held by PID %d)", ErrTurnInProgress, holder)
		}
		// stale
		_ = os.Remove(l.path)
	}
	return fmt.Errorf("%w: could not reclaim %s", ErrTurnInProgress, l.path)
}

// Release removes the lock file
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return nil
}

func (l *Lock) holder() (int, bool) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, false
	}
	return pid, true
}

// processAlive probes pid with signal 0. EPERM means the process exists under another user.
func processAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	err = process.Signal(syscall.Signal(0))
	return err == nil || errors.Is(err, syscall.EPERM)
}
