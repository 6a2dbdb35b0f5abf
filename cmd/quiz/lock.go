package main

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

// lockStorage takes an exclusive lock next to the database so that only one
// quiz session uses it at a time. The lock file holds the owner's PID.
// Returns a cleanup function that must be called on exit. The file is left in
// place after release; removing it would let two sessions lock different inodes.
func lockStorage(dbPath string) (func(), error) {
	path := dbPath + ".lock"

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("cannot open lock file: %w", err)
	}

	if err = syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		file.Close()
		if errors.Is(err, syscall.EWOULDBLOCK) {
			return nil, fmt.Errorf("cannot acquire lock on %s: another quiz session is running", dbPath)
		}
		return nil, fmt.Errorf("lock failed: %w", err)
	}

	// Only the lock holder rewrites the PID
	if err = file.Truncate(0); err == nil {
		_, err = fmt.Fprintf(file, "%d\n", os.Getpid())
	}
	if err == nil {
		err = file.Sync()
	}
	if err != nil {
		syscall.Flock(int(file.Fd()), syscall.LOCK_UN)
		file.Close()
		return nil, fmt.Errorf("cannot write PID: %w", err)
	}

	cleanup := func() {
		syscall.Flock(int(file.Fd()), syscall.LOCK_UN)
		file.Close()
	}

	return cleanup, nil
}
