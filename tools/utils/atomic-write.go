// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package utils

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

var _ = fmt.Print

func resolve_target(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
		resolved = path
	}
	return filepath.Abs(resolved)
}

// AtomicWriteFile writes data to a temporary file next to path and renames
// it over path, so readers see either the old or the new contents.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) (err error) {
	path, err = resolve_target(path)
	if err == nil {
		var f *os.File
		f, err = os.CreateTemp(filepath.Dir(path), filepath.Base(path))
		if err == nil {
			removed := false
			defer func() {
				f.Close()
				if !removed {
					os.Remove(f.Name())
					removed = true
				}
			}()
			_, err = f.Write(data)
			if err == nil {
				err = f.Chmod(perm)
				if err == nil {
					err = os.Rename(f.Name(), path)
					if err == nil {
						removed = true
					}
				}
			}
		}
	}
	return
}

// AtomicUpdateFile is AtomicWriteFile that keeps the permissions of an
// existing file, using perms (default 0666) only for new files.
func AtomicUpdateFile(path string, data []byte, perms ...fs.FileMode) (err error) {
	perm := fs.FileMode(0o666)
	if len(perms) > 0 {
		perm = perms[0]
	}
	s, err := os.Stat(path)
	if err == nil {
		perm = s.Mode().Perm()
	}
	return AtomicWriteFile(path, data, perm)
}

// WriteFileIfChanged atomically updates path with data unless it already
// has exactly that content.
func WriteFileIfChanged(path string, data []byte, perms ...fs.FileMode) (changed bool, err error) {
	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	if err = AtomicUpdateFile(path, data, perms...); err != nil {
		return false, err
	}
	return true, nil
}
