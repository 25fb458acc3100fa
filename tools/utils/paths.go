// License: GPLv3 Copyright: 2022, Kovid Goyal, <kovid at kovidgoyal.net>

package utils

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
)

var _ = fmt.Print

// ConfigDirEnvVar, when set, is used as the config directory as is.
const ConfigDirEnvVar = "FILEICONS_CONFIG_DIRECTORY"

func Expanduser(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		usr, err := user.Current()
		if err == nil {
			home = usr.HomeDir
		}
	}
	if err != nil || home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	path = strings.ReplaceAll(path, string(os.PathSeparator), "/")
	parts := strings.Split(path, "/")
	if parts[0] == "~" {
		parts[0] = home
	} else if uname := parts[0][1:]; uname != "" {
		if u, err := user.Lookup(uname); err == nil && u.HomeDir != "" {
			parts[0] = u.HomeDir
		}
	}
	return strings.Join(parts, string(os.PathSeparator))
}

func Abspath(path string) string {
	q, err := filepath.Abs(path)
	if err == nil {
		return q
	}
	return path
}

// ConfigDir returns the directory holding the fileicons config files. The
// first candidate that exists is used, falling back to the first candidate.
func ConfigDir() string {
	if q := os.Getenv(ConfigDirEnvVar); q != "" {
		return Abspath(Expanduser(q))
	}
	var locations []string
	if q := os.Getenv("XDG_CONFIG_HOME"); q != "" {
		locations = append(locations, Expanduser(q))
	}
	locations = append(locations, Expanduser("~/.config"))
	if runtime.GOOS == "darwin" {
		locations = append(locations, Expanduser("~/Library/Preferences"))
	}
	for _, loc := range locations {
		q := filepath.Join(loc, "fileicons")
		if st, err := os.Stat(q); err == nil && st.IsDir() {
			return q
		}
	}
	return filepath.Join(locations[0], "fileicons")
}
