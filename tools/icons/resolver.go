// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package icons

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var _ = fmt.Print

// Tables holds the lookup tables a Resolver is built from. Keys are matched
// case-insensitively. An empty Default means DefaultIcon.
type Tables struct {
	FileNames   map[string]Icon
	Extensions  map[string]Icon
	Directories map[string]Icon
	Default     Icon
}

// Resolver maps file names to icons. It copies its tables on creation and
// never modifies them afterwards, so it is safe for concurrent use.
type Resolver struct {
	filenames, extensions, directories map[string]Icon
	fallback                           Icon
}

func lowercased(m map[string]Icon) map[string]Icon {
	ans := make(map[string]Icon, len(m))
	originals := make(map[string]string, len(m))
	for k, v := range m {
		lk := strings.ToLower(k)
		// keys that differ only in case: an all lowercase key wins, otherwise the smallest
		if prev, found := originals[lk]; found && (prev == lk || (k != lk && prev < k)) {
			continue
		}
		originals[lk] = k
		ans[lk] = v
	}
	return ans
}

func NewResolver(t Tables) *Resolver {
	ans := &Resolver{
		filenames:   lowercased(t.FileNames),
		extensions:  lowercased(t.Extensions),
		directories: lowercased(t.Directories),
		fallback:    t.Default,
	}
	if ans.fallback == "" {
		ans.fallback = DefaultIcon
	}
	return ans
}

// Default returns the resolver for the built-in tables.
var Default = sync.OnceValue(func() *Resolver {
	return NewResolver(Tables{
		FileNames:   FileNameMap(),
		Extensions:  ExtensionMap(),
		Directories: DirectoryNameMap(),
		Default:     DefaultIcon,
	})
})

// Tables returns copies of the tables used by this resolver.
func (self *Resolver) Tables() Tables {
	cp := func(m map[string]Icon) map[string]Icon {
		ans := make(map[string]Icon, len(m))
		for k, v := range m {
			ans[k] = v
		}
		return ans
	}
	return Tables{FileNames: cp(self.filenames), Extensions: cp(self.extensions), Directories: cp(self.directories), Default: self.fallback}
}

// base_name returns the part of path after the last / or \. When that is
// empty, path itself is returned.
func base_name(path string) string {
	if idx := strings.LastIndexAny(path, `/\`); idx > -1 {
		if name := path[idx+1:]; name != "" {
			return name
		}
	}
	return path
}

// Extension returns the extension of the file name at the end of path,
// without the leading dot and in the case it was given. A name with no dot
// has no extension. A leading dot counts, so .gitignore has the extension
// gitignore. When the last two segments form a key of the extension table,
// as in archive.tar.gz, that compound extension is returned.
func (self *Resolver) Extension(path string) (ext string, found bool) {
	parts := strings.Split(base_name(path), ".")
	if len(parts) < 2 {
		return "", false
	}
	last := parts[len(parts)-1]
	if len(parts) > 2 {
		compound := parts[len(parts)-2] + "." + last
		if _, found := self.extensions[strings.ToLower(compound)]; found {
			return compound, true
		}
	}
	return last, true
}

func (self *Resolver) by_name(path string) (Icon, bool) {
	ans, found := self.filenames[strings.ToLower(base_name(path))]
	return ans, found
}

func (self *Resolver) by_extension(path string) (Icon, bool) {
	if ext, found := self.Extension(path); found {
		ans, found := self.extensions[strings.ToLower(ext)]
		return ans, found
	}
	return "", false
}

// IconFor returns the icon for the file name at the end of path. An exact
// file name match wins over an extension match and when neither matches
// the default icon is returned.
func (self *Resolver) IconFor(path string) Icon {
	if ans, found := self.by_name(path); found {
		return ans
	}
	if ans, found := self.by_extension(path); found {
		return ans
	}
	return self.fallback
}

// Suggestions returns the candidate icons for path, the file name match
// first and then the extension match. It is never empty and has no
// duplicates.
func (self *Resolver) Suggestions(path string) []Icon {
	ans := make([]Icon, 0, 2)
	name_icon, has_name := self.by_name(path)
	if has_name {
		ans = append(ans, name_icon)
	}
	if ext_icon, found := self.by_extension(path); found && (!has_name || ext_icon != name_icon) {
		ans = append(ans, ext_icon)
	}
	if len(ans) == 0 {
		ans = append(ans, self.fallback)
	}
	return ans
}

// HasExtension reports whether the extension of path is expected, ignoring
// case. expected may have a leading dot.
func (self *Resolver) HasExtension(path, expected string) bool {
	expected = strings.TrimPrefix(expected, ".")
	ext, found := self.Extension(path)
	return found && strings.ToLower(ext) == strings.ToLower(expected)
}

func (self *Resolver) DirectoryIcon(path string) Icon {
	if ans, found := self.directories[strings.ToLower(base_name(path))]; found {
		return ans
	}
	return FOLDER
}

// IconForFileWithMode is like IconFor but uses mode to give directories,
// symlinks, pipes and sockets their own icons. When follow_symlinks is set
// a symlink gets the icon of what it points to.
func (self *Resolver) IconForFileWithMode(path string, mode fs.FileMode, follow_symlinks bool) Icon {
	switch mode & fs.ModeType {
	case fs.ModeDir:
		return self.DirectoryIcon(path)
	case fs.ModeSymlink:
		if follow_symlinks {
			if dest, err := filepath.EvalSymlinks(path); err == nil {
				if st, err := os.Stat(dest); err == nil {
					if st.IsDir() {
						return SYMLINK_TO_DIR
					}
					return self.IconForFileWithMode(dest, st.Mode(), false)
				}
			}
		}
		return SYMLINK
	case fs.ModeNamedPipe:
		return NAMED_PIPE
	case fs.ModeSocket:
		return SOCKET
	default:
		return self.IconFor(path)
	}
}

func IconForPath(path string) Icon { return Default().IconFor(path) }

func Extension(path string) (string, bool) { return Default().Extension(path) }

func HasExtension(path, expected string) bool { return Default().HasExtension(path, expected) }

func Suggestions(path string) []Icon { return Default().Suggestions(path) }

func IconForFileWithMode(path string, mode fs.FileMode, follow_symlinks bool) Icon {
	return Default().IconForFileWithMode(path, mode, follow_symlinks)
}
