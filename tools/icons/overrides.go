// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package icons

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var _ = fmt.Print

// Overrides are user supplied additions to the built-in tables, read from a
// YAML file of the form:
//
//	filenames:
//	  justfile: make
//	extensions:
//	  .tpl: mustache
//	directories:
//	  build: folder_config
//	default: file
type Overrides struct {
	FileNames   map[string]Icon `yaml:"filenames"`
	Extensions  map[string]Icon `yaml:"extensions"`
	Directories map[string]Icon `yaml:"directories"`
	Default     Icon            `yaml:"default"`
}

func normalize_overrides(section string, m map[string]Icon, strip_dot bool) (map[string]Icon, error) {
	ans := make(map[string]Icon, len(m))
	for k, v := range m {
		key := strings.ToLower(strings.TrimSpace(k))
		if strip_dot {
			key = strings.TrimPrefix(key, ".")
		}
		if key == "" {
			return nil, fmt.Errorf("%s: empty key", section)
		}
		name := Icon(strings.ToLower(strings.TrimSpace(string(v))))
		if name == "" {
			return nil, fmt.Errorf("%s: no icon specified for %#v", section, k)
		}
		ans[key] = name
	}
	return ans, nil
}

func ParseOverrides(data []byte) (ans *Overrides, err error) {
	ans = &Overrides{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(ans); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse icon overrides: %w", err)
	}
	if ans.FileNames, err = normalize_overrides("filenames", ans.FileNames, false); err != nil {
		return nil, err
	}
	if ans.Extensions, err = normalize_overrides("extensions", ans.Extensions, true); err != nil {
		return nil, err
	}
	if ans.Directories, err = normalize_overrides("directories", ans.Directories, false); err != nil {
		return nil, err
	}
	ans.Default = Icon(strings.ToLower(strings.TrimSpace(string(ans.Default))))
	return ans, nil
}

func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ans, err := ParseOverrides(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ans, nil
}

// With returns a new resolver whose tables are those of self with the
// entries from ov added, replacing any existing entries for the same keys.
func (self *Resolver) With(ov *Overrides) *Resolver {
	if ov == nil {
		return self
	}
	t := self.Tables()
	merge := func(dest, src map[string]Icon) {
		for k, v := range src {
			dest[k] = v
		}
	}
	merge(t.FileNames, ov.FileNames)
	merge(t.Extensions, ov.Extensions)
	merge(t.Directories, ov.Directories)
	if ov.Default != "" {
		t.Default = ov.Default
	}
	return NewResolver(t)
}
