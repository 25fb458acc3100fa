// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package fileicons

import (
	"fmt"
	"regexp"
	"runtime/debug"
	"strconv"
	"strings"
)

var _ = fmt.Print

// Used when the binary was not built from a tagged module version
const base_version = "0.3.0"

const WebsiteBaseURL = "https://github.com/kovidgoyal/fileicons"

type VersionType struct {
	Major, Minor, Patch int
}

func (self VersionType) String() string {
	return fmt.Sprint(self.Major, ".", self.Minor, ".", self.Patch)
}

var VersionString string
var Version VersionType
var VCSRevision string

func parse_version(raw string) (ans VersionType, err error) {
	matches := regexp.MustCompile(`^v?(\d+)\.(\d+)\.(\d+)`).FindStringSubmatch(raw)
	if matches == nil {
		return ans, fmt.Errorf("not a valid version: %#v", raw)
	}
	if ans.Major, err = strconv.Atoi(matches[1]); err == nil {
		if ans.Minor, err = strconv.Atoi(matches[2]); err == nil {
			ans.Patch, err = strconv.Atoi(matches[3])
		}
	}
	return
}

func init() {
	raw := base_version
	if bi, ok := debug.ReadBuildInfo(); ok {
		if v := bi.Main.Version; v != "" && v != "(devel)" && !strings.Contains(v, "-0.") {
			raw = v
		}
		for _, bs := range bi.Settings {
			if bs.Key == "vcs.revision" {
				VCSRevision = bs.Value
			}
		}
	}
	v, err := parse_version(raw)
	if err != nil {
		panic(err)
	}
	Version = v
	VersionString = v.String()
}
