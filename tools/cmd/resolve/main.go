// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package resolve

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kovidgoyal/fileicons/tools/cli"
	"github.com/kovidgoyal/fileicons/tools/icons"
	"github.com/kovidgoyal/fileicons/tools/utils"
)

var _ = fmt.Print

type Options struct {
	Suggestions    bool
	Mode           bool
	FollowSymlinks bool
	Overrides      string
	Format         string
}

type Result struct {
	Path        string       `json:"path"`
	Icon        icons.Icon   `json:"icon"`
	Glyph       string       `json:"glyph"`
	Extension   string       `json:"extension,omitempty"`
	Suggestions []icons.Icon `json:"suggestions,omitempty"`
}

// DefaultOverridesName is the overrides file in the config directory used
// when no overrides file is specified.
const DefaultOverridesName = "overrides.yaml"

// Resolver returns the built-in resolver with the overrides from the YAML
// file at path applied. An empty path means the overrides file in the config
// directory, if it exists.
func Resolver(path string) (*icons.Resolver, error) {
	if path == "" {
		path = filepath.Join(utils.ConfigDir(), DefaultOverridesName)
		if _, err := os.Stat(path); err != nil {
			return icons.Default(), nil
		}
	}
	path = utils.Expanduser(path)
	ov, err := icons.LoadOverrides(path)
	if err != nil {
		return nil, err
	}
	return icons.Default().With(ov), nil
}

func resolve(r *icons.Resolver, opts *Options, path string) (*Result, error) {
	ans := &Result{Path: path}
	if opts.Mode {
		st, err := os.Lstat(path)
		if err != nil {
			return nil, err
		}
		ans.Icon = r.IconForFileWithMode(path, st.Mode(), opts.FollowSymlinks)
	} else {
		ans.Icon = r.IconFor(path)
	}
	ans.Glyph = string(ans.Icon.Glyph())
	ans.Extension, _ = r.Extension(path)
	if opts.Suggestions {
		ans.Suggestions = r.Suggestions(path)
	}
	return ans, nil
}

var icon_fmt = color.New(color.FgGreen).SprintFunc()

func (self *Result) text() string {
	names := []string{icon_fmt(self.Icon)}
	if len(self.Suggestions) > 0 {
		names = names[:0]
		for _, s := range self.Suggestions {
			names = append(names, icon_fmt(s))
		}
	}
	return fmt.Sprintf("%s %s %s", self.Glyph, strings.Join(names, ","), self.Path)
}

func main(w io.Writer, opts *Options, args []string) error {
	r, err := Resolver(opts.Overrides)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	var errs []error
	for _, path := range args {
		res, err := resolve(r, opts, path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if opts.Format == "json" {
			err = enc.Encode(res)
		} else {
			_, err = fmt.Fprintln(w, res.text())
		}
		if err != nil {
			return err
		}
	}
	return errors.Join(errs...)
}

func EntryPoint(root *cobra.Command) {
	opts := Options{}
	var format *string
	cmd := cli.CreateCommand(&cobra.Command{
		Use:   "resolve [options] name ...",
		Short: "Print the icon for each of the specified file names",
		Long: "Print the icon for each of the specified file names or paths. Names are matched against the table of well known file names first and then by extension, for example :code:`index.d.ts` has the compound extension :code:`d.ts`." +
			" Each line of output has the terminal glyph, the icon name and the path.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Format = *format
			return main(cmd.OutOrStdout(), &opts, args)
		},
	})
	f := cmd.Flags()
	f.BoolVarP(&opts.Suggestions, "suggestions", "s", false, "Print all matching icons, the file name match first, instead of only the best one")
	f.BoolVarP(&opts.Mode, "mode", "m", false, "Treat the names as paths to existing files and use their type, so directories, symlinks, sockets and named pipes get their own icons")
	f.BoolVar(&opts.FollowSymlinks, "follow-symlinks", false, "With :option:`--mode`, use the type of the file a symlink points to")
	f.StringVar(&opts.Overrides, "overrides", "", "Path to a YAML file with :code:`filenames`, :code:`extensions` and :code:`directories` maps from names to icon names that take precedence over the built-in tables. Defaults to :file:`overrides.yaml` in the config directory, which is :envvar:`FILEICONS_CONFIG_DIRECTORY` if set, otherwise :file:`~/.config/fileicons`")
	format = cli.Choices(cmd, "format", "The output format, :code:`json` prints one JSON object per line", "text", "json")
	root.AddCommand(cmd)
}
