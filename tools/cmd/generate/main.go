// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/hako/durafmt"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kovidgoyal/fileicons/tools/cli"
	"github.com/kovidgoyal/fileicons/tools/highlight"
	"github.com/kovidgoyal/fileicons/tools/iconsgen"
)

var _ = fmt.Print

// Used when no config file is specified and it exists
const DefaultConfigName = "iconsgen.yaml"

type Options struct {
	Config                  string
	Source, Output, Package string
	Prefix, Suffix          string
	Check, DryRun, Watch    bool
	Verbose, Quiet          bool

	stdout, stderr     io.Writer
	stdout_is_terminal bool
}

func (self *Options) config(flags *pflag.FlagSet) (*iconsgen.Config, error) {
	path := self.Config
	if path == "" {
		if _, err := os.Stat(DefaultConfigName); err == nil {
			path = DefaultConfigName
		}
	}
	cfg, err := iconsgen.Load(path)
	if err != nil {
		return nil, err
	}
	set := func(name string, dest *string, val string) {
		if flags.Changed(name) {
			*dest = val
		}
	}
	set("source", &cfg.Source, self.Source)
	set("output", &cfg.Output, self.Output)
	set("package", &cfg.Package, self.Package)
	set("prefix", &cfg.Prefix, self.Prefix)
	set("suffix", &cfg.Suffix, self.Suffix)
	return cfg, nil
}

func (self *Options) mode() (iconsgen.Mode, error) {
	switch {
	case self.Check && self.DryRun:
		return 0, fmt.Errorf("Cannot use both --check and --dry-run")
	case self.Check:
		return iconsgen.Check, nil
	case self.DryRun:
		return iconsgen.DryRun, nil
	}
	return iconsgen.Write, nil
}

var count_fmt = color.New(color.FgGreen, color.Bold).SprintFunc()
var stale_fmt = color.New(color.FgYellow).SprintFunc()

func summary(cfg *iconsgen.Config, mode iconsgen.Mode, res *iconsgen.Result) string {
	icons := fmt.Sprintf("%s icons", count_fmt(len(res.Assets)))
	if n := res.Aliases(); n > 0 {
		icons += fmt.Sprintf(" (%d duplicates)", n)
	}
	took := durafmt.Parse(res.Elapsed).LimitFirstN(1).String()
	switch mode {
	case iconsgen.Check:
		if res.Changed {
			return fmt.Sprintf("%s is %s, it does not match the %s in %s", cfg.Output, stale_fmt("out of date"), icons, cfg.Source)
		}
		return fmt.Sprintf("%s is up to date with the %s in %s, checked in %s", cfg.Output, icons, cfg.Source, took)
	case iconsgen.DryRun:
		return fmt.Sprintf("Generated %s in %s", icons, took)
	}
	if res.Changed {
		return fmt.Sprintf("Wrote %s to %s in %s", icons, cfg.Output, took)
	}
	return fmt.Sprintf("%s already has the %s, left unchanged", cfg.Output, icons)
}

func (self *Options) report(cfg *iconsgen.Config, mode iconsgen.Mode, res *iconsgen.Result) (err error) {
	if res == nil {
		return nil
	}
	if mode == iconsgen.DryRun {
		if self.stdout_is_terminal {
			err = highlight.Highlight(self.stdout, string(res.Source), "go", highlight.DefaultStyle)
		} else {
			_, err = self.stdout.Write(res.Source)
		}
		if err != nil {
			return err
		}
	}
	if !self.Quiet {
		_, err = fmt.Fprintln(self.stderr, summary(cfg, mode, res))
	}
	return
}

func (self *Options) run(ctx context.Context, flags *pflag.FlagSet) error {
	cfg, err := self.config(flags)
	if err != nil {
		return err
	}
	cfg.Logger = cli.SetupLogging(self.stderr, cli.LevelFromFlags(self.Verbose, self.Quiet))
	mode, err := self.mode()
	if err != nil {
		return err
	}
	if self.Watch {
		return iconsgen.Watch(ctx, cfg, mode, func(res *iconsgen.Result, err error) {
			if err == nil || errors.Is(err, iconsgen.ErrStale) {
				err = errors.Join(err, self.report(cfg, mode, res))
			}
			if err != nil {
				cfg.Logger.Error("generation failed", "error", err)
			}
		})
	}
	res, err := iconsgen.Run(cfg, mode)
	if rerr := self.report(cfg, mode, res); rerr != nil && err == nil {
		err = rerr
	}
	if errors.Is(err, iconsgen.ErrStale) {
		return cli.ExitCode(1)
	}
	return err
}

func EntryPoint(root *cobra.Command) {
	opts := Options{stdout: os.Stdout, stderr: os.Stderr}
	cmd := cli.CreateCommand(&cobra.Command{
		Use:   "generate [options]",
		Short: "Generate templ components from a directory of SVG icons",
		Long: "Convert every SVG file in the source directory into a templ component in a single Go source file. The settings are read from the YAML file specified with :option:`--config`, or :file:`" + DefaultConfigName + "` in the current directory if it exists." +
			" Environment variables such as :envvar:`" + iconsgen.EnvPrefix + "SOURCE` override the settings from the file and the command line options override both.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.stdout, opts.stderr = cmd.OutOrStdout(), cmd.ErrOrStderr()
			opts.stdout_is_terminal = cli.StdoutIsTerminal() && opts.stdout == os.Stdout
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return opts.run(ctx, cmd.Flags())
		},
	})
	f := cmd.Flags()
	f.StringVarP(&opts.Config, "config", "c", "", "Path to the YAML config file")
	f.StringVar(&opts.Source, "source", "", "The directory containing the SVG files")
	f.StringVarP(&opts.Output, "output", "o", "", "The Go file to write")
	f.StringVar(&opts.Package, "package", "", "The package name of the generated file")
	f.StringVar(&opts.Prefix, "prefix", "", "Text added before every component name")
	f.StringVar(&opts.Suffix, "suffix", "", "Text added after every component name")
	f.BoolVar(&opts.Check, "check", false, "Do not write anything, instead exit with status 1 if the output file is out of date")
	f.BoolVar(&opts.DryRun, "dry-run", false, "Print the generated source instead of writing it")
	f.BoolVarP(&opts.Watch, "watch", "w", false, "Keep running, regenerating whenever the SVG files change")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "Log every converted icon")
	f.BoolVarP(&opts.Quiet, "quiet", "q", false, "Only print errors")
	root.AddCommand(cmd)
}
