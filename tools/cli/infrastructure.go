// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sys/unix"

	"github.com/kovidgoyal/fileicons"
)

var _ = fmt.Print

var RootCmd *cobra.Command

func GetTTYSize() (*unix.Winsize, error) {
	if stdout_is_terminal {
		return unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	}
	return nil, fmt.Errorf("STDOUT is not a TTY")
}

func StdoutIsTerminal() bool { return stdout_is_terminal }

// Choices adds a string flag whose value must be one of choices, the first
// being the default.
func Choices(cmd *cobra.Command, name string, usage string, choices ...string) *string {
	cmd.Annotations["choices-"+name] = strings.Join(choices, "\000")
	return cmd.Flags().String(name, choices[0], usage)
}

func ValidateChoices(cmd *cobra.Command, args []string) error {
	for key, val := range cmd.Annotations {
		if name, found := strings.CutPrefix(key, "choices-"); found {
			allowed := strings.Split(val, "\000")
			if cval, err := cmd.Flags().GetString(name); err == nil && !slices.Contains(allowed, cval) {
				return fmt.Errorf("%s: Invalid value: %s. Allowed values are: %s", color.YellowString("--"+name), color.RedString(cval), strings.Join(allowed, ", "))
			}
		}
	}
	return nil
}

var stdout_is_terminal = false
var title_fmt = color.New(color.FgBlue, color.Bold).SprintFunc()
var exe_fmt = color.New(color.FgYellow, color.Bold).SprintFunc()
var opt_fmt = color.New(color.FgGreen).SprintFunc()
var italic_fmt = color.New(color.Italic).SprintFunc()
var err_fmt = color.New(color.FgHiRed).SprintFunc()
var bold_fmt = color.New(color.Bold).SprintFunc()
var code_fmt = color.New(color.FgCyan).SprintFunc()
var yellow_fmt = color.New(color.FgYellow).SprintFunc()
var green_fmt = color.New(color.FgGreen).SprintFunc()

func format_line_with_indent(output io.Writer, text string, indent string, screen_width int) {
	x := len(indent)
	fmt.Fprint(output, indent)
	in_escape := 0
	var current_word strings.Builder
	var escapes strings.Builder

	print_word := func(r rune) {
		w := runewidth.StringWidth(current_word.String())
		if x+w > screen_width {
			fmt.Fprintln(output)
			fmt.Fprint(output, indent)
			x = len(indent)
			s := strings.TrimSpace(current_word.String())
			current_word.Reset()
			current_word.WriteString(s)
		}
		if escapes.Len() > 0 {
			io.WriteString(output, escapes.String())
			escapes.Reset()
		}
		if current_word.Len() > 0 {
			io.WriteString(output, current_word.String())
			current_word.Reset()
		}
		if r > 0 {
			current_word.WriteRune(r)
		}
		x += w
	}

	for i, r := range text {
		if in_escape > 0 {
			if in_escape == 1 && (r == ']' || r == '[') {
				in_escape = 2
				if r == ']' {
					in_escape = 3
				}
			}
			if (in_escape == 2 && r == 'm') || (in_escape == 3 && r == '\\' && text[i-1] == 0x1b) {
				in_escape = 0
			}
			escapes.WriteRune(r)
			continue
		}
		if r == 0x1b {
			in_escape = 1
			if current_word.Len() != 0 {
				print_word(0)
			}
			escapes.WriteRune(r)
			continue
		}
		if current_word.Len() != 0 && r != 0xa0 && unicode.IsSpace(r) {
			print_word(r)
		} else {
			current_word.WriteRune(r)
		}
	}
	if current_word.Len() != 0 || escapes.Len() != 0 {
		print_word(0)
	}
	if len(text) > 0 {
		fmt.Fprintln(output)
	}
}

var prettify_pat = regexp.MustCompile(":([a-z]+):`([^`]+)`")

// prettify converts roles such as :code:`x` in help text into styled text
func prettify(text string) string {
	return prettify_pat.ReplaceAllStringFunc(text, func(match string) string {
		groups := prettify_pat.FindStringSubmatch(match)
		val := groups[2]
		switch groups[1] {
		case "file", "env", "envvar", "emph":
			return italic_fmt(val)
		case "code":
			return code_fmt(val)
		case "option":
			if idx := strings.LastIndex(val, "--"); idx > -1 {
				val = val[idx:]
			}
			return bold_fmt(val)
		case "opt":
			return bold_fmt(val)
		case "yellow":
			return yellow_fmt(val)
		case "green":
			return green_fmt(val)
		case "doc":
			return fileicons.WebsiteBaseURL + "/" + strings.TrimPrefix(val, "/")
		default:
			return val
		}
	})
}

func format_with_indent(output io.Writer, text string, indent string, screen_width int) {
	for _, line := range strings.Split(prettify(text), "\n") {
		format_line_with_indent(output, line, indent, screen_width)
	}
}

func full_command_name(cmd *cobra.Command) string {
	var parent_names []string
	cmd.VisitParents(func(p *cobra.Command) {
		parent_names = append([]string{p.Name()}, parent_names...)
	})
	parent_names = append(parent_names, cmd.Name())
	return strings.Join(parent_names, " ")
}

func pager() []string {
	if p := strings.Fields(os.Getenv("PAGER")); len(p) > 0 {
		return p
	}
	return []string{"less", "-iRXF"}
}

func show_usage(cmd *cobra.Command) error {
	ws, tty_size_err := GetTTYSize()
	var output strings.Builder
	screen_width := 80
	if tty_size_err == nil && ws.Col < 80 {
		screen_width = int(ws.Col)
	}
	use := ""
	if _, rest, found := strings.Cut(cmd.Use, " "); found {
		use = rest
	}
	fmt.Fprintln(&output, title_fmt("Usage")+":", exe_fmt(full_command_name(cmd)), use)
	fmt.Fprintln(&output)
	if len(cmd.Long) > 0 {
		format_with_indent(&output, cmd.Long, "", screen_width)
	} else if len(cmd.Short) > 0 {
		format_with_indent(&output, cmd.Short, "", screen_width)
	}
	if cmd.HasAvailableSubCommands() {
		fmt.Fprintln(&output)
		fmt.Fprintln(&output, title_fmt("Commands")+":")
		for _, child := range cmd.Commands() {
			if child.Hidden {
				continue
			}
			fmt.Fprintln(&output, " ", opt_fmt(child.Name()))
			format_with_indent(&output, child.Short, "    ", screen_width)
		}
		fmt.Fprintln(&output)
		format_with_indent(&output, "Get help for an individual command by running:", "", screen_width)
		fmt.Fprintln(&output, "   ", full_command_name(cmd), italic_fmt("command"), "-h")
	}
	if cmd.HasAvailableFlags() {
		fmt.Fprintln(&output)
		fmt.Fprintln(&output, title_fmt("Options")+":")
		cmd.LocalFlags().VisitAll(func(flag *pflag.Flag) {
			fmt.Fprint(&output, opt_fmt("  --"+flag.Name))
			if flag.Shorthand != "" {
				fmt.Fprint(&output, ", ", opt_fmt("-"+flag.Shorthand))
			}
			switch flag.Value.Type() {
			case "bool", "count":
			default:
				if flag.DefValue != "" && flag.DefValue != "[]" {
					fmt.Fprintf(&output, " [=%s]", italic_fmt(flag.DefValue))
				}
			}
			fmt.Fprintln(&output)
			msg := flag.Usage
			switch flag.Name {
			case "help":
				msg = "Print this help message"
			case "version":
				msg = "Print the version of " + RootCmd.Name() + ": " + italic_fmt(RootCmd.Version)
			}
			format_with_indent(&output, msg, "    ", screen_width)
			if cmd.Annotations["choices-"+flag.Name] != "" {
				fmt.Fprintln(&output, "    Choices:", strings.Join(strings.Split(cmd.Annotations["choices-"+flag.Name], "\000"), ", "))
			}
			fmt.Fprintln(&output)
		})
	}
	fmt.Fprintln(&output, italic_fmt(RootCmd.Name()), opt_fmt(fileicons.VersionString), "created by", title_fmt("Kovid Goyal"))
	output_text := output.String()
	if cmd.Annotations["use-pager-for-usage"] == "true" && stdout_is_terminal {
		p := pager()
		c := exec.Command(p[0], p[1:]...)
		c.Stdin = strings.NewReader(output_text)
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		if c.Run() == nil {
			return nil
		}
	}
	_, err := io.WriteString(cmd.OutOrStdout(), output_text)
	return err
}

// CreateCommand prepares cmd for use with the shared usage output and
// choice validation.
func CreateCommand(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = make(map[string]string)
	}
	if cmd.Run == nil && cmd.RunE == nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			if len(cmd.Commands()) > 0 {
				if len(args) == 0 {
					return fmt.Errorf("%s. Use %s -h to get a list of available sub-commands", err_fmt("No sub-command specified"), full_command_name(cmd))
				}
				return fmt.Errorf("Not a valid subcommand: %s. Use %s -h to get a list of available sub-commands", err_fmt(args[0]), full_command_name(cmd))
			}
			return nil
		}
	}
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	orig_pre_run := cmd.PreRunE
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		err := ValidateChoices(cmd, args)
		if err != nil || orig_pre_run == nil {
			return err
		}
		return orig_pre_run(cmd, args)
	}

	cmd.PersistentFlags().SortFlags = false
	cmd.Flags().SortFlags = false
	return cmd
}

func show_help(cmd *cobra.Command, args []string) {
	if cmd.Annotations != nil {
		cmd.Annotations["use-pager-for-usage"] = "true"
	}
	show_usage(cmd)
}

func Init(root *cobra.Command) {
	vs := fileicons.VersionString
	if fileicons.VCSRevision != "" {
		vs = vs + " (" + fileicons.VCSRevision + ")"
	}
	stdout_is_terminal = isatty.IsTerminal(os.Stdout.Fd())
	RootCmd = root
	root.Version = vs
	root.SetUsageFunc(show_usage)
	root.SetHelpFunc(show_help)
	root.SetHelpCommand(&cobra.Command{Hidden: true})
	root.CompletionOptions.DisableDefaultCmd = true
}

// ExitCode is an error that makes Exec exit with the given status without
// printing anything.
type ExitCode int

func (self ExitCode) Error() string { return fmt.Sprintf("exit status %d", int(self)) }

// Run executes root with args and returns the process exit status. Errors
// are printed to stderr.
func Run(root *cobra.Command, args []string) int {
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return 0
	}
	var ec ExitCode
	if errors.As(err, &ec) {
		return int(ec)
	}
	fmt.Fprintln(root.ErrOrStderr(), err_fmt("Error")+":", err)
	return 1
}

func Exec(root *cobra.Command) {
	os.Exit(Run(root, os.Args[1:]))
}
