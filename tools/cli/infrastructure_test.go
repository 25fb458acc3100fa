// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package cli

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var _ = fmt.Print

func TestFormatLineWithIndent(t *testing.T) {
	var output strings.Builder

	indent := "  "
	format_line_with_indent(&output, "testing \x1b[31mstyled\x1b[m", indent, 11)
	expected := indent + "testing \n" + indent + "\x1b[31mstyled\x1b[m\n"
	if output.String() != expected {
		t.Fatalf("%#v != %#v", expected, output.String())
	}
}

func test_root(run func(cmd *cobra.Command, args []string) error) (*cobra.Command, *bytes.Buffer) {
	color.NoColor = true
	root := CreateCommand(&cobra.Command{Use: "fileicons command [args]", Short: "Test root"})
	Init(root)
	stdout_is_terminal = false
	child := CreateCommand(&cobra.Command{Use: "child [args]", Short: "A child with :code:`code`", RunE: run})
	Choices(child, "format", "Output format", "text", "json")
	root.AddCommand(child)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	return root, &out
}

func TestRunCommands(t *testing.T) {
	var format string
	root, out := test_root(func(cmd *cobra.Command, args []string) error {
		format, _ = cmd.Flags().GetString("format")
		if len(args) > 0 && args[0] == "fail" {
			return ExitCode(3)
		}
		if len(args) > 0 && args[0] == "error" {
			return fmt.Errorf("something broke")
		}
		return nil
	})
	if rc := Run(root, []string{"child", "--format", "json"}); rc != 0 || format != "json" {
		t.Fatalf("Unexpected result: rc=%d format=%s output: %s", rc, format, out)
	}
	if rc := Run(root, []string{"child", "fail"}); rc != 3 || out.Len() != 0 {
		t.Fatalf("ExitCode not honored: rc=%d output: %s", rc, out)
	}
	if rc := Run(root, []string{"child", "error"}); rc != 1 || !strings.Contains(out.String(), "Error: something broke") {
		t.Fatalf("Error not reported: rc=%d output: %s", rc, out)
	}
	out.Reset()
	if rc := Run(root, []string{"child", "--format", "xml"}); rc != 1 || !strings.Contains(out.String(), "Invalid value: xml. Allowed values are: text, json") {
		t.Fatalf("Invalid choice not reported: rc=%d output: %s", rc, out)
	}
	out.Reset()
	if rc := Run(root, []string{"nosuch"}); rc != 1 || !strings.Contains(out.String(), `unknown command "nosuch"`) {
		t.Fatalf("Invalid subcommand not reported: rc=%d output: %s", rc, out)
	}
	out.Reset()
	if rc := Run(root, []string{"child", "-h"}); rc != 0 {
		t.Fatalf("Help failed: %d", rc)
	}
	for _, q := range []string{"Usage: fileicons child [args]", "A child with code", "--format [=text]", "Choices: text, json"} {
		if !strings.Contains(out.String(), q) {
			t.Fatalf("%#v not in help output:\n%s", q, out)
		}
	}
}

func TestLogging(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	var b strings.Builder
	log := SetupLogging(&b, LevelFromFlags(false, false))
	log.Debug("hidden")
	log.Info("shown", "n", 1)
	if actual := b.String(); actual != "level=INFO msg=shown n=1\n" {
		t.Fatalf("Unexpected log output: %#v", actual)
	}
	if LevelFromFlags(true, true) != slog.LevelDebug || LevelFromFlags(false, true) != slog.LevelError {
		t.Fatalf("Wrong levels from flags")
	}
}
