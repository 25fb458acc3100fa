// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package resolve

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kovidgoyal/fileicons/tools/cli"
)

var _ = fmt.Print

func ext_main(w io.Writer, overrides string, args []string) error {
	r, err := Resolver(overrides)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		if r.HasExtension(args[0], args[1]) {
			return nil
		}
		return cli.ExitCode(1)
	}
	ext, found := r.Extension(args[0])
	if !found {
		return cli.ExitCode(1)
	}
	_, err = fmt.Fprintln(w, ext)
	return err
}

func ExtEntryPoint(root *cobra.Command) {
	var overrides string
	cmd := cli.CreateCommand(&cobra.Command{
		Use:   "ext [options] name [expected]",
		Short: "Print the extension of a file name",
		Long: "Print the extension of the specified file name, exiting with status 1 if it has none. Compound extensions such as :code:`tar.gz` are recognized when they are in the table of extensions." +
			" If an expected extension is given, nothing is printed and the exit status is zero only if the file name has that extension, ignoring case and a leading dot.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ext_main(cmd.OutOrStdout(), overrides, args)
		},
	})
	cmd.Flags().StringVar(&overrides, "overrides", "", "Path to a YAML file whose :code:`extensions` map adds to the table of extensions")
	root.AddCommand(cmd)
}
