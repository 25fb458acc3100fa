// License: GPLv3 Copyright: 2024, Kovid Goyal, <kovid at kovidgoyal.net>

package main

import (
	"github.com/spf13/cobra"

	"github.com/kovidgoyal/fileicons/tools/cli"
	"github.com/kovidgoyal/fileicons/tools/cmd/generate"
	"github.com/kovidgoyal/fileicons/tools/cmd/resolve"
)

func main() {
	root := cli.CreateCommand(&cobra.Command{
		Use:   "fileicons command [command options] [command args]",
		Short: "Find the icons for file names and generate icon components from SVG files",
	})
	cli.Init(root)

	// resolve
	resolve.EntryPoint(root)
	// ext
	resolve.ExtEntryPoint(root)
	// generate
	generate.EntryPoint(root)

	cli.Exec(root)
}
