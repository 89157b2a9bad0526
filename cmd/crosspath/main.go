package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/MacroPower/crosspath/internal/cli"
	"github.com/MacroPower/crosspath/pkg/log"
)

func init() {
	log.SetLogFormat("text")
	log.SetLogLevel("warn")
}

const (
	cmdName = "crosspath"

	shortDesc = "Convert paths between Windows and Unix conventions."
	longDesc  = `Convert filesystem paths between Windows and Unix conventions.

Crosspath detects and normalizes the text encoding of raw path bytes, checks
paths for traversal and injection attacks, and rewrites separators, drive
letters, and UNC prefixes between styles. Drive mappings (e.g. C: <-> /mnt/c)
are configurable.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
