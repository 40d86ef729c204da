// Command pmdmmlc drives the two-pass PMD MML front end from the
// command line: load a file (SHIFT_JIS with UTF-8 fallback), run
// Pass 1 and Pass 2, and print the resulting IR as JSON. Audio
// playback is out of scope for a compiler front end, so this replaces
// any ebiten-based player command with a plain parse/dump CLI.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
