package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fsum/internal/version"
)

// newRootCmd builds the fsum root command with all flags and subcommands
// registered, so tests can execute it against a buffer.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fsum [flags] [pattern ...]",
		Short: "Deterministic combined-content digest of a file set",
		Long: `fsum concatenates the contents of every selected file in sorted path
order and prints a single lowercase hex digest, suitable for build
caches, change detection and integrity checks.`,
		Args:          cobra.ArbitraryArgs,
		RunE:          runHash,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.Version = version.Version
	root.AddCommand(newVersionCmd())

	root.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	root.Flags().StringP("algorithm", "a", "sha1", "digest algorithm (sha1|sha256|sha384|sha512)")
	root.Flags().IntP("batch-size", "b", 100, "maximum files read concurrently per batch")
	root.Flags().Bool("no-glob", false, "treat arguments as exact paths, no pattern expansion")
	root.Flags().Bool("sync", false, "read files one at a time instead of in concurrent batches")
	root.Flags().Bool("timings", false, "print phase timings to stderr")

	return root
}

// main executes the root command and maps any failure to a single stderr
// line and exit status 1.
func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		prefix := "error:"
		if colorEnabled(root, os.Stderr) {
			prefix = color.New(color.FgRed, color.Bold).Sprint("error:")
		}
		fmt.Fprintln(os.Stderr, prefix, err)
		os.Exit(1)
	}
}

// colorEnabled resolves the --color flag against the target stream.
func colorEnabled(cmd *cobra.Command, f *os.File) bool {
	flag, err := cmd.PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	switch flag {
	case "on":
		return true
	case "off":
		return false
	}
	return isTerminal(f)
}

// isTerminal checks whether the file is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
