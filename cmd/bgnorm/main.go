package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raditotev/bg-text-normalizer/internal/cli"
	"github.com/raditotev/bg-text-normalizer/normalizer"
)

func main() {
	flags := cli.NewFlags()

	rootCmd := cli.CreateRootCommand(flags)

	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	opts := cli.Options(flags)

	if len(args) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), normalizer.NormalizeWith(strings.Join(args, " "), opts))
		return nil
	}

	return normalizeLines(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
}

// normalizeLines normalizes stdin line by line so piped input streams
// through without buffering the whole document.
func normalizeLines(in io.Reader, out io.Writer, opts normalizer.Options) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	w := bufio.NewWriter(out)
	defer w.Flush()

	for scanner.Scan() {
		if _, err := fmt.Fprintln(w, normalizer.NormalizeWith(scanner.Text(), opts)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	return nil
}
