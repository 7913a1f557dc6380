package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/playperu/triviaboard/internal/builder"
	"github.com/playperu/triviaboard/internal/trivia"
)

const releaseVersion = "0.1.0"

func newRootCmd(stdout io.Writer) *cobra.Command {
	var addr string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Host trivia sessions over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), stdout, addr)
		},
	}
	fs := serveCmd.Flags()
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	fs.StringVarP(&addr, "addr", "a", "", "address to listen on (overrides HTTP_ADDR)")

	root := &cobra.Command{
		Use:     "triviaboard",
		Short:   "Build, share and host category trivia boards.",
		Version: releaseVersion,
		Args:    cobra.NoArgs,
		RunE:    serveCmd.RunE,
	}
	root.Flags().AddFlagSet(fs)
	root.AddCommand(serveCmd, newCheckCmd(), newExampleCmd())

	root.CompletionOptions.HiddenDefaultCmd = true
	root.SetOut(stdout)
	root.SetVersionTemplate("triviaboard v{{.Version}}\n")
	root.SilenceErrors = true
	root.SilenceUsage = true

	return root
}

// newCheckCmd validates a game file the same way an import does.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a game file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			doc, err := trivia.Parse(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d categories, %d questions\n",
				doc.Title, len(doc.Categories), doc.QuestionCount())
			for _, name := range builder.DuplicateNames(doc) {
				fmt.Fprintf(out, "warning: category %q appears more than once\n", name)
			}
			return nil
		},
	}
}

func newExampleCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write the bundled example board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := trivia.Encode(trivia.Example())
			if err != nil {
				return err
			}
			if output == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			return os.WriteFile(output, data, 0o644)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return cmd
}
