// Command jiffle is the driver for the tokenizer/parser front end: it
// supplies a source string and reports the resulting tokens or tree. It
// carries no semantic behaviour of its own — that belongs to whatever
// downstream tool eventually consumes the Module this package prints.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ketdev/jiffle/internal/config"
	"github.com/ketdev/jiffle/internal/lexer"
	"github.com/ketdev/jiffle/internal/parser"
	"github.com/ketdev/jiffle/internal/pipeline"
	"github.com/ketdev/jiffle/internal/prettyprinter"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "jiffle",
		Short: "Tokenizer and parser front end for the jiffle language",
	}
	root.AddCommand(newTokensCmd())
	root.AddCommand(newParseCmd())
	return root
}

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Tokenize a file and print one line per token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := runStage(args[0], &lexer.LexerProcessor{})
			if err != nil {
				return err
			}
			for _, tok := range ctx.Tokens {
				fmt.Fprintln(cmd.OutOrStdout(), tok.String())
			}
			return nil
		},
	}
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Tokenize and parse a file, printing the resulting tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := runStage(args[0], &lexer.LexerProcessor{}, &parser.ParserProcessor{})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), prettyprinter.Print(ctx.TreeRoot))
			for _, diag := range ctx.Errors {
				fmt.Fprintln(cmd.ErrOrStderr(), diag.Error())
			}
			return nil
		},
	}
}

// runStage reads path, warns on an unrecognised extension, and drives
// processors through a fresh pipeline.PipelineContext.
func runStage(path string, processors ...pipeline.Processor) (*pipeline.PipelineContext, error) {
	source, err := readSource(path)
	if err != nil {
		return nil, err
	}
	if !isSourceFile(path) {
		fmt.Fprintf(os.Stderr, "warning: %s has no recognised source extension (%s)\n",
			path, strings.Join(config.SourceFileExtensions, ", "))
	}
	ctx := pipeline.NewPipelineContext(source)
	ctx.FilePath = path
	return pipeline.New(processors...).Run(ctx), nil
}

// isSourceFile reports whether path carries one of config's recognised
// source file extensions.
func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
