// ski - transpiler front-end tooling
//
// Diagnostic commands over the ski lexical analysis engine: token
// dumps and comment stripping. Code generation consumes an AST from
// an upstream parser and has no direct CLI surface here.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/skilang/ski"
	"github.com/skilang/ski/token"
)

var (
	cfgFile string
	outFile string
)

var rootCmd = &cobra.Command{
	Use:   "ski",
	Short: "ski transpiler front-end tooling",
	Long: `ski tokenizes ski-language source and renders ASTs to batch scripts.

Commands:
  lex      dump the token stream of a source file
  strip    print source with comments removed
  version  show version information`,
	SilenceUsage: true,
}

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Dump the token stream of a source file",
	Long: `Lex reads ski source from the given file (or stdin when omitted)
and prints one token per line: position, type, and value.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args)
		if err != nil {
			return err
		}

		tokens, err := ski.Lex(string(src))
		if err != nil {
			return err
		}

		out, closeOut, err := openOutput()
		if err != nil {
			return err
		}
		defer closeOut()

		for _, tok := range tokens {
			if tok.Type == token.INT {
				fmt.Fprintf(out, "%s\t%s\t%d\n", tok.Pos, tok.Type, tok.Num)
				continue
			}
			fmt.Fprintf(out, "%s\t%s\t%s\n", tok.Pos, tok.Type, tok.Value)
		}
		return nil
	},
}

var stripCmd = &cobra.Command{
	Use:   "strip [file]",
	Short: "Print source with comments removed",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readSource(args)
		if err != nil {
			return err
		}

		stripped, err := ski.StripComments(string(src))
		if err != nil {
			return err
		}

		out, closeOut, err := openOutput()
		if err != nil {
			return err
		}
		defer closeOut()

		_, err = io.WriteString(out, stripped)
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ski version %s\n", ski.Version)
		fmt.Println("  pattern engine: coregex")
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "ski.toml project manifest")
	rootCmd.PersistentFlags().StringVarP(&outFile, "output", "o", "", "write output to file instead of stdout")
	rootCmd.AddCommand(lexCmd)
	rootCmd.AddCommand(stripCmd)
	rootCmd.AddCommand(versionCmd)
}

// readSource reads from the named file, or stdin when no file is given.
func readSource(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	src, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("cannot read source file %s: %w", args[0], err)
	}
	return src, nil
}

// openOutput resolves the output destination: the -o flag wins, then the
// manifest's output path, then stdout.
func openOutput() (io.Writer, func(), error) {
	path := outFile
	if path == "" && cfgFile != "" {
		config, err := ski.LoadConfig(cfgFile)
		if err != nil {
			return nil, nil, err
		}
		path = config.OutputPath
	}
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot create output file %s: %w", path, err)
	}
	return f, func() { f.Close() }, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ski: %v\n", err)
		os.Exit(1)
	}
}
