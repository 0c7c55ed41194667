// Command lexcore is demo glue around the lexical core: it is not part of
// the library (spec §1 excludes "CLI helpers, pretty printers, example
// runners" from the core's design) but shows how a caller wires the
// pieces together, the way the teacher's own cmd/devcmd wraps its
// pkgs/parser and pkgs/generator.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/lexcore/pkgs/diagnostic"
	"github.com/aledsdavies/lexcore/pkgs/lexer"
	"github.com/aledsdavies/lexcore/pkgs/lexer/examples"
	"github.com/aledsdavies/lexcore/pkgs/regexmatch/coregex"
	"github.com/aledsdavies/lexcore/pkgs/regexmatch/stdregexp"
	"github.com/aledsdavies/lexcore/pkgs/sourcemap"
	"github.com/aledsdavies/lexcore/pkgs/token"
)

var engine string

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lexcore",
	Short: "Demo CLI for the lexcore lexical-analysis library",
	Long: `lexcore is a thin demo around the lexcore library's worked example
rule set. It is not part of the library; it exists to show the pieces
(source map, lexer, diagnostics) wired together end to end.`,
}

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a file and print its token table",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Scan a file and print any diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&engine, "engine", "stdregexp", "regex engine to back the lexer (stdregexp or coregex)")
	rootCmd.AddCommand(lexCmd)
	rootCmd.AddCommand(checkCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	tokens, diags, path, err := scanFile(args[0])
	if err != nil {
		return err
	}

	for _, tok := range tokens {
		fmt.Printf("%-12s %-8s %q\n", tok.Kind, tok.Span, tok.Value)
	}
	printDiagnostics(path, diags)
	if hasError(diags) {
		return fmt.Errorf("%d diagnostic(s)", len(diags))
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	_, diags, path, err := scanFile(args[0])
	if err != nil {
		return err
	}
	printDiagnostics(path, diags)
	if hasError(diags) {
		return fmt.Errorf("%d diagnostic(s)", len(diags))
	}
	return nil
}

func scanFile(path string) (tokens []token.Token[examples.Kind], diags []diagnostic.Diagnostic, resolvedPath string, err error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, path, fmt.Errorf("reading %s: %w", path, err)
	}

	lx, err := examples.Build(compileFunc())
	if err != nil {
		return nil, nil, path, fmt.Errorf("building lexer: %w", err)
	}

	sm := sourcemap.New()
	id := sm.Add(path, contents)

	toks, ds := lx.Scan(id, contents)
	return toks, ds, path, nil
}

// compileFunc picks the regex engine backing the lexer based on the
// --engine flag, demonstrating that pkgs/lexer never cares which one is
// used (spec §1: "the core does not parse patterns itself").
func compileFunc() lexer.CompileFunc {
	if engine == "coregex" {
		return coregex.Compile
	}
	return stdregexp.Compile
}

func hasError(diags []diagnostic.Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == diagnostic.SeverityError {
			return true
		}
	}
	return false
}

// printDiagnostics renders diagnostics in a compiler-style
// "file:offset: severity: message" format, where offset is the primary
// label's start byte offset. It does not resolve offsets to line:column
// positions (sourcemap.Map.BytePosition does that, but is not used here).
func printDiagnostics(path string, diags []diagnostic.Diagnostic) {
	for _, d := range diags {
		label, _ := d.PrimaryLabel()
		fmt.Printf("%s:%d: %s: %s\n", path, label.Span.Start, d.Severity, d.Message)
		if label.Message != "" {
			fmt.Printf("  %s\n", label.Message)
		}
		if d.Help != "" {
			fmt.Printf("  help: %s\n", d.Help)
		}
	}
}
