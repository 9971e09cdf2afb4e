package cmd

import (
	"fmt"
	"os"

	"github.com/kvazzlang/kvazz/internal/ast"
	"github.com/kvazzlang/kvazz/internal/interp"
	"github.com/kvazzlang/kvazz/internal/kerrors"
	"github.com/kvazzlang/kvazz/internal/lexer"
	"github.com/kvazzlang/kvazz/internal/parser"
	"github.com/spf13/cobra"
)

var (
	execEvalExpr string
	execDumpAST  bool
	execTrace    bool
)

var execCmd = &cobra.Command{
	Use:   "exec [file]",
	Short: "Lex, parse, and run a Kvazz program",
	Long: `Execute a Kvazz program from a file or inline expression.

Examples:
  kvazz exec script.kvz
  kvazz exec -e "function main() { print(1 + 2); }"
  kvazz exec --trace script.kvz`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExec,
}

func init() {
	rootCmd.AddCommand(execCmd)

	execCmd.Flags().StringVarP(&execEvalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	execCmd.Flags().BoolVar(&execDumpAST, "dump-ast", false, "print the parsed AST before executing")
	execCmd.Flags().BoolVar(&execTrace, "trace", false, "print one line per evaluated statement to stderr")
}

func runExec(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(execEvalExpr, args)
	if err != nil {
		return err
	}

	toks, lexErr := lexer.New(input).Tokenize()
	if lexErr != nil {
		fmt.Fprintln(os.Stderr, lexErr.Error())
		return fmt.Errorf("lexing failed at %s", lexErr.Pos)
	}

	program, errs := parser.New(toks, input, filename).Parse()
	if len(errs) > 0 {
		fmt.Fprint(os.Stderr, kerrors.FormatErrors(errs, true))
		fmt.Fprintln(os.Stderr)
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	}

	if execDumpAST {
		ast.Print(os.Stdout, program)
	}

	interpreter := interp.New(interp.WithStdout(os.Stdout), interp.WithTrace(execTrace))
	if runErr := interpreter.Run(program); runErr != nil {
		fmt.Fprintln(os.Stderr, runErr.Error())
		return fmt.Errorf("execution failed")
	}
	return nil
}
