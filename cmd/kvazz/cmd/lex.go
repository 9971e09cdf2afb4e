package cmd

import (
	"fmt"
	"os"

	"github.com/kvazzlang/kvazz/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	evalExpr   string
	showPos    bool
	showType   bool
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Kvazz file or expression",
	Long: `Tokenize (lex) a Kvazz program and print the resulting tokens as
("<lexeme>", "<kind-string>") tuples.

Examples:
  kvazz lex script.kvz
  kvazz lex -e "var x = 42;"
  kvazz lex --show-pos --show-type script.kvz`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "prefix each tuple with a bracketed kind annotation")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "tokenize silently, reporting only a lex error")
}

func lexScript(_ *cobra.Command, args []string) error {
	input, _, err := readSource(evalExpr, args)
	if err != nil {
		return err
	}

	toks, lexErr := lexer.New(input).Tokenize()

	if !onlyErrors {
		fmt.Println("[")
		for idx, tok := range toks {
			var line string
			if showType {
				line = fmt.Sprintf("[%s] ", tok.Kind.String())
			}
			line += fmt.Sprintf("(%q, %q)", tok.Lexeme, tok.Kind.String())
			if showPos {
				line += fmt.Sprintf(" @%s", tok.Pos)
			}
			if idx < len(toks)-1 {
				line += ","
			}
			fmt.Println(line)
		}
		fmt.Println("]")
	}

	if lexErr != nil {
		fmt.Fprintln(os.Stderr, lexErr.Error())
		return fmt.Errorf("lexing failed at %s", lexErr.Pos)
	}
	return nil
}
