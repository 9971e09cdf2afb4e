package cmd

import (
	"fmt"
	"os"

	"github.com/kvazzlang/kvazz/internal/ast"
	"github.com/kvazzlang/kvazz/internal/kerrors"
	"github.com/kvazzlang/kvazz/internal/lexer"
	"github.com/kvazzlang/kvazz/internal/parser"
	"github.com/spf13/cobra"
)

var (
	parseEvalExpr string
	parseDumpAST  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Kvazz source and print its AST",
	Long: `Lex and parse a Kvazz program, then print its Abstract Syntax Tree as
a "|-"/"`+"`- "+`" connector tree, one node per line.

Examples:
  kvazz parse script.kvz
  kvazz parse -e "var x = 1 + 2;"
  kvazz parse --dump-ast script.kvz`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse inline code instead of reading from file")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "use a go-dws-style indented node dump instead of the connector tree")
}

func runParse(_ *cobra.Command, args []string) error {
	input, filename, err := readSource(parseEvalExpr, args)
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

	if parseDumpAST {
		dumpASTNode(program, 0)
	} else {
		ast.Print(os.Stdout, program)
	}
	return nil
}

// dumpASTNode prints an indented "node (N children)" style dump, the
// go-dws-flavored alternative to the default connector tree.
func dumpASTNode(n ast.Node, indent int) {
	prefix := ""
	for i := 0; i < indent; i++ {
		prefix += "  "
	}

	kids := astChildren(n)
	fmt.Printf("%s%s (%d children)\n", prefix, n.String(), len(kids))
	for _, k := range kids {
		dumpASTNode(k, indent+1)
	}
}

// astChildren mirrors ast.children for the CLI's own dump format, since
// that helper is unexported within the ast package.
func astChildren(n ast.Node) []ast.Node {
	switch v := n.(type) {
	case *ast.Program:
		return statementsToNodes(v.Statements)
	case *ast.Block:
		return statementsToNodes(v.Statements)
	case *ast.Declare:
		return []ast.Node{v.Init}
	case *ast.FunctionDeclare:
		return []ast.Node{v.Body}
	case *ast.AssignOp:
		return []ast.Node{v.Target, v.Value}
	case *ast.ExpressionStatement:
		return []ast.Node{v.Expression}
	case *ast.Return:
		return []ast.Node{v.Value}
	case *ast.IfThen:
		return []ast.Node{v.Cond, v.Then}
	case *ast.IfElse:
		return []ast.Node{v.Cond, v.Then, v.Else}
	case *ast.While:
		return []ast.Node{v.Cond, v.Body}
	case *ast.BinaryOp:
		return []ast.Node{v.Left, v.Right}
	case *ast.UnaryOp:
		return []ast.Node{v.Operand}
	case *ast.FunctionCall:
		out := []ast.Node{v.Callee}
		for _, a := range v.Args {
			out = append(out, a)
		}
		return out
	case *ast.Access:
		return []ast.Node{v.Left, v.Index}
	case *ast.VectorLiteral:
		out := make([]ast.Node, len(v.Elements))
		for i, e := range v.Elements {
			out[i] = e
		}
		return out
	default:
		return nil
	}
}

func statementsToNodes(stmts []ast.Statement) []ast.Node {
	out := make([]ast.Node, len(stmts))
	for i, s := range stmts {
		out[i] = s
	}
	return out
}
