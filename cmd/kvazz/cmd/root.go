package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "kvazz",
	Short: "Kvazz language lexer, parser, and interpreter",
	Long: `kvazz is the reference toolchain for the Kvazz scripting language:
a small, dynamically-typed, expression-oriented language with Ints, Reals,
Bools, Strings, and Vectors.

Use "kvazz lex" to tokenize source, "kvazz parse" to print its AST, and
"kvazz exec" to run it.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}

// readSource resolves the input for a lex/parse/exec subcommand: the
// literal expression given to -e, the named file, or an error if neither is
// given. filename is "<eval>" for -e input, matching go-dws's convention.
func readSource(evalExpr string, args []string) (src, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		data, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("reading %s: %w", args[0], readErr)
		}
		return string(data), args[0], nil
	}
	return "", "", fmt.Errorf("no input: pass a file path or -e <source>")
}
