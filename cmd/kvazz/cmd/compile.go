package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// compileCmd is a reserved stub: Kvazz has no bytecode compiler (spec.md
// §1's Non-goals), but the verb is reserved for a future one, following
// go-dws's compile.go shape without its bytecode machinery.
var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a Kvazz file (reserved, not implemented)",
	Long: `compile is reserved for a future bytecode compiler. Kvazz currently
only lexes, parses, and tree-walks; there is no bytecode format yet.`,
	Args: cobra.ExactArgs(1),
	RunE: compileScript,
}

func init() {
	rootCmd.AddCommand(compileCmd)
}

func compileScript(_ *cobra.Command, _ []string) error {
	fmt.Println("compile: not yet implemented")
	return fmt.Errorf("compile is reserved for future use")
}
