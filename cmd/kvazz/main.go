// Command kvazz is the Kvazz language CLI: lex, parse, and exec subcommands
// over the lexer/parser/interp packages, plus a reserved compile stub.
package main

import (
	"os"

	"github.com/kvazzlang/kvazz/cmd/kvazz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
