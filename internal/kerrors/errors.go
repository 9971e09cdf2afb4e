// Package kerrors provides structured, positioned diagnostics shared by the
// lexer, parser, and evaluator: every reported problem carries a source
// Position. CompilerError also renders with a line-of-context caret, the
// same box go-dws's compiler errors draw; LexError and RuntimeError render
// as a plain message.
package kerrors

import (
	"fmt"
	"strings"

	"github.com/kvazzlang/kvazz/internal/token"
)

// LexError is a hard lexing error: an unrecognized leading character or an
// unterminated string literal. Tokenization is atomic, so at most one
// LexError is ever produced per Tokenize call.
type LexError struct {
	Pos     token.Position
	Message string
}

func (e *LexError) Error() string { return e.Message }

// CompilerError is a parse-time diagnostic: unexpected token, malformed
// grammar, mismatched vector delimiters, or an assignment target that is
// not an l-value.
type CompilerError struct {
	Pos     token.Position
	Message string
	Source  string
	File    string
}

// NewCompilerError builds a CompilerError ready for Format.
func NewCompilerError(pos token.Position, message, source, file string) *CompilerError {
	return &CompilerError{Pos: pos, Message: message, Source: source, File: file}
}

func (e *CompilerError) Error() string { return e.Format(false) }

// Format renders the error with a file:line:column header, the offending
// source line, and a caret pointing at the column. If color is true, ANSI
// codes highlight the caret and message for terminal output.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", e.Pos.Line, e.Pos.Column)
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		prefix := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(prefix)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *CompilerError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatErrors renders a batch of CompilerErrors, numbering them when there
// is more than one.
func FormatErrors(errs []*CompilerError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Parsing failed with %d error(s):\n\n", len(errs))
	for i, e := range errs {
		fmt.Fprintf(&sb, "[Error %d of %d]\n", i+1, len(errs))
		sb.WriteString(e.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// RuntimeError is a name/type/index/arithmetic error raised during
// evaluation (spec.md §7). Every runtime error is positioned at the AST
// node whose evaluation failed.
type RuntimeError struct {
	Pos     token.Position
	Message string
}

// NewRuntimeError builds a RuntimeError.
func NewRuntimeError(pos token.Position, format string, args ...any) *RuntimeError {
	return &RuntimeError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}
