// Package token defines the lexical token model shared by the lexer and parser.
package token

import "fmt"

// Kind identifies the lexical class of a Token.
type Kind int

const (
	// EOF is the sentinel kind yielded past the end of input.
	EOF Kind = iota
	Keyword
	Identifier
	Symbol
	BoolLiteral
	IntLiteral
	RealLiteral
	StringLiteral
)

var kindNames = [...]string{
	EOF:           "eof",
	Keyword:       "keyword",
	Identifier:    "identifier",
	Symbol:        "symbol",
	BoolLiteral:   "bool-literal",
	IntLiteral:    "int-literal",
	RealLiteral:   "real-literal",
	StringLiteral: "string-literal",
}

// String renders the kind using the kind-string vocabulary the lex CLI
// verb's token-tuple output prints.
func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Position is a 1-based line:column location within the source text.
// Columns count runes, not bytes, so a multi-byte UTF-8 sequence counts as a
// single column.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is the tagged (lexeme, kind) pair produced by the lexer.
type Token struct {
	Lexeme string
	Kind   Kind
	Pos    Position
}

// EOFToken is the distinguished sentinel yielded once the lexer has
// consumed all input, and again on every subsequent call.
var EOFToken = Token{Lexeme: "", Kind: EOF}

// Keywords is the reserved-word set. A word lexed as an identifier that
// appears here is reclassified as a Keyword token.
var Keywords = map[string]bool{
	"var": true, "if": true, "then": true, "else": true,
	"for": true, "while": true, "do": true, "in": true,
	"function": true, "return": true,
}

// IsKeyword reports whether word is one of Kvazz's reserved words.
func IsKeyword(word string) bool {
	return Keywords[word]
}
