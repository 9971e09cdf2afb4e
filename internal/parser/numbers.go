package parser

import "strconv"

// parseInt and parseFloat convert a lexeme the lexer has already validated
// as int-literal/real-literal syntax; a conversion failure here would be a
// lexer/parser contract bug, not a user-facing error, so it panics rather
// than producing a CompilerError.
func parseInt(lexeme string) int64 {
	v, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		panic("parser: invalid int literal reached the parser: " + lexeme)
	}
	return v
}

func parseFloat(lexeme string) float64 {
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		panic("parser: invalid real literal reached the parser: " + lexeme)
	}
	return v
}
