package cmd

import (
	"strings"
	"testing"
)

func resetLexFlags() {
	evalExpr = ""
	showPos = false
	showType = false
	onlyErrors = false
}

func TestLexPrintsLexemeKindTuples(t *testing.T) {
	resetLexFlags()
	evalExpr = `var x = 1;`

	var runErr error
	out := captureStdout(t, func() {
		runErr = lexScript(nil, nil)
	})
	if runErr != nil {
		t.Fatalf("lexScript returned an error: %v", runErr)
	}
	if !strings.Contains(out, `("var", "keyword")`) {
		t.Errorf("expected a keyword tuple, got %q", out)
	}
	if !strings.Contains(out, `("x", "identifier")`) {
		t.Errorf("expected an identifier tuple, got %q", out)
	}
	if !strings.HasPrefix(out, "[\n") || !strings.HasSuffix(out, "]\n") {
		t.Errorf("expected a bracketed tuple list, got %q", out)
	}
}

func TestLexShowTypeAddsBracketedPrefix(t *testing.T) {
	resetLexFlags()
	evalExpr = `42`
	showType = true

	out := captureStdout(t, func() {
		if err := lexScript(nil, nil); err != nil {
			t.Fatalf("lexScript returned an error: %v", err)
		}
	})
	if !strings.Contains(out, "[int-literal] ") {
		t.Errorf("expected a bracketed kind prefix, got %q", out)
	}
}

func TestLexOnlyErrorsSuppressesTupleDump(t *testing.T) {
	resetLexFlags()
	evalExpr = `var x = 1;`
	onlyErrors = true

	out := captureStdout(t, func() {
		if err := lexScript(nil, nil); err != nil {
			t.Fatalf("lexScript returned an error: %v", err)
		}
	})
	if out != "" {
		t.Errorf("expected no tuple output with --only-errors, got %q", out)
	}
}

func TestLexUnrecognizedCharacterReturnsAnError(t *testing.T) {
	resetLexFlags()
	evalExpr = "var x = `;"

	err := lexScript(nil, nil)
	if err == nil {
		t.Fatal("expected an error for an unrecognized character")
	}
}
