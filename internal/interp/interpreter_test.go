package interp

import (
	"strings"
	"testing"

	"github.com/kvazzlang/kvazz/internal/kerrors"
	"github.com/kvazzlang/kvazz/internal/lexer"
	"github.com/kvazzlang/kvazz/internal/object"
	"github.com/kvazzlang/kvazz/internal/parser"
)

// runSource lexes, parses, and runs src, capturing print output. It fails
// the test on any lex/parse/runtime error.
func runSource(t *testing.T, src string) string {
	t.Helper()
	toks, lexErr := lexer.New(src).Tokenize()
	if lexErr != nil {
		t.Fatalf("lex error: %s", lexErr.Message)
	}
	prog, errs := parser.New(toks, src, "<test>").Parse()
	if len(errs) > 0 {
		t.Fatalf("parse error: %s", errs[0].Message)
	}
	var out strings.Builder
	interp := New(WithStdout(&out))
	if runErr := interp.Run(prog); runErr != nil {
		t.Fatalf("runtime error: %s", runErr.Error())
	}
	return out.String()
}

// runSourceErr behaves like runSource but expects a runtime error and
// returns it instead of failing.
func runSourceErr(t *testing.T, src string) *kerrors.RuntimeError {
	t.Helper()
	toks, lexErr := lexer.New(src).Tokenize()
	if lexErr != nil {
		t.Fatalf("lex error: %s", lexErr.Message)
	}
	prog, errs := parser.New(toks, src, "<test>").Parse()
	if len(errs) > 0 {
		t.Fatalf("parse error: %s", errs[0].Message)
	}
	interp := New(WithStdout(&strings.Builder{}))
	runErr := interp.Run(prog)
	if runErr == nil {
		t.Fatal("expected a runtime error, got none")
	}
	return runErr
}

func TestMainIsInvokedAutomatically(t *testing.T) {
	out := runSource(t, `function main() { print(1 + 2); }`)
	if out != "3\n" {
		t.Errorf("got %q", out)
	}
}

func TestProgramWithoutMainRunsTopLevelOnly(t *testing.T) {
	out := runSource(t, `var x = 1;`)
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
}

func TestArithmeticIntStaysInt(t *testing.T) {
	out := runSource(t, `function main() { print(7 / 2); }`)
	if out != "3\n" {
		t.Errorf("expected truncating int division, got %q", out)
	}
}

func TestArithmeticPromotesToRealWhenEitherOperandIsReal(t *testing.T) {
	out := runSource(t, `function main() { print(7 / 2.0); }`)
	if out != "3.5\n" {
		t.Errorf("expected real division, got %q", out)
	}
}

func TestStringConcatenation(t *testing.T) {
	out := runSource(t, `function main() { print("foo" + "bar"); }`)
	if out != "foobar\n" {
		t.Errorf("got %q", out)
	}
}

func TestVectorConcatenationLength(t *testing.T) {
	out := runSource(t, `function main() { print(lengthof([1, 2] + [3, 4, 5])); }`)
	if out != "5\n" {
		t.Errorf("got %q", out)
	}
}

func TestLengthOfStringIsByteLengthNotRuneCount(t *testing.T) {
	// "é" encodes as 2 UTF-8 bytes; lengthof must count bytes.
	out := runSource(t, `function main() { print(lengthof("é")); }`)
	if out != "2\n" {
		t.Errorf("expected byte length 2, got %q", out)
	}
}

func TestStringIndexingIsByteBased(t *testing.T) {
	// "é" encodes as 2 UTF-8 bytes, so byte index 2 is "b".
	out := runSource(t, `function main() { var s = "éb"; print(s[2]); }`)
	if out != "b\n" {
		t.Errorf("got %q", out)
	}
}

func TestIntRealCompareByValueAcrossKinds(t *testing.T) {
	out := runSource(t, `function main() { print(1 == 1.0); print(1 == 2.0); }`)
	if out != "true\nfalse\n" {
		t.Errorf("expected Int and Real to compare by numeric value, got %q", out)
	}
}

func TestFunctionValuesAreNeverEqualEvenToThemselves(t *testing.T) {
	out := runSource(t, `
function f() { return 0; }
function main() {
	var g = f;
	print(f == g);
}
`)
	if out != "false\n" {
		t.Errorf("expected Function equality to always be false, got %q", out)
	}
}

func TestBuiltinValuesAreNeverEqual(t *testing.T) {
	out := runSource(t, `function main() { print(print == print); }`)
	if out != "false\n" {
		t.Errorf("expected Builtin equality to always be false, got %q", out)
	}
}

func TestStringAndVectorAreAlwaysTruthy(t *testing.T) {
	out := runSource(t, `
function main() {
	if "" then { print("string-truthy"); } else { print("string-falsy"); }
	if [] then { print("vector-truthy"); } else { print("vector-falsy"); }
}
`)
	if out != "string-truthy\nvector-truthy\n" {
		t.Errorf("got %q", out)
	}
}

func TestNothingIsFalsy(t *testing.T) {
	out := runSource(t, `
function f() { var unused = 0; }
function main() {
	if f() then { print("truthy"); } else { print("falsy"); }
}
`)
	if out != "falsy\n" {
		t.Errorf("got %q", out)
	}
}

func TestHevecDefaultsFillToNothing(t *testing.T) {
	out := runSource(t, `function main() { print(hevec(3)); }`)
	if out != "[, , ]\n" {
		t.Errorf("got %q", out)
	}
}

func TestHevecWithExplicitFill(t *testing.T) {
	out := runSource(t, `function main() { print(hevec(3, 0)); }`)
	if out != "[0, 0, 0]\n" {
		t.Errorf("got %q", out)
	}
}

func TestHevecFillIsIndependentPerSlotNotAliased(t *testing.T) {
	out := runSource(t, `
function main() {
	var v = hevec(2, [0]);
	v[0][0] = 99;
	print(v);
}
`)
	if out != "[[99], [0]]\n" {
		t.Errorf("expected hevec slots to be independent copies of fill, got %q", out)
	}
}

func TestVectorAssignmentCopiesRatherThanAliases(t *testing.T) {
	out := runSource(t, `
function main() {
	var a = [1, 2, 3];
	var b = a;
	b[0] = 99;
	print(a);
	print(b);
}
`)
	if out != "[1, 2, 3]\n[99, 2, 3]\n" {
		t.Errorf("expected declaration to copy the vector, not alias it, got %q", out)
	}
}

func TestVectorParameterPassingCopiesRatherThanAliases(t *testing.T) {
	out := runSource(t, `
function mutate(v) {
	v[0] = 99;
}
function main() {
	var a = [1, 2, 3];
	mutate(a);
	print(a);
}
`)
	if out != "[1, 2, 3]\n" {
		t.Errorf("expected argument passing to copy the vector, not alias it, got %q", out)
	}
}

func TestCompoundAssignmentReadsAndWritesThroughThePlace(t *testing.T) {
	out := runSource(t, `
function main() {
	var x = 10;
	x += 5;
	print(x);
}
`)
	if out != "15\n" {
		t.Errorf("got %q", out)
	}
}

func TestCompoundAssignmentIntoVectorSlot(t *testing.T) {
	out := runSource(t, `
function main() {
	var v = [1, 2, 3];
	v[1] *= 10;
	print(v);
}
`)
	if out != "[1, 20, 3]\n" {
		t.Errorf("got %q", out)
	}
}

func TestCompoundAssignmentReEvaluatesTargetIndexTwice(t *testing.T) {
	out := runSource(t, `
var calls = 0;
function bump() {
	calls += 1;
	return 0;
}
function main() {
	var v = [10];
	v[bump()] += 1;
	print(calls);
}
`)
	if out != "2\n" {
		t.Errorf("expected bump() to run twice for a compound assignment, got %q", out)
	}
}

func TestFunctionInvocationIsRootedAtGlobalNotCaller(t *testing.T) {
	out := runSource(t, `
var shared = 1;
function bump() {
	return shared + 1;
}
function main() {
	var shared = 999;
	print(bump());
}
`)
	if out != "2\n" {
		t.Errorf("expected bump() to see the global shared, got %q", out)
	}
}

func TestBuiltinsCannotBeShadowedByLocalDeclaration(t *testing.T) {
	out := runSource(t, `
function main() {
	var print = 42;
	print("still the builtin");
}
`)
	if out != "still the builtin\n" {
		t.Errorf("got %q", out)
	}
}

func TestWhileLoopAccumulates(t *testing.T) {
	out := runSource(t, `
function main() {
	var i = 0;
	var total = 0;
	while i < 5 do {
		total += i;
		i += 1;
	}
	print(total);
}
`)
	if out != "10\n" {
		t.Errorf("got %q", out)
	}
}

func TestDivisionByZeroIsARuntimeError(t *testing.T) {
	err := runSourceErr(t, `function main() { print(1 / 0); }`)
	if !strings.Contains(err.Error(), "division by zero") {
		t.Errorf("got %q", err.Error())
	}
}

func TestUndefinedIdentifierIsARuntimeError(t *testing.T) {
	err := runSourceErr(t, `function main() { print(doesNotExist); }`)
	if !strings.Contains(err.Error(), "undefined identifier") {
		t.Errorf("got %q", err.Error())
	}
}

func TestVectorLiteralSurfacesFirstElementError(t *testing.T) {
	err := runSourceErr(t, `function main() { print([1, doesNotExist, 3]); }`)
	if !strings.Contains(err.Error(), "undefined identifier") {
		t.Errorf("expected the element error to surface, got %q", err.Error())
	}
}

func TestRedeclarationInSameScopeIsAnError(t *testing.T) {
	err := runSourceErr(t, `function main() { var x = 1; var x = 2; }`)
	if !strings.Contains(err.Error(), "already declared") {
		t.Errorf("got %q", err.Error())
	}
}

func TestOutOfRangeVectorAccessIsAnError(t *testing.T) {
	err := runSourceErr(t, `function main() { var v = [1, 2]; print(v[5]); }`)
	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("got %q", err.Error())
	}
}

// ensure object.Nothing's Display is empty, matching the vector printing
// test's expected "[, , ]" form above.
func TestNothingDisplaysAsEmptyString(t *testing.T) {
	if object.Nothing.Display() != "" {
		t.Errorf("expected empty display, got %q", object.Nothing.Display())
	}
}

