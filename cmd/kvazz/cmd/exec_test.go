package cmd

import (
	"bufio"
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it. The CLI verbs write straight to os.Stdout via
// fmt.Println rather than a cobra OutOrStdout writer, so tests must
// redirect the real file descriptor.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	done := make(chan string)
	go func() {
		var sb strings.Builder
		io.Copy(&sb, bufio.NewReader(r))
		done <- sb.String()
	}()

	fn()
	w.Close()
	out := <-done
	return out
}

func resetExecFlags() {
	execEvalExpr = ""
	execDumpAST = false
	execTrace = false
}

func TestExecRunsMainAndPrints(t *testing.T) {
	resetExecFlags()
	execEvalExpr = `function main() { print(1 + 2); }`

	var runErr error
	out := captureStdout(t, func() {
		runErr = runExec(nil, nil)
	})
	if runErr != nil {
		t.Fatalf("runExec returned an error: %v", runErr)
	}
	if out != "3\n" {
		t.Errorf("got %q", out)
	}
}

func TestExecReportsParseErrorsAndReturnsNonNilError(t *testing.T) {
	resetExecFlags()
	execEvalExpr = `function main() { 1 + ; }`

	err := runExec(nil, nil)
	if err == nil {
		t.Fatal("expected a non-nil error for malformed source")
	}
}

func TestExecWithNoFileOrEvalReturnsAnError(t *testing.T) {
	resetExecFlags()
	if err := runExec(nil, nil); err == nil {
		t.Fatal("expected an error when no input is given")
	}
}

func TestExecDumpASTPrintsBeforeRunning(t *testing.T) {
	resetExecFlags()
	execEvalExpr = `function main() { print(1); }`
	execDumpAST = true

	var runErr error
	out := captureStdout(t, func() {
		runErr = runExec(nil, nil)
	})
	if runErr != nil {
		t.Fatalf("runExec returned an error: %v", runErr)
	}
	if !strings.Contains(out, "Program") {
		t.Errorf("expected the AST dump to print, got %q", out)
	}
	if !strings.Contains(out, "1\n") {
		t.Errorf("expected the program's own output to follow, got %q", out)
	}
}
