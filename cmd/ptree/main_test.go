package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/ptree/internal/config"
	"github.com/npillmayer/ptree/tree"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeInputs(t *testing.T, contents ...string) []string {
	t.Helper()
	dir := t.TempDir()
	names := make([]string, len(contents))
	for i, c := range contents {
		names[i] = filepath.Join(dir, string(rune('a'+i))+".txt")
		if err := os.WriteFile(names[i], []byte(c), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return names
}

func TestRunPrintsTokensInArgumentOrder(t *testing.T) {
	names := writeInputs(t, "if x {\n  return\n}\n", "a := 1", "")
	var stdout, stderr bytes.Buffer
	if code := run(names, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit code 0, have %d: %s", code, stderr.String())
	}
	want := "*** Printing tokens for file " + names[0] + "...\n" +
		"if\nx\n{\nreturn\n}\n" +
		"*** Printing tokens for file " + names[1] + "...\n" +
		"a\n:\n=\n1\n" +
		"*** Printing tokens for file " + names[2] + "...\n"
	if diff := cmp.Diff(want, stdout.String()); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestConfigureTraceLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ptree.yaml")
	conf := "tracelevel:\n  root: Error\n  ptree.symbols: Info\n"
	if err := os.WriteFile(path, []byte(conf), 0644); err != nil {
		t.Fatal(err)
	}
	if err := configure(path, "Debug"); err != nil {
		t.Fatal(err)
	}
	defer gconf.Initialize(testconfig.Conf{})
	defer config.Teardown()
	for _, key := range traceKeys {
		if l := tracing.Select(key).GetTraceLevel(); l != tracing.LevelDebug {
			t.Errorf("expected flag -trace to set level Debug for %s, have %v", key, l)
		}
	}
}

func TestRunWordsLexer(t *testing.T) {
	names := writeInputs(t, "Hello, World 42!")
	var stdout, stderr bytes.Buffer
	if code := run(append([]string{"-lexer", "words"}, names...), &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit code 0, have %d: %s", code, stderr.String())
	}
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if diff := cmp.Diff([]string{"Hello", ",", "World", "42", "!"}, lines[1:]); diff != "" {
		t.Errorf("unexpected tokens (-want +got):\n%s", diff)
	}
}

func TestRunFailures(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 1 {
		t.Errorf("expected exit code 1 for missing arguments, have %d", code)
	}
	names := writeInputs(t, "x")
	missing := filepath.Join(t.TempDir(), "missing.txt")
	stdout.Reset()
	stderr.Reset()
	if code := run([]string{names[0], missing}, &stdout, &stderr); code != 1 {
		t.Errorf("expected exit code 1 for missing file, have %d", code)
	}
	if !strings.Contains(stderr.String(), "File not found: "+missing) {
		t.Errorf("expected missing file to be reported, have %q", stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), "*** Printing tokens for file "+names[0]) {
		t.Errorf("expected tokens of first file to be printed, have %q", stdout.String())
	}
	if code := run([]string{"-lexer", "nope", names[0]}, &stdout, &stderr); code != 1 {
		t.Errorf("expected exit code 1 for unknown lexer, have %d", code)
	}
}

func TestParseFilesSharesIDs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptree.cli")
	defer teardown()
	//
	contents := make([]string, 20)
	for i := range contents {
		contents[i] = strings.Repeat("a b c\n", i+1)
	}
	names := writeInputs(t, contents...)
	ids, syms := tree.NewIDAllocator(), newSymbolTable()
	results := parseFiles(names, goTokenizer, ids, syms)
	seen := make(map[uint64]bool)
	for i, r := range results {
		if r.err != nil {
			t.Fatal(r.err)
		}
		if r.name != names[i] {
			t.Errorf("expected result #%d to be for %s, is for %s", i, names[i], r.name)
		}
		if r.tree.Root().ChildCount() != i+1 {
			t.Errorf("%s: expected %d lines, have %d", r.name, i+1, r.tree.Root().ChildCount())
		}
		r.tree.Walk(func(n tree.Node) bool {
			if seen[n.ID()] {
				t.Errorf("node ID %d used twice", n.ID())
			}
			seen[n.ID()] = true
			return true
		})
	}
	if uint64(len(seen)) != ids.Issued() {
		t.Errorf("expected %d nodes, have %d", ids.Issued(), len(seen))
	}
}

func TestExplorer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptree.cli")
	defer teardown()
	//
	names := writeInputs(t, "a b\nc\n")
	r := parseFile(names[0], goTokenizer, tree.NewIDAllocator(), newSymbolTable())
	if r.err != nil {
		t.Fatal(r.err)
	}
	x := newExplorer(r.tree)
	for _, step := range []struct {
		cmd  string
		want string
	}{
		{"down", "Line"},
		{"down", "Ident"},
		{"next", "Ident"},
		{"up", "Line"},
		{"next", "Line"},
		{"line", "Line"},
		{"leaves", "Line"},
		{"up", "File"},
	} {
		if _, err := x.exec(step.cmd); err != nil {
			t.Fatalf("%s: %v", step.cmd, err)
		}
		if x.cursor.Current().Name() != step.want {
			t.Errorf("after %s: expected cursor at %s, is at %v", step.cmd, step.want, x.cursor.Current())
		}
	}
	if _, err := x.exec("up"); err == nil {
		t.Errorf("expected up at root to fail")
	}
	if _, err := x.exec("jump"); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("expected ErrUnknownCommand, have %v", err)
	}
	if quit, _ := x.exec("quit"); !quit {
		t.Errorf("expected quit to end exploring")
	}
}

func TestLeveledList(t *testing.T) {
	names := writeInputs(t, "x y")
	r := parseFile(names[0], goTokenizer, tree.NewIDAllocator(), newSymbolTable())
	if r.err != nil {
		t.Fatal(r.err)
	}
	ll := leveledList(r.tree)
	levels := make([]int, len(ll))
	for i, item := range ll {
		levels[i] = item.Level
	}
	if diff := cmp.Diff([]int{0, 1, 2, 2}, levels); diff != "" {
		t.Errorf("unexpected levels (-want +got):\n%s", diff)
	}
	if !strings.HasPrefix(ll[2].Text, `Ident "x"`) {
		t.Errorf("expected leaf item for x, have %q", ll[2].Text)
	}
}
