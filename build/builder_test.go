package build

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/ptree"
	"github.com/npillmayer/ptree/scanner"
	"github.com/npillmayer/ptree/symbols"
	"github.com/npillmayer/ptree/tree"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func tok(sym ptree.Symbol, lexeme string, line int) ptree.Token {
	return scanner.MakeDefaultToken(sym, lexeme, ptree.Span{}, line)
}

func TestShiftReduce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptree.build")
	defer teardown()
	//
	syms := symbols.NewTable()
	ifSym, _ := syms.Define("IF")
	retSym, _ := syms.Define("RETURN")
	blockSym, _ := syms.Define("Block")
	stmtSym, _ := syms.Define("Stmt")
	b := NewBuilder("test.php", tree.NewIDAllocator(), syms)
	b.Shift(tok(ifSym, "if", 3))
	b.Shift(tok(retSym, "return", 4))
	if _, err := b.Reduce(blockSym, 1); err != nil {
		t.Fatal(err)
	}
	stmt, err := b.Reduce(stmtSym, 2)
	if err != nil {
		t.Fatal(err)
	}
	if stmt.Name() != "Stmt" || stmt.ChildCount() != 2 {
		t.Errorf("expected Stmt with 2 children, have %v", stmt)
	}
	first, _ := stmt.ChildAt(0)
	if first.Name() != "IF" || first.Parent() != stmt {
		t.Errorf("expected IF to be first child of Stmt, have %v", first)
	}
	pt, err := b.Tree()
	if err != nil {
		t.Fatal(err)
	}
	if pt.Root() != tree.Node(stmt) {
		t.Errorf("expected Stmt to be root of tree")
	}
	if diff := cmp.Diff([]string{"if", "return"}, pt.Lexemes()); diff != "" {
		t.Errorf("leaves mismatch (-want +got):\n%s", diff)
	}
	if line, _ := tree.LeftmostLine(pt.Root()); line != 3 {
		t.Errorf("expected leftmost line 3, is %d", line)
	}
}

func TestEpsilonReduction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptree.build")
	defer teardown()
	//
	b := NewBuilder("test", tree.NewIDAllocator(), nil)
	sym, _ := b.Symbols().Define("Opt")
	n, err := b.Reduce(sym, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n.ChildCount() != 1 {
		t.Fatalf("expected epsilon reduction to have exactly one child, has %d", n.ChildCount())
	}
	ch, _ := n.ChildAt(0)
	eps, ok := ch.(*tree.Leaf)
	if !ok || !eps.IsEpsilon() || eps.Lexeme() != "" || eps.Symbol() != Epsilon {
		t.Errorf("expected epsilon leaf, have %v", ch)
	}
	if line, _ := tree.LeftmostLine(n); line != ptree.EpsilonLine {
		t.Errorf("expected leftmost line of epsilon reduction to be %d, is %d", ptree.EpsilonLine, line)
	}
}

func TestMalformedTrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptree.build")
	defer teardown()
	//
	b := NewBuilder("test", tree.NewIDAllocator(), nil)
	if _, err := b.Tree(); !errors.Is(err, ErrIncomplete) {
		t.Errorf("expected empty builder to be incomplete, have %v", err)
	}
	b.Shift(tok(scanner.Ident, "a", 1))
	b.Shift(tok(scanner.Ident, "b", 1))
	if _, err := b.Reduce(100, 3); !errors.Is(err, ErrStackUnderflow) {
		t.Errorf("expected ErrStackUnderflow, have %v", err)
	}
	if b.Depth() != 2 {
		t.Errorf("expected failed reduction to leave stack untouched, depth is %d", b.Depth())
	}
	if _, err := b.Tree(); !errors.Is(err, ErrIncomplete) {
		t.Errorf("expected two sub-trees to be incomplete, have %v", err)
	}
}

func TestPanicOnMalformedTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptree.build")
	defer teardown()
	//
	gconf.Initialize(testconfig.Conf{"panic-on-malformed-tree": true})
	defer gconf.Initialize(testconfig.Conf{})
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected builder to panic")
		}
	}()
	b := NewBuilder("test", tree.NewIDAllocator(), nil)
	b.Reduce(100, 1)
}

// ---------------------------------------------------------------------------

func TestLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptree.build")
	defer teardown()
	//
	input := "a := 1\n\nif a {\n  return\n}\n"
	b := NewBuilder("lines.go", tree.NewIDAllocator(), nil)
	pt, err := Lines(scanner.GoTokenizer("lines.go", strings.NewReader(input)), b)
	if err != nil {
		t.Fatal(err)
	}
	root := pt.Root()
	if root.Name() != FileSymbolName || root.ChildCount() != 4 {
		t.Fatalf("expected File node with 4 lines, have %v", root)
	}
	want := []string{"a", ":", "=", "1", "if", "a", "{", "return", "}"}
	if diff := cmp.Diff(want, pt.Lexemes()); diff != "" {
		t.Errorf("leaves mismatch (-want +got):\n%s", diff)
	}
	var starts []int
	for _, ch := range root.(*tree.Interior).Children() {
		if ch.Name() != LineSymbolName {
			t.Errorf("expected Line node, have %v", ch)
		}
		line, _ := tree.LeftmostLine(ch)
		starts = append(starts, line)
	}
	if diff := cmp.Diff([]int{1, 3, 4, 5}, starts); diff != "" {
		t.Errorf("line numbers mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptree.build")
	defer teardown()
	//
	b := NewBuilder("empty.go", tree.NewIDAllocator(), nil)
	pt, err := Lines(scanner.GoTokenizer("empty.go", strings.NewReader("  \n// only a comment\n")), b)
	if err != nil {
		t.Fatal(err)
	}
	leaves := pt.Leaves()
	if len(leaves) != 1 || !leaves[0].IsEpsilon() {
		t.Errorf("expected a single epsilon leaf, have %v", leaves)
	}
	if diff := cmp.Diff([]string{""}, pt.Lexemes()); diff != "" {
		t.Errorf("lexemes mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesSharedSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ptree.build")
	defer teardown()
	//
	ids, syms := tree.NewIDAllocator(), symbols.NewTable()
	t1, err := Lines(scanner.GoTokenizer("a", strings.NewReader("x")), NewBuilder("a", ids, syms))
	if err != nil {
		t.Fatal(err)
	}
	t2, err := Lines(scanner.GoTokenizer("b", strings.NewReader("y")), NewBuilder("b", ids, syms))
	if err != nil {
		t.Fatal(err)
	}
	if t1.Root().Symbol() != t2.Root().Symbol() {
		t.Errorf("expected trees to share symbol codes")
	}
	if t1.Root().ID() == t2.Root().ID() {
		t.Errorf("expected trees to have distinct node IDs")
	}
	if t2.Root().SourceFile() != "b" {
		t.Errorf("expected source file b, have %q", t2.Root().SourceFile())
	}
}
