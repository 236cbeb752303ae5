package build

import (
	"github.com/npillmayer/ptree/scanner"
	"github.com/npillmayer/ptree/tree"
)

// Symbol names used by Lines.
const (
	FileSymbolName = "File"
	LineSymbolName = "Line"
)

// Lines reads all tokens from tok and arranges them in a tree of source lines:
//
//	File ⟶ Line*
//	Line ⟶ token+
//
// There is one Line node for every source line containing at least one token.
// Input without any tokens results in a File node with an epsilon leaf.
// The symbols for File and Line are defined in the builder's symbol table, if
// not already present.
func Lines(tok scanner.Tokenizer, b *Builder) (*tree.Tree, error) {
	fileSym, _ := b.syms.Define(FileSymbolName)
	lineSym, _ := b.syms.Define(LineSymbolName)
	lines, inLine, current := 0, 0, 0
	for t := tok.NextToken(); t.TokType() != scanner.EOF; t = tok.NextToken() {
		if inLine > 0 && t.Line() != current {
			if _, err := b.Reduce(lineSym, inLine); err != nil {
				return nil, err
			}
			lines++
			inLine = 0
		}
		current = t.Line()
		b.Shift(t)
		inLine++
	}
	if inLine > 0 {
		if _, err := b.Reduce(lineSym, inLine); err != nil {
			return nil, err
		}
		lines++
	}
	if _, err := b.Reduce(fileSym, lines); err != nil {
		return nil, err
	}
	tracer().Infof("%s: %d lines", b.sourceFile, lines)
	return b.Tree()
}
