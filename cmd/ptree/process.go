package main

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/npillmayer/ptree"
	"github.com/npillmayer/ptree/build"
	"github.com/npillmayer/ptree/scanner"
	"github.com/npillmayer/ptree/scanner/lexmach"
	"github.com/npillmayer/ptree/symbols"
	"github.com/npillmayer/ptree/tree"
	"github.com/timtadh/lexmachine"
)

// goTokenNames are the names of the token types of the Go tokenizer. Single
// character tokens use the character as their type.
var goTokenNames = map[string]ptree.Symbol{
	"Ident":     scanner.Ident,
	"Int":       scanner.Int,
	"Float":     scanner.Float,
	"Char":      scanner.Char,
	"String":    scanner.String,
	"RawString": scanner.RawString,
	"Comment":   scanner.Comment,
}

// tokenizerFactory creates a tokenizer for the content of a file.
type tokenizerFactory func(name string, input []byte) (scanner.Tokenizer, error)

func tokenizerFor(lexer string, syms *symbols.Table) (tokenizerFactory, error) {
	switch lexer {
	case "go":
		return goTokenizer, nil
	case "words":
		return wordsTokenizer(syms)
	}
	return nil, fmt.Errorf("unknown lexer %q, use one of [go|words]", lexer)
}

func goTokenizer(name string, input []byte) (scanner.Tokenizer, error) {
	return scanner.GoTokenizer(name, bytes.NewReader(input)), nil
}

// wordsTokenizer creates a lexmachine-based tokenizer, which splits input into
// words, numbers and punctuation. The DFA is compiled once and shared by all
// scanners.
func wordsTokenizer(syms *symbols.Table) (tokenizerFactory, error) {
	word, _ := syms.Define("Word")
	number, _ := syms.Define("Number")
	punct, _ := syms.Define("Punct")
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`( |\t|\r|\n)+`), lexmach.Skip)
		lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), lexmach.MakeToken("Word", int(word)))
		lexer.Add([]byte(`[0-9]+`), lexmach.MakeToken("Number", int(number)))
		lexer.Add([]byte(`[^a-zA-Z0-9_]`), lexmach.MakeToken("Punct", int(punct))) // whitespace matches the Skip rule first
	}
	lm, err := lexmach.NewLMAdapter(init, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	return func(name string, input []byte) (scanner.Tokenizer, error) {
		return lm.Scanner(string(input))
	}, nil
}

// result is the outcome of parsing a single file.
type result struct {
	name string
	tree *tree.Tree
	err  error
}

// parseFiles builds a parse tree for every file. Files are processed
// concurrently; results are returned in the order of names.
func parseFiles(names []string, newTokenizer tokenizerFactory, ids *tree.IDAllocator,
	syms *symbols.Table) []result {
	//
	results := make([]result, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			results[i] = parseFile(name, newTokenizer, ids, syms)
		}(i, name)
	}
	wg.Wait()
	return results
}

func parseFile(name string, newTokenizer tokenizerFactory, ids *tree.IDAllocator,
	syms *symbols.Table) result {
	//
	input, err := os.ReadFile(name)
	if err != nil {
		return result{name: name, err: err}
	}
	tok, err := newTokenizer(name, input)
	if err != nil {
		return result{name: name, err: err}
	}
	tok.SetErrorHandler(func(e error) {
		tracer().Errorf("%s: %v", name, e)
	})
	t, err := build.Lines(tok, build.NewBuilder(name, ids, syms))
	if err != nil {
		return result{name: name, err: err}
	}
	tracer().Debugf("%s: tree with root %v", name, t.Root())
	return result{name: name, tree: t}
}
