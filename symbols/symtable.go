/*
Package symbols implements a table for the vocabulary of a grammar: symbol names
and their integer codes.

Parse trees identify grammar symbols by integer codes (see ptree.Symbol) and
carry the symbol name for output purposes. Producers use a symbol table to
assign codes to names consistently, as they may build trees for more than one
input file, possibly in parallel. A Table is safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package symbols

import (
	"fmt"
	"sync"

	"github.com/npillmayer/ptree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ptree.symbols'.
func tracer() tracing.Trace {
	return tracing.Select("ptree.symbols")
}

// Table is a symbol table to store grammar symbols (map-like semantics in both
// directions).
type Table struct {
	mu    sync.RWMutex
	codes map[string]ptree.Symbol
	names map[ptree.Symbol]string
	next  ptree.Symbol // next free code for Define
}

// FirstFreeCode is the code Define will start with. Codes below are left for
// pre-defined token types, e.g. single characters.
const FirstFreeCode ptree.Symbol = 1000

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{
		codes: make(map[string]ptree.Symbol),
		names: make(map[ptree.Symbol]string),
		next:  FirstFreeCode,
	}
}

// Resolve checks for a symbol in the table.
// Returns the symbol's code and a flag, signalling wether the symbol
// has been found.
func (t *Table) Resolve(name string) (ptree.Symbol, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	sym, ok := t.codes[name]
	return sym, ok
}

// Define finds a symbol in the table, inserts a new one if not found.
// New symbols receive the next free code.
// Returns the symbol and a flag, signalling wether the symbol
// has already been present.
func (t *Table) Define(name string) (ptree.Symbol, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if sym, ok := t.codes[name]; ok {
		return sym, true
	}
	for {
		if _, taken := t.names[t.next]; !taken {
			break
		}
		t.next++
	}
	sym := t.next
	t.next++
	t.insert(name, sym)
	return sym, false
}

// DefineAs inserts a symbol with a pre-defined code, e.g. a token type produced
// by a scanner. Overwrites an existing symbol with this name, if any. If another
// name is currently bound to sym, that name is removed from the table.
// Returns the previously stored code for name and a flag, signalling wether
// a previous symbol has been replaced.
func (t *Table) DefineAs(name string, sym ptree.Symbol) (ptree.Symbol, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if other, taken := t.names[sym]; taken && other != name {
		delete(t.codes, other)
		tracer().Debugf("symbol %q displaced from code %d", other, sym)
	}
	old, found := t.codes[name]
	if found && t.names[old] == name {
		delete(t.names, old)
	}
	t.insert(name, sym)
	return old, found
}

func (t *Table) insert(name string, sym ptree.Symbol) {
	t.codes[name] = sym
	t.names[sym] = name
	tracer().Debugf("symbol %q = %d", name, sym)
}

// Name returns the name for a symbol code. For unknown codes it returns
// "#<code>".
func (t *Table) Name(sym ptree.Symbol) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if name, ok := t.names[sym]; ok {
		return name
	}
	return fmt.Sprintf("#%d", sym)
}

// Size counts the symbols in a symbol table.
func (t *Table) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.codes)
}

// Each iterates over each symbol in the table, executing a mapper function.
// The mapper must not modify the table.
func (t *Table) Each(mapper func(string, ptree.Symbol)) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for k, v := range t.codes {
		mapper(k, v)
	}
}
