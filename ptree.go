package ptree

import "fmt"

// --- Grammar symbols -------------------------------------------------------

// Symbol is an integer code identifying a grammar symbol, either a terminal (token
// type) or a non-terminal (production). We do not define any constants here, as
// it is up to producers to define them.
type Symbol int

// EpsilonLine is the line number of leaves which represent an empty (epsilon) match.
const EpsilonLine = -2

// --- A general purpose interface for tokens --------------------------------

// Tokens represent input tokens. They are usually produced by a scanner and
// reflect terminals in a language.
//
// An example would be a token for a floating point number:
//
//    TokType = Float       // symbol for this kind of tokens (application specific)
//    Lexeme  = "3.1416"    // lexeme as it appeared in the input stream
//    Value   = 3.1416      // is a float64 value
//    Span    = 67…73       // occurred from position 67 in the input stream
//    Line    = 4           // 1-based line number of the lexeme's start
//
// Producers turn tokens into leaves of a parse tree (see `build.Builder.Shift`).
type Token interface {
	TokType() Symbol
	Lexeme() string
	Value() interface{}
	Span() Span
	Line() int
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. A span
// denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// String returns a span as "(x…y)".
func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
