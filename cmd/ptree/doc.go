/*
Command ptree builds parse trees for input files and prints their tokens.

Usage:

	ptree [flags] file...

For every file, ptree splits the input into tokens, arranges them in a tree of
source lines and prints the leaves of the tree in document order:

	*** Printing tokens for file main.go...
	package
	main
	…

Files are processed concurrently, output is printed in the order of the
arguments. ptree stops at the first file which cannot be read.

Flags are:

	-lexer go|words   tokenize Go-like (default) or split into words, numbers and punctuation
	-tree             display every parse tree
	-i                explore the parse tree of the last file interactively
	-trace level      trace level [Debug|Info|Error]
	-config file      configuration file (YAML or TOML); default is to search
	                  the user's configuration directories for ptree.yaml etc.

The interactive explorer understands commands up, down, next, show, leaves,
line and quit.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'ptree.cli'.
func tracer() tracing.Trace {
	return tracing.Select("ptree.cli")
}
