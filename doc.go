/*
Package ptree holds parse trees produced by external parsers.

A parser (not part of this module) builds a tree bottom-up, constructing
interior nodes for grammar productions and leaves for scanned tokens. Once
finished, the root is wrapped into a tree container, which offers navigation
and in-order extraction of the original token stream. Package structure is
as follows:

■ tree: Package tree implements the node model (interior nodes and token
leaves) and the tree container with its traversals.

■ build: Package build helps producers to construct trees by shift/reduce calls.

■ symbols: Package symbols maps symbol names to symbol codes and back.

■ scanner: Package scanner provides token sources for simple producers.

■ cmd/ptree: A command which builds trees for files and prints their tokens.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ptree
