package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
	"github.com/npillmayer/ptree/internal/config"
	"github.com/npillmayer/ptree/symbols"
	"github.com/npillmayer/ptree/tree"
	"github.com/pterm/pterm"
)

// traceKeys are the tracers of this module, configured by flag -trace.
var traceKeys = []string{"ptree.tree", "ptree.build", "ptree.symbols", "ptree.scanner", "ptree.cli"}

func main() {
	initDisplay()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command with arguments args and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("ptree", flag.ContinueOnError)
	flags.SetOutput(stderr)
	tlevel := flags.String("trace", "", "Trace level [Debug|Info|Error]")
	confpath := flags.String("config", "", "Configuration file (YAML or TOML)")
	lexer := flags.String("lexer", "go", "Tokenizer [go|words]")
	showTree := flags.Bool("tree", false, "Display parse trees")
	interactive := flags.Bool("i", false, "Explore the last parse tree")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if err := configure(*confpath, *tlevel); err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return 1
	}
	defer config.Teardown()
	if flags.NArg() == 0 {
		fmt.Fprintln(stderr, "Please specify one or more files to be parsed.")
		return 1
	}
	//
	syms := newSymbolTable()
	newTokenizer, err := tokenizerFor(*lexer, syms)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	results := parseFiles(flags.Args(), newTokenizer, tree.NewIDAllocator(), syms)
	var last *tree.Tree
	for _, r := range results {
		if r.err != nil {
			if errors.Is(r.err, fs.ErrNotExist) {
				fmt.Fprintf(stderr, "File not found: %s\n", r.name)
			} else {
				fmt.Fprintf(stderr, "Error parsing %s\n%v\n", r.name, r.err)
			}
			return 1
		}
		printTokens(stdout, r.name, r.tree)
		if *showTree {
			renderTree(r.tree)
		}
		last = r.tree
	}
	tracer().Infof("%d symbols in use", syms.Size())
	if *interactive {
		if err := explore(last); err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 1
		}
	}
	return 0
}

// configure loads the configuration and sets up tracing.
// A trace level given on the command line overrides the configuration.
func configure(path, level string) error {
	var conf *config.Conf
	var err error
	if path != "" {
		conf, err = config.Load(path)
	} else {
		conf, err = config.LoadDefault("ptree")
	}
	if err != nil {
		return err
	}
	if level != "" {
		for _, key := range traceKeys {
			conf.Set("tracelevel."+key, level)
		}
	}
	return config.Setup(conf)
}

// printTokens prints the lexemes of a tree, one per line. Epsilon leaves are
// omitted.
func printTokens(w io.Writer, name string, t *tree.Tree) {
	fmt.Fprintf(w, "*** Printing tokens for file %s...\n", name)
	t.EachLeaf(func(l *tree.Leaf) bool {
		if !l.IsEpsilon() {
			fmt.Fprintln(w, l.Lexeme())
		}
		return true
	})
}

// explore starts an interactive explorer for t.
func explore(t *tree.Tree) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return errors.New("interactive mode requires a terminal")
	}
	x := newExplorer(t)
	if x == nil {
		return errors.New("no tree to explore")
	}
	repl, err := readline.New("ptree> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	tracer().Infof("Quit with <ctrl>D")
	pterm.Info.Println(x.cursor.Current().String())
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		quit, err := x.exec(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
	return nil
}

// newSymbolTable creates a symbol table holding the token types of the Go
// tokenizer.
func newSymbolTable() *symbols.Table {
	syms := symbols.NewTable()
	for name, sym := range goTokenNames {
		syms.DefineAs(name, sym)
	}
	return syms
}
