package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/ptree/tree"
	"github.com/pterm/pterm"
)

// ErrUnknownCommand is returned for input the explorer does not understand.
var ErrUnknownCommand = errors.New("unknown command, use one of [up|down|next|show|leaves|line|quit]")

// explorer lets users navigate a parse tree with a cursor.
type explorer struct {
	tree   *tree.Tree
	cursor *tree.Cursor
}

func newExplorer(t *tree.Tree) *explorer {
	c := t.SetCursor(nil)
	if c == nil {
		return nil
	}
	return &explorer{tree: t, cursor: c}
}

// exec executes a single command. It returns true if the user wants to quit.
func (x *explorer) exec(line string) (bool, error) {
	cmd := strings.ToLower(strings.TrimSpace(line))
	tracer().Debugf("command %q at %v", cmd, x.cursor.Current())
	var moved bool
	switch cmd {
	case "":
		return false, nil
	case "quit", "q":
		return true, nil
	case "up", "u":
		_, moved = x.cursor.Up()
	case "down", "d":
		_, moved = x.cursor.Down(tree.LtoR)
	case "next", "n":
		_, moved = x.cursor.Sibling()
	case "show", "s":
		renderTree(tree.New(x.cursor.Current()))
		return false, nil
	case "leaves":
		lexemes := tree.New(x.cursor.Current()).Lexemes()
		pterm.Info.Println(strings.Join(lexemes, " "))
		return false, nil
	case "line", "l":
		line, err := tree.LeftmostLine(x.cursor.Current())
		if err != nil {
			return false, err
		}
		pterm.Info.Println(fmt.Sprintf("line %d", line))
		return false, nil
	default:
		return false, fmt.Errorf("%q: %w", cmd, ErrUnknownCommand)
	}
	if !moved {
		return false, fmt.Errorf("cannot move %s from %v", cmd, x.cursor.Current())
	}
	pterm.Info.Println(x.cursor.Current().String())
	return false, nil
}
