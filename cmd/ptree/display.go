package main

import (
	"fmt"

	"github.com/npillmayer/ptree/tree"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// renderTree displays a parse tree on the terminal.
func renderTree(t *tree.Tree) {
	ll := leveledList(t)
	if len(ll) == 0 {
		pterm.Info.Println("empty tree")
		return
	}
	tracer().Debugf("|ll| = %d", len(ll))
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}

// leveledList flattens a tree into a list of nodes, each with its nesting level.
func leveledList(t *tree.Tree) pterm.LeveledList {
	c := t.SetCursor(nil)
	if c == nil {
		return nil
	}
	l := &leveler{}
	c.TopDown(l, tree.LtoR, tree.Continue)
	return l.ll
}

// leveler is a tree.Listener collecting nodes for display.
type leveler struct {
	ll pterm.LeveledList
}

func (l *leveler) EnterRule(n *tree.Interior, _ []*tree.RuleNode, ctxt tree.RuleCtxt) bool {
	l.ll = append(l.ll, pterm.LeveledListItem{
		Level: ctxt.Level,
		Text:  fmt.Sprintf("%s #%d", n.Name(), n.ID()),
	})
	return true
}

func (l *leveler) ExitRule(*tree.Interior, []*tree.RuleNode, tree.RuleCtxt) interface{} {
	return nil
}

func (l *leveler) Terminal(leaf *tree.Leaf, ctxt tree.RuleCtxt) interface{} {
	text := fmt.Sprintf("%s %q", leaf.Name(), leaf.Lexeme())
	if !leaf.IsEpsilon() {
		text += fmt.Sprintf(" @%d", leaf.Line())
	}
	l.ll = append(l.ll, pterm.LeveledListItem{
		Level: ctxt.Level,
		Text:  text,
	})
	return nil
}

func (l *leveler) MakeAttrs(*tree.Interior) interface{} {
	return nil
}

var _ tree.Listener = (*leveler)(nil)
