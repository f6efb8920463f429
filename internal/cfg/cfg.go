// Package cfg builds a minimal per-function control-flow graph. It
// exists only as an auxiliary interface for potential downstream
// analyses; nothing in the type inference pipeline reads it.
package cfg

import "github.com/funvibe/funxy/internal/ast"

// Kind distinguishes a CFG node's role.
type Kind int

const (
	KindStatement Kind = iota
	KindEntry
	KindExit
	KindCondition
	KindNop
)

// Node is one vertex in a function's control-flow graph.
type Node struct {
	Kind Kind
	Stmt ast.Statement // set when Kind == KindStatement or KindCondition

	succ []*Node
	// label[s] records the edge kind out of this node to succ[s]. Every
	// edge has one; only a KindCondition node's edges are True/False,
	// all others are EdgePlain.
	label []EdgeLabel
	pred  []*Node
}

// EdgeLabel distinguishes a plain successor edge from the True/False
// branches leaving a Condition node.
type EdgeLabel int

const (
	EdgePlain EdgeLabel = iota
	EdgeTrue
	EdgeFalse
)

// Succ returns n's successors. The edge labels are not returned.
func (n *Node) Succ() []*Node { return n.succ }

// Pred returns n's predecessors.
func (n *Node) Pred() []*Node { return n.pred }

// Graph is a function's control-flow graph.
type Graph struct {
	Entry *Node
	Exit  *Node
}

func newNode(kind Kind, stmt ast.Statement) *Node {
	return &Node{Kind: kind, Stmt: stmt}
}

func link(from *Node, label EdgeLabel, to *Node) {
	from.succ = append(from.succ, to)
	from.label = append(from.label, label)
	to.pred = append(to.pred, from)
}

// Build constructs fn's control-flow graph: Entry, one node per
// statement (Condition nodes for if/while), and Exit. Nop nodes
// introduced as if/while merge points are eliminated afterward by
// rewiring their predecessors directly to their successors.
func Build(fn *ast.FunctionStatement) *Graph {
	b := &builder{}
	entry := newNode(KindEntry, nil)
	exit := newNode(KindExit, nil)

	last := entry
	for _, decl := range fn.Body.Declarations {
		n := newNode(KindStatement, decl)
		link(last, EdgePlain, n)
		last = n
	}
	for _, stmt := range fn.Body.Statements {
		last = b.addStatement(last, stmt)
	}
	if fn.Body.Return != nil {
		ret := newNode(KindStatement, fn.Body.Return)
		link(last, EdgePlain, ret)
		last = ret
	}
	link(last, EdgePlain, exit)

	eliminateNops(entry)
	return &Graph{Entry: entry, Exit: exit}
}

type builder struct{}

// addStatement appends stmt's node(s) after last and returns the new
// tail of straight-line control flow.
func (b *builder) addStatement(last *Node, stmt ast.Statement) *Node {
	switch s := stmt.(type) {
	case *ast.IfStatement:
		cond := newNode(KindCondition, s)
		link(last, EdgePlain, cond)
		merge := newNode(KindNop, nil)

		thenTail := b.addBlock(cond, EdgeTrue, s.Consequence)
		link(thenTail, EdgePlain, merge)

		if s.Alternative != nil {
			elseTail := b.addBlock(cond, EdgeFalse, s.Alternative)
			link(elseTail, EdgePlain, merge)
		} else {
			link(cond, EdgeFalse, merge)
		}
		return merge

	case *ast.WhileStatement:
		cond := newNode(KindCondition, s)
		link(last, EdgePlain, cond)
		merge := newNode(KindNop, nil)
		link(cond, EdgeFalse, merge)

		bodyTail := b.addBlock(cond, EdgeTrue, s.Body)
		link(bodyTail, EdgePlain, cond)
		return merge

	default:
		n := newNode(KindStatement, stmt)
		link(last, EdgePlain, n)
		return n
	}
}

// addBlock links from with the given label into a fresh entry Nop for
// block (eliminated later along with every other Nop), then appends
// block's statements after it.
func (b *builder) addBlock(from *Node, label EdgeLabel, block *ast.BlockStatement) *Node {
	entry := newNode(KindNop, nil)
	link(from, label, entry)

	last := entry
	for _, stmt := range block.Statements {
		last = b.addStatement(last, stmt)
	}
	return last
}

// eliminateNops removes every KindNop node reachable from entry,
// rewiring each of its predecessors directly to each of its
// successors with the predecessor's original edge label.
func eliminateNops(entry *Node) {
	visited := make(map[*Node]bool)
	var nops []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if visited[n] {
			return
		}
		visited[n] = true
		if n.Kind == KindNop {
			nops = append(nops, n)
		}
		for _, s := range n.succ {
			walk(s)
		}
	}
	walk(entry)

	for _, nop := range nops {
		for _, pred := range nop.pred {
			label := pred.label[indexOf(pred.succ, nop)]
			removeSucc(pred, nop)
			for _, succ := range nop.succ {
				link(pred, label, succ)
				removePred(succ, nop)
			}
		}
	}
}

func indexOf(nodes []*Node, target *Node) int {
	for i, n := range nodes {
		if n == target {
			return i
		}
	}
	return -1
}

func removeSucc(n, target *Node) {
	for i, s := range n.succ {
		if s == target {
			n.succ = append(n.succ[:i], n.succ[i+1:]...)
			n.label = append(n.label[:i], n.label[i+1:]...)
			return
		}
	}
}

func removePred(n, target *Node) {
	for i, p := range n.pred {
		if p == target {
			n.pred = append(n.pred[:i], n.pred[i+1:]...)
			return
		}
	}
}
