// Package scenegraph provides a fixed-size table of rigid-body transform nodes
// linked by child and sibling indices.
//
// Nodes live in a slice and refer to each other by small integer IDs, so the
// graph has no pointer cycles and a single node can be rebuilt in place when
// one of its parameters changes.
package scenegraph

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrCycle is returned when a traversal visits more nodes than the table holds,
// which only happens when child/sibling links form a loop.
var ErrCycle = errors.New("scenegraph: child/sibling links form a cycle")

// NodeID indexes a node in a Graph.
type NodeID int

// None marks an absent child or sibling link.
const None NodeID = -1

// RenderFunc draws a node. accumulated is the product of every ancestor's
// transform and the node's own transform, outermost first.
type RenderFunc func(id NodeID, accumulated mgl32.Mat4)

// Node is one entry of the table. Transform is local to the parent.
type Node struct {
	Transform mgl32.Mat4
	Render    RenderFunc
	Sibling   NodeID
	Child     NodeID
}

// NewNode creates a node with the given local transform and links.
func NewNode(transform mgl32.Mat4, render RenderFunc, sibling, child NodeID) Node {
	return Node{
		Transform: transform,
		Render:    render,
		Sibling:   sibling,
		Child:     child,
	}
}

// Graph is a fixed-size node table plus the matrix stack used while traversing.
type Graph struct {
	nodes []Node

	// Traversal state
	current mgl32.Mat4
	stack   []mgl32.Mat4
	visited int
}

// New creates a graph of size nodes, each an identity transform with no
// links and no render function.
func New(size int) *Graph {
	g := &Graph{
		nodes: make([]Node, size),
		stack: make([]mgl32.Mat4, 0, size),
	}
	for i := range g.nodes {
		g.nodes[i] = NewNode(mgl32.Ident4(), nil, None, None)
	}
	return g
}

// Len returns the number of nodes in the table.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Set replaces node id.
func (g *Graph) Set(id NodeID, n Node) {
	g.nodes[id] = n
}

// Node returns a copy of node id.
func (g *Graph) Node(id NodeID) Node {
	return g.nodes[id]
}

// SetTransform replaces only the local transform of node id.
func (g *Graph) SetTransform(id NodeID, m mgl32.Mat4) {
	g.nodes[id].Transform = m
}

// Traverse walks the tree depth-first starting at root, child before sibling.
// Each node is rendered with base * (ancestor transforms) * own transform.
// The accumulated matrix is restored before a sibling is visited, so siblings
// inherit from their parent only, never from each other.
func (g *Graph) Traverse(root NodeID, base mgl32.Mat4) error {
	g.current = base
	g.stack = g.stack[:0]
	g.visited = 0
	return g.traverse(root)
}

func (g *Graph) traverse(id NodeID) error {
	if id == None {
		return nil
	}
	if id < 0 || int(id) >= len(g.nodes) {
		return fmt.Errorf("scenegraph: node %d out of range [0, %d)", id, len(g.nodes))
	}
	g.visited++
	if g.visited > len(g.nodes) {
		return ErrCycle
	}

	n := &g.nodes[id]

	g.stack = append(g.stack, g.current)
	g.current = g.current.Mul4(n.Transform)
	if n.Render != nil {
		n.Render(id, g.current)
	}
	if n.Child != None {
		if err := g.traverse(n.Child); err != nil {
			return err
		}
	}
	g.current = g.stack[len(g.stack)-1]
	g.stack = g.stack[:len(g.stack)-1]

	if n.Sibling != None {
		return g.traverse(n.Sibling)
	}
	return nil
}
