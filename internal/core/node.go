package core

import (
	"slices"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"
)

// Node is a single named directory in the namespace tree.
// The root node has the empty-string name and no parent.
type Node struct {
	name     string
	id       string // session-unique identity, assigned at construction
	parent   *Node
	children *xsync.Map[string, *Node] // child nodes by name
}

// NewNode creates a detached Node with no children.
//
// NOTE: Parent node is responsible for adding itself to the returned Node's
// parent ref when linking as its child
func NewNode(name string) *Node {
	return &Node{
		name:     name,
		id:       uuid.NewString(),
		children: xsync.NewMap[string, *Node](),
	}
}

// Name returns the node's immutable name (last path component).
func (n *Node) Name() string {
	return n.name
}

// ID returns the node's session-unique identifier.
func (n *Node) ID() string {
	return n.id
}

// Path returns the path of the node relative from root.
// If the node is the root, returns ""
func (n *Node) Path() string {
	if n.parent == nil {
		// root; a detached node reports just its own name
		return n.name
	}
	pPath := n.parent.Path()
	if pPath == "" {
		return n.name
	}
	return pPath + "/" + n.name
}

// IsRoot reports whether this is the sentinel root node.
func (n *Node) IsRoot() bool {
	return n.parent == nil && n.name == ""
}

// AddChild adds a child node to the node's children map
// and sets the child's parent to this node
func (n *Node) AddChild(child *Node) {
	n.children.Store(child.name, child)
	child.parent = n
}

// GetChild returns a child node by name.
func (n *Node) GetChild(name string) (child *Node, ok bool) {
	return n.children.Load(name)
}

// RemoveChild detaches a child by name and returns it.
// The detached child keeps its whole subtree.
func (n *Node) RemoveChild(name string) (*Node, bool) {
	if child, exists := n.children.LoadAndDelete(name); exists {
		child.parent = nil
		return child, true
	}
	return nil, false
}

// NumChildren returns the number of direct children.
func (n *Node) NumChildren() int {
	return n.children.Size()
}

// ChildNames returns the names of direct children in alphabetical order.
// The backing map is unordered; listing order is defined here.
func (n *Node) ChildNames() []string {
	names := make([]string, 0, n.children.Size())
	n.children.Range(func(name string, _ *Node) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)
	return names
}
