// Package dirman is an in-memory hierarchical namespace manager: a tree of
// named directory nodes addressed by slash-delimited paths, with create,
// delete, move, and list operations. The engine returns structured results
// and never prints; rendering belongs to the caller.
package dirman

import (
	"github.com/AntoineGaton/dirman/internal/core"
)

// New creates an empty namespace tree for a session.
func New() *core.Tree {
	return core.NewTree()
}
